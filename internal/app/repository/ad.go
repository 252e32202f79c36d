package repository

import (
	"errors"

	"ads/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для объявлений

func (r *Repository) GetAllAds() ([]ds.Ad, error) {
	var adList []ds.Ad
	err := r.db.Find(&adList).Error
	return adList, err
}

func (r *Repository) GetAdsByAuthorEmail(email string) ([]ds.Ad, error) {
	var adList []ds.Ad
	err := r.db.
		Joins("JOIN users ON users.id = ads.author_id").
		Where("users.email = ?", email).
		Find(&adList).Error
	return adList, err
}

// GetAdByID возвращает объявление вместе с автором
func (r *Repository) GetAdByID(id uint) (*ds.Ad, error) {
	var ad ds.Ad
	err := r.db.Preload("Author").First(&ad, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ds.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *Repository) AdExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Ad{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateAd(ad *ds.Ad) error {
	return r.db.Create(ad).Error
}

func (r *Repository) SaveAd(ad *ds.Ad) error {
	return r.db.Save(ad).Error
}

func (r *Repository) DeleteAd(ad *ds.Ad) error {
	// комментарии объявления удаляются вместе с ним
	if err := r.db.Where("ad_id = ?", ad.ID).Delete(&ds.Comment{}).Error; err != nil {
		return err
	}
	return r.db.Delete(ad).Error
}
