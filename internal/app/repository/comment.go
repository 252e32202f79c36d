package repository

import (
	"errors"

	"ads/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для комментариев

func (r *Repository) GetCommentsByAd(adID uint) ([]ds.Comment, error) {
	var comments []ds.Comment
	err := r.db.Preload("Author").Where("ad_id = ?", adID).Find(&comments).Error
	return comments, err
}

func (r *Repository) GetCommentByID(id uint) (*ds.Comment, error) {
	var comment ds.Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ds.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *Repository) CreateComment(comment *ds.Comment) error {
	return r.db.Create(comment).Error
}

func (r *Repository) SaveComment(comment *ds.Comment) error {
	return r.db.Save(comment).Error
}

func (r *Repository) DeleteComment(comment *ds.Comment) error {
	return r.db.Delete(comment).Error
}
