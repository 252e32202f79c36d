package service

import "ads/internal/app/ds"

// Контракты, которые сервисы ожидают от слоя хранения.
// Реализуются repository.Repository, в тестах подменяются моками.

type UserRepository interface {
	GetUserByID(id uint) (*ds.User, error)
	GetUserByEmail(email string) (*ds.User, error)
	UserExistsByEmail(email string) (bool, error)
	CreateUser(user *ds.User) error
	SaveUser(user *ds.User) error
}

type AdRepository interface {
	GetAllAds() ([]ds.Ad, error)
	GetAdsByAuthorEmail(email string) ([]ds.Ad, error)
	GetAdByID(id uint) (*ds.Ad, error)
	AdExists(id uint) (bool, error)
	CreateAd(ad *ds.Ad) error
	SaveAd(ad *ds.Ad) error
	DeleteAd(ad *ds.Ad) error
}

type CommentRepository interface {
	GetCommentsByAd(adID uint) ([]ds.Comment, error)
	GetCommentByID(id uint) (*ds.Comment, error)
	CreateComment(comment *ds.Comment) error
	SaveComment(comment *ds.Comment) error
	DeleteComment(comment *ds.Comment) error
}
