package ds

import "ads/internal/app/role"

// Таблица пользователей
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"type:varchar(100);unique;not null"` // логин пользователя
	FirstName    string    `gorm:"type:varchar(50);not null"`
	LastName     string    `gorm:"type:varchar(50);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	AvatarPath   *string   `gorm:"type:varchar(255)"` // имя файла в каталоге аватаров, NULL если аватара нет
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         role.Role `gorm:"type:varchar(10);not null"`
}
