package ds

import "time"

// Таблица комментариев к объявлениям
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	AdID      uint      `gorm:"not null"`
	AuthorID  uint      `gorm:"not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"` // выставляется один раз при создании

	Ad     Ad   `gorm:"foreignKey:AdID"`
	Author User `gorm:"foreignKey:AuthorID"`
}
