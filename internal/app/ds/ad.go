package ds

// Таблица объявлений
type Ad struct {
	ID          uint    `gorm:"primaryKey"`
	AuthorID    uint    `gorm:"not null"`
	Title       string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text"`
	Price       int     `gorm:"not null"` // цена в целых единицах, неотрицательная
	ImagePath   *string `gorm:"type:varchar(255)"` // имя файла в каталоге фото, NULL пока фото не загружено

	Author User `gorm:"foreignKey:AuthorID"`
}
