package main

import (
	"fmt"
	"log"

	"ads/internal/app/ds"
	"ads/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var ads []ds.Ad
	err = db.Preload("Author").Find(&ads).Error
	if err != nil {
		log.Fatal("Failed to get ads:", err)
	}

	fmt.Println("Ads in database:")
	for _, ad := range ads {
		image := "NULL"
		if ad.ImagePath != nil {
			image = *ad.ImagePath
		}
		fmt.Printf("ID: %d, Title: %s, Price: %d, Author: %s, Image: %s\n", ad.ID, ad.Title, ad.Price, ad.Author.Email, image)
	}

	var users []ds.User
	err = db.Find(&users).Error
	if err != nil {
		log.Fatal("Failed to get users:", err)
	}

	fmt.Println("Users in database:")
	for _, user := range users {
		fmt.Printf("ID: %d, Email: %s, Role: %s\n", user.ID, user.Email, user.Role)
	}
}
