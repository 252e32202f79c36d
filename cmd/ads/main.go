package main

import (
	"log"

	"ads/internal/api"
)

// @title Ads API
// @version 1.0
// @description REST API платформы объявлений: регистрация, объявления, комментарии, картинки.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
