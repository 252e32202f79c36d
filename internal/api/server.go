package api

import (
	"context"
	"fmt"

	"ads/internal/app/config"
	"ads/internal/app/dsn"
	"ads/internal/app/handler"
	"ads/internal/app/middleware"
	"ads/internal/app/redis"
	"ads/internal/app/repository"
	"ads/internal/app/service"
	"ads/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ads/docs"
)

// StartServer собирает все зависимости и запускает HTTP-сервер
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка загрузки конфигурации: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("ошибка подключения к Redis: ", err)
	}
	defer redisClient.Close()

	avatars, photos, err := newImageStorages(cfg)
	if err != nil {
		logrus.Fatal("ошибка инициализации хранилища картинок: ", err)
	}

	adSvc := service.NewAdService(repo, repo, photos)
	commentSvc := service.NewCommentService(repo, repo, repo)
	userSvc := service.NewUserService(repo, avatars)
	authSvc := service.NewAuthService(repo)

	authHandler := handler.NewAuthHandler(authSvc, redisClient, cfg)
	h := handler.NewHandler(adSvc, commentSvc, userSvc, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()

	// CORS для локального фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h.RegisterAPIRoutes(r, authMiddleware)

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	if err := r.Run(addr); err != nil {
		logrus.Fatal("ошибка запуска сервера: ", err)
	}

	logrus.Info("Server down")
}

// newImageStorages выбирает бэкенд хранения картинок по конфигурации
func newImageStorages(cfg *config.Config) (avatars, photos storage.FileStorage, err error) {
	switch cfg.Images.Type {
	case "minio":
		avatars, err = storage.NewMinIOStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.AvatarBucket, cfg.Minio.UseSSL)
		if err != nil {
			return nil, nil, err
		}
		photos, err = storage.NewMinIOStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.PhotoBucket, cfg.Minio.UseSSL)
		if err != nil {
			return nil, nil, err
		}
		return avatars, photos, nil
	default:
		return storage.NewDiskStorage(cfg.Images.AvatarDir), storage.NewDiskStorage(cfg.Images.PhotoDir), nil
	}
}
