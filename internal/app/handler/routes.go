package handler

import (
	"ads/internal/app/middleware"
	"ads/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *Handler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	authRequired := authMiddleware.WithAuthCheck(role.User, role.Admin)

	// ============ Аутентификация ============
	router.POST("/register", h.Auth.RegisterUser) // POST регистрация
	router.POST("/login", h.Auth.LoginUser)       // POST аутентификация JWT
	router.POST("/logout", authRequired, h.Auth.LogoutUser)

	// ============ Объявления (Ads) ============
	ads := router.Group("/ads")
	{
		// Публичные эндпоинты (без авторизации)
		ads.GET("", h.GetAds)     // GET список всех объявлений
		ads.GET("/:id", h.GetAd)  // GET расширенная карточка

		// Для авторизованных пользователей
		ads.POST("", authRequired, h.CreateAd)                  // POST создание (multipart)
		ads.GET("/me", authRequired, h.GetMyAds)                // GET свои объявления
		ads.PATCH("/:id", authRequired, h.UpdateAd)             // PATCH изменение (владелец или админ)
		ads.DELETE("/:id", authRequired, h.DeleteAd)            // DELETE удаление (владелец или админ)
		ads.PATCH("/:id/image", authRequired, h.UpdateAdImage)  // PATCH замена фотографии

		// Комментарии к объявлению
		ads.GET("/:id/comments", authRequired, h.GetComments)
		ads.POST("/:id/comments", authRequired, h.AddComment)
		ads.PATCH("/:id/comments/:commentId", authRequired, h.UpdateComment)
		ads.DELETE("/:id/comments/:commentId", authRequired, h.DeleteComment)
	}

	// ============ Пользователи (Users) ============
	users := router.Group("/users")
	users.Use(authRequired)
	{
		users.GET("/me", h.GetMe)                     // GET профиль
		users.PATCH("/me", h.UpdateMe)                // PATCH обновление профиля
		users.PATCH("/me/image", h.UpdateMyImage)     // PATCH обновление аватара
		users.POST("/set_password", h.SetPassword)    // POST смена пароля
	}

	// ============ Картинки (Images) ============
	images := router.Group("/images")
	{
		images.GET("/avatars", authRequired, h.GetMyAvatar) // GET свой аватар
		images.GET("/avatars/:id", h.GetAvatarByID)         // GET аватар по id пользователя
		images.GET("/photo/:id", h.GetAdPhoto)              // GET фотография объявления
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
