package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/role"
	"ads/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler содержит обработчики REST API поверх доменных сервисов
type Handler struct {
	Ads      *service.AdService
	Comments *service.CommentService
	Users    *service.UserService
	Auth     *AuthHandler
}

func NewHandler(adSvc *service.AdService, commentSvc *service.CommentService, userSvc *service.UserService, authHandler *AuthHandler) *Handler {
	return &Handler{
		Ads:      adSvc,
		Comments: commentSvc,
		Users:    userSvc,
		Auth:     authHandler,
	}
}

// Получение текущего пользователя из контекста запроса
func (h *Handler) getCaller(c *gin.Context) (ds.Caller, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return ds.Caller{}, fmt.Errorf("user not authenticated")
	}

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getCaller: invalid userID type: %T", userID)
		return ds.Caller{}, fmt.Errorf("invalid user ID")
	}

	email, _ := c.Get("userEmail")
	userRole, _ := c.Get("userRole")
	e, _ := email.(string)
	r, _ := userRole.(role.Role)

	return ds.Caller{UserID: id, Email: e, Role: r}, nil
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// serviceError переводит ошибки сервисов в HTTP-статусы
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ds.ErrAdNotFound),
		errors.Is(err, ds.ErrCommentNotFound),
		errors.Is(err, ds.ErrUserNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ds.ErrForbidden),
		errors.Is(err, ds.ErrWrongPassword):
		h.errorResponse(c, http.StatusForbidden, err.Error())
	default:
		logrus.Error("internal error: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

// readFormFile вычитывает файл из multipart-поля
func readFormFile(file *multipart.FileHeader) ([]byte, error) {
	opened, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()
	return io.ReadAll(opened)
}
