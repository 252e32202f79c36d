package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ads/internal/app/storage"

	"github.com/gin-gonic/gin"
)

// ============ ВЫДАЧА КАРТИНОК ============

// GetMyAvatar отдает аватар текущего пользователя
// @Summary Аватар текущего пользователя
// @Tags Images
// @Produce image/jpeg
// @Security BearerAuth
// @Success 200 {file} binary
// @Success 204 "Аватар не загружен"
// @Failure 401 {object} dto.ErrorResponse
// @Router /images/avatars [get]
func (h *Handler) GetMyAvatar(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	data, err := h.Users.GetAvatar(caller)
	h.writeImage(c, data, err)
}

// GetAvatarByID отдает аватар пользователя по его ID
// @Summary Аватар пользователя
// @Tags Images
// @Produce image/jpeg
// @Param id path int true "ID пользователя"
// @Success 200 {file} binary
// @Success 204 "Аватар не загружен"
// @Failure 404 {object} dto.ErrorResponse
// @Router /images/avatars/{id} [get]
func (h *Handler) GetAvatarByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	data, loadErr := h.Users.GetAvatarByUserID(uint(id))
	h.writeImage(c, data, loadErr)
}

// GetAdPhoto отдает фото объявления
// @Summary Фото объявления
// @Tags Images
// @Produce image/jpeg
// @Param id path int true "ID объявления"
// @Success 200 {file} binary
// @Success 204 "Фото не загружено"
// @Failure 404 {object} dto.ErrorResponse
// @Router /images/photo/{id} [get]
func (h *Handler) GetAdPhoto(c *gin.Context) {
	id, ok := h.adID(c)
	if !ok {
		return
	}

	data, err := h.Ads.GetAdPhoto(id)
	h.writeImage(c, data, err)
}

// writeImage отвечает содержимым файла с типом, определенным по байтам.
// Отсутствующий файл — это 204, а не ошибка: сущность есть, картинки нет.
func (h *Handler) writeImage(c *gin.Context, data []byte, err error) {
	if errors.Is(err, storage.ErrFileNotFound) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
