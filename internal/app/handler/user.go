package handler

import (
	"net/http"

	"ads/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН ПОЛЬЗОВАТЕЛИ ============

// GetMe возвращает профиль текущего пользователя
// @Summary Профиль текущего пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	response, err := h.Users.GetCurrent(caller)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateMe обновляет имя, фамилию и телефон текущего пользователя
// @Summary Обновление профиля
// @Description Меняет только собственную запись
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "Новые поля профиля"
// @Success 200 {object} dto.UpdateUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	response, err := h.Users.UpdateProfile(caller, req)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateMyImage заменяет аватар текущего пользователя
// @Summary Обновление аватара
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Файл аватара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me/image [patch]
func (h *Handler) UpdateMyImage(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл image не найден в запросе")
		return
	}
	fileData, err := readFormFile(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	if err := h.Users.UpdateAvatar(caller, fileData, file.Filename); err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "Аватар обновлен", nil)
}

// SetPassword меняет пароль текущего пользователя
// @Summary Смена пароля
// @Description Требует верный текущий пароль, иначе 403
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NewPasswordRequest true "Текущий и новый пароль"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/set_password [post]
func (h *Handler) SetPassword(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := h.Users.SetNewPassword(caller, req.CurrentPassword, req.NewPassword); err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "Пароль изменен", nil)
}
