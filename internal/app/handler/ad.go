package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ads/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ОБЪЯВЛЕНИЯ ============

// GetAds получает список всех объявлений
// @Summary Получение списка объявлений
// @Description Возвращает все объявления с общим количеством
// @Tags Ads
// @Produce json
// @Success 200 {object} dto.AdsListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ads [get]
func (h *Handler) GetAds(c *gin.Context) {
	response, err := h.Ads.ListAds()
	if err != nil {
		logrus.Error("Error getting ads: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения объявлений")
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetMyAds получает объявления текущего пользователя
// @Summary Объявления текущего пользователя
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdsListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /ads/me [get]
func (h *Handler) GetMyAds(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	response, err := h.Ads.ListMyAds(caller)
	if err != nil {
		logrus.Error("Error getting my ads: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения объявлений")
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetAd получает расширенную информацию об объявлении
// @Summary Получение объявления по ID
// @Description Возвращает объявление с контактами автора
// @Tags Ads
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} dto.ExtendedAdResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id} [get]
func (h *Handler) GetAd(c *gin.Context) {
	id, ok := h.adID(c)
	if !ok {
		return
	}

	response, err := h.Ads.GetExtendedAd(id)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateAd создает объявление с фото
// @Summary Создание объявления
// @Description Принимает multipart: properties (JSON с полями объявления) и image (файл)
// @Tags Ads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param properties formData string true "JSON с title, description, price"
// @Param image formData file true "Фото объявления"
// @Success 201 {object} dto.AdResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ads [post]
func (h *Handler) CreateAd(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	var req dto.CreateOrUpdateAdRequest
	if err := json.Unmarshal([]byte(c.PostForm("properties")), &req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверное поле properties: "+err.Error())
		return
	}
	if req.Title == "" || req.Price < 0 {
		h.errorResponse(c, http.StatusBadRequest, "Заголовок обязателен, цена не может быть отрицательной")
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

	response, err := h.Ads.CreateAd(req, fileData, file.Filename, caller)
	if err != nil {
		logrus.Error("Error creating ad: ", err)
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// UpdateAd обновляет заголовок, описание и цену объявления
// @Summary Обновление объявления
// @Description Доступно автору объявления и администратору
// @Tags Ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param request body dto.CreateOrUpdateAdRequest true "Новые поля"
// @Success 200 {object} dto.AdResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id} [patch]
func (h *Handler) UpdateAd(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	id, ok := h.adID(c)
	if !ok {
		return
	}

	var req dto.CreateOrUpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	response, err := h.Ads.UpdateAd(id, req, caller)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// DeleteAd удаляет объявление вместе с фото
// @Summary Удаление объявления
// @Description Доступно автору объявления и администратору
// @Tags Ads
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 204 "Удалено"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id} [delete]
func (h *Handler) DeleteAd(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	id, ok := h.adID(c)
	if !ok {
		return
	}

	if err := h.Ads.DeleteAd(id, caller); err != nil {
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateAdImage заменяет фото объявления
// @Summary Обновление фото объявления
// @Description Доступно автору объявления и администратору
// @Tags Ads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param image formData file true "Новое фото"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id}/image [patch]
func (h *Handler) UpdateAdImage(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	id, ok := h.adID(c)
	if !ok {
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

	if err := h.Ads.UpdateAdPhoto(id, fileData, file.Filename, caller); err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "Фото объявления обновлено", nil)
}

// adID разбирает ID объявления из пути
func (h *Handler) adID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID объявления")
		return 0, false
	}
	return uint(id), true
}
