package handler

import (
	"net/http"
	"strconv"

	"ads/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КОММЕНТАРИИ ============

// GetComments получает комментарии объявления
// @Summary Комментарии объявления
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Success 200 {object} dto.CommentsListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ads/{id}/comments [get]
func (h *Handler) GetComments(c *gin.Context) {
	adID, ok := h.adID(c)
	if !ok {
		return
	}

	response, err := h.Comments.ListByAd(adID)
	if err != nil {
		logrus.Error("Error getting comments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения комментариев")
		return
	}
	c.JSON(http.StatusOK, response)
}

// AddComment добавляет комментарий к объявлению
// @Summary Добавление комментария
// @Description Комментарий создается от имени текущего пользователя
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param request body dto.CreateOrUpdateCommentRequest true "Текст комментария"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	adID, ok := h.adID(c)
	if !ok {
		return
	}

	var req dto.CreateOrUpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	response, err := h.Comments.Create(adID, req, caller)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// UpdateComment обновляет текст комментария
// @Summary Обновление комментария
// @Description Доступно автору комментария и администратору
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param commentId path int true "ID комментария"
// @Param request body dto.CreateOrUpdateCommentRequest true "Новый текст"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id}/comments/{commentId} [patch]
func (h *Handler) UpdateComment(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	adID, ok := h.adID(c)
	if !ok {
		return
	}
	commentID, ok := h.commentID(c)
	if !ok {
		return
	}

	var req dto.CreateOrUpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	response, err := h.Comments.Update(adID, commentID, req, caller)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// DeleteComment удаляет комментарий
// @Summary Удаление комментария
// @Description Доступно автору комментария и администратору
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param commentId path int true "ID комментария"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /ads/{id}/comments/{commentId} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	caller, err := h.getCaller(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "Ошибка авторизации")
		return
	}

	adID, ok := h.adID(c)
	if !ok {
		return
	}
	commentID, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.Comments.Delete(adID, commentID, caller); err != nil {
		h.serviceError(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "Комментарий удален", nil)
}

func (h *Handler) commentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("commentId"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID комментария")
		return 0, false
	}
	return uint(id), true
}
