package dto

import (
	"ads/internal/app/role"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Объявления (Ads) ============

type AdResponse struct {
	Pk     uint    `json:"pk"`
	Author uint    `json:"author"`
	Title  string  `json:"title"`
	Price  int     `json:"price"`
	Image  *string `json:"image"`
}

type AdsListResponse struct {
	Count   int          `json:"count"`
	Results []AdResponse `json:"results"`
}

type ExtendedAdResponse struct {
	Pk              uint    `json:"pk"`
	AuthorFirstName string  `json:"authorFirstName"`
	AuthorLastName  string  `json:"authorLastName"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Price           int     `json:"price"`
	Image           *string `json:"image"`
}

type CreateOrUpdateAdRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"min=0"`
}

// ============ Комментарии (Comments) ============

type CommentResponse struct {
	Pk              uint    `json:"pk"`
	Author          uint    `json:"author"`
	AuthorFirstName string  `json:"authorFirstName"`
	AuthorImage     *string `json:"authorImage"`
	Text            string  `json:"text"`
	CreatedAt       int64   `json:"createdAt"` // секунды с начала эпохи
}

type CommentsListResponse struct {
	Count   int               `json:"count"`
	Results []CommentResponse `json:"results"`
}

type CreateOrUpdateCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Role      role.Role `json:"role"`
	Image     *string   `json:"image"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=50"`
	LastName  string `json:"lastName" binding:"required,min=1,max=50"`
	Phone     string `json:"phone" binding:"required"`
}

type UpdateUserResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type NewPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=6"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	Username  string    `json:"username" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=6"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	Role      role.Role `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
