package service

import (
	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/role"
	"ads/internal/app/utils"
)

// AuthService — регистрация и проверка логина/пароля
type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register создает пользователя. Если логин занят, возвращает false
// и ничего не создает — это не ошибка, а отказ в регистрации.
func (s *AuthService) Register(req dto.RegisterRequest) (bool, error) {
	exists, err := s.users.UserExistsByEmail(req.Username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return false, err
	}

	userRole := req.Role
	if !userRole.Valid() {
		userRole = role.User
	}

	user := &ds.User{
		Email:        req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         userRole,
	}
	if err := s.users.CreateUser(user); err != nil {
		return false, err
	}
	return true, nil
}

// Login возвращает пользователя, если пара логин/пароль верна
func (s *AuthService) Login(email, password string) (*ds.User, bool) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, false
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, false
	}
	return user, true
}
