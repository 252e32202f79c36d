package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/role"
	"ads/internal/app/service"
	"ads/internal/app/utils"
)

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := service.NewAuthService(userRepo)

	userRepo.On("UserExistsByEmail", "new@mail.ru").Return(false, nil)
	userRepo.On("CreateUser", mock.MatchedBy(func(u *ds.User) bool {
		return u.Email == "new@mail.ru" &&
			u.Role == role.User &&
			utils.CheckPassword(u.PasswordHash, "пароль123")
	})).Return(nil)

	created, err := svc.Register(dto.RegisterRequest{
		Username:  "new@mail.ru",
		Password:  "пароль123",
		FirstName: "Иван",
		LastName:  "Петров",
		Phone:     "+79990001122",
		Role:      role.User,
	})

	assert.NoError(t, err)
	assert.True(t, created)
	userRepo.AssertExpectations(t)
}

// Занятый логин — отказ без ошибки, ничего не создается
func TestRegister_EmailTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := service.NewAuthService(userRepo)

	userRepo.On("UserExistsByEmail", "taken@mail.ru").Return(true, nil)

	created, err := svc.Register(dto.RegisterRequest{Username: "taken@mail.ru", Password: "x"})

	assert.NoError(t, err)
	assert.False(t, created)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestRegister_InvalidRoleDefaultsToUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := service.NewAuthService(userRepo)

	userRepo.On("UserExistsByEmail", "new@mail.ru").Return(false, nil)
	userRepo.On("CreateUser", mock.MatchedBy(func(u *ds.User) bool {
		return u.Role == role.User
	})).Return(nil)

	created, err := svc.Register(dto.RegisterRequest{Username: "new@mail.ru", Password: "x", Role: "SUPERUSER"})

	assert.NoError(t, err)
	assert.True(t, created)
	userRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := service.NewAuthService(userRepo)

	hash, err := utils.HashPassword("пароль123")
	assert.NoError(t, err)

	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10, Email: "user@mail.ru", PasswordHash: hash}, nil)

	user, ok := svc.Login("user@mail.ru", "пароль123")

	assert.True(t, ok)
	assert.Equal(t, uint(10), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := service.NewAuthService(userRepo)

	hash, err := utils.HashPassword("пароль123")
	assert.NoError(t, err)

	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10, PasswordHash: hash}, nil)

	_, ok := svc.Login("user@mail.ru", "другой")

	assert.False(t, ok)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := service.NewAuthService(userRepo)

	userRepo.On("GetUserByEmail", "ghost@mail.ru").Return(nil, ds.ErrUserNotFound)

	_, ok := svc.Login("ghost@mail.ru", "x")

	assert.False(t, ok)
}
