package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/role"
	"ads/internal/app/service"
	"ads/internal/app/storage"
	"ads/internal/app/utils"
)

func newUserService() (*service.UserService, *MockUserRepository, *MockFileStorage) {
	userRepo := new(MockUserRepository)
	avatars := new(MockFileStorage)
	return service.NewUserService(userRepo, avatars), userRepo, avatars
}

func TestGetCurrentUser(t *testing.T) {
	svc, userRepo, _ := newUserService()

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{
		ID: 10, Email: "user@mail.ru", FirstName: "Иван", LastName: "Петров", Phone: "+79990001122", Role: role.User,
	}, nil)

	result, err := svc.GetCurrent(caller)

	assert.NoError(t, err)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, "Иван", result.FirstName)
	assert.Equal(t, string(role.User), string(result.Role))
}

func TestUpdateProfile(t *testing.T) {
	svc, userRepo, _ := newUserService()

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10, FirstName: "Иван"}, nil)
	userRepo.On("SaveUser", mock.MatchedBy(func(u *ds.User) bool {
		return u.FirstName == "Пётр" && u.Phone == "+79995556677"
	})).Return(nil)

	result, err := svc.UpdateProfile(caller, dto.UpdateUserRequest{FirstName: "Пётр", LastName: "Иванов", Phone: "+79995556677"})

	assert.NoError(t, err)
	assert.Equal(t, "Пётр", result.FirstName)
	userRepo.AssertExpectations(t)
}

func TestSetNewPassword_Success(t *testing.T) {
	svc, userRepo, _ := newUserService()

	hash, err := utils.HashPassword("старый-пароль")
	assert.NoError(t, err)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	user := &ds.User{ID: 10, PasswordHash: hash}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(user, nil)
	userRepo.On("SaveUser", mock.MatchedBy(func(u *ds.User) bool {
		return utils.CheckPassword(u.PasswordHash, "новый-пароль")
	})).Return(nil)

	err = svc.SetNewPassword(caller, "старый-пароль", "новый-пароль")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

// Неверный текущий пароль — явный отказ, хеш не меняется
func TestSetNewPassword_WrongCurrent(t *testing.T) {
	svc, userRepo, _ := newUserService()

	hash, err := utils.HashPassword("настоящий")
	assert.NoError(t, err)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	user := &ds.User{ID: 10, PasswordHash: hash}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(user, nil)

	err = svc.SetNewPassword(caller, "неверный", "новый-пароль")

	assert.ErrorIs(t, err, ds.ErrWrongPassword)
	assert.Equal(t, hash, user.PasswordHash)
	userRepo.AssertNotCalled(t, "SaveUser", mock.Anything)
}

func TestUpdateAvatar_FilenameFromUserID(t *testing.T) {
	svc, userRepo, avatars := newUserService()

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10}, nil)
	avatars.On("Store", []byte("img"), "selfie.png", "avatar_10").Return("avatar_10.png", nil)
	userRepo.On("SaveUser", mock.MatchedBy(func(u *ds.User) bool {
		return u.AvatarPath != nil && *u.AvatarPath == "avatar_10.png"
	})).Return(nil)

	err := svc.UpdateAvatar(caller, []byte("img"), "selfie.png")

	assert.NoError(t, err)
	avatars.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestGetAvatar_NoAvatar(t *testing.T) {
	svc, userRepo, _ := newUserService()

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10}, nil)

	_, err := svc.GetAvatar(caller)

	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestGetAvatarByUserID(t *testing.T) {
	svc, userRepo, avatars := newUserService()

	userRepo.On("GetUserByID", uint(10)).Return(&ds.User{ID: 10, AvatarPath: strPtr("avatar_10.png")}, nil)
	avatars.On("Load", "avatar_10.png").Return([]byte("img"), nil)

	data, err := svc.GetAvatarByUserID(10)

	assert.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestGetAvatarByUserID_UserMissing(t *testing.T) {
	svc, userRepo, _ := newUserService()

	userRepo.On("GetUserByID", uint(404)).Return(nil, ds.ErrUserNotFound)

	_, err := svc.GetAvatarByUserID(404)

	assert.ErrorIs(t, err, ds.ErrUserNotFound)
}
