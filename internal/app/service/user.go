package service

import (
	"fmt"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/storage"
	"ads/internal/app/utils"
)

// UserService — профиль и аватар текущего пользователя
type UserService struct {
	users   UserRepository
	avatars storage.FileStorage
}

func NewUserService(users UserRepository, avatars storage.FileStorage) *UserService {
	return &UserService{
		users:   users,
		avatars: avatars,
	}
}

// GetCurrent возвращает запись текущего пользователя по логину из токена.
// "Не найдено" здесь означает рассинхронизацию: пользователь уже прошел
// аутентификацию, но записи в БД нет.
func (s *UserService) GetCurrent(caller ds.Caller) (dto.UserResponse, error) {
	user, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.UserToResponse(*user), nil
}

// UpdateProfile меняет имя, фамилию и телефон. Только свою запись,
// идентификатор цели не принимается.
func (s *UserService) UpdateProfile(caller ds.Caller, req dto.UpdateUserRequest) (dto.UpdateUserResponse, error) {
	user, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return dto.UpdateUserResponse{}, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone

	if err := s.users.SaveUser(user); err != nil {
		return dto.UpdateUserResponse{}, err
	}
	return dto.UserToUpdateResponse(*user), nil
}

// SetNewPassword меняет пароль после проверки текущего.
// При несовпадении хеш не трогается и возвращается ds.ErrWrongPassword.
func (s *UserService) SetNewPassword(caller ds.Caller, currentPassword, newPassword string) error {
	user, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, currentPassword) {
		return ds.ErrWrongPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.SaveUser(user)
}

// UpdateAvatar сохраняет новый аватар под именем avatar_<id>.<ext>,
// прежний файл затирается записью
func (s *UserService) UpdateAvatar(caller ds.Caller, fileData []byte, originalFilename string) error {
	user, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return err
	}

	filename, err := s.avatars.Store(fileData, originalFilename, fmt.Sprintf("avatar_%d", user.ID))
	if err != nil {
		return fmt.Errorf("не удалось сохранить аватар: %w", err)
	}

	user.AvatarPath = &filename
	return s.users.SaveUser(user)
}

// GetAvatar возвращает аватар текущего пользователя,
// storage.ErrFileNotFound если аватара нет
func (s *UserService) GetAvatar(caller ds.Caller) ([]byte, error) {
	user, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return nil, err
	}
	return s.loadAvatar(user)
}

func (s *UserService) GetAvatarByUserID(id uint) ([]byte, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	return s.loadAvatar(user)
}

func (s *UserService) loadAvatar(user *ds.User) ([]byte, error) {
	if user.AvatarPath == nil {
		return nil, storage.ErrFileNotFound
	}
	return s.avatars.Load(*user.AvatarPath)
}
