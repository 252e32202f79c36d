package service_test

import (
	"github.com/stretchr/testify/mock"

	"ads/internal/app/ds"
)

// Моки слоя хранения для тестов сервисов

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(id uint) (*ds.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ds.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*ds.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ds.User), args.Error(1)
}

func (m *MockUserRepository) UserExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CreateUser(user *ds.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUser(user *ds.User) error {
	args := m.Called(user)
	return args.Error(0)
}

type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) GetAllAds() ([]ds.Ad, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ds.Ad), args.Error(1)
}

func (m *MockAdRepository) GetAdsByAuthorEmail(email string) ([]ds.Ad, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ds.Ad), args.Error(1)
}

func (m *MockAdRepository) GetAdByID(id uint) (*ds.Ad, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ds.Ad), args.Error(1)
}

func (m *MockAdRepository) AdExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdRepository) CreateAd(ad *ds.Ad) error {
	args := m.Called(ad)
	return args.Error(0)
}

func (m *MockAdRepository) SaveAd(ad *ds.Ad) error {
	args := m.Called(ad)
	return args.Error(0)
}

func (m *MockAdRepository) DeleteAd(ad *ds.Ad) error {
	args := m.Called(ad)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) GetCommentsByAd(adID uint) ([]ds.Comment, error) {
	args := m.Called(adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ds.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetCommentByID(id uint) (*ds.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ds.Comment), args.Error(1)
}

func (m *MockCommentRepository) CreateComment(comment *ds.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) SaveComment(comment *ds.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(comment *ds.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Store(data []byte, originalFilename, baseName string) (string, error) {
	args := m.Called(data, originalFilename, baseName)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Load(filename string) ([]byte, error) {
	args := m.Called(filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileStorage) Remove(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}
