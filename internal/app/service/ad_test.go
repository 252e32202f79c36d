package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/role"
	"ads/internal/app/service"
	"ads/internal/app/storage"
)

func strPtr(s string) *string { return &s }

func TestListAds(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	ads := []ds.Ad{
		{ID: 1, AuthorID: 10, Title: "Велосипед", Price: 5000, ImagePath: strPtr("photo_1.jpg")},
		{ID: 2, AuthorID: 11, Title: "Гитара", Price: 12000},
	}
	adRepo.On("GetAllAds").Return(ads, nil)

	result, err := svc.ListAds()

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, uint(1), result.Results[0].Pk)
	assert.Equal(t, "Велосипед", result.Results[0].Title)
	adRepo.AssertExpectations(t)
}

func TestListMyAds_UsesCallerLogin(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	adRepo.On("GetAdsByAuthorEmail", "user@mail.ru").Return([]ds.Ad{{ID: 1, AuthorID: 10, Title: "Стол"}}, nil)

	result, err := svc.ListMyAds(caller)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	adRepo.AssertExpectations(t)
}

func TestGetExtendedAd_NotFound(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	adRepo.On("GetAdByID", uint(99)).Return(nil, ds.ErrAdNotFound)

	_, err := svc.GetExtendedAd(99)

	assert.ErrorIs(t, err, ds.ErrAdNotFound)
	adRepo.AssertExpectations(t)
}

// Создание объявления идет в два шага: вставка ради id, затем сохранение
// имени файла, выведенного из этого id
func TestCreateAd_TwoPhase(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10, Email: "user@mail.ru"}, nil)

	adRepo.On("CreateAd", mock.AnythingOfType("*ds.Ad")).Run(func(args mock.Arguments) {
		args.Get(0).(*ds.Ad).ID = 42
	}).Return(nil)
	photos.On("Store", []byte("img"), "bike.jpg", "photo_42").Return("photo_42.jpg", nil)
	adRepo.On("SaveAd", mock.MatchedBy(func(ad *ds.Ad) bool {
		return ad.ID == 42 && ad.ImagePath != nil && *ad.ImagePath == "photo_42.jpg"
	})).Return(nil)

	req := dto.CreateOrUpdateAdRequest{Title: "Велосипед", Description: "почти новый", Price: 5000}
	result, err := svc.CreateAd(req, []byte("img"), "bike.jpg", caller)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), result.Pk)
	assert.Equal(t, uint(10), result.Author)
	adRepo.AssertExpectations(t)
	photos.AssertExpectations(t)
}

func TestCreateAd_StoreFails(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	userRepo.On("GetUserByEmail", "user@mail.ru").Return(&ds.User{ID: 10}, nil)
	adRepo.On("CreateAd", mock.AnythingOfType("*ds.Ad")).Return(nil)
	photos.On("Store", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	_, err := svc.CreateAd(dto.CreateOrUpdateAdRequest{Title: "Стол", Price: 100}, []byte("img"), "t.jpg", caller)

	assert.Error(t, err)
	adRepo.AssertNotCalled(t, "SaveAd", mock.Anything)
}

func TestUpdateAd_Owner(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	adRepo.On("GetAdByID", uint(1)).Return(&ds.Ad{ID: 1, AuthorID: 10, Title: "старый"}, nil)
	adRepo.On("SaveAd", mock.MatchedBy(func(ad *ds.Ad) bool {
		return ad.Title == "новый" && ad.Price == 200
	})).Return(nil)

	result, err := svc.UpdateAd(1, dto.CreateOrUpdateAdRequest{Title: "новый", Price: 200}, caller)

	assert.NoError(t, err)
	assert.Equal(t, "новый", result.Title)
	adRepo.AssertExpectations(t)
}

func TestUpdateAd_ForbiddenForStranger(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 20, Email: "other@mail.ru", Role: role.User}
	adRepo.On("GetAdByID", uint(1)).Return(&ds.Ad{ID: 1, AuthorID: 10}, nil)

	_, err := svc.UpdateAd(1, dto.CreateOrUpdateAdRequest{Title: "чужой", Price: 1}, caller)

	assert.ErrorIs(t, err, ds.ErrForbidden)
	adRepo.AssertNotCalled(t, "SaveAd", mock.Anything)
}

func TestUpdateAd_AdminAllowed(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 99, Email: "admin@mail.ru", Role: role.Admin}
	adRepo.On("GetAdByID", uint(1)).Return(&ds.Ad{ID: 1, AuthorID: 10}, nil)
	adRepo.On("SaveAd", mock.AnythingOfType("*ds.Ad")).Return(nil)

	_, err := svc.UpdateAd(1, dto.CreateOrUpdateAdRequest{Title: "правка модератора", Price: 1}, caller)

	assert.NoError(t, err)
	adRepo.AssertExpectations(t)
}

// NotFound важнее Forbidden: по несуществующему объявлению чужой
// пользователь получает 404, а не 403
func TestUpdateAd_NotFoundBeforeForbidden(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 20, Email: "other@mail.ru", Role: role.User}
	adRepo.On("GetAdByID", uint(404)).Return(nil, ds.ErrAdNotFound)

	_, err := svc.UpdateAd(404, dto.CreateOrUpdateAdRequest{Title: "x", Price: 1}, caller)

	assert.ErrorIs(t, err, ds.ErrAdNotFound)
}

func TestDeleteAd_RemovesRowAndFile(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	ad := &ds.Ad{ID: 1, AuthorID: 10, ImagePath: strPtr("photo_1.jpg")}
	adRepo.On("GetAdByID", uint(1)).Return(ad, nil)
	adRepo.On("DeleteAd", ad).Return(nil)
	photos.On("Remove", "photo_1.jpg").Return(nil)

	err := svc.DeleteAd(1, caller)

	assert.NoError(t, err)
	adRepo.AssertExpectations(t)
	photos.AssertExpectations(t)
}

func TestDeleteAd_NoFileForAdWithoutPhoto(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 10, Email: "user@mail.ru", Role: role.User}
	ad := &ds.Ad{ID: 1, AuthorID: 10}
	adRepo.On("GetAdByID", uint(1)).Return(ad, nil)
	adRepo.On("DeleteAd", ad).Return(nil)

	err := svc.DeleteAd(1, caller)

	assert.NoError(t, err)
	photos.AssertNotCalled(t, "Remove", mock.Anything)
}

func TestGetAdPhoto_MissingImage(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	adRepo.On("GetAdByID", uint(1)).Return(&ds.Ad{ID: 1, AuthorID: 10}, nil)

	_, err := svc.GetAdPhoto(1)

	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestUpdateAdPhoto_Forbidden(t *testing.T) {
	adRepo := new(MockAdRepository)
	userRepo := new(MockUserRepository)
	photos := new(MockFileStorage)

	svc := service.NewAdService(adRepo, userRepo, photos)

	caller := ds.Caller{UserID: 20, Email: "other@mail.ru", Role: role.User}
	adRepo.On("GetAdByID", uint(1)).Return(&ds.Ad{ID: 1, AuthorID: 10}, nil)

	err := svc.UpdateAdPhoto(1, []byte("img"), "new.png", caller)

	assert.ErrorIs(t, err, ds.ErrForbidden)
	photos.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}
