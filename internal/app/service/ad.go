package service

import (
	"fmt"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
	"ads/internal/app/storage"
)

// AdService — операции над объявлениями
type AdService struct {
	ads    AdRepository
	users  UserRepository
	photos storage.FileStorage
}

func NewAdService(ads AdRepository, users UserRepository, photos storage.FileStorage) *AdService {
	return &AdService{
		ads:    ads,
		users:  users,
		photos: photos,
	}
}

func (s *AdService) ListAds() (dto.AdsListResponse, error) {
	adList, err := s.ads.GetAllAds()
	if err != nil {
		return dto.AdsListResponse{}, err
	}
	return dto.AdsToListResponse(adList), nil
}

// ListMyAds возвращает объявления текущего пользователя, поиск по его логину
func (s *AdService) ListMyAds(caller ds.Caller) (dto.AdsListResponse, error) {
	adList, err := s.ads.GetAdsByAuthorEmail(caller.Email)
	if err != nil {
		return dto.AdsListResponse{}, err
	}
	return dto.AdsToListResponse(adList), nil
}

func (s *AdService) GetExtendedAd(id uint) (dto.ExtendedAdResponse, error) {
	ad, err := s.ads.GetAdByID(id)
	if err != nil {
		return dto.ExtendedAdResponse{}, err
	}
	return dto.AdToExtendedResponse(*ad), nil
}

// AdExists используется сервисом комментариев для проверки родителя
func (s *AdService) AdExists(id uint) (bool, error) {
	return s.ads.AdExists(id)
}

// CreateAd создает объявление и сохраняет его фото.
// Имя файла выводится из id объявления, поэтому запись идет в два шага:
// сначала вставка ради сгенерированного id, затем привязка имени файла.
// Транзакции между шагами нет, сбой посередине оставит объявление без фото.
func (s *AdService) CreateAd(req dto.CreateOrUpdateAdRequest, fileData []byte, originalFilename string, caller ds.Caller) (dto.AdResponse, error) {
	author, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return dto.AdResponse{}, err
	}

	ad := &ds.Ad{
		AuthorID:    author.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.ads.CreateAd(ad); err != nil {
		return dto.AdResponse{}, err
	}

	filename, err := s.photos.Store(fileData, originalFilename, fmt.Sprintf("photo_%d", ad.ID))
	if err != nil {
		return dto.AdResponse{}, fmt.Errorf("не удалось сохранить фото объявления: %w", err)
	}

	ad.ImagePath = &filename
	if err := s.ads.SaveAd(ad); err != nil {
		return dto.AdResponse{}, err
	}

	return dto.AdToResponse(*ad), nil
}

// UpdateAd меняет только заголовок, описание и цену
func (s *AdService) UpdateAd(id uint, req dto.CreateOrUpdateAdRequest, caller ds.Caller) (dto.AdResponse, error) {
	ad, err := s.ads.GetAdByID(id)
	if err != nil {
		return dto.AdResponse{}, err
	}
	if !canModify(caller, ad.AuthorID) {
		return dto.AdResponse{}, ds.ErrForbidden
	}

	ad.Title = req.Title
	ad.Description = req.Description
	ad.Price = req.Price

	if err := s.ads.SaveAd(ad); err != nil {
		return dto.AdResponse{}, err
	}
	return dto.AdToResponse(*ad), nil
}

// UpdateAdPhoto заменяет фото объявления, старый файл затирается записью
// под тем же базовым именем
func (s *AdService) UpdateAdPhoto(id uint, fileData []byte, originalFilename string, caller ds.Caller) error {
	ad, err := s.ads.GetAdByID(id)
	if err != nil {
		return err
	}
	if !canModify(caller, ad.AuthorID) {
		return ds.ErrForbidden
	}

	filename, err := s.photos.Store(fileData, originalFilename, fmt.Sprintf("photo_%d", ad.ID))
	if err != nil {
		return fmt.Errorf("не удалось сохранить фото объявления: %w", err)
	}

	ad.ImagePath = &filename
	return s.ads.SaveAd(ad)
}

// DeleteAd удаляет запись, затем файл фото. Сбой удаления файла — отдельная
// ошибка, запись к этому моменту уже удалена.
func (s *AdService) DeleteAd(id uint, caller ds.Caller) error {
	ad, err := s.ads.GetAdByID(id)
	if err != nil {
		return err
	}
	if !canModify(caller, ad.AuthorID) {
		return ds.ErrForbidden
	}

	if err := s.ads.DeleteAd(ad); err != nil {
		return err
	}

	if ad.ImagePath != nil {
		if err := s.photos.Remove(*ad.ImagePath); err != nil {
			return fmt.Errorf("не удалось удалить фото объявления: %w", err)
		}
	}
	return nil
}

// GetAdPhoto возвращает содержимое фото объявления.
// Для объявления без фото возвращает storage.ErrFileNotFound — обработчик
// отвечает на это 204, а не ошибкой.
func (s *AdService) GetAdPhoto(id uint) ([]byte, error) {
	ad, err := s.ads.GetAdByID(id)
	if err != nil {
		return nil, err
	}
	if ad.ImagePath == nil {
		return nil, storage.ErrFileNotFound
	}
	return s.photos.Load(*ad.ImagePath)
}
