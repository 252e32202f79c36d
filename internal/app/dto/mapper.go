package dto

import "ads/internal/app/ds"

// Преобразования сущностей в ответы API. Чистые функции без бизнес-правил.

func AdToResponse(ad ds.Ad) AdResponse {
	return AdResponse{
		Pk:     ad.ID,
		Author: ad.AuthorID,
		Title:  ad.Title,
		Price:  ad.Price,
		Image:  ad.ImagePath,
	}
}

func AdsToListResponse(adList []ds.Ad) AdsListResponse {
	results := make([]AdResponse, 0, len(adList))
	for _, ad := range adList {
		results = append(results, AdToResponse(ad))
	}
	return AdsListResponse{
		Count:   len(results),
		Results: results,
	}
}

// AdToExtendedResponse требует загруженного автора
func AdToExtendedResponse(ad ds.Ad) ExtendedAdResponse {
	return ExtendedAdResponse{
		Pk:              ad.ID,
		AuthorFirstName: ad.Author.FirstName,
		AuthorLastName:  ad.Author.LastName,
		Title:           ad.Title,
		Description:     ad.Description,
		Email:           ad.Author.Email,
		Phone:           ad.Author.Phone,
		Price:           ad.Price,
		Image:           ad.ImagePath,
	}
}

// CommentToResponse требует загруженного автора
func CommentToResponse(comment ds.Comment) CommentResponse {
	return CommentResponse{
		Pk:              comment.ID,
		Author:          comment.AuthorID,
		AuthorFirstName: comment.Author.FirstName,
		AuthorImage:     comment.Author.AvatarPath,
		Text:            comment.Text,
		CreatedAt:       comment.CreatedAt.Unix(),
	}
}

func CommentsToListResponse(comments []ds.Comment) CommentsListResponse {
	results := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		results = append(results, CommentToResponse(comment))
	}
	return CommentsListResponse{
		Count:   len(results),
		Results: results,
	}
}

func UserToResponse(user ds.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		Image:     user.AvatarPath,
	}
}

func UserToUpdateResponse(user ds.User) UpdateUserResponse {
	return UpdateUserResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}
}
