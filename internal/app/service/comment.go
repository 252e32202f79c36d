package service

import (
	"time"

	"ads/internal/app/ds"
	"ads/internal/app/dto"
)

// CommentService — операции над комментариями объявлений
type CommentService struct {
	comments CommentRepository
	ads      AdRepository
	users    UserRepository
}

func NewCommentService(comments CommentRepository, ads AdRepository, users UserRepository) *CommentService {
	return &CommentService{
		comments: comments,
		ads:      ads,
		users:    users,
	}
}

func (s *CommentService) ListByAd(adID uint) (dto.CommentsListResponse, error) {
	comments, err := s.comments.GetCommentsByAd(adID)
	if err != nil {
		return dto.CommentsListResponse{}, err
	}
	return dto.CommentsToListResponse(comments), nil
}

// Create добавляет комментарий от имени текущего пользователя.
// Родительское объявление загружается, а не просто упоминается: если его
// нет, операция завершается "не найдено" и ничего не сохраняет.
func (s *CommentService) Create(adID uint, req dto.CreateOrUpdateCommentRequest, caller ds.Caller) (dto.CommentResponse, error) {
	ad, err := s.ads.GetAdByID(adID)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	author, err := s.users.GetUserByEmail(caller.Email)
	if err != nil {
		return dto.CommentResponse{}, err
	}

	comment := &ds.Comment{
		AdID:      ad.ID,
		AuthorID:  author.ID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return dto.CommentResponse{}, err
	}

	comment.Author = *author
	return dto.CommentToResponse(*comment), nil
}

// Update заменяет только текст, время создания не меняется
func (s *CommentService) Update(adID, commentID uint, req dto.CreateOrUpdateCommentRequest, caller ds.Caller) (dto.CommentResponse, error) {
	comment, err := s.checkCommentPresent(adID, commentID)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	if !canModify(caller, comment.AuthorID) {
		return dto.CommentResponse{}, ds.ErrForbidden
	}

	comment.Text = req.Text
	if err := s.comments.SaveComment(comment); err != nil {
		return dto.CommentResponse{}, err
	}
	return dto.CommentToResponse(*comment), nil
}

func (s *CommentService) Delete(adID, commentID uint, caller ds.Caller) error {
	comment, err := s.checkCommentPresent(adID, commentID)
	if err != nil {
		return err
	}
	if !canModify(caller, comment.AuthorID) {
		return ds.ErrForbidden
	}
	return s.comments.DeleteComment(comment)
}

// checkCommentPresent загружает комментарий и сверяет родителя.
// Несовпадение adID для клиента неотличимо от отсутствия комментария.
func (s *CommentService) checkCommentPresent(adID, commentID uint) (*ds.Comment, error) {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.ads.AdExists(adID)
	if err != nil {
		return nil, err
	}
	if !exists || comment.AdID != adID {
		return nil, ds.ErrCommentNotFound
	}
	return comment, nil
}
