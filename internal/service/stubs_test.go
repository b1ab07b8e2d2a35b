package service

import (
	"context"

	"commons/internal/models"
)

// Function-field repository stubs. Unset fields are no-ops so each test
// only wires the calls it cares about.

type stubUserRepo struct {
	GetByIDFn                 func(ctx context.Context, id uint) (*models.User, error)
	GetByUsernameFn           func(ctx context.Context, username string) (*models.User, error)
	CreateFn                  func(ctx context.Context, user *models.User) error
	UpdateFn                  func(ctx context.Context, user *models.User) error
	SetActiveFn               func(ctx context.Context, id uint, active bool) error
	SetPendingDeletionFn      func(ctx context.Context, id uint, pending bool) error
	DeleteIfPendingDeletionFn func(ctx context.Context, id uint) (bool, error)
	ListPendingDeletionIDsFn  func(ctx context.Context) ([]uint, error)
	ListFn                    func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &models.User{ID: id, IsActive: true}, nil
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.GetByUsernameFn != nil {
		return s.GetByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) SetActive(ctx context.Context, id uint, active bool) error {
	if s.SetActiveFn != nil {
		return s.SetActiveFn(ctx, id, active)
	}
	return nil
}

func (s *stubUserRepo) SetPendingDeletion(ctx context.Context, id uint, pending bool) error {
	if s.SetPendingDeletionFn != nil {
		return s.SetPendingDeletionFn(ctx, id, pending)
	}
	return nil
}

func (s *stubUserRepo) DeleteIfPendingDeletion(ctx context.Context, id uint) (bool, error) {
	if s.DeleteIfPendingDeletionFn != nil {
		return s.DeleteIfPendingDeletionFn(ctx, id)
	}
	return false, nil
}

func (s *stubUserRepo) ListPendingDeletionIDs(ctx context.Context) ([]uint, error) {
	if s.ListPendingDeletionIDsFn != nil {
		return s.ListPendingDeletionIDsFn(ctx)
	}
	return nil, nil
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit, offset)
	}
	return nil, nil
}

type stubPostRepo struct {
	CreateFn             func(ctx context.Context, post *models.Post) error
	GetByIDFn            func(ctx context.Context, id string) (*models.Post, error)
	ListVisibleFn        func(ctx context.Context, limit, offset int) ([]*models.Post, error)
	UpdateFn             func(ctx context.Context, post *models.Post) error
	DeleteFn             func(ctx context.Context, id string) error
	SetHiddenFn          func(ctx context.Context, id string, hidden bool) error
	SetActiveForAuthorFn func(ctx context.Context, authorID uint, active bool) error
	DeleteByAuthorFn     func(ctx context.Context, authorID uint) error
	ListIDsByAuthorFn    func(ctx context.Context, authorID uint) ([]string, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &models.Post{ID: id, IsActive: true}, nil
}

func (s *stubPostRepo) ListVisible(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if s.ListVisibleFn != nil {
		return s.ListVisibleFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *stubPostRepo) SetHidden(ctx context.Context, id string, hidden bool) error {
	if s.SetHiddenFn != nil {
		return s.SetHiddenFn(ctx, id, hidden)
	}
	return nil
}

func (s *stubPostRepo) SetActiveForAuthor(ctx context.Context, authorID uint, active bool) error {
	if s.SetActiveForAuthorFn != nil {
		return s.SetActiveForAuthorFn(ctx, authorID, active)
	}
	return nil
}

func (s *stubPostRepo) DeleteByAuthor(ctx context.Context, authorID uint) error {
	if s.DeleteByAuthorFn != nil {
		return s.DeleteByAuthorFn(ctx, authorID)
	}
	return nil
}

func (s *stubPostRepo) ListIDsByAuthor(ctx context.Context, authorID uint) ([]string, error) {
	if s.ListIDsByAuthorFn != nil {
		return s.ListIDsByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

type stubCommentRepo struct {
	CreateFn             func(ctx context.Context, comment *models.Comment) error
	GetByIDFn            func(ctx context.Context, id string) (*models.Comment, error)
	ListVisibleByPostFn  func(ctx context.Context, postID string) ([]*models.Comment, error)
	UpdateFn             func(ctx context.Context, comment *models.Comment) error
	DeleteFn             func(ctx context.Context, id string) error
	SetHiddenForPostFn   func(ctx context.Context, postID string, hidden bool) error
	SetActiveForAuthorFn func(ctx context.Context, authorID uint, active bool) error
	DeleteByPostFn       func(ctx context.Context, postID string) error
	DeleteByAuthorFn     func(ctx context.Context, authorID uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &models.Comment{ID: id, IsActive: true}, nil
}

func (s *stubCommentRepo) ListVisibleByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	if s.ListVisibleByPostFn != nil {
		return s.ListVisibleByPostFn(ctx, postID)
	}
	return nil, nil
}

func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, comment)
	}
	return nil
}

func (s *stubCommentRepo) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *stubCommentRepo) SetHiddenForPost(ctx context.Context, postID string, hidden bool) error {
	if s.SetHiddenForPostFn != nil {
		return s.SetHiddenForPostFn(ctx, postID, hidden)
	}
	return nil
}

func (s *stubCommentRepo) SetActiveForAuthor(ctx context.Context, authorID uint, active bool) error {
	if s.SetActiveForAuthorFn != nil {
		return s.SetActiveForAuthorFn(ctx, authorID, active)
	}
	return nil
}

func (s *stubCommentRepo) DeleteByPost(ctx context.Context, postID string) error {
	if s.DeleteByPostFn != nil {
		return s.DeleteByPostFn(ctx, postID)
	}
	return nil
}

func (s *stubCommentRepo) DeleteByAuthor(ctx context.Context, authorID uint) error {
	if s.DeleteByAuthorFn != nil {
		return s.DeleteByAuthorFn(ctx, authorID)
	}
	return nil
}
