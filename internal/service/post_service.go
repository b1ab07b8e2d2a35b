package service

import (
	"context"

	"commons/internal/models"
	"commons/internal/repository"

	"github.com/google/uuid"
)

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

type CreatePostInput struct {
	AuthorID uint
	Title    string
	Content  string
}

type UpdatePostInput struct {
	AuthorID uint
	PostID   string
	Content  string
}

type DeletePostInput struct {
	AuthorID uint
	PostID   string
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300
	const maxContentLen = 50000

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post := &models.Post{
		ID:       uuid.NewString(),
		AuthorID: in.AuthorID,
		Title:    in.Title,
		Content:  in.Content,
		IsActive: true,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListVisible(ctx, limit, offset)
}

// GetPost returns a post, treating inactive posts as absent.
func (s *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.IsActive {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.AuthorID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post and its comments. This is the explicit
// per-post hard delete, unrelated to the account lifecycle cascades.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.GetPost(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.AuthorID != in.AuthorID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.commentRepo.DeleteByPost(ctx, in.PostID); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, in.PostID)
}

// SetPostHidden flips the hide axis of a post and propagates it down to
// every comment under the post, regardless of each comment's author. The
// cascade only ever propagates downward; restoring a post never consults
// individual comment state. Applying the current value again is a no-op
// that still succeeds.
func (s *PostService) SetPostHidden(ctx context.Context, postID string, hidden bool, actorID uint) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return models.NewForbiddenError("You can only hide or restore your own posts")
	}

	if err := s.postRepo.SetHidden(ctx, postID, hidden); err != nil {
		return err
	}
	return s.commentRepo.SetHiddenForPost(ctx, postID, hidden)
}
