package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	enricher *Enricher
}

type CreatePostInput struct {
	Body    string `json:"body"`
	OwnerID uint   `json:"owner_id"`
}

type UpdatePostInput struct {
	PostID uint
	Body   string
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	enricher *Enricher,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		enricher: enricher,
	}
}

// ListPosts returns all posts with owner attribution attached.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.enricher.AttachPostOwners(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByOwner returns one owner's posts with attribution attached.
func (s *PostService) ListPostsByOwner(ctx context.Context, ownerID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.enricher.AttachPostOwners(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost validates the body and the owner reference, then inserts.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}

	exists, err := s.userRepo.ExistsByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewOwnerNotFoundError(in.OwnerID)
	}

	post := &models.Post{
		Body:    in.Body,
		OwnerID: in.OwnerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost overwrites the body of an existing post. Ownership never
// transfers; owner_id in the request is ignored.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	post.Body = in.Body
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post permanently.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}
