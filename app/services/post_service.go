package services

import (
	"fmt"

	"tinyblog/app/models"
	"tinyblog/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates the payload and stores a new post
func (s *PostService) CreatePost(req *models.NewPost) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	post, err := s.postRepo.Create(*req.Title, *req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id uint32) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves every post
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
