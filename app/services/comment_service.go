package services

import (
	"fmt"

	"tinyblog/app/models"
	"tinyblog/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment validates the payload and appends the comment to its post.
// Whether the post exists is not checked.
func (s *CommentService) CreateComment(req *models.NewComment) (*models.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	comment, err := s.commentRepo.Create(*req.PostID, *req.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post, oldest first
func (s *CommentService) ListPostComments(postID uint32) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	return comments, nil
}
