package repositories

import "tinyblog/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(title, body string) (*models.Post, error)
	GetByID(id uint32) (*models.Post, error)
	List() ([]*models.Post, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(postID uint32, text string) (*models.Comment, error)
	ListByPost(postID uint32) ([]*models.Comment, error)
}
