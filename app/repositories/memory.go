package repositories

import (
	"sort"
	"sync"

	"tinyblog/app/models"
)

// MemoryPostRepository implements PostRepository with a map guarded by a
// read/write mutex. IDs come from a counter that never goes backwards.
type MemoryPostRepository struct {
	mutex  sync.RWMutex
	posts  map[uint32]models.Post
	lastID uint32
}

// NewMemoryPostRepository creates an empty MemoryPostRepository
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts: make(map[uint32]models.Post),
	}
}

// Create stores a new post under the next ID
func (r *MemoryPostRepository) Create(title, body string) (*models.Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	id, err := nextID(r.lastID)
	if err != nil {
		return nil, err
	}
	r.lastID = id

	post := models.Post{ID: id, Title: title, Body: body}
	r.posts[id] = post
	return &post, nil
}

// GetByID retrieves a post by ID
func (r *MemoryPostRepository) GetByID(id uint32) (*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

// List returns a snapshot of every post ordered by ID
func (r *MemoryPostRepository) List() ([]*models.Post, error) {
	r.mutex.RLock()
	posts := make([]*models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		post := post
		posts = append(posts, &post)
	}
	r.mutex.RUnlock()

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

// MemoryCommentRepository implements CommentRepository as one append-only
// slice per post, each with its own ID counter.
type MemoryCommentRepository struct {
	mutex    sync.RWMutex
	comments map[uint32][]models.Comment
	lastIDs  map[uint32]uint32
}

// NewMemoryCommentRepository creates an empty MemoryCommentRepository
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{
		comments: make(map[uint32][]models.Comment),
		lastIDs:  make(map[uint32]uint32),
	}
}

// Create appends a comment to the given post. The post is not required to exist.
func (r *MemoryCommentRepository) Create(postID uint32, text string) (*models.Comment, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	id, err := nextID(r.lastIDs[postID])
	if err != nil {
		return nil, err
	}
	r.lastIDs[postID] = id

	comment := models.Comment{ID: id, PostID: postID, Text: text}
	r.comments[postID] = append(r.comments[postID], comment)
	return &comment, nil
}

// ListByPost returns the comments of a post in insertion order
func (r *MemoryCommentRepository) ListByPost(postID uint32) ([]*models.Comment, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stored := r.comments[postID]
	comments := make([]*models.Comment, len(stored))
	for i := range stored {
		comment := stored[i]
		comments[i] = &comment
	}
	return comments, nil
}
