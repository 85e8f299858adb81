package repositories

import (
	"fmt"
	"sync"

	"tinyblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db    *badger.DB
	mutex sync.Mutex
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment under the post's own sequence
func (r *BadgerCommentRepository) Create(postID uint32, text string) (*models.Comment, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	comment := &models.Comment{PostID: postID, Text: text}
	err := r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, commentSeqKey(postID))
		if err != nil {
			return err
		}
		comment.ID = id

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		// Post ID in the key keeps one post's comments contiguous
		return txn.Set(commentKey(postID, id), data)
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListByPost retrieves all comments for a post
func (r *BadgerCommentRepository) ListByPost(postID uint32) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := commentPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %w", err)
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
