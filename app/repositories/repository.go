package repositories

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Supported storage backends.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Backends lists every accepted backend name.
var Backends = []string{BackendMemory, BackendBadger}

// Repository bundles the post and comment stores of one backend.
type Repository struct {
	Posts    PostRepository
	Comments CommentRepository
	db       *badger.DB
}

// Open builds the stores for the named backend. The badger backend runs fully
// in memory; nothing survives a restart with either backend.
func Open(backend string, logger *zap.Logger) (*Repository, error) {
	switch backend {
	case BackendMemory:
		return &Repository{
			Posts:    NewMemoryPostRepository(),
			Comments: NewMemoryCommentRepository(),
		}, nil
	case BackendBadger:
		opts := badger.DefaultOptions("").
			WithInMemory(true).
			WithLogger(badgerLogger{logger.Named("badger").Sugar()}).
			WithNumVersionsToKeep(1)
		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
		return &Repository{
			Posts:    NewBadgerPostRepository(db),
			Comments: NewBadgerCommentRepository(db),
			db:       db,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// Close releases the backend, if it holds anything.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// badgerLogger adapts a zap sugared logger to badger.Logger.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
