package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrSequenceExhausted is returned once a sequence has handed out math.MaxUint32.
	ErrSequenceExhausted = errors.New("id sequence exhausted")
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"

	// Sequence keys for auto-incrementing IDs
	PostSeqKey          = "seq:post"
	CommentSeqKeyPrefix = "seq:comment:"
)

// IDs are zero padded so that Badger's lexicographic key order matches
// numeric order.

func postKey(id uint32) []byte {
	return []byte(fmt.Sprintf("%s%010d", PostKeyPrefix, id))
}

func commentPrefix(postID uint32) []byte {
	return []byte(fmt.Sprintf("%s%010d:", CommentKeyPrefix, postID))
}

func commentKey(postID, id uint32) []byte {
	return []byte(fmt.Sprintf("%s%010d:%010d", CommentKeyPrefix, postID, id))
}

func commentSeqKey(postID uint32) string {
	return fmt.Sprintf("%s%010d", CommentSeqKeyPrefix, postID)
}

// nextID advances an in-memory counter.
func nextID(last uint32) (uint32, error) {
	if last == math.MaxUint32 {
		return 0, ErrSequenceExhausted
	}
	return last + 1, nil
}

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (uint32, error) {
	var last uint32
	item, err := txn.Get([]byte(seqKey))
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	}
	if err == nil {
		err = item.Value(func(val []byte) error {
			n, err := strconv.ParseUint(string(val), 10, 32)
			if err != nil {
				return fmt.Errorf("failed to parse sequence: %w", err)
			}
			last = uint32(n)
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	id, err := nextID(last)
	if err != nil {
		return 0, err
	}

	// Update the sequence
	if err := txn.Set([]byte(seqKey), []byte(strconv.FormatUint(uint64(id), 10))); err != nil {
		return 0, fmt.Errorf("failed to update sequence: %w", err)
	}
	return id, nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
