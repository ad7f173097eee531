package db

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
)

var (
	favoritePrefix  = []byte("fav:seq:")
	pairIndexPrefix = "fav:pair:"
	nextSeqKey      = []byte("fav:next")
)

// OpenInMemory opens a BadgerDB instance that never touches the disk
func OpenInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable Badger's default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return db, nil
}

// BadgerFavoritesRepository implements the favorites repository interface using BadgerDB.
// Pairs are stored under a big-endian insertion sequence so that key order is
// insertion order; a second key per pair makes Add idempotent.
type BadgerFavoritesRepository struct {
	db *badger.DB
	mu sync.Mutex
}

// NewBadgerFavoritesRepository creates a new BadgerDB favorites repository
func NewBadgerFavoritesRepository(db *badger.DB) *BadgerFavoritesRepository {
	return &BadgerFavoritesRepository{db: db}
}

// Add appends a pair unless it is already stored
func (r *BadgerFavoritesRepository) Add(ctx context.Context, pair entity.FavoritePair) (bool, error) {
	data, err := json.Marshal(pair)
	if err != nil {
		return false, fmt.Errorf("failed to marshal favorite: %w", err)
	}

	// Serialize writers so concurrent adds never conflict on the sequence key
	r.mu.Lock()
	defer r.mu.Unlock()

	added := false
	err = r.db.Update(func(txn *badger.Txn) error {
		indexKey := []byte(pairIndexPrefix + pair.String())

		_, err := txn.Get(indexKey)
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		seq, err := nextSequence(txn)
		if err != nil {
			return err
		}

		if err := txn.Set(sequenceKey(seq), data); err != nil {
			return err
		}
		if err := txn.Set(indexKey, encodeUint64(seq)); err != nil {
			return err
		}

		added = true
		return txn.Set(nextSeqKey, encodeUint64(seq+1))
	})
	if err != nil {
		return false, fmt.Errorf("failed to store favorite %s: %w", pair, err)
	}

	return added, nil
}

// List returns all pairs in insertion order
func (r *BadgerFavoritesRepository) List(ctx context.Context) ([]entity.FavoritePair, error) {
	pairs := make([]entity.FavoritePair, 0)

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(favoritePrefix); it.ValidForPrefix(favoritePrefix); it.Next() {
			var pair entity.FavoritePair
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &pair)
			})
			if err != nil {
				return err
			}
			pairs = append(pairs, pair)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return pairs, nil
}

func nextSequence(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get(nextSeqKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var seq uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("corrupt sequence value of %d bytes", len(val))
		}
		seq = binary.BigEndian.Uint64(val)
		return nil
	})
	return seq, err
}

func sequenceKey(seq uint64) []byte {
	return append(append([]byte(nil), favoritePrefix...), encodeUint64(seq)...)
}

func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}
