/*
Package bolt provides a CommitKVStore implementation backed by a bbolt
database file. All writes buffered in a cache-wrap are applied within a
single bolt transaction, so a handler either commits all of its changes
or none of them.
*/
package bolt

import (
	"encoding/binary"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/store"
)

var (
	bucketState = []byte("state")
	bucketMeta  = []byte("meta")

	keyVersion = []byte("version")
)

// CommitStore is a CommitKVStore that persists all data in a single bolt
// database file.
type CommitStore struct {
	db      *bbolt.DB
	version int64
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens or creates the bolt database file in the given
// directory.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	path := filepath.Join(dir, name+".db")
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open bolt db: %s", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketState, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(errors.ErrDatabase, "create bucket %q: %s", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &CommitStore{db: db}, nil
}

// Close closes the underlying database.
func (s *CommitStore) Close() error {
	return s.db.Close()
}

// Get returns the value at the last committed state.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(bucketState).Get(key); raw != nil {
			// The slice is only valid for the lifetime of the bolt
			// transaction and must be copied out.
			value = append([]byte{}, raw...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "get: %s", err)
	}
	return value, nil
}

// Has checks if a key exists in the last committed state.
func (s *CommitStore) Has(key []byte) (bool, error) {
	val, err := s.Get(key)
	return val != nil, err
}

// CacheWrap returns a scratch-pad whose Write applies all buffered
// operations within a single bolt transaction.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, &atomicBatch{db: s.db}, nil)
}

// Commit persists the next version number and returns its info.
func (s *CommitStore) Commit() (store.CommitID, error) {
	s.version++
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyVersion, encodeVersion(s.version))
	})
	if err != nil {
		s.version--
		return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "commit: %s", err)
	}
	return store.CommitID{Version: s.version}, nil
}

// LoadLatestVersion loads the latest persisted version number. Bolt
// transactions are atomic, so the state observed is always a stable one.
func (s *CommitStore) LoadLatestVersion() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(bucketMeta).Get(keyVersion); raw != nil {
			s.version = decodeVersion(raw)
		}
		return nil
	})
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{Version: s.version}, nil
}

func encodeVersion(version int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(version))
	return raw
}

func decodeVersion(raw []byte) int64 {
	return int64(binary.BigEndian.Uint64(raw))
}

// atomicBatch piles up operations and applies them all within a single
// bolt transaction on Write.
type atomicBatch struct {
	db  *bbolt.DB
	ops []store.Op
}

var _ store.Batch = (*atomicBatch)(nil)

func (b *atomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, store.SetOp(key, value))
	return nil
}

func (b *atomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, store.DelOp(key))
	return nil
}

func (b *atomicBatch) Write() error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		bck := tx.Bucket(bucketState)
		for _, op := range b.ops {
			if err := op.Apply(boltWriter{bck}); err != nil {
				return err
			}
		}
		return nil
	})
	b.ops = nil
	return errors.Wrap(err, "atomic batch write")
}

// boltWriter adapts a bolt bucket to the SetDeleter interface.
type boltWriter struct {
	bucket *bbolt.Bucket
}

func (w boltWriter) Set(key, value []byte) error {
	return w.bucket.Put(key, value)
}

func (w boltWriter) Delete(key []byte) error {
	return w.bucket.Delete(key)
}
