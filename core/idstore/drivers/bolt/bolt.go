package bolt

import (
	"context"
	"encoding/binary"

	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"go.etcd.io/bbolt"
)

var (
	subnetIDBucketKey = []byte("subnet-ids")
	metaBucketKey     = []byte("meta")
	lastIDKey         = []byte("last-id")
)

// Store is an idstore.Store implementation that persists subnet id
// allocations in a bbolt database. The allocation counter lives in a
// separate meta bucket so released cidrs can never cause id reuse.
type Store struct {
	db   *bbolt.DB
	path string
}

// Get implements idstore.Store
func (s *Store) Get(ctx context.Context, cidr string) (uint64, bool, error) {
	var (
		id uint64
		ok bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(subnetIDBucketKey)
		if bucket == nil {
			// nothing allocated because the bucket hasn't even been created yet
			return nil
		}

		blob := bucket.Get([]byte(cidr))
		if blob == nil {
			return nil
		}

		id = binary.BigEndian.Uint64(blob)
		ok = true

		return nil
	})

	return id, ok, err
}

// Allocate implements idstore.Store
func (s *Store) Allocate(ctx context.Context, cidr string) (uint64, error) {
	var id uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		idBucket, metaBucket, err := openOrCreateBuckets(tx)
		if err != nil {
			return err
		}

		if blob := idBucket.Get([]byte(cidr)); blob != nil {
			id = binary.BigEndian.Uint64(blob)
			return nil
		}

		last := uint64(0)
		if blob := metaBucket.Get(lastIDKey); blob != nil {
			last = binary.BigEndian.Uint64(blob)
		}
		id = last + 1

		blob := make([]byte, 8)
		binary.BigEndian.PutUint64(blob, id)

		if err := metaBucket.Put(lastIDKey, blob); err != nil {
			return err
		}

		return idBucket.Put([]byte(cidr), blob)
	})

	return id, err
}

// List implements idstore.Store
func (s *Store) List(ctx context.Context) (map[string]uint64, error) {
	ids := make(map[string]uint64)

	return ids, s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(subnetIDBucketKey)
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		key, value := cursor.First()
		for key != nil {
			ids[string(key)] = binary.BigEndian.Uint64(value)
			key, value = cursor.Next()
		}

		return nil
	})
}

// Close implements idstore.Store
func (s *Store) Close() error {
	return s.db.Close()
}

func openOrCreateBuckets(tx *bbolt.Tx) (idBucket *bbolt.Bucket, metaBucket *bbolt.Bucket, err error) {
	idBucket, err = tx.CreateBucketIfNotExists(subnetIDBucketKey)
	if err != nil {
		return
	}

	metaBucket, err = tx.CreateBucketIfNotExists(metaBucketKey)
	if err != nil {
		return
	}

	return idBucket, metaBucket, nil
}

// compile time check
var _ idstore.Store = &Store{}
