// Package storage persists store snapshots in a single bbolt file. The save
// is one read-write transaction replacing the previous snapshot wholesale;
// a load that fails to decode reports the error and hands nothing back, so
// in-memory state is never half-replaced.
package storage

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/talkincode/grocerstore/internal/store"
	bolt "go.etcd.io/bbolt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bucketStore = []byte("store")
	bucketMeta  = []byte("meta")

	keyCatalog   = []byte("catalog")
	keyMembers   = []byte("members")
	keyOrders    = []byte("orders")
	keyMemberSeq = []byte("member_seq")
	keyOrderSeq  = []byte("order_seq")
)

// Repository reads and writes snapshots at a fixed file path.
type Repository struct {
	path string
}

// NewRepository creates a repository backed by the bbolt file at path. The
// file is created on first save.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the backing file path.
func (r *Repository) Path() string {
	return r.path
}

// Save writes the snapshot, replacing any previous one.
func (r *Repository) Save(snap store.Snapshot) error {
	db, err := bolt.Open(r.path, 0o600, nil)
	if err != nil {
		return errors.Wrap(err, "open store file")
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketStore, bucketMeta} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return errors.Wrap(err, "reset bucket")
				}
			}
		}
		sb, err := tx.CreateBucket(bucketStore)
		if err != nil {
			return errors.Wrap(err, "create store bucket")
		}
		mb, err := tx.CreateBucket(bucketMeta)
		if err != nil {
			return errors.Wrap(err, "create meta bucket")
		}

		if err := putJSON(sb, keyCatalog, snap.Products); err != nil {
			return err
		}
		if err := putJSON(sb, keyMembers, snap.Members); err != nil {
			return err
		}
		if err := putJSON(sb, keyOrders, snap.Orders); err != nil {
			return err
		}
		if err := putJSON(mb, keyMemberSeq, snap.MemberSeq); err != nil {
			return err
		}
		return putJSON(mb, keyOrderSeq, snap.OrderSeq)
	})
}

// Load reads the saved snapshot. The second return value is false when no
// store file exists yet; any other failure is returned as an error and the
// snapshot must not be used.
func (r *Repository) Load() (store.Snapshot, bool, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return store.Snapshot{}, false, nil
	}

	db, err := bolt.Open(r.path, 0o600, &bolt.Options{ReadOnly: true})
	if err != nil {
		return store.Snapshot{}, false, errors.Wrap(err, "open store file")
	}
	defer db.Close()

	var snap store.Snapshot
	err = db.View(func(tx *bolt.Tx) error {
		sb := tx.Bucket(bucketStore)
		mb := tx.Bucket(bucketMeta)
		if sb == nil || mb == nil {
			return errors.New("store file holds no snapshot")
		}
		if err := getJSON(sb, keyCatalog, &snap.Products); err != nil {
			return err
		}
		if err := getJSON(sb, keyMembers, &snap.Members); err != nil {
			return err
		}
		if err := getJSON(sb, keyOrders, &snap.Orders); err != nil {
			return err
		}
		if err := getJSON(mb, keyMemberSeq, &snap.MemberSeq); err != nil {
			return err
		}
		return getJSON(mb, keyOrderSeq, &snap.OrderSeq)
	})
	if err != nil {
		return store.Snapshot{}, false, err
	}
	return snap, true, nil
}

func putJSON(b *bolt.Bucket, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return errors.Wrapf(b.Put(key, data), "write %s", key)
}

func getJSON(b *bolt.Bucket, key []byte, v interface{}) error {
	data := b.Get(key)
	if data == nil {
		return errors.Errorf("missing %s entry", key)
	}
	return errors.Wrapf(json.Unmarshal(data, v), "decode %s", key)
}
