// Package db is a thin wrapper around bbolt that stores msgpack-encoded
// values and skips writes that would not change anything.
package db

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-msgpack/v2/codec"
	"go.etcd.io/bbolt"
)

// ErrNotFound is returned by Get when a key does not exist.
var ErrNotFound = errors.New("key not found")

// IsErrNotFound reports whether err is or wraps ErrNotFound.
func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

var msgpackHandle = &codec.MsgpackHandle{}

// DB wraps an open bbolt database.
type DB struct {
	bdb *bbolt.DB
}

// Open opens or creates the database at path. A nil opts uses bbolt's
// defaults.
func Open(path string, mode os.FileMode, opts *bbolt.Options) (*DB, error) {
	bdb, err := bbolt.Open(path, mode, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &DB{bdb: bdb}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.bdb.Close()
}

// BoltDB returns the underlying bbolt database.
func (db *DB) BoltDB() *bbolt.DB {
	return db.bdb
}

// Update runs fn in a read-write transaction. The transaction commits if fn
// returns nil and rolls back otherwise.
func (db *DB) Update(fn func(*Tx) error) error {
	return db.bdb.Update(func(btx *bbolt.Tx) error {
		return fn(&Tx{btx: btx})
	})
}

// View runs fn in a read-only transaction.
func (db *DB) View(fn func(*Tx) error) error {
	return db.bdb.View(func(btx *bbolt.Tx) error {
		return fn(&Tx{btx: btx})
	})
}

// Tx wraps a bbolt transaction.
type Tx struct {
	btx *bbolt.Tx
}

// BoltTx returns the underlying bbolt transaction.
func (tx *Tx) BoltTx() *bbolt.Tx {
	return tx.btx
}

// Bucket returns the root bucket called name, or nil if it does not exist.
func (tx *Tx) Bucket(name []byte) *Bucket {
	return newBucket(tx.btx.Bucket(name))
}

// CreateBucket creates a root bucket. It fails if the bucket exists.
func (tx *Tx) CreateBucket(name []byte) (*Bucket, error) {
	b, err := tx.btx.CreateBucket(name)
	if err != nil {
		return nil, err
	}
	return newBucket(b), nil
}

// CreateBucketIfNotExists returns the root bucket called name, creating it
// if needed.
func (tx *Tx) CreateBucketIfNotExists(name []byte) (*Bucket, error) {
	b, err := tx.btx.CreateBucketIfNotExists(name)
	if err != nil {
		return nil, err
	}
	return newBucket(b), nil
}

// DeleteBucket deletes a root bucket and everything in it.
func (tx *Tx) DeleteBucket(name []byte) error {
	return tx.btx.DeleteBucket(name)
}

// Bucket wraps a bbolt bucket. Values are msgpack-encoded.
type Bucket struct {
	bb *bbolt.Bucket
}

func newBucket(b *bbolt.Bucket) *Bucket {
	if b == nil {
		return nil
	}
	return &Bucket{bb: b}
}

// Bucket returns the nested bucket called name, or nil.
func (b *Bucket) Bucket(name []byte) *Bucket {
	return newBucket(b.bb.Bucket(name))
}

// CreateBucket creates a nested bucket. It fails if the bucket exists.
func (b *Bucket) CreateBucket(name []byte) (*Bucket, error) {
	nb, err := b.bb.CreateBucket(name)
	if err != nil {
		return nil, err
	}
	return newBucket(nb), nil
}

// CreateBucketIfNotExists returns the nested bucket called name, creating
// it if needed.
func (b *Bucket) CreateBucketIfNotExists(name []byte) (*Bucket, error) {
	nb, err := b.bb.CreateBucketIfNotExists(name)
	if err != nil {
		return nil, err
	}
	return newBucket(nb), nil
}

// DeleteBucket deletes a nested bucket and everything in it.
func (b *Bucket) DeleteBucket(name []byte) error {
	return b.bb.DeleteBucket(name)
}

// Put encodes val and stores it under key. When the stored bytes are
// already identical the write is skipped, so an unchanged value never
// dirties a page.
func (b *Bucket) Put(key []byte, val any) error {
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, msgpackHandle).Encode(val); err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if cur := b.bb.Get(key); cur != nil && bytes.Equal(cur, buf.Bytes()) {
		return nil
	}
	if err := b.bb.Put(key, buf.Bytes()); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get decodes the value stored under key into obj. It returns an error
// wrapping ErrNotFound when the key does not exist.
func (b *Bucket) Get(key []byte, obj any) error {
	data := b.bb.Get(key)
	if data == nil {
		return fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	if err := codec.NewDecoderBytes(data, msgpackHandle).Decode(obj); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (b *Bucket) Delete(key []byte) error {
	return b.bb.Delete(key)
}

// DeletePrefix removes every key that starts with prefix.
func (b *Bucket) DeletePrefix(prefix []byte) error {
	c := b.bb.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Seek(prefix) {
		if err := c.Delete(); err != nil {
			return fmt.Errorf("delete %q: %w", k, err)
		}
	}
	return nil
}

// Keys returns the keys of the values in the bucket in byte order. Nested
// buckets are skipped.
func (b *Bucket) Keys() [][]byte {
	var keys [][]byte
	c := b.bb.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if v == nil {
			continue
		}
		keys = append(keys, bytes.Clone(k))
	}
	return keys
}

// Iterate decodes every value whose key starts with prefix into a T and
// passes it to fn, in key order. A nil prefix visits every value. Nested
// buckets are skipped.
func Iterate[T any](b *Bucket, prefix []byte, fn func(key []byte, val T)) error {
	c := b.bb.Cursor()
	var k, v []byte
	if len(prefix) == 0 {
		k, v = c.First()
	} else {
		k, v = c.Seek(prefix)
	}
	for ; k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if v == nil {
			continue
		}
		var val T
		if err := codec.NewDecoderBytes(v, msgpackHandle).Decode(&val); err != nil {
			return fmt.Errorf("decode %q: %w", k, err)
		}
		fn(k, val)
	}
	return nil
}
