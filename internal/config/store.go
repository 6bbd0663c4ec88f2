package config

import (
	"fmt"

	"github.com/grindlemire/go-tk/pkg/db"
)

var layoutsBucket = []byte("layouts")

// Save stores f under name, replacing any layout with that name.
func Save(d *db.DB, name string, f *File) error {
	if name == "" {
		return fmt.Errorf("layout name is empty")
	}
	return d.Update(func(tx *db.Tx) error {
		b, err := tx.CreateBucketIfNotExists(layoutsBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), f)
	})
}

// Fetch returns the layout stored under name. The error wraps
// db.ErrNotFound when there is none.
func Fetch(d *db.DB, name string) (*File, error) {
	var f File
	err := d.View(func(tx *db.Tx) error {
		b := tx.Bucket(layoutsBucket)
		if b == nil {
			return fmt.Errorf("layout %q: %w", name, db.ErrNotFound)
		}
		return b.Get([]byte(name), &f)
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns the names of the stored layouts in order.
func List(d *db.DB) ([]string, error) {
	var names []string
	err := d.View(func(tx *db.Tx) error {
		b := tx.Bucket(layoutsBucket)
		if b == nil {
			return nil
		}
		for _, k := range b.Keys() {
			names = append(names, string(k))
		}
		return nil
	})
	return names, err
}

// Remove deletes the layout stored under name.
func Remove(d *db.DB, name string) error {
	return d.Update(func(tx *db.Tx) error {
		b := tx.Bucket(layoutsBucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}
