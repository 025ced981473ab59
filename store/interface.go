package store

import "github.com/thetatoken/checkpoints/common"

// Store is the interface for key/value storages. Values are RLP encoded.
type Store interface {
	Put(key common.Bytes, value interface{}) error
	Delete(key common.Bytes) error
	Get(key common.Bytes, value interface{}) error
}

// Batch collects writes to a Store and applies them together on Write.
type Batch interface {
	Put(key common.Bytes, value interface{}) error
	Delete(key common.Bytes) error
	Write() error
}

// BatchStore is a Store that can apply a set of writes atomically.
type BatchStore interface {
	Store
	NewBatch() Batch
}

// NewBatch returns a batch for s. Stores without batch support get a batch
// that applies the writes one by one on Write.
func NewBatch(s Store) Batch {
	if bs, ok := s.(BatchStore); ok {
		return bs.NewBatch()
	}
	return &sequentialBatch{store: s}
}

type pendingWrite struct {
	key   common.Bytes
	value interface{}
	del   bool
}

type sequentialBatch struct {
	store  Store
	writes []pendingWrite
}

func (b *sequentialBatch) Put(key common.Bytes, value interface{}) error {
	b.writes = append(b.writes, pendingWrite{key: key, value: value})
	return nil
}

func (b *sequentialBatch) Delete(key common.Bytes) error {
	b.writes = append(b.writes, pendingWrite{key: key, del: true})
	return nil
}

func (b *sequentialBatch) Write() error {
	for _, w := range b.writes {
		var err error
		if w.del {
			err = b.store.Delete(w.key)
		} else {
			err = b.store.Put(w.key, w.value)
		}
		if err != nil {
			return err
		}
	}
	b.writes = nil
	return nil
}
