package store

import (
	"encoding/hex"
	"sync"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/thetatoken/checkpoints/common"
)

var _ BatchStore = MemKVStore{}

// MemKVStore is a in-memory implementation of Store to be used in testing.
type MemKVStore struct {
	*sync.RWMutex
	data map[string][]byte
}

// NewMemKVStore create a new instance of MemKVStore.
func NewMemKVStore() MemKVStore {
	return MemKVStore{
		RWMutex: &sync.RWMutex{},
		data:    make(map[string][]byte),
	}
}

func getKey(key common.Bytes) string {
	return hex.EncodeToString(key)
}

// Put implements Store.Put().
func (mkv MemKVStore) Put(key common.Bytes, value interface{}) error {
	encodedValue, err := rlp.EncodeToBytes(value)
	if err != nil {
		return err
	}

	mkv.Lock()
	defer mkv.Unlock()
	mkv.data[getKey(key)] = encodedValue
	return nil
}

// Delete implements Store.Delete().
func (mkv MemKVStore) Delete(key common.Bytes) error {
	mkv.Lock()
	defer mkv.Unlock()

	delete(mkv.data, getKey(key))
	return nil
}

// Get implements Store.Get().
func (mkv MemKVStore) Get(key common.Bytes, value interface{}) error {
	mkv.RLock()
	encodedValue, ok := mkv.data[getKey(key)]
	mkv.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	return rlp.DecodeBytes(encodedValue, value)
}

// NewBatch implements BatchStore.NewBatch(). Values are encoded on Put, so an
// unencodable value fails before anything is written.
func (mkv MemKVStore) NewBatch() Batch {
	return &memKVBatch{store: mkv, writes: map[string][]byte{}}
}

type memKVBatch struct {
	store  MemKVStore
	writes map[string][]byte // nil value marks a delete
}

func (b *memKVBatch) Put(key common.Bytes, value interface{}) error {
	encodedValue, err := rlp.EncodeToBytes(value)
	if err != nil {
		return err
	}
	b.writes[getKey(key)] = encodedValue
	return nil
}

func (b *memKVBatch) Delete(key common.Bytes) error {
	b.writes[getKey(key)] = nil
	return nil
}

func (b *memKVBatch) Write() error {
	b.store.Lock()
	defer b.store.Unlock()

	for k, v := range b.writes {
		if v == nil {
			delete(b.store.data, k)
			continue
		}
		b.store.data[k] = v
	}
	b.writes = map[string][]byte{}
	return nil
}
