package kvstore

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/store"
	"github.com/thetatoken/checkpoints/store/database"
)

var _ store.BatchStore = (*KVStore)(nil)

// NewKVStore create a new instance of KVStore.
func NewKVStore(db database.Database) *KVStore {
	return &KVStore{db}
}

// KVStore a Database wrapped object. Values are RLP encoded.
type KVStore struct {
	db database.Database
}

// Put upserts key/value into DB
func (kv *KVStore) Put(key common.Bytes, value interface{}) error {
	encodedValue, err := rlp.EncodeToBytes(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value of %v", key)
	}
	return kv.db.Put(key, encodedValue)
}

// Delete deletes key entry from DB
func (kv *KVStore) Delete(key common.Bytes) error {
	return kv.db.Delete(key)
}

// Get looks up DB with key and returns result into value (passed by reference)
func (kv *KVStore) Get(key common.Bytes, value interface{}) error {
	encodedValue, err := kv.db.Get(key)
	if err != nil {
		return err
	}
	if err := rlp.DecodeBytes(encodedValue, value); err != nil {
		return errors.Wrapf(err, "failed to decode value of %v", key)
	}
	return nil
}

// NewBatch returns a batch backed by the database batch, written atomically
// by backends that support it.
func (kv *KVStore) NewBatch() store.Batch {
	return &kvBatch{batch: kv.db.NewBatch()}
}

type kvBatch struct {
	batch database.Batch
}

func (b *kvBatch) Put(key common.Bytes, value interface{}) error {
	encodedValue, err := rlp.EncodeToBytes(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value of %v", key)
	}
	return b.batch.Put(key, encodedValue)
}

func (b *kvBatch) Delete(key common.Bytes) error {
	return b.batch.Delete(key)
}

func (b *kvBatch) Write() error {
	if err := b.batch.Write(); err != nil {
		return err
	}
	b.batch.Reset()
	return nil
}
