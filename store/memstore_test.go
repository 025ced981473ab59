package store

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetatoken/checkpoints/common"
)

func TestMemStore(t *testing.T) {
	assert := assert.New(t)

	memstore := NewMemKVStore()

	key, _ := hex.DecodeString("a0")
	assert.Nil(memstore.Put(key, "hello!"))

	var val string
	err := memstore.Get(key, &val)
	assert.Nil(err)
	assert.Equal("hello!", val)

	memstore.Delete(key)
	var val2 string
	err = memstore.Get(key, &val2)
	assert.Equal(ErrKeyNotFound, err)
}

func TestMemStoreBatch(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	memstore := NewMemKVStore()
	require.Nil(memstore.Put(common.Bytes("old"), uint64(1)))

	batch := NewBatch(memstore)
	require.Nil(batch.Put(common.Bytes("a"), uint64(7)))
	require.Nil(batch.Put(common.Bytes("b"), common.HexToHash("0xb2")))
	require.Nil(batch.Delete(common.Bytes("old")))

	// Nothing is visible before Write.
	var n uint64
	assert.Equal(ErrKeyNotFound, memstore.Get(common.Bytes("a"), &n))
	assert.Nil(memstore.Get(common.Bytes("old"), &n))

	require.Nil(batch.Write())
	assert.Nil(memstore.Get(common.Bytes("a"), &n))
	assert.Equal(uint64(7), n)
	var h common.Hash
	assert.Nil(memstore.Get(common.Bytes("b"), &h))
	assert.Equal(common.HexToHash("0xb2"), h)
	assert.Equal(ErrKeyNotFound, memstore.Get(common.Bytes("old"), &n))
}

// plainStore hides the batch support of the wrapped store.
type plainStore struct {
	Store
}

func TestSequentialBatch(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s := plainStore{NewMemKVStore()}
	batch := NewBatch(s)
	_, ok := batch.(*sequentialBatch)
	require.True(ok)

	require.Nil(batch.Put(common.Bytes("k"), "v"))
	var v string
	assert.Equal(ErrKeyNotFound, s.Get(common.Bytes("k"), &v))

	require.Nil(batch.Write())
	assert.Nil(s.Get(common.Bytes("k"), &v))
	assert.Equal("v", v)
}
