package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thetatoken/checkpoints/common"
)

func TestRegistry(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	data := GetRegistry()
	require.NotNil(data)
	require.Nil(data.Validate())
	assert.Equal(len(HardcodeBlockHashes), len(data.Checkpoints))
	assert.Equal(uint64(0), data.Checkpoints[0].Height)
	assert.Equal(uint64(196177), data.Last().Height)
	assert.Equal(uint64(23062), data.TransactionsAtLastCheckpoint)

	for height, hashStr := range HardcodeBlockHashes {
		hash, ok := data.Find(height)
		assert.True(ok)
		assert.Equal(common.HexToHash(hashStr), hash)
	}

	_, ok := data.Find(9650)
	assert.False(ok)

	// Same instance every time.
	assert.True(data == GetRegistry())
}

func TestNewCheckpointDataSortsAndCopies(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ha := common.HexToHash("0xaa")
	hb := common.HexToHash("0xbb")
	input := []Checkpoint{{Height: 100, BlockHash: hb}, {Height: 0, BlockHash: ha}}

	data, err := NewCheckpointData(input, 1000, 50, 10)
	require.Nil(err)
	assert.Equal(uint64(0), data.Checkpoints[0].Height)
	assert.Equal(uint64(100), data.Last().Height)

	input[0].Height = 7
	assert.Equal(uint64(100), data.Last().Height)
}

func TestCheckpointDataValidate(t *testing.T) {
	assert := assert.New(t)

	ha := common.HexToHash("0xaa")
	hb := common.HexToHash("0xbb")

	_, err := NewCheckpointData(nil, 0, 0, 1)
	assert.Equal(ErrEmptyCheckpoints, errors.Cause(err))

	_, err = NewCheckpointData([]Checkpoint{{Height: 5, BlockHash: ha}}, 0, 0, 1)
	assert.Equal(ErrMissingGenesis, errors.Cause(err))

	_, err = NewCheckpointData([]Checkpoint{{Height: 0, BlockHash: ha}, {Height: 5, BlockHash: ha}, {Height: 5, BlockHash: hb}}, 0, 0, 1)
	assert.Equal(ErrUnorderedCheckpoints, errors.Cause(err))

	_, err = NewCheckpointData([]Checkpoint{{Height: 0, BlockHash: common.Hash{}}}, 0, 0, 1)
	assert.Equal(ErrEmptyCheckpointHash, errors.Cause(err))

	_, err = NewCheckpointData([]Checkpoint{{Height: 0, BlockHash: ha}}, 0, 0, 0)
	assert.Equal(ErrInvalidTransactionRate, errors.Cause(err))

	unsorted := &CheckpointData{
		Checkpoints:        []Checkpoint{{Height: 0, BlockHash: ha}, {Height: 10, BlockHash: hb}, {Height: 3, BlockHash: hb}},
		TransactionsPerDay: 1,
	}
	assert.Equal(ErrUnorderedCheckpoints, errors.Cause(unsorted.Validate()))
}

func TestBlockIndexMap(t *testing.T) {
	assert := assert.New(t)

	m := BlockIndexMap{}
	node := &BlockIndexNode{Height: 3, Hash: common.HexToHash("0x03")}
	m.Add(node)

	got, ok := m.GetBlockIndexNode(node.Hash)
	assert.True(ok)
	assert.True(node == got)

	_, ok = m.GetBlockIndexNode(common.HexToHash("0x04"))
	assert.False(ok)
	assert.Equal("nil", (*BlockIndexNode)(nil).String())
}
