package core

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/thetatoken/checkpoints/common"
)

// GenesisBlockHeight is the height of the first block of the chain.
const GenesisBlockHeight uint64 = 0

var (
	ErrEmptyCheckpoints       = errors.New("checkpoint set is empty")
	ErrMissingGenesis         = errors.New("checkpoint set does not start at genesis")
	ErrUnorderedCheckpoints   = errors.New("checkpoint heights are not strictly increasing")
	ErrEmptyCheckpointHash    = errors.New("checkpoint hash is empty")
	ErrInvalidTransactionRate = errors.New("estimated transactions per day must be positive")
)

// Checkpoint is a block known in advance to be part of the canonical chain.
type Checkpoint struct {
	Height    uint64
	BlockHash common.Hash
}

// CheckpointData is the immutable checkpoint set of a network together with
// what is known about the chain at its last entry.
type CheckpointData struct {
	// Checkpoints sorted by ascending height.
	Checkpoints []Checkpoint

	// UNIX timestamp of the last checkpoint block.
	LastCheckpointTimestamp int64
	// Total number of transactions between genesis and the last checkpoint.
	TransactionsAtLastCheckpoint uint64
	// Estimated number of transactions per day after the last checkpoint.
	TransactionsPerDay float64
}

// NewCheckpointData builds a validated CheckpointData. The entries are copied
// and sorted by height; the caller's slice is not retained.
func NewCheckpointData(checkpoints []Checkpoint, lastTimestamp int64, lastTxs uint64, txsPerDay float64) (*CheckpointData, error) {
	cps := make([]Checkpoint, len(checkpoints))
	copy(cps, checkpoints)
	sort.SliceStable(cps, func(i, j int) bool { return cps[i].Height < cps[j].Height })

	data := &CheckpointData{
		Checkpoints:                  cps,
		LastCheckpointTimestamp:      lastTimestamp,
		TransactionsAtLastCheckpoint: lastTxs,
		TransactionsPerDay:           txsPerDay,
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// Validate checks that the checkpoint set is safe to trust: it is non-empty,
// starts at genesis and its heights are strictly increasing.
func (cd *CheckpointData) Validate() error {
	if len(cd.Checkpoints) == 0 {
		return ErrEmptyCheckpoints
	}
	if cd.Checkpoints[0].Height != GenesisBlockHeight {
		return ErrMissingGenesis
	}
	for i, cp := range cd.Checkpoints {
		if cp.BlockHash == (common.Hash{}) {
			return errors.Wrapf(ErrEmptyCheckpointHash, "height %d", cp.Height)
		}
		if i > 0 && cp.Height <= cd.Checkpoints[i-1].Height {
			return errors.Wrapf(ErrUnorderedCheckpoints, "height %d follows %d", cp.Height, cd.Checkpoints[i-1].Height)
		}
	}
	if !(cd.TransactionsPerDay > 0) {
		return ErrInvalidTransactionRate
	}
	return nil
}

// Find returns the checkpoint hash registered for the given height.
func (cd *CheckpointData) Find(height uint64) (common.Hash, bool) {
	cps := cd.Checkpoints
	i := sort.Search(len(cps), func(i int) bool { return cps[i].Height >= height })
	if i < len(cps) && cps[i].Height == height {
		return cps[i].BlockHash, true
	}
	return common.Hash{}, false
}

// Last returns the checkpoint with the highest height.
func (cd *CheckpointData) Last() Checkpoint {
	return cd.Checkpoints[len(cd.Checkpoints)-1]
}
