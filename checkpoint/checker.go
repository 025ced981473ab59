package checkpoint

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/common/util"
	"github.com/thetatoken/checkpoints/core"
)

// ErrCheckpointMismatch is returned when a block at a checkpoint height does
// not carry the checkpoint hash.
var ErrCheckpointMismatch = errors.New("block hash does not match checkpoint")

// Option configures a Checker.
type Option func(*Checker)

// WithClock replaces the wall clock used by the progress estimate.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) {
		c.now = now
	}
}

// Checker validates blocks against a checkpoint set and estimates the
// verification progress of a chain. It only reads immutable state and is safe
// for concurrent use.
type Checker struct {
	data   *core.CheckpointData
	config Config
	now    func() time.Time
	logger *log.Entry
}

// NewChecker creates a Checker for the given checkpoint data. A zero
// SigcheckVerificationFactor selects DefaultSigcheckVerificationFactor.
func NewChecker(data *core.CheckpointData, config Config, opts ...Option) *Checker {
	c := &Checker{
		data:   data,
		config: config.withDefaults(),
		now:    time.Now,
		logger: util.GetLoggerForModule("checkpoint"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled returns whether checkpoints are enforced.
func (c *Checker) Enabled() bool {
	return c.config.Enabled
}

// Data returns the checkpoint data backing the checker.
func (c *Checker) Data() *core.CheckpointData {
	return c.data
}

// CheckBlock returns false only if height is a checkpoint height and hash is
// not the checkpoint hash.
func (c *Checker) CheckBlock(height uint64, hash common.Hash) bool {
	if !c.config.Enabled {
		return true
	}
	expected, ok := c.data.Find(height)
	if !ok {
		return true
	}
	return hash == expected
}

// Verify is CheckBlock returning an error that describes the mismatch.
func (c *Checker) Verify(height uint64, hash common.Hash) error {
	if c.CheckBlock(height, hash) {
		return nil
	}
	expected, _ := c.data.Find(height)
	c.logger.WithFields(log.Fields{
		"height":   height,
		"hash":     hash.Hex(),
		"expected": expected.Hex(),
	}).Warn("Block does not match checkpoint")
	return errors.Wrapf(ErrCheckpointMismatch, "block %v at height %d, checkpoint %v", hash.Hex(), height, expected.Hex())
}

// TotalBlocksEstimate returns the height of the last checkpoint, or 0 if
// checkpoints are disabled.
func (c *Checker) TotalBlocksEstimate() uint64 {
	if !c.config.Enabled {
		return 0
	}
	return c.data.Last().Height
}

// LastCheckpoint returns the highest checkpoint block present in the index,
// or nil if there is none or checkpoints are disabled.
func (c *Checker) LastCheckpoint(index core.BlockIndex) *core.BlockIndexNode {
	if !c.config.Enabled || index == nil {
		return nil
	}
	cps := c.data.Checkpoints
	for i := len(cps) - 1; i >= 0; i-- {
		if node, ok := index.GetBlockIndexNode(cps[i].BlockHash); ok && node != nil {
			return node
		}
	}
	return nil
}
