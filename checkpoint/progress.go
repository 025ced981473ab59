package checkpoint

import (
	"github.com/thetatoken/checkpoints/core"
)

const secondsPerDay = 86400.0

// Progress is the breakdown of a verification progress estimate. Work is 1.0
// per transaction up to the last checkpoint and SigcheckVerificationFactor per
// transaction after it.
type Progress struct {
	WorkBefore float64 // Work done up to the block
	WorkAfter  float64 // Estimated work left after the block
	Fraction   float64
}

// GuessVerificationProgress estimates how far the verification process is at
// the given block, as a fraction in [0, 1].
func (c *Checker) GuessVerificationProgress(node *core.BlockIndexNode) float64 {
	return c.EstimateProgress(node).Fraction
}

// EstimateProgress returns the work estimate for the given block.
func (c *Checker) EstimateProgress(node *core.BlockIndexNode) Progress {
	if node == nil {
		return Progress{}
	}

	now := float64(c.now().Unix())
	factor := c.config.SigcheckVerificationFactor
	txLast := float64(c.data.TransactionsAtLastCheckpoint)
	chainTx := float64(node.ChainTx)

	var p Progress
	if node.ChainTx <= c.data.TransactionsAtLastCheckpoint {
		cheapBefore := chainTx
		cheapAfter := txLast - chainTx
		expensiveAfter := elapsedDays(now, float64(c.data.LastCheckpointTimestamp)) * c.data.TransactionsPerDay
		p.WorkBefore = cheapBefore
		p.WorkAfter = cheapAfter + expensiveAfter*factor
	} else {
		cheapBefore := txLast
		expensiveBefore := chainTx - txLast
		expensiveAfter := elapsedDays(now, float64(node.Timestamp)) * c.data.TransactionsPerDay
		p.WorkBefore = cheapBefore + expensiveBefore*factor
		p.WorkAfter = expensiveAfter * factor
	}

	total := p.WorkBefore + p.WorkAfter
	if !(total > 0) {
		return p
	}
	p.Fraction = clamp(p.WorkBefore / total)
	return p
}

// elapsedDays returns the days from since to now, never negative so that a
// block timestamp ahead of the local clock cannot push the estimate past 1.
// Timestamps are compared as float64 so that any uint64 block time is ordered
// correctly.
func elapsedDays(now, since float64) float64 {
	if now <= since {
		return 0
	}
	return (now - since) / secondsPerDay
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
