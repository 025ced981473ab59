package rpc

import (
	"time"

	"github.com/pkg/errors"

	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/core"
)

// maxTipAge is how old the tip may be before the node is considered syncing.
const maxTipAge = 5 * time.Minute

// ------------------------------ GetStatus -----------------------------------

type GetStatusArgs struct{}

type GetStatusResult struct {
	CheckpointsEnabled   bool              `json:"checkpoints_enabled"`
	TotalBlocksEstimate  common.JSONUint64 `json:"total_blocks_estimate"`
	LastCheckpointHeight common.JSONUint64 `json:"last_checkpoint_height"`
	LastCheckpointHash   *common.Hash      `json:"last_checkpoint_hash"`
	TipHeight            common.JSONUint64 `json:"tip_height"`
	TipHash              *common.Hash      `json:"tip_hash"`
	VerificationProgress float64           `json:"verification_progress"`
	CurrentTime          common.JSONUint64 `json:"current_time"`
	Syncing              bool              `json:"syncing"`
}

func (t *CheckpointRPCService) GetStatus(args *GetStatusArgs, result *GetStatusResult) (err error) {
	now := t.now()

	result.CheckpointsEnabled = t.checker.Enabled()
	result.TotalBlocksEstimate = common.JSONUint64(t.checker.TotalBlocksEstimate())
	result.CurrentTime = common.JSONUint64(now.Unix())

	if last := t.checker.LastCheckpoint(t.index); last != nil {
		hash := last.Hash
		result.LastCheckpointHeight = common.JSONUint64(last.Height)
		result.LastCheckpointHash = &hash
	}

	tip := t.index.Tip()
	result.Syncing = isSyncing(tip, now)
	if tip != nil {
		hash := tip.Hash
		result.TipHeight = common.JSONUint64(tip.Height)
		result.TipHash = &hash
		result.VerificationProgress = t.checker.GuessVerificationProgress(tip)
	}
	return nil
}

func isSyncing(tip *core.BlockIndexNode, now time.Time) bool {
	if tip == nil {
		return true
	}
	threshold := now.Add(-maxTipAge).Unix()
	return int64(tip.Timestamp) < threshold
}

// ------------------------------ CheckBlock -----------------------------------

type CheckBlockArgs struct {
	Height common.JSONUint64 `json:"height"`
	Hash   common.Hash       `json:"hash"`
}

type CheckBlockResult struct {
	Valid bool `json:"valid"`
}

func (t *CheckpointRPCService) CheckBlock(args *CheckBlockArgs, result *CheckBlockResult) (err error) {
	result.Valid = t.checker.CheckBlock(uint64(args.Height), args.Hash)
	return nil
}

// ------------------------------ GetVerificationProgress -----------------------------------

type GetVerificationProgressArgs struct {
	Hash common.Hash `json:"hash"`
}

type GetVerificationProgressResult struct {
	Height     common.JSONUint64 `json:"height"`
	WorkBefore float64           `json:"work_before"`
	WorkAfter  float64           `json:"work_after"`
	Progress   float64           `json:"progress"`
}

func (t *CheckpointRPCService) GetVerificationProgress(args *GetVerificationProgressArgs, result *GetVerificationProgressResult) (err error) {
	node, ok := t.index.GetBlockIndexNode(args.Hash)
	if !ok {
		return errors.Errorf("Block %v is not in the block index", args.Hash.Hex())
	}
	p := t.checker.EstimateProgress(node)
	result.Height = common.JSONUint64(node.Height)
	result.WorkBefore = p.WorkBefore
	result.WorkAfter = p.WorkAfter
	result.Progress = p.Fraction
	return nil
}
