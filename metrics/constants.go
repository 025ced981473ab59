package metrics

const (
	MHeartBeat = "heartbeat"

	MCheckpointVerificationProgress = "checkpoint.verification_progress"
	MCheckpointTotalBlocksEstimate  = "checkpoint.total_blocks_estimate"
	MCheckpointLastHeight           = "checkpoint.last_checkpoint_height"
	MChainTipHeight                 = "chain.tip_height"
)
