package core

import (
	"fmt"
	"sort"

	"github.com/thetatoken/checkpoints/common"
)

// What makes a good checkpoint block?
//  - Is surrounded by blocks with reasonable timestamps (no blocks before with
//    a timestamp after, none after with timestamp before).
//  - Contains no strange transactions.

// HardcodeBlockHashes contains hardcode block hashes for certain heights
var HardcodeBlockHashes = map[uint64]string{
	GenesisBlockHeight: "0x563ac70cc2642286ad8463559011621fc4debe7ab2525900f74d079fc73cb5f2",
	9649:               "0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c",
	20000:              "0x2bbee592fa2f3738cad266d038f725e0d2ba7edf1b80380fa39608f523a31404",
	30000:              "0x1c3fee4059cf4147b4e234937f8292304f92eca8d7f34338039e97937d1211f3",
	40000:              "0x65585e9d874db1b9c4d02e5a3ffaa6275efb6c14c731f05799b0485ef1f47919",
	50000:              "0xe25b98e32bfa15a9729e8e988021df1fea31f28e137fcc5b9ff610668aab0a9a",
	60000:              "0xd5ec242db805d2cefb7dcca8aa2888cc20b802f4819c9a4d488a66b0032a925b",
	70000:              "0xc34628d3939502c31b9173a452e7c2af31fe2c72d193e9bac26ce7356d0af2d7",
	80000:              "0xb6dc848ecd9c68a86536b09e068919a87cad69bf29b2378531486941caade839",
	90000:              "0x0ca9b832934f5afeff66bf22f48bd7c09cba227b25d33347df704c43788f01db",
	100000:             "0x4aab6fc1a528d587a8357f62ce9ec8a84e7990b486389d352c0eb0c1652e6ded",
	150000:             "0xb1391e2d3f10d596d715d49add86425ac5d4ec82dc3aff88bb230f0c8d5ef76f",
	196177:             "0x71d89b625667c8f4f6b6c6a70ca68fa8143dda941f896273794e821923b0dd57",
}

const (
	// UNIX timestamp of the last hardcoded checkpoint block.
	hardcodeLastCheckpointTimestamp int64 = 1489231307
	// Total number of transactions between genesis and the last hardcoded checkpoint.
	hardcodeTransactionsAtLastCheckpoint uint64 = 23062
	// Estimated number of transactions per day after the last hardcoded checkpoint.
	hardcodeTransactionsPerDay float64 = 576.0
)

var registry = mustBuildRegistry()

// GetRegistry returns the process wide checkpoint data. It is built once at
// startup and must not be modified.
func GetRegistry() *CheckpointData {
	return registry
}

func mustBuildRegistry() *CheckpointData {
	heights := make([]uint64, 0, len(HardcodeBlockHashes))
	for height := range HardcodeBlockHashes {
		heights = append(heights, height)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })

	cps := make([]Checkpoint, 0, len(heights))
	for _, height := range heights {
		hashStr := HardcodeBlockHashes[height]
		if !common.IsHexHash(hashStr) {
			panic(fmt.Sprintf("Malformed hardcoded block hash at height %d: %s", height, hashStr))
		}
		cps = append(cps, Checkpoint{Height: height, BlockHash: common.HexToHash(hashStr)})
	}

	data, err := NewCheckpointData(cps, hardcodeLastCheckpointTimestamp,
		hardcodeTransactionsAtLastCheckpoint, hardcodeTransactionsPerDay)
	if err != nil {
		panic(fmt.Sprintf("Invalid hardcoded checkpoints: %v", err))
	}
	return data
}
