package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thetatoken/checkpoints/blockchain"
	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/core"
	"github.com/thetatoken/checkpoints/store/database/backend"
	"github.com/thetatoken/checkpoints/store/kvstore"
)

var (
	addChainTxFlag   uint64
	addTimestampFlag uint64
)

// addCmd adds a block to the local block index. Blocks at checkpoint heights
// must carry the checkpoint hash.
// Example:
//
//	thetacheckpoint add 9649 0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c --tx=1200 --timestamp=1471000000
var addCmd = &cobra.Command{
	Use:          "add <height> <hash>",
	Short:        "Add a block to the local block index.",
	Example:      `thetacheckpoint add 9649 0x76712bc630c81d539ca51d410784af8b0ad9034867a8a4db12e8f0f0c0f39c1c --tx=1200 --timestamp=1471000000`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runAdd,
}

func init() {
	addCmd.Flags().Uint64Var(&addChainTxFlag, "tx", 0, "number of transactions from genesis up to and including the block")
	addCmd.Flags().Uint64Var(&addTimestampFlag, "timestamp", 0, "UNIX timestamp of the block")
	RootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	height, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("Invalid height %v: %v", args[0], err)
	}
	if !common.IsHexHash(args[1]) {
		return fmt.Errorf("Invalid block hash %v", args[1])
	}

	db, err := backend.NewDatabase(viper.GetString(common.CfgStorageBackend), getDataPath(), viper.GetInt(common.CfgStorageCacheSize))
	if err != nil {
		return errors.Wrap(err, "failed to open the db")
	}
	defer db.Close()

	checker := checkpoint.NewChecker(core.GetRegistry(), checkpoint.NewConfigFromViper())
	index := blockchain.NewIndex(kvstore.NewKVStore(db), checker, viper.GetInt(common.CfgStorageNodeCacheSize))

	node := &core.BlockIndexNode{
		Height:    height,
		Timestamp: addTimestampFlag,
		ChainTx:   addChainTxFlag,
		Hash:      common.HexToHash(args[1]),
	}
	if err := index.AddNode(node); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added %v\n", node)
	if tip := index.Tip(); tip != nil {
		fmt.Fprintf(out, "tip: %d, progress: %.4f\n", tip.Height, checker.GuessVerificationProgress(tip))
	}
	return nil
}
