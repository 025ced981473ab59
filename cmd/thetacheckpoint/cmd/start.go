package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thetatoken/checkpoints/blockchain"
	"github.com/thetatoken/checkpoints/checkpoint"
	"github.com/thetatoken/checkpoints/common"
	"github.com/thetatoken/checkpoints/core"
	"github.com/thetatoken/checkpoints/metrics"
	"github.com/thetatoken/checkpoints/rpc"
	"github.com/thetatoken/checkpoints/store/database/backend"
	"github.com/thetatoken/checkpoints/store/kvstore"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the checkpoint service.",
	Run:   runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) {
	dbBackend := viper.GetString(common.CfgStorageBackend)
	dataPath := getDataPath()
	db, err := backend.NewDatabase(dbBackend, dataPath, viper.GetInt(common.CfgStorageCacheSize))
	if err != nil {
		log.WithFields(log.Fields{"err": err, "backend": dbBackend, "path": dataPath}).Fatal("Failed to open the db")
	}
	defer db.Close()

	checker := checkpoint.NewChecker(core.GetRegistry(), checkpoint.NewConfigFromViper())
	index := blockchain.NewIndex(kvstore.NewKVStore(db), checker, viper.GetInt(common.CfgStorageNodeCacheSize))

	fields := log.Fields{
		"checkpointsEnabled":  checker.Enabled(),
		"totalBlocksEstimate": checker.TotalBlocksEstimate(),
	}
	if last := checker.LastCheckpoint(index); last != nil {
		fields["lastCheckpoint"] = last.Height
	}
	if tip := index.Tip(); tip != nil {
		fields["tip"] = tip.Height
		fields["progress"] = checker.GuessVerificationProgress(tip)
	}
	log.WithFields(fields).Info("Checkpoint service starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rpcServer *rpc.CheckpointRPCServer
	if viper.GetBool(common.CfgRPCEnabled) {
		rpcServer = rpc.NewCheckpointRPCServer(checker, index)
		rpcServer.Start(ctx)
	}

	reporter := metrics.NewReporter(checker, index)
	if reporter != nil {
		reporter.Start(ctx)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.WithFields(log.Fields{"signal": sig}).Info("Shutting down")

	cancel()
	if rpcServer != nil {
		rpcServer.Wait()
	}
	if reporter != nil {
		reporter.Wait()
	}
}
