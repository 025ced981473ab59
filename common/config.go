package common

import (
	"github.com/spf13/viper"
)

const (
	// CfgConfigPath defines custom config path
	CfgConfigPath = "config.path"
	// CfgDataPath defines custom DB path
	CfgDataPath = "data.path"

	// CfgCheckpointsEnabled decides whether blocks are checked against the hardcoded checkpoints.
	CfgCheckpointsEnabled = "checkpoints.enabled"
	// CfgCheckpointsSigcheckVerificationFactor defines how many times slower full verification
	// of a transaction is estimated to be compared to checkpoint assisted replay.
	CfgCheckpointsSigcheckVerificationFactor = "checkpoints.sigcheckVerificationFactor"

	// CfgStorageBackend selects the database backend of the block index: leveldb, badger or memory.
	CfgStorageBackend = "storage.backend"
	// CfgStorageCacheSize sets the leveldb cache size in MB.
	CfgStorageCacheSize = "storage.cacheSize"
	// CfgStorageNodeCacheSize sets the number of block index nodes kept in memory.
	CfgStorageNodeCacheSize = "storage.nodeCacheSize"

	// CfgRPCEnabled sets whether to run RPC service.
	CfgRPCEnabled = "rpc.enabled"
	// CfgRPCAddress sets the binding address of RPC service.
	CfgRPCAddress = "rpc.address"
	// CfgRPCPort sets the port of RPC service.
	CfgRPCPort = "rpc.port"
	// CfgRPCMaxConnections limits concurrent connections accepted by RPC server.
	CfgRPCMaxConnections = "rpc.maxConnections"
	// CfgRPCTimeoutSecs set a timeout for RPC.
	CfgRPCTimeoutSecs = "rpc.timeoutSecs"

	// CfgMetricsServer defines the statsd server the metrics are sent to.
	CfgMetricsServer = "metrics.server"
	// CfgMetricsInterval defines the reporting interval in seconds.
	CfgMetricsInterval = "metrics.interval"

	// CfgLogLevels sets the log level.
	CfgLogLevels = "log.levels"
)

// InitialConfig is the default configuartion produced by init command.
const InitialConfig = `# Theta checkpoint service configuration
checkpoints:
  enabled: true
storage:
  backend: leveldb
rpc:
  enabled: true
  port: 16900
log:
  levels: "*:info"
`

func init() {
	viper.SetDefault(CfgCheckpointsEnabled, true)
	viper.SetDefault(CfgCheckpointsSigcheckVerificationFactor, 5.0)

	viper.SetDefault(CfgStorageBackend, "leveldb")
	viper.SetDefault(CfgStorageCacheSize, 64)
	viper.SetDefault(CfgStorageNodeCacheSize, 4096)

	viper.SetDefault(CfgRPCEnabled, false)
	viper.SetDefault(CfgRPCAddress, "0.0.0.0")
	viper.SetDefault(CfgRPCPort, "16900")
	viper.SetDefault(CfgRPCMaxConnections, 200)
	viper.SetDefault(CfgRPCTimeoutSecs, 60)

	viper.SetDefault(CfgMetricsServer, "")
	viper.SetDefault(CfgMetricsInterval, 10)

	viper.SetDefault(CfgLogLevels, "*:info")
}

// WriteInitialConfig writes initial config file to file system.
func WriteInitialConfig(filePath string) error {
	return WriteFileAtomic(filePath, []byte(InitialConfig), 0600)
}
