package utils

import "github.com/spf13/viper"

const (
	// CfgRemoteRPCEndpoint is the JSON-RPC endpoint of the checkpoint service.
	CfgRemoteRPCEndpoint = "remoteRPCEndpoint"
	// CfgRemoteRPCTimeoutSecs bounds each call to the checkpoint service.
	CfgRemoteRPCTimeoutSecs = "remoteRPCTimeoutSecs"
)

func init() {
	viper.SetDefault(CfgRemoteRPCEndpoint, "http://localhost:16900/rpc")
	viper.SetDefault(CfgRemoteRPCTimeoutSecs, 10)
}
