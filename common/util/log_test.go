package util

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevelConfig(t *testing.T) {
	assert := assert.New(t)

	ret := parseLogLevelConfig("*:error,rpc:debug,checkpoint:info")
	assert.Equal(3, len(ret))
	assert.Equal("error", ret["*"])
	assert.Equal("debug", ret["rpc"])
	assert.Equal("info", ret["checkpoint"])

	// Should set default level.
	ret2 := parseLogLevelConfig("rpc:debug, checkpoint:info,garbage")
	assert.Equal(3, len(ret2))
	assert.Equal("warn", ret2["*"])
	assert.Equal("debug", ret2["rpc"])
	assert.Equal("info", ret2["checkpoint"])
}

func TestGetLoggerForModule(t *testing.T) {
	assert := assert.New(t)

	logLevels = parseLogLevelConfig("*:error,rpc:debug,checkpoint:info")

	assert.Equal(log.DebugLevel, GetLoggerForModule("rpc").Logger.Level)
	assert.Equal(log.InfoLevel, GetLoggerForModule("checkpoint").Logger.Level)
	assert.Equal(log.ErrorLevel, GetLoggerForModule("blockchain").Logger.Level)
	assert.Equal("checkpoint", GetLoggerForModule("checkpoint").Data["prefix"])
}
