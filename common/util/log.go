package util

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/thetatoken/checkpoints/common"
)

const defaultLogLevel = "warn"

var (
	logLevels map[string]string
	loggers   = map[string]*log.Entry{}
	mu        sync.Mutex
)

func init() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	log.SetFormatter(customFormatter)
	customFormatter.FullTimestamp = true
}

// InitLog reads the log levels from config. Should be called after the config
// file has been loaded.
func InitLog() {
	mu.Lock()
	defer mu.Unlock()

	logLevels = parseLogLevelConfig(viper.GetString(common.CfgLogLevels))
	for module, entry := range loggers {
		entry.Logger.SetLevel(levelForModule(module))
	}
}

// parseLogLevelConfig parses a string like "*:error,rpc:debug" into a module
// to level map. The "*" entry is always present.
func parseLogLevelConfig(config string) map[string]string {
	ret := map[string]string{"*": defaultLogLevel}
	for _, item := range strings.Split(config, ",") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		if len(parts) != 2 {
			continue
		}
		module := strings.TrimSpace(parts[0])
		level := strings.TrimSpace(parts[1])
		if module == "" || level == "" {
			continue
		}
		ret[module] = level
	}
	return ret
}

func levelForModule(module string) log.Level {
	levelStr, ok := logLevels[module]
	if !ok {
		levelStr = logLevels["*"]
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// GetLoggerForModule returns the logger for the given module. Each module gets
// its own logrus.Logger so that levels can be set independently.
func GetLoggerForModule(module string) *log.Entry {
	mu.Lock()
	defer mu.Unlock()

	if logLevels == nil {
		logLevels = parseLogLevelConfig(viper.GetString(common.CfgLogLevels))
	}
	if entry, ok := loggers[module]; ok {
		entry.Logger.SetLevel(levelForModule(module))
		return entry
	}

	logger := log.New()
	logger.SetFormatter(log.StandardLogger().Formatter)
	logger.SetLevel(levelForModule(module))
	entry := logger.WithFields(log.Fields{"prefix": module})
	loggers[module] = entry
	return entry
}
