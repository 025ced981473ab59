package checkpoint

import (
	"github.com/spf13/viper"

	"github.com/thetatoken/checkpoints/common"
)

// DefaultSigcheckVerificationFactor is how many times slower transactions after
// the last checkpoint are expected to verify. It is a compromise: reindexing
// from a fast disk with a slow CPU can be up to 20 times slower, while
// downloading from a slow network with a fast multicore CPU is barely slower.
const DefaultSigcheckVerificationFactor = 5.0

// Config holds the settings of a Checker.
type Config struct {
	// Enabled decides whether the checkpoints are enforced at all.
	Enabled bool
	// SigcheckVerificationFactor weighs fully verified transactions against
	// checkpoint assisted ones in the progress estimate.
	SigcheckVerificationFactor float64
}

// DefaultConfig returns the default checker configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:                    true,
		SigcheckVerificationFactor: DefaultSigcheckVerificationFactor,
	}
}

// NewConfigFromViper reads the checker configuration from viper. A non
// positive factor falls back to the default.
func NewConfigFromViper() Config {
	config := Config{
		Enabled:                    viper.GetBool(common.CfgCheckpointsEnabled),
		SigcheckVerificationFactor: viper.GetFloat64(common.CfgCheckpointsSigcheckVerificationFactor),
	}
	return config.withDefaults()
}

// withDefaults replaces an unset or non positive factor with the default.
func (c Config) withDefaults() Config {
	if !(c.SigcheckVerificationFactor > 0) {
		c.SigcheckVerificationFactor = DefaultSigcheckVerificationFactor
	}
	return c
}
