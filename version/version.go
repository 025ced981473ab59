package version

// Set at build time with -ldflags "-X github.com/thetatoken/checkpoints/version.GitHash=..."
var (
	Version   = "0.1.0"
	GitHash   = "unknown"
	Timestamp = "unknown"
)
