package debug

import (
	"os"
	"strconv"
)

// Config holds debug mode configuration
type Config struct {
	// Enabled is the global debug on/off switch
	Enabled bool

	// SingleThreaded forces the aggregator to walk queries one at a time
	SingleThreaded bool

	// LocalDebugServer enables localhost debug HTTP server
	LocalDebugServer bool

	// DebugServerAddr is the address for the debug HTTP server
	DebugServerAddr string
}

// DefaultServerAddr is where the debug server listens when PRDASH_DEBUG_ADDR is unset.
const DefaultServerAddr = "127.0.0.1:6060"

// Active is the global debug configuration
var Active Config

// Init initializes debug configuration from environment variables
func Init() {
	Active = Config{
		Enabled:          parseBool(os.Getenv("PRDASH_DEBUG"), false),
		SingleThreaded:   parseBool(os.Getenv("PRDASH_DEBUG_SINGLE_THREAD"), false),
		LocalDebugServer: parseBool(os.Getenv("PRDASH_DEBUG_SERVER"), false),
		DebugServerAddr:  getEnvOrDefault("PRDASH_DEBUG_ADDR", DefaultServerAddr),
	}

	// Any debug feature implies global debug
	if Active.SingleThreaded || Active.LocalDebugServer {
		Active.Enabled = true
	}
}

func parseBool(s string, defaultVal bool) bool {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	return Active.Enabled
}

// Mode names the running mode for snapshots.
func Mode() string {
	if Active.Enabled {
		return "debug"
	}
	return "production"
}
