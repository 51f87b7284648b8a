package config

import (
	"os"
	"strconv"
)

// MaxListSize returns the node limit applied to lists built by the CLI.
// Set with the PDL_MAX_LIST_SIZE environment variable. Zero (the default, also used
// for malformed values) means unlimited.
func MaxListSize() int {
	n, err := strconv.Atoi(os.Getenv("PDL_MAX_LIST_SIZE"))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// ForceLogJSON reports whether JSON logging is forced.
// Enabled when the PDL_LOG_JSON environment variable is set to "1".
func ForceLogJSON() bool {
	return os.Getenv("PDL_LOG_JSON") == "1"
}
