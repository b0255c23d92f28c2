package debug

import (
	"fmt"
	"time"

	"github.com/address-parsing/internal/logger"
)

// DebugHeader prints debug header if debugging is enabled
func DebugHeader(enabled bool) {
	if enabled {
		logger.L().Info("=== DEBUG START ===")
	}
}

// DebugFooter prints debug footer if debugging is enabled
func DebugFooter(enabled bool) {
	if enabled {
		logger.L().Info("=== DEBUG END ===")
	}
}

// DebugOutput prints debug output if debugging is enabled
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if enabled {
		logger.L().Info(fmt.Sprintf(format, args...), "debug", true)
	}
}

// DebugTiming measures and logs execution time if debugging is enabled
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		DebugOutput(enabled, "Completed: %s (took %v)", operation, time.Since(start))
	}
}

// DebugAttrs logs msg with structured key/value pairs if debugging is enabled
func DebugAttrs(enabled bool, msg string, args ...any) {
	if enabled {
		logger.L().Info(msg, append([]any{"debug", true}, args...)...)
	}
}
