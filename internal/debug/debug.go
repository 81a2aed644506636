package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SVGC_DEBUG"

var (
	logger = zap.NewNop().Sugar()
	sink   *os.File
	mu     sync.Mutex
)

// InitFromEnv enables logging when SVGC_DEBUG is set. It is a no-op otherwise.
func InitFromEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return Init(path)
}

// Init starts appending debug messages to the file at path.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel)

	closeLocked()
	sink = f
	logger = zap.New(core).Sugar()
	return nil
}

// Close flushes and closes the debug log file. Logging becomes a no-op.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if sink == nil {
		return nil
	}
	_ = logger.Sync()
	err := sink.Close()
	sink = nil
	logger = zap.NewNop().Sugar()
	return err
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Debugf(format, args...)
}

// With writes a message with structured key/value context.
func With(msg string, keysAndValues ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Debugw(msg, keysAndValues...)
}

// Enabled reports whether a log file is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return sink != nil
}
