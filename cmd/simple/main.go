package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/logbridge"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[logbridge]
  level = 4 # Debug
  show_logs_instant = false # Buffer until FlushLogs
  sanitization = "json"
  error_target = "stderr"
`

func main() {
	fmt.Fprintln(os.Stderr, "--- Simple Bridge Example ---")

	// --- Setup Config ---
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// LoadConfig falls back to defaults for a missing file
	} else {
		fmt.Fprintf(os.Stderr, "Created dummy config file: %s\n", configFile)
		defer os.Remove(configFile)
	}

	// --- Initialize Bridge ---
	// Envelopes are posted to stdout as JSON lines, diagnostics go to stderr
	if err := logbridge.LoadConfig(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize bridge: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Bridge installed.")

	// A second installation is refused
	if err := logbridge.InitLogger(3, true); err != nil {
		fmt.Fprintf(os.Stderr, "Expected error on re-init: %v\n", err)
	}

	// --- Logging ---
	logbridge.Debug("worker booting", "pid", os.Getpid())
	logbridge.Info("config loaded", map[string]any{"file": configFile})
	logbridge.Warn("message with a\nnewline stays on one line")
	logbridge.Trace("filtered at debug threshold")

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logbridge.Info("task done", "id", id, "took", time.Duration(id+1)*time.Millisecond)
		}(i)
	}
	wg.Wait()

	// --- Flush ---
	// One JSON array line on stdout holds every buffered envelope
	if err := logbridge.FlushLogs(); err != nil {
		fmt.Fprintf(os.Stderr, "Flush failed: %v\n", err)
	}

	// An empty flush posts an empty batch
	if err := logbridge.FlushLogs(); err != nil {
		fmt.Fprintf(os.Stderr, "Flush failed: %v\n", err)
	}

	stats := logbridge.Default().Stats()
	fmt.Fprintf(os.Stderr, "Processed %d, filtered %d, flushes %d\n", stats.Processed, stats.Filtered, stats.Flushes)

	// --- Shutdown ---
	if err := logbridge.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
	}
	fmt.Fprintln(os.Stderr, "--- Example Finished ---")
}
