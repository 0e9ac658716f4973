package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/logbridge"
	"github.com/lixenwraith/logbridge/compat"
	"github.com/lixenwraith/logbridge/schedule"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 2000
	numWorkers     = 64
)

var levels = []logbridge.Severity{
	logbridge.LevelDebug,
	logbridge.LevelInfo,
	logbridge.LevelWarn,
	logbridge.LevelError,
}

// countingHost verifies every burst record arrives exactly once
type countingHost struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	batches  int
	received int
	dupes    int
}

func (h *countingHost) PostMessage(msg any) error {
	batch, ok := msg.([]logbridge.Envelope)
	if !ok {
		return fmt.Errorf("unexpected message type %T", msg)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.batches++
	for _, env := range batch {
		h.received++
		// Records end with their unique burst/seq tag
		idx := strings.LastIndex(env.Message, " id=")
		if idx < 0 {
			continue
		}
		key := env.Message[idx:]
		if _, dup := h.seen[key]; dup {
			h.dupes++
		}
		h.seen[key] = struct{}{}
	}
	return nil
}

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

// logBurst simulates a burst of logging activity
func logBurst(logger *logbridge.Logger, burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msg := generateRandomMessage(rand.Intn(maxMessageSize) + 10)
		logger.Log(level, msg, fmt.Sprintf("id=%d-%d", burstID, i))
	}
}

// worker goroutine function
func worker(logger *logbridge.Logger, burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		logBurst(logger, burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

func main() {
	fmt.Println("--- Bridge Stress Test ---")

	host := &countingHost{seen: make(map[string]struct{})}

	logger, err := logbridge.NewBuilder().
		Host(host).
		LevelString("debug").
		ShowLogsInstant(false).
		FlushSchedule("@every 1s").
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize bridge: %v\n", err)
		os.Exit(1)
	}

	// --- Scheduled Flushes ---
	// Cron diagnostics travel through the bridge they drive
	flusher, err := schedule.FromLogger(logger,
		schedule.WithLogger(compat.NewCronAdapter(logger)),
		schedule.WithFinalFlush(true),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create flush scheduler: %v\n", err)
		os.Exit(1)
	}
	flusher.Start()

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(logger, burstChan, &wg, &completedBursts)
	}

	// --- Run Test ---
	startTime := time.Now()
submit:
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			break submit
		}
	}
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	// --- Shutdown ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := flusher.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Scheduler stop error: %v\n", err)
	}
	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Bridge shutdown error: %v\n", err)
	}

	expected := int(finalCompleted) * logsPerBurst
	host.mu.Lock()
	unique := len(host.seen)
	fmt.Printf("\n--- Test Finished ---\n")
	fmt.Printf("Completed %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if duration.Seconds() > 0 {
		fmt.Printf("Approximate Logs/sec: %.2f\n", float64(expected)/duration.Seconds())
	}
	fmt.Printf("Batches: %d (scheduled runs %d), envelopes: %d\n", host.batches, flusher.Runs(), host.received)
	fmt.Printf("Unique burst records: %d/%d, duplicates: %d\n", unique, expected, host.dupes)
	host.mu.Unlock()

	if unique != expected || host.dupes != 0 {
		fmt.Fprintln(os.Stderr, "FAIL: records lost or duplicated")
		os.Exit(1)
	}
	fmt.Println("OK: every record delivered exactly once")
}
