package logbridge

import (
	"testing"
)

// BenchmarkInfoBuffered measures the filter, format and append path
func BenchmarkInfoBuffered(b *testing.B) {
	logger, _, _ := createTestLogger(b, 3, false)
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
		if i%1024 == 0 {
			_ = logger.Flush()
		}
	}
}

// BenchmarkInfoImmediate measures a host post per record
func BenchmarkInfoImmediate(b *testing.B) {
	logger := NewLogger(HostFunc(func(any) error { return nil }))
	logger.clock = fixedClock(0)
	if err := logger.Init(3, true); err != nil {
		b.Fatal(err)
	}
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkFiltered measures the cost of a record below threshold
func BenchmarkFiltered(b *testing.B) {
	logger, _, _ := createTestLogger(b, 1, false)
	defer logger.Shutdown()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("dropped", i)
	}
}

// BenchmarkConcurrentLogging benchmarks parallel producers
func BenchmarkConcurrentLogging(b *testing.B) {
	logger, _, _ := createTestLogger(b, 3, false)
	defer logger.Shutdown()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent", i)
			i++
		}
	})
}
