package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"hoopmania/internal/domain"

	"go.uber.org/zap"
)

// Stats keeps process-lifetime counters. Advisory only; persisted as a
// best-effort snapshot on shutdown.
type Stats struct {
	mu        sync.Mutex
	startTime time.Time
	users     int64
	orders    int64
	errors    int64
	logger    *zap.Logger
}

// NewStats creates a stats tracker starting now
func NewStats(logger *zap.Logger) *Stats {
	return &Stats{
		startTime: time.Now(),
		logger:    logger,
	}
}

// UserSeen counts a newly registered user
func (s *Stats) UserSeen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users++
}

// OrderCommitted counts a committed order
func (s *Stats) OrderCommitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders++
}

// ErrorOccurred counts a handled fault
func (s *Stats) ErrorOccurred() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors++
}

// Snapshot returns the current counters
func (s *Stats) Snapshot() domain.StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.StatsSnapshot{
		StartTime:   s.startTime,
		TotalUsers:  s.users,
		TotalOrders: s.orders,
		Errors:      s.errors,
		UptimeHours: time.Since(s.startTime).Hours(),
	}
}

// WriteSnapshot dumps the counters to a JSON file. Called on graceful
// shutdown; failure is logged, not fatal.
func (s *Stats) WriteSnapshot(path string) error {
	snapshot := s.Snapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	s.logger.Info("Statistics snapshot saved",
		zap.String("path", path),
		zap.Int64("total_users", snapshot.TotalUsers),
		zap.Int64("total_orders", snapshot.TotalOrders),
		zap.Int64("errors", snapshot.Errors),
	)
	return nil
}
