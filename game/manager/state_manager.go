package manager

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionStats is what a single game session accumulates. Nothing is
// written to disk.
type SessionStats struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Frames    int
	FoodEaten int
	MaxLength int
	EndReason string
}

type StateManager struct {
	stats SessionStats
	now   func() time.Time
}

func NewStateManager(initialLength int) *StateManager {
	return newStateManager(initialLength, time.Now)
}

func newStateManager(initialLength int, now func() time.Time) *StateManager {
	return &StateManager{
		stats: SessionStats{
			UUID:      uuid.New().String(),
			StartTime: now(),
			MaxLength: initialLength,
		},
		now: now,
	}
}

func (sm *StateManager) RecordFrame(length int) {
	sm.stats.Frames++
	if length > sm.stats.MaxLength {
		sm.stats.MaxLength = length
	}
}

func (sm *StateManager) RecordFood() {
	sm.stats.FoodEaten++
}

// End stamps the session as finished. Later calls are ignored.
func (sm *StateManager) End(reason string) {
	if !sm.stats.EndTime.IsZero() {
		return
	}
	sm.stats.EndTime = sm.now()
	sm.stats.EndReason = reason
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}

func (sm *StateManager) Duration() time.Duration {
	end := sm.stats.EndTime
	if end.IsZero() {
		end = sm.now()
	}
	return end.Sub(sm.stats.StartTime)
}

// Summary is the line printed when the game ends.
func (sm *StateManager) Summary() string {
	s := sm.stats
	reason := s.EndReason
	if reason == "" {
		reason = "running"
	}
	return fmt.Sprintf("session %s: %s after %d frames (%.1fs), food eaten %d, max length %d",
		s.UUID[:8], reason, s.Frames, sm.Duration().Seconds(), s.FoodEaten, s.MaxLength)
}
