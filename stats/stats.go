// Package stats tracks the score and play time of the current run.
package stats

import (
	"fmt"
	"time"
)

// Stopwatch accumulates time only while unpaused. A new Stopwatch is paused.
type Stopwatch struct {
	elapsed time.Duration
	running bool
}

func (s *Stopwatch) Tick(d time.Duration) {
	if !s.running || d <= 0 {
		return
	}
	s.elapsed += d
}

func (s *Stopwatch) Pause() {
	s.running = false
}

func (s *Stopwatch) Unpause() {
	s.running = true
}

func (s *Stopwatch) Paused() bool {
	return !s.running
}

// Reset zeroes the elapsed time and keeps the paused state.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Format renders the elapsed time as MM:SS.
func (s *Stopwatch) Format() string {
	return FormatDuration(s.elapsed)
}

// FormatDuration renders d as MM:SS. Minutes keep counting past 99.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

type Stats struct {
	Score int
	Watch Stopwatch
}

func (s *Stats) AddScore(points int) {
	s.Score += points
}

// Reset starts a new run: zero score and a reset, running stopwatch.
func (s *Stats) Reset() {
	s.Score = 0
	s.Watch.Reset()
	s.Watch.Unpause()
}
