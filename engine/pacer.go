package engine

import "time"

// FramePacer converts wall-clock time into a count of due simulation ticks
// Deadlines advance by a fixed interval so jitter in wakeups does not drift the tick rate
type FramePacer struct {
	interval     time.Duration
	maxCatchUp   int
	nextDeadline time.Time
}

// NewFramePacer creates a pacer whose first tick is due one interval after start
func NewFramePacer(interval time.Duration, maxCatchUp int, start time.Time) *FramePacer {
	return &FramePacer{
		interval:     interval,
		maxCatchUp:   max(1, maxCatchUp),
		nextDeadline: start.Add(interval),
	}
}

// Due returns the number of ticks whose deadline has passed at now, capped at the catch-up limit
// When the cap is hit the backlog is dropped and the schedule restarts from now
func (p *FramePacer) Due(now time.Time) int {
	n := 0
	for !now.Before(p.nextDeadline) {
		n++
		p.nextDeadline = p.nextDeadline.Add(p.interval)
		if n == p.maxCatchUp {
			if !now.Before(p.nextDeadline) {
				p.nextDeadline = now.Add(p.interval)
			}
			break
		}
	}
	return n
}

// Reset restarts the schedule from now
func (p *FramePacer) Reset(now time.Time) {
	p.nextDeadline = now.Add(p.interval)
}
