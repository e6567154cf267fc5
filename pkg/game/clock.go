package game

import "time"

// Timestamp is a reading of the game clock
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// Clock paces the game loop
type Clock interface {
	Now() Timestamp
	Sleep(d time.Duration)
}

// Diff returns the signed time elapsed from before to after
func Diff(before, after Timestamp) time.Duration {
	nanoBefore := before.Nsec + before.Sec*int64(time.Second)
	nanoAfter := after.Nsec + after.Sec*int64(time.Second)
	return time.Duration(nanoAfter - nanoBefore)
}

// SleepRemaining sleeps for whatever is left of budget after elapsed.
// A tick that ran over its budget is not made up for later.
func SleepRemaining(c Clock, elapsed, budget time.Duration) {
	if remaining := budget - elapsed; remaining > 0 {
		c.Sleep(remaining)
	}
}

// ProcessClock reads the CPU time consumed by this process, so the game
// only ages while it gets to run.
type ProcessClock struct{}

// Now returns the current process CPU time
func (ProcessClock) Now() Timestamp {
	return processTime()
}

// Sleep blocks the calling goroutine for d
func (ProcessClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
