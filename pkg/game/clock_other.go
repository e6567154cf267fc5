//go:build !linux

package game

import "time"

// Without a process CPU clock the monotonic wall clock is used instead,
// so pacing keeps running while the process is descheduled.
var processStart = time.Now()

func processTime() Timestamp {
	elapsed := time.Since(processStart)
	return Timestamp{
		Sec:  int64(elapsed / time.Second),
		Nsec: int64(elapsed % time.Second),
	}
}
