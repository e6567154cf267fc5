//go:build linux

package game

import "golang.org/x/sys/unix"

func processTime() Timestamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		panic("game: reading process clock: " + err.Error())
	}
	return Timestamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}
}
