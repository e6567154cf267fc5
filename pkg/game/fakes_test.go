package game

import (
	"errors"
	"time"
)

// fakeScreen records every frame drawn onto it
type fakeScreen struct {
	width, height int
	frames        [][]string
	err           error
}

func (s *fakeScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeScreen) Draw(rows []string) error {
	if s.err != nil {
		return s.err
	}
	frame := make([]string, len(rows))
	copy(frame, rows)
	s.frames = append(s.frames, frame)
	return nil
}

// fakeKeys hands out queued keys, one batch per drain
type fakeKeys struct {
	batches [][]Key
	polls   int
}

func (k *fakeKeys) PollKey() (Key, bool) {
	k.polls++
	if len(k.batches) == 0 {
		return KeyNone, false
	}
	if len(k.batches[0]) == 0 {
		k.batches = k.batches[1:]
		return KeyNone, false
	}
	key := k.batches[0][0]
	k.batches[0] = k.batches[0][1:]
	return key, true
}

// push queues keys for the next drain
func (k *fakeKeys) push(keys ...Key) {
	k.batches = append(k.batches, keys)
}

// fakeClock advances by step on every reading and records sleeps
type fakeClock struct {
	now    time.Duration
	step   time.Duration
	sleeps []time.Duration
}

func (c *fakeClock) Now() Timestamp {
	c.now += c.step
	return Timestamp{Sec: int64(c.now / time.Second), Nsec: int64(c.now % time.Second)}
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
}

var errDrawFailed = errors.New("draw failed")
