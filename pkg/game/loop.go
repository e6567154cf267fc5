package game

import (
	"context"
	"time"

	"github.com/hartwork/dumbsnake/pkg/config"
)

// Loop drives a Game at a fixed tick rate against its collaborators
type Loop struct {
	Game   *Game
	Screen Screen
	Keys   KeySource
	Clock  Clock
	Budget time.Duration // Time budget of one tick

	prevTimestamp Timestamp
}

// NewLoop creates a loop with a game sized to the screen
func NewLoop(screen Screen, keys KeySource, clock Clock) *Loop {
	width, height := screen.Size()
	return &Loop{
		Game:          NewGame(width, height),
		Screen:        screen,
		Keys:          keys,
		Clock:         clock,
		Budget:        config.TickInterval,
		prevTimestamp: clock.Now(),
	}
}

// Tick runs one step: resize check, move, render, input, pacing.
// A frame that fails to draw is dropped; the next tick draws a full one.
func (l *Loop) Tick() {
	l.Game.Resize(l.Screen.Size())

	l.Game.Update()
	_ = l.Game.Board.Render(l.Screen)

	DrainKeys(l.Keys, l.Game)

	now := l.Clock.Now()
	SleepRemaining(l.Clock, Diff(l.prevTimestamp, now), l.Budget)
	l.prevTimestamp = now
}

// Run ticks until the player quits or ctx is done
func (l *Loop) Run(ctx context.Context) error {
	for !l.Game.Quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Tick()
	}
	return nil
}
