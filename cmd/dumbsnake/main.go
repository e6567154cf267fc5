package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hartwork/dumbsnake/pkg/game"
	"github.com/hartwork/dumbsnake/pkg/terminal"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Keeping os.Exit out of here lets the
// deferred terminal restore run on every path, panics included.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	session, err := terminal.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening terminal:", err)
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "Error restoring terminal:", err)
		}
	}()

	// Run only stops early on a signal, which is a normal way to end the game
	loop := game.NewLoop(session.Screen, session.Keys, game.ProcessClock{})
	_ = loop.Run(ctx)

	return 0
}
