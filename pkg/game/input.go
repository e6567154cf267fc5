package game

// DrainKeys applies every pending key to g until the source runs dry or
// the game is over. A key repeating the one right before it is skipped,
// so terminal key repeat counts once per tick.
func DrainKeys(src KeySource, g *Game) {
	prev := KeyNone
	for !g.Quit {
		k, ok := src.PollKey()
		if !ok {
			return
		}
		if k == prev {
			continue
		}
		prev = k
		g.HandleKey(k)
	}
}
