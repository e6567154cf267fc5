package game

import "testing"

// TestReversalGuard tests which turns are accepted while moving right
func TestReversalGuard(t *testing.T) {
	tests := []struct {
		key  Key
		want Direction
	}{
		{KeyLeft, Right},
		{KeyRight, Right},
		{KeyUp, Up},
		{KeyDown, Down},
	}

	for _, tt := range tests {
		g := NewGame(20, 20)
		g.Direction = Right

		g.HandleKey(tt.key)

		if g.Direction != tt.want {
			t.Errorf("Key %d while moving right: expected %v, got %v", tt.key, tt.want, g.Direction)
		}
	}
}

// TestReversalGuardVertical tests that moving up rejects up and down
func TestReversalGuardVertical(t *testing.T) {
	g := NewGame(20, 20)

	g.HandleKey(KeyDown)
	if g.Direction != Up {
		t.Errorf("Expected down to be ignored while moving up, got %v", g.Direction)
	}

	g.HandleKey(KeyLeft)
	if g.Direction != Left {
		t.Errorf("Expected left to be accepted while moving up, got %v", g.Direction)
	}
}

// TestHandleKeyCommands tests quit, pause and ignored keys
func TestHandleKeyCommands(t *testing.T) {
	g := NewGame(20, 20)

	g.HandleKey('x')
	g.HandleKey(KeyOther)
	g.HandleKey('Q')
	if g.State() != Running || g.Direction != Up {
		t.Errorf("Unknown keys should have no effect, got state %v direction %v", g.State(), g.Direction)
	}

	g.HandleKey(KeyPause)
	if g.State() != Paused {
		t.Errorf("Expected paused, got %v", g.State())
	}

	g.HandleKey(KeyQuit)
	if g.State() != Terminated {
		t.Errorf("Expected terminated from paused, got %v", g.State())
	}

	g2 := NewGame(20, 20)
	g2.HandleKey(KeyInterrupt)
	if g2.State() != Terminated {
		t.Errorf("Expected Ctrl-C to terminate, got %v", g2.State())
	}
}

// TestDrainKeysDeduplicates tests that held keys register once per drain
func TestDrainKeysDeduplicates(t *testing.T) {
	g := NewGame(20, 20)
	keys := &fakeKeys{}
	keys.push(KeyPause, KeyPause, KeyPause, KeyPause)

	DrainKeys(keys, g)

	if !g.Paused {
		t.Error("Expected a repeated pause key to toggle exactly once")
	}
	if len(keys.batches) != 0 {
		t.Errorf("Expected all keys to be drained, %d batches left", len(keys.batches))
	}
}

// TestDrainKeysNewKeysRegister tests that alternating keys each count
func TestDrainKeysNewKeysRegister(t *testing.T) {
	g := NewGame(20, 20)
	keys := &fakeKeys{}
	keys.push(KeyPause, KeyLeft, KeyPause)

	DrainKeys(keys, g)

	if g.Paused {
		t.Error("Expected two separated pause keys to cancel out")
	}
	if g.Direction != Left {
		t.Errorf("Expected direction left, got %v", g.Direction)
	}
}

// TestDrainKeysDedupIsPerDrain tests that the previous key resets every tick
func TestDrainKeysDedupIsPerDrain(t *testing.T) {
	g := NewGame(20, 20)
	keys := &fakeKeys{}
	keys.push(KeyPause)
	keys.push(KeyPause)

	DrainKeys(keys, g)
	if !g.Paused {
		t.Fatal("Expected first drain to pause")
	}

	DrainKeys(keys, g)
	if g.Paused {
		t.Error("Expected second drain to resume")
	}
}

// TestDrainKeysStopsOnQuit tests that keys after quit stay unread
func TestDrainKeysStopsOnQuit(t *testing.T) {
	g := NewGame(20, 20)
	keys := &fakeKeys{}
	keys.push(KeyQuit, KeyPause, KeyLeft)

	DrainKeys(keys, g)

	if g.State() != Terminated {
		t.Errorf("Expected terminated, got %v", g.State())
	}
	if g.Paused || g.Direction != Up {
		t.Error("Keys after quit should not be applied")
	}
	if keys.polls != 1 {
		t.Errorf("Expected 1 poll, got %d", keys.polls)
	}
}

// TestDrainKeysEmpty tests a drain without pending keys
func TestDrainKeysEmpty(t *testing.T) {
	g := NewGame(20, 20)
	keys := &fakeKeys{}

	DrainKeys(keys, g)

	if keys.polls != 1 {
		t.Errorf("Expected 1 poll, got %d", keys.polls)
	}
	if g.State() != Running {
		t.Errorf("Expected running, got %v", g.State())
	}
}
