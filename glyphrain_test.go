package drift

import "testing"

func testRainConfig() RainConfig {
	cfg := DefaultRainConfig()
	cfg.CellWidth = 10
	cfg.CellHeight = 10
	cfg.StepInterval = 0.1
	return cfg
}

func TestRainStartStop(t *testing.T) {
	g := NewGlyphRain(testRainConfig())
	if g.Running() {
		t.Fatal("rain should not run before Start")
	}

	g.Start(200, 100)
	if !g.Running() {
		t.Fatal("rain should run after Start")
	}
	if g.Columns() != 20 {
		t.Errorf("columns = %d, want 20", g.Columns())
	}

	g.Stop()
	if g.Running() {
		t.Error("rain should stop after Stop")
	}
	if g.Columns() != 0 {
		t.Error("column state should be released on Stop")
	}
}

func TestRainRestartable(t *testing.T) {
	g := NewGlyphRain(testRainConfig())
	for i := 0; i < 3; i++ {
		g.Start(100, 100)
		g.Update(0.5)
		g.Stop()
	}
	if g.Running() {
		t.Error("rain should be stopped")
	}
}

func TestRainFixedStepAccumulator(t *testing.T) {
	cfg := testRainConfig()
	cfg.StepInterval = 0.25
	g := NewGlyphRain(cfg)
	g.Start(50, 1000)

	start := g.heads[0]

	// One second at a 0.25s step is exactly 4 steps.
	g.Update(1.0)
	assertNear(t, "after 4 steps", g.heads[0], start+4)

	// Half a step accrues without stepping; the second half completes it.
	g.Update(0.125)
	assertNear(t, "accrued only", g.heads[0], start+4)
	g.Update(0.125)
	assertNear(t, "after 5 steps", g.heads[0], start+5)
}

func TestRainStaggeredEntry(t *testing.T) {
	g := NewGlyphRain(testRainConfig())
	g.Start(500, 100)
	for i, h := range g.heads {
		if h > 0 {
			t.Fatalf("column %d head = %f, should start above the top edge", i, h)
		}
	}
}

func TestRainUpdateNoopWhileStopped(t *testing.T) {
	g := NewGlyphRain(testRainConfig())
	g.Update(10) // must not panic or allocate column state
	if g.Columns() != 0 {
		t.Error("stopped rain should hold no column state")
	}
}

func TestRainColumnsEventuallyReset(t *testing.T) {
	cfg := testRainConfig()
	cfg.ResetChance = 1 // deterministic reset at the bottom edge
	g := NewGlyphRain(cfg)
	g.Start(10, 50) // 1 column, 5 rows

	g.heads[0] = 5
	g.Update(cfg.StepInterval) // head moves to 6, past the bottom, resets
	assertNear(t, "reset head", g.heads[0], 0)
}

func TestRainResizeReallocates(t *testing.T) {
	g := NewGlyphRain(testRainConfig())
	g.Start(200, 100)
	g.Resize(400, 100)
	if g.Columns() != 40 {
		t.Errorf("columns after resize = %d, want 40", g.Columns())
	}

	// Resize while stopped stays a no-op.
	g.Stop()
	g.Resize(800, 100)
	if g.Columns() != 0 {
		t.Error("resize while stopped should not allocate columns")
	}
}

func TestRainConfigDefaults(t *testing.T) {
	g := NewGlyphRain(RainConfig{})
	if len(g.config.Alphabet) == 0 {
		t.Error("alphabet default missing")
	}
	if g.config.StepInterval != defaultStepInterval {
		t.Errorf("step interval = %f, want %f", g.config.StepInterval, defaultStepInterval)
	}
	if g.config.ResetChance != defaultResetChance {
		t.Errorf("reset chance = %f, want %f", g.config.ResetChance, defaultResetChance)
	}
}
