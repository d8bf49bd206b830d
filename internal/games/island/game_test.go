package island

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/core"
	"github.com/vovakirdan/island-jumper/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id       string
		policy   string
		autoplay bool
	}{
		{VariantEconomy, config.PenaltiesEconomy, false},
		{VariantHardcore, config.PenaltiesFatal, false},
		{VariantAutoplay, config.PenaltiesEconomy, true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q): %v", tt.id, err)
			}
			if g.ID() != tt.id {
				t.Errorf("ID = %q", g.ID())
			}
			g.Reset(testRuntime(1))
			s := g.(*Game).Session()
			if got := s.Rules().policy().Name(); got != tt.policy {
				t.Errorf("policy = %q, want %q", got, tt.policy)
			}
			if s.Autoplay() != tt.autoplay {
				t.Errorf("autoplay = %v, want %v", s.Autoplay(), tt.autoplay)
			}
		})
	}
}

func TestInputFromFrame(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want Input
	}{
		{"empty", frame(), Input{}},
		{"left", frame(core.ActionAimLeft), Input{Aim: -1}},
		{"right", frame(core.ActionAimRight), Input{Aim: 1}},
		{"both cancel", frame(core.ActionAimLeft, core.ActionAimRight), Input{}},
		{"jump and fire", frame(core.ActionJump, core.ActionFire), Input{Jump: true, Fire: true}},
		{"toggles", frame(core.ActionToggleShooting, core.ActionToggleAutoplay), Input{ToggleShooting: true, ToggleAutoplay: true}},
		{"restart", frame(core.ActionRestart), Input{Restart: true}},
		{"pause is not session input", frame(core.ActionPause), Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InputFromFrame(tt.in); got != tt.want {
				t.Errorf("InputFromFrame = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.Step(frame())
	ticks := g.Session().Ticks()

	if res := g.Step(frame(core.ActionPause)); !res.State.Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionJump))
	}
	if g.Session().Ticks() != ticks {
		t.Errorf("ticks advanced while paused: %d -> %d", ticks, g.Session().Ticks())
	}
	if g.Session().State() != StateAiming {
		t.Errorf("jump went through while paused")
	}

	if res := g.Step(frame(core.ActionPause)); res.State.Paused {
		t.Fatal("game should be unpaused")
	}
	if g.Session().Ticks() != ticks+1 {
		t.Errorf("unpause tick not simulated")
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() Snapshot {
		g := NewAutoplay()
		g.Reset(testRuntime(12345))
		for i := 0; i < 1200; i++ {
			in := frame()
			if i%200 == 100 {
				in.Set(core.ActionToggleShooting)
			}
			if res := g.Step(in); res.State.GameOver {
				break
			}
		}
		return g.Session().Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged: score %d vs %d, tick %d vs %d", a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g := NewAutoplay()
	g.Reset(testRuntime(8))
	for i := 0; i < 300; i++ {
		g.Step(frame())
	}
	g.Reset(testRuntime(8))
	if g.State().Score != 0 || g.Session().Ticks() != 0 || g.State().Paused {
		t.Errorf("reset left state behind: %+v ticks %d", g.State(), g.Session().Ticks())
	}
}

func TestGameSummary(t *testing.T) {
	g := New()
	if (g.Summary() != core.RunSummary{}) {
		t.Error("summary before Reset should be empty")
	}
	g.Reset(testRuntime(77))
	for i := 0; i < 5; i++ {
		g.Step(frame())
	}
	sum := g.Summary()
	if sum.Seed != 77 || sum.Ticks != 5 || sum.EndState != "AIMING" {
		t.Errorf("summary = %+v", sum)
	}
}

func TestBanner(t *testing.T) {
	g := New()
	g.noteEvents(TickEvents{Cues: []Cue{{Kind: CueLanded}, {Kind: CuePenalty, Value: 3}}})
	if g.banner != "PENALTY -3" || g.bannerLeft != bannerTicks {
		t.Fatalf("banner %q left %d", g.banner, g.bannerLeft)
	}
	g.noteEvents(TickEvents{})
	if g.bannerLeft != bannerTicks-1 {
		t.Errorf("banner did not count down")
	}
	if got := bannerText(Cue{Kind: CueSharkShot, Value: 5}); got != "SHARK SHOT +5" {
		t.Errorf("bannerText = %q", got)
	}
	if bannerText(Cue{Kind: CueShot}) != "" {
		t.Error("shots should not take the banner")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.ContainsRune(scr.String(), PlayerChar) {
		t.Error("player not drawn")
	}

	g.Step(frame(core.ActionPause))
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause box not drawn")
	}
}

func TestGameRenderBoatAndGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	s := g.Session()
	s.enterBoat(nil)
	s.spawnBoatHazards(step)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), StageBoat) {
		t.Errorf("HUD row = %q", scr.Row(0))
	}

	s.gameOver("test")
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	scr := core.NewScreen(10, 4)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Window") {
		t.Errorf("row 0 = %q", scr.Row(0))
	}
}
