package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/island-jumper/internal/config"
	"github.com/vovakirdan/island-jumper/internal/games/island"
)

func autoplaySession() *island.Session {
	cfg := config.DefaultIslandConfig()
	rules := island.DefaultRules(cfg)
	rules.Autoplay = true
	return island.NewSession(cfg, rules)
}

// record simulates n ticks of an autoplay run into buf.
func record(t *testing.T, buf *bytes.Buffer, seed int64, n int) island.Snapshot {
	t.Helper()
	rec, err := NewRecorder(buf, Header{Variant: "island_autoplay", Seed: seed, TickRate: 60})
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	s := autoplaySession()
	s.Reset(seed)
	for i := 0; i < n; i++ {
		var in island.Input
		if i == 30 {
			in.ToggleShooting = true
		}
		s.Tick(1.0/60, in)
		if err := rec.Record(Frame{Tick: s.Ticks(), Input: in, Snapshot: s.Snapshot()}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if rec.Frames() != n {
		t.Errorf("frames = %d, want %d", rec.Frames(), n)
	}
	return s.Snapshot()
}

func TestRecordAndSummarize(t *testing.T) {
	var buf bytes.Buffer
	final := record(t, &buf, 21, 600)

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if h := r.Header(); h.Version != Version || h.Seed != 21 || h.Variant != "island_autoplay" {
		t.Errorf("header = %+v", h)
	}
	sum, err := Summarize(r)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Frames != 600 || sum.LastTick != final.Tick {
		t.Errorf("frames %d last tick %d, want 600 and %d", sum.Frames, sum.LastTick, final.Tick)
	}
	if sum.FinalScore != final.Score || sum.FinalState != final.State {
		t.Errorf("summary %+v does not match final snapshot", sum)
	}
	if sum.TilesLanded != final.Stats.TilesLanded || sum.BestScore < sum.FinalScore {
		t.Errorf("summary stats %+v", sum)
	}
}

func TestVerifyMatchesSimulation(t *testing.T) {
	var buf bytes.Buffer
	record(t, &buf, 5, 900)

	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	n, err := Verify(r, autoplaySession())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if n != 900 {
		t.Errorf("verified %d frames, want 900", n)
	}
}

func TestVerifyDetectsDivergence(t *testing.T) {
	var buf bytes.Buffer
	record(t, &buf, 5, 120)

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	// Without the bot nobody jumps, so the player stays put while the
	// recording moves on.
	cfg := config.DefaultIslandConfig()
	s := island.NewSession(cfg, island.DefaultRules(cfg))
	if _, err := Verify(r, s); !errors.Is(err, ErrDiverged) {
		t.Errorf("Verify err = %v, want ErrDiverged", err)
	}
}

func TestUnknownVersion(t *testing.T) {
	data, err := msgpack.Marshal(&Header{Version: 99})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewReader(bytes.NewReader(data)); !errors.Is(err, ErrVersion) {
		t.Errorf("err = %v, want ErrVersion", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.replay")
	rec, err := Create(path, Header{Variant: "island", Seed: 3, TickRate: 60})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	s := autoplaySession()
	s.Reset(3)
	for i := 0; i < 50; i++ {
		s.Tick(1.0/60, island.Input{})
		rec.Record(Frame{Tick: s.Ticks(), Snapshot: s.Snapshot()})
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	sum, err := Summarize(r)
	if err != nil || sum.Frames != 50 {
		t.Errorf("summary %+v, err %v", sum, err)
	}
}
