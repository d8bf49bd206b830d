package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTemp(t)
	for _, sc := range []int{100, 50, 200, 300, 400} {
		if _, err := store.SaveScore("island", sc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("island_hardcore", 999); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("island", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{400, 300, 200}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, want %d", len(scores), len(want))
	}
	for i, w := range want {
		if scores[i].Score != w || scores[i].Variant != "island" {
			t.Errorf("scores[%d] = %+v, want %d", i, scores[i], w)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("island")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, want 0", high)
	}

	store.SaveScore("island", 100)
	store.SaveScore("island", 300)
	store.SaveScore("island", 200)
	if high, _ = store.HighScore("island"); high != 300 {
		t.Errorf("high score = %d, want 300", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTemp(t)
	run := Run{
		Variant:         "island",
		Seed:            42,
		Score:           37,
		TilesLanded:     30,
		BoatSegments:    1,
		ObstaclesPassed: 17,
		EndState:        "GAME_OVER",
		Ticks:           5400,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a UUID: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	run.ID = id
	got.CreatedAt = run.CreatedAt
	if *got != run {
		t.Errorf("run = %+v, want %+v", *got, run)
	}

	// The score table sees the run too.
	if high, _ := store.HighScore("island"); high != 37 {
		t.Errorf("high score = %d, want 37", high)
	}

	if missing, err := store.RunByID(uuid.NewString()); err != nil || missing != nil {
		t.Errorf("missing run = %v, %v", missing, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTemp(t)
	id := uuid.NewString()
	got, err := store.SaveRun(Run{ID: id, Variant: "island", EndState: "AIMING"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("id = %q, want %q", got, id)
	}
	if _, err := store.SaveRun(Run{ID: id, Variant: "island", EndState: "AIMING"}); err == nil {
		t.Error("duplicate run id should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 5; i++ {
		variant := "island"
		if i%2 == 1 {
			variant = "island_autoplay"
		}
		if _, err := store.SaveRun(Run{Variant: variant, Seed: int64(i), Score: i, EndState: "GAME_OVER"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d runs, want 5", len(all))
	}
	if all[0].Seed != 4 {
		t.Errorf("newest run seed = %d, want 4", all[0].Seed)
	}

	auto, _ := store.RecentRuns("island_autoplay", 10)
	if len(auto) != 2 {
		t.Errorf("got %d autoplay runs, want 2", len(auto))
	}
	limited, _ := store.RecentRuns("", 2)
	if len(limited) != 2 {
		t.Errorf("limit ignored: %d runs", len(limited))
	}

	top, err := store.TopRuns("island", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 || top[0].Score != 4 || top[2].Score != 0 {
		t.Errorf("top runs = %+v", top)
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTemp(t)
	store.SaveRun(Run{Variant: "island", Score: 10, TilesLanded: 12, BoatSegments: 1, EndState: "GAME_OVER"})
	store.SaveRun(Run{Variant: "island", Score: 30, TilesLanded: 25, BoatSegments: 2, EndState: "GAME_OVER"})
	store.SaveRun(Run{Variant: "island_hardcore", Score: 4, TilesLanded: 4, EndState: "GAME_OVER"})

	stats, err := store.VariantStats()
	if err != nil {
		t.Fatalf("VariantStats() failed: %v", err)
	}
	vs := stats["island"]
	if vs == nil {
		t.Fatal("no stats for island")
	}
	if vs.Runs != 2 || vs.HighScore != 30 || vs.AvgScore != 20 || vs.MostTiles != 25 || vs.BoatSegments != 3 {
		t.Errorf("stats = %+v", *vs)
	}
	if stats["island_hardcore"].Runs != 1 {
		t.Errorf("hardcore stats = %+v", *stats["island_hardcore"])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)
	store.SaveRun(Run{Variant: "island", Score: 5, EndState: "GAME_OVER"})
	store.SaveScore("island_hardcore", 7)

	if err := store.ClearScores("island"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("island", 10); len(scores) != 0 {
		t.Errorf("%d island scores left", len(scores))
	}
	if runs, _ := store.RecentRuns("island", 10); len(runs) != 0 {
		t.Errorf("%d island runs left", len(runs))
	}
	if scores, _ := store.TopScores("island_hardcore", 10); len(scores) != 1 {
		t.Error("other variants should not be affected")
	}
}
