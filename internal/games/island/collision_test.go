package island

import (
	"math"
	"testing"

	"github.com/vovakirdan/island-jumper/internal/core"
)

func TestFootprintOverlap(t *testing.T) {
	center := core.Vec(10, 0, -150)
	tests := []struct {
		name string
		p    [3]float64
		want bool
	}{
		{"center", [3]float64{10, 5, -150}, true},
		{"inside corner", [3]float64{39.9, 0, -179.9}, true},
		{"on the edge", [3]float64{40, 0, -150}, false},
		{"outside", [3]float64{10, 0, -190}, false},
		{"height ignored", [3]float64{10, 500, -150}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FootprintOverlap(core.Vec(tt.p[0], tt.p[1], tt.p[2]), center, 60); got != tt.want {
				t.Errorf("FootprintOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSphereAndBoxOverlap(t *testing.T) {
	if !SphereOverlap(core.Vec(0, 0, 0), 1, core.Vec(0, 0, 5), 4.5) {
		t.Error("spheres 5 apart with radii 5.5 should overlap")
	}
	if SphereOverlap(core.Vec(0, 0, 0), 1, core.Vec(0, 0, 5), 4) {
		t.Error("touching spheres should not overlap")
	}
	if !BoxOverlap(core.Vec(0, 0, 0), 25, 50, core.Vec(40, 0, 60), 20, 20) {
		t.Error("boxes should overlap")
	}
	if BoxOverlap(core.Vec(0, 0, 0), 25, 50, core.Vec(50, 0, 0), 20, 20) {
		t.Error("boxes side by side should not overlap")
	}
}

func TestCylinderBandOverlap(t *testing.T) {
	base := core.Vec(0, 0, 0)
	tests := []struct {
		name string
		p    [3]float64
		want bool
	}{
		{"in band", [3]float64{5, 20, 5}, true},
		{"below band", [3]float64{0, 4, 0}, false},
		{"above band", [3]float64{0, 46, 0}, false},
		{"band edges", [3]float64{0, 45, 0}, true},
		{"too far", [3]float64{15, 20, 15}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CylinderBandOverlap(core.Vec(tt.p[0], tt.p[1], tt.p[2]), base, 20, 5, 45); got != tt.want {
				t.Errorf("CylinderBandOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounceStaysInRiver(t *testing.T) {
	const riverHalf, half = 200.0, 30.0
	x, dir := 0.0, 1.0
	flips := 0
	for i := 0; i < 2000; i++ {
		nx, ndir := Bounce(x, dir, 300, half, riverHalf, 1.0/60)
		if ndir != dir {
			flips++
		}
		x, dir = nx, ndir
		if math.Abs(x)+half > riverHalf+1e-9 {
			t.Fatalf("tick %d: x=%v pokes past the bank", i, x)
		}
	}
	if flips < 2 {
		t.Errorf("flips = %d, tile never bounced back and forth", flips)
	}
}

func TestArcSymmetry(t *testing.T) {
	const h = 40.0
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		if a, b := ArcHeight(p, h), ArcHeight(1-p, h); math.Abs(a-b) > 1e-9 {
			t.Fatalf("arc(%v)=%v != arc(%v)=%v", p, a, 1-p, b)
		}
	}
	if ArcHeight(0.5, h) != h || ArcHeight(0, h) != 0 || ArcHeight(1, h) != 0 {
		t.Error("arc must start and end at 0 and peak at the jump height")
	}
}

func TestJumpKinematics(t *testing.T) {
	var p Player
	p.Pos = core.Vec(0, 5, 0)
	p.Aim = 0
	p.startJump(core.Vec(30, 0, -150), 0.4)

	var peak float64
	for i := 0; i < 24; i++ {
		p.advanceJump(1.0/60, 40)
		peak = math.Max(peak, p.Pos.Y())
	}
	if p.State != StateLanded {
		t.Fatalf("state = %v, want LANDED", p.State)
	}
	if p.Pos != core.Vec(30, 5, -150) {
		t.Errorf("landed at %v", p.Pos)
	}
	if math.Abs(peak-45) > 1e-9 {
		t.Errorf("peak = %v, want 45", peak)
	}
}

func TestTileIndexTolerance(t *testing.T) {
	store := NewEntityStore(7)
	store.PushTile(newTile(1, core.Vec(0, 0, 0), 60, KindSafe))
	store.PushTile(newTile(2, core.Vec(12.5, 0, -150), 60, KindSafe))

	if i := store.TileIndexAt(core.Vec(12.55, 5, -150.05), core.DefaultTolerance); i != 1 {
		t.Errorf("index = %d, want 1", i)
	}
	if i := store.TileIndexAt(core.Vec(12.7, 5, -150), core.DefaultTolerance); i != -1 {
		t.Errorf("index = %d, want -1", i)
	}
}

func TestWindowEviction(t *testing.T) {
	store := NewEntityStore(7)
	for i := 0; i < 20; i++ {
		store.PushTile(newTile(i, core.Vec(0, 0, -150*float64(i)), 60, KindSafe))
		if len(store.Tiles) > 7 {
			t.Fatalf("window grew to %d", len(store.Tiles))
		}
	}
	if store.Tiles[0].ID != 13 || store.LastTile().ID != 19 {
		t.Errorf("window holds %d..%d, want 13..19", store.Tiles[0].ID, store.LastTile().ID)
	}
}
