package island

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/island-jumper/internal/core"
)

// Obstacle is a rock in the boat lane.
type Obstacle struct {
	Pos    mgl64.Vec3
	Size   float64
	Passed bool
}

// Shark swims from far ahead towards the boat.
type Shark struct {
	Pos      mgl64.Vec3
	Speed    float64 // Units per second towards +Z
	Defeated bool
}

// FloatingCoconut is a pickup in the boat lane.
type FloatingCoconut struct {
	Pos       mgl64.Vec3
	Radius    float64
	Collected bool
}

// Bullet flies in a straight line until it hits something or runs out of range.
type Bullet struct {
	Pos    mgl64.Vec3
	Start  mgl64.Vec3
	Dir    mgl64.Vec3
	Speed  float64
	Radius float64

	prev mgl64.Vec3 // Position before the last advance
}

// advance moves the bullet dt seconds along its direction.
func (b *Bullet) advance(dt float64) {
	b.prev = b.Pos
	b.Pos = b.Pos.Add(b.Dir.Mul(b.Speed * dt))
}

// sweep walks the last advance in steps no longer than step and reports
// whether hit returned true for any sampled point.
func (b *Bullet) sweep(step float64, hit func(p mgl64.Vec3) bool) bool {
	seg := b.Pos.Sub(b.prev)
	n := int(math.Ceil(seg.Len() / step))
	if n < 1 {
		n = 1
	}
	for k := 1; k <= n; k++ {
		if hit(b.prev.Add(seg.Mul(float64(k) / float64(n)))) {
			return true
		}
	}
	return false
}

// Traveled returns the distance flown so far.
func (b *Bullet) Traveled() float64 {
	return b.Pos.Sub(b.Start).Len()
}

// EntityStore owns every live entity of a session.
// Tiles are kept in generation order, so Z decreases along the slice.
type EntityStore struct {
	Tiles     []*Tile
	Obstacles []*Obstacle
	Sharks    []*Shark
	Coconuts  []*FloatingCoconut
	Bullets   []*Bullet

	window int
}

// NewEntityStore returns an empty store that keeps at most window tiles.
func NewEntityStore(window int) *EntityStore {
	if window < 2 {
		window = 2
	}
	return &EntityStore{window: window}
}

// Window returns the tile cap.
func (s *EntityStore) Window() int {
	return s.window
}

// Reset drops everything.
func (s *EntityStore) Reset() {
	s.Tiles = s.Tiles[:0]
	s.Obstacles = s.Obstacles[:0]
	s.Sharks = s.Sharks[:0]
	s.Coconuts = s.Coconuts[:0]
	s.Bullets = s.Bullets[:0]
}

// PushTile appends t and evicts the oldest tiles past the window.
func (s *EntityStore) PushTile(t *Tile) {
	s.Tiles = append(s.Tiles, t)
	if over := len(s.Tiles) - s.window; over > 0 {
		copy(s.Tiles, s.Tiles[over:])
		for i := len(s.Tiles) - over; i < len(s.Tiles); i++ {
			s.Tiles[i] = nil
		}
		s.Tiles = s.Tiles[:len(s.Tiles)-over]
	}
}

// RemoveTile drops t from the window. It reports whether t was there.
func (s *EntityStore) RemoveTile(t *Tile) bool {
	for i, tile := range s.Tiles {
		if tile != t {
			continue
		}
		copy(s.Tiles[i:], s.Tiles[i+1:])
		s.Tiles[len(s.Tiles)-1] = nil
		s.Tiles = s.Tiles[:len(s.Tiles)-1]
		return true
	}
	return false
}

// ClearTiles empties the tile window.
func (s *EntityStore) ClearTiles() {
	for i := range s.Tiles {
		s.Tiles[i] = nil
	}
	s.Tiles = s.Tiles[:0]
}

// ClearLane drops the boat-lane entities. Bullets keep flying.
func (s *EntityStore) ClearLane() {
	clearTail(s.Obstacles, 0)
	clearTail(s.Sharks, 0)
	clearTail(s.Coconuts, 0)
	s.Obstacles = s.Obstacles[:0]
	s.Sharks = s.Sharks[:0]
	s.Coconuts = s.Coconuts[:0]
}

// LastTile returns the most recently generated tile, or nil.
func (s *EntityStore) LastTile() *Tile {
	if len(s.Tiles) == 0 {
		return nil
	}
	return s.Tiles[len(s.Tiles)-1]
}

// Contains reports whether t is still in the window.
func (s *EntityStore) Contains(t *Tile) bool {
	if t == nil {
		return false
	}
	for _, tile := range s.Tiles {
		if tile == t {
			return true
		}
	}
	return false
}

// TileIndexAt returns the index of the tile whose center matches pos within
// tol on both ground axes, or -1.
func (s *EntityStore) TileIndexAt(pos mgl64.Vec3, tol float64) int {
	for i, t := range s.Tiles {
		if core.ApproxEqual(t.Pos.X(), pos.X(), tol) && core.ApproxEqual(t.Pos.Z(), pos.Z(), tol) {
			return i
		}
	}
	return -1
}

// LandingIndex returns the index of the first tile whose footprint contains
// pos, or -1 when pos is over open water.
func (s *EntityStore) LandingIndex(pos mgl64.Vec3) int {
	for i, t := range s.Tiles {
		if FootprintOverlap(pos, t.Pos, t.Size) {
			return i
		}
	}
	return -1
}

// RecentKind reports whether one of the last n tiles is of kind k.
func (s *EntityStore) RecentKind(k TileKind, n int) bool {
	start := len(s.Tiles) - n
	if start < 0 {
		start = 0
	}
	for _, t := range s.Tiles[start:] {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// LastObstacle returns the furthest obstacle ahead, or nil.
func (s *EntityStore) LastObstacle() *Obstacle {
	if len(s.Obstacles) == 0 {
		return nil
	}
	return s.Obstacles[len(s.Obstacles)-1]
}

// Compact drops boat-lane entities that fell behind the player and bullets
// that ran out of range.
func (s *EntityStore) Compact(playerZ, laneCutoff, sharkCutoff, bulletRange float64) {
	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.Pos.Z() < playerZ+laneCutoff {
			obstacles = append(obstacles, o)
		}
	}
	clearTail(s.Obstacles, len(obstacles))
	s.Obstacles = obstacles

	coconuts := s.Coconuts[:0]
	for _, c := range s.Coconuts {
		if !c.Collected && c.Pos.Z() < playerZ+laneCutoff {
			coconuts = append(coconuts, c)
		}
	}
	clearTail(s.Coconuts, len(coconuts))
	s.Coconuts = coconuts

	sharks := s.Sharks[:0]
	for _, sh := range s.Sharks {
		if !sh.Defeated && sh.Pos.Z() < playerZ+sharkCutoff {
			sharks = append(sharks, sh)
		}
	}
	clearTail(s.Sharks, len(sharks))
	s.Sharks = sharks

	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Traveled() <= bulletRange {
			bullets = append(bullets, b)
		}
	}
	clearTail(s.Bullets, len(bullets))
	s.Bullets = bullets
}

// removeAt drops items[i], keeping order.
func removeAt[T any](items []*T, i int) []*T {
	copy(items[i:], items[i+1:])
	items[len(items)-1] = nil
	return items[:len(items)-1]
}

// clearTail nils out pointers past n so filtered slices do not pin garbage.
func clearTail[T any](items []*T, n int) {
	for i := n; i < len(items); i++ {
		items[i] = nil
	}
}
