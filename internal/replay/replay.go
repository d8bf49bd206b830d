// Package replay records sessions tick by tick as a msgpack stream and reads
// them back.
//
// A recording is a Header followed by one Frame per simulated tick. Since a
// session is deterministic, the header seed plus the frame inputs are enough
// to rebuild every snapshot; the snapshots are stored anyway so a recording
// can be inspected without the simulation and checked against it.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/island-jumper/internal/games/island"
)

// Version is the format written by Recorder.
const Version = 1

var (
	// ErrVersion is returned for recordings in an unknown format.
	ErrVersion = errors.New("unsupported replay version")
	// ErrDiverged is returned by Verify when the simulation disagrees with
	// the recording.
	ErrDiverged = errors.New("replay diverged")
)

// Header opens a recording.
type Header struct {
	Version  int
	Variant  string
	Seed     int64
	TickRate int
}

// Frame is one simulated tick.
type Frame struct {
	Tick     uint64
	Input    island.Input
	Snapshot island.Snapshot
}

// Recorder writes a recording.
type Recorder struct {
	enc    *msgpack.Encoder
	closer io.Closer
	frames int
}

// NewRecorder writes h to w and returns a recorder for the frames.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	h.Version = Version
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("replay: write header: %w", err)
	}
	return &Recorder{enc: enc}, nil
}

// Create opens path for writing and starts a recording in it.
func Create(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Record appends one frame.
func (r *Recorder) Record(f Frame) error {
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("replay: write frame %d: %w", f.Tick, err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames were recorded.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close closes the file opened by Create. It is a no-op for NewRecorder
// and on later calls.
func (r *Recorder) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// Reader reads a recording.
type Reader struct {
	dec    *msgpack.Decoder
	header Header
	closer io.Closer
}

// NewReader reads the header from rd.
func NewReader(rd io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(rd)
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("replay: read header: %w", err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("replay: version %d: %w", h.Version, ErrVersion)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Open opens a recording file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Header returns the recording header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame, or io.EOF after the last one.
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("replay: read frame: %w", err)
	}
	return f, nil
}

// Close closes the file opened by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Summary describes a whole recording.
type Summary struct {
	Header          Header
	Frames          int
	LastTick        uint64
	FinalScore      int
	FinalState      string
	BestScore       int
	TilesLanded     int
	BoatSegments    int
	ObstaclesPassed int
}

// Summarize drains r.
func Summarize(r *Reader) (Summary, error) {
	sum := Summary{Header: r.Header()}
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, err
		}
		sum.Frames++
		sum.LastTick = f.Tick
		sum.FinalScore = f.Snapshot.Score
		sum.FinalState = f.Snapshot.State
		sum.BestScore = max(sum.BestScore, f.Snapshot.Score)
		sum.TilesLanded = f.Snapshot.Stats.TilesLanded
		sum.BoatSegments = f.Snapshot.Stats.BoatSegments
		sum.ObstaclesPassed = f.Snapshot.Stats.ObstaclesPassed
	}
}

// Verify replays the recorded inputs on s, which must be built with the
// config and rules of the recording, and checks every snapshot.
func Verify(r *Reader, s *island.Session) (int, error) {
	h := r.Header()
	dt := 1.0 / 60
	if h.TickRate > 0 {
		dt = 1 / float64(h.TickRate)
	}
	s.Reset(h.Seed)

	n := 0
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		s.Tick(dt, f.Input)
		got := s.Snapshot()
		if got.Tick != f.Tick || got.Score != f.Snapshot.Score ||
			got.State != f.Snapshot.State || got.Player.Pos != f.Snapshot.Player.Pos {
			return n, fmt.Errorf("replay: tick %d: score %d/%d state %s/%s: %w",
				f.Tick, got.Score, f.Snapshot.Score, got.State, f.Snapshot.State, ErrDiverged)
		}
		n++
	}
}
