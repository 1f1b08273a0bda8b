package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (entity.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return entity.Input{Left: fi.L, Right: fi.R, Jump: fi.J}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the underlying replay data
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Result summarizes a headless playback
type Result struct {
	Frames   int
	Stats    system.Stats
	GameOver bool
	Final    system.Snapshot
}

// Run feeds recorded frames into w at a fixed step until the recording
// ends or the game is over. w must be created with the replay's seed.
func Run(w *system.World, r *Replayer, dt float64) Result {
	frames := 0
	for !w.GameOver() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		w.Tick(in, dt)
		frames++
	}

	return Result{
		Frames:   frames,
		Stats:    w.Stats(),
		GameOver: w.GameOver(),
		Final:    w.Snapshot(),
	}
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Stage:     "flat",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
