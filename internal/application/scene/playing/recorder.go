package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/younwookim/stomp/internal/application/replay"
	"github.com/younwookim/stomp/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for a world built from seed with the given stage options
func NewRecorder(seed int64, stage, jump, roster string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Seed:      seed,
			Stage:     stage,
			Jump:      jump,
			Roster:    roster,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600),
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in entity.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F: r.frame,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
	})
	r.frame++
}

// Save writes the replay data to a file, creating its directory if needed
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a timestamped replay path under dir
func GenerateFilename(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405")))
}

// RunFilename numbers the replay file of the nth run in a session: run.json, run_2.json, ...
func RunFilename(path string, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), n, ext)
}
