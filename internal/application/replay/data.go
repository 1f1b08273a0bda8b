package replay

import "github.com/younwookim/stomp/internal/application/system"

// FormatVersion is written into every saved replay
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump (press edge)
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	Jump      string       `json:"jump,omitempty"`
	Roster    string       `json:"roster,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// StageOptions returns the overrides the session was recorded with
func (d ReplayData) StageOptions() system.StageOptions {
	return system.StageOptions{JumpModel: d.Jump, Roster: d.Roster}
}
