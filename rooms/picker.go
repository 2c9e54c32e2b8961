package rooms

import (
	"encoding/json"
	"math/rand/v2"
)

// PickerState holds the last random pick. PickTimestamp is the replay
// marker for the pick animation.
type PickerState struct {
	LastPicked    *string `json:"lastPicked"`
	IsPicking     bool    `json:"isPicking"`
	PickTimestamp int64   `json:"pickTimestamp,omitempty"`
}

// Pick chooses a uniformly random option label. A room without
// options is left untouched.
func Pick(options []Option, state json.RawMessage, now int64) json.RawMessage {
	if len(options) == 0 {
		return state
	}

	picked := options[rand.IntN(len(options))]

	return encodeState(PickerState{
		LastPicked:    &picked.Label,
		IsPicking:     true,
		PickTimestamp: now,
	})
}
