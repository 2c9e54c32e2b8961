package rooms

import (
	"encoding/json"
	"math/rand/v2"
)

// gachaHistoryLimit bounds the spin history kept in the state
// document, newest first.
const gachaHistoryLimit = 10

// GachaState is the wheel's shared state. SpinTimestamp is the replay
// marker for the spin animation: a fresh value per spin, so pollers
// can tell a new result from a re-read of the old one.
type GachaState struct {
	Winner        *string        `json:"winner"`
	IsSpinning    bool           `json:"isSpinning"`
	SpinTimestamp int64          `json:"spinTimestamp,omitempty"`
	Votes         map[string]int `json:"votes"`
	History       []SpinRecord   `json:"history,omitempty"`
}

// SpinRecord is one past spin result.
type SpinRecord struct {
	Label     string `json:"label"`
	Timestamp int64  `json:"timestamp"`
}

// Spin picks a uniformly random option as the winner and records it
// at the head of the history. A room without options is left
// untouched.
func Spin(options []Option, state json.RawMessage, now int64) json.RawMessage {
	if len(options) == 0 {
		return state
	}

	s := decodeState[GachaState](state)
	winner := options[rand.IntN(len(options))]

	s.Winner = &winner.Id
	s.IsSpinning = true
	s.SpinTimestamp = now
	if s.Votes == nil {
		s.Votes = map[string]int{}
	}

	s.History = append([]SpinRecord{{Label: winner.Label, Timestamp: now}}, s.History...)
	if len(s.History) > gachaHistoryLimit {
		s.History = s.History[:gachaHistoryLimit]
	}

	return encodeState(s)
}
