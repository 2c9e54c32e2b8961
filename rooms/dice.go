package rooms

import (
	"encoding/json"
	"math/rand/v2"
)

// diceHistoryLimit bounds the roll history, oldest dropped first.
const diceHistoryLimit = 20

// DiceState holds the latest roll and a bounded history of results.
// RollTimestamp is the replay marker for the roll animation.
type DiceState struct {
	LastRoll      *int  `json:"lastRoll"`
	IsRolling     bool  `json:"isRolling"`
	DiceCount     int   `json:"diceCount"`
	RollTimestamp int64 `json:"rollTimestamp,omitempty"`
	History       []int `json:"history"`
}

// Roll draws one uniform result in [1,6] and appends it to the
// history, keeping only the most recent rolls.
func Roll(state json.RawMessage, now int64) json.RawMessage {
	s := decodeState[DiceState](state)

	result := rand.IntN(6) + 1
	s.History = append(s.History, result)
	if len(s.History) > diceHistoryLimit {
		s.History = s.History[len(s.History)-diceHistoryLimit:]
	}

	s.LastRoll = &result
	s.IsRolling = true
	s.RollTimestamp = now
	if s.DiceCount == 0 {
		s.DiceCount = 1
	}

	return encodeState(s)
}
