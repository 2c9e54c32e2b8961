package rooms

import (
	"encoding/json"
	"errors"
)

// VotingState tallies votes per option id. Nothing de-duplicates
// voters server side: one vote per participant is a client-side
// convention, not a guarantee.
type VotingState struct {
	Votes  map[string]int    `json:"votes"`
	Voters map[string]string `json:"voters,omitempty"`
}

// ErrUnknownOption rejects votes for ids outside the room's option
// list, keeping the stored tally keyed only by real options.
var ErrUnknownOption = errors.New("unknown option id")

// Vote increments the tally for one option.
func Vote(options []Option, state json.RawMessage, optionID string) (json.RawMessage, error) {
	if _, ok := findOption(options, optionID); !ok {
		return nil, ErrUnknownOption
	}

	s := decodeState[VotingState](state)
	if s.Votes == nil {
		s.Votes = map[string]int{}
	}
	s.Votes[optionID]++

	return encodeState(s), nil
}
