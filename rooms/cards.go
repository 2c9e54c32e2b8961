package rooms

import (
	"encoding/json"
	"math/rand/v2"
	"slices"
)

// CardsState tracks which card labels have been drawn from the deck.
// DrawTimestamp is the replay marker for the flip animation.
type CardsState struct {
	Drawn         []string `json:"drawn"`
	LastDrawn     *string  `json:"lastDrawn"`
	IsDrawing     bool     `json:"isDrawing"`
	DrawTimestamp int64    `json:"drawTimestamp,omitempty"`
}

// Draw picks a uniformly random card from the options not yet drawn,
// matched by label. Drawing from an exhausted deck leaves the state
// untouched.
func Draw(options []Option, state json.RawMessage, now int64) json.RawMessage {
	s := decodeState[CardsState](state)

	available := []Option{}
	for _, option := range options {
		if !slices.Contains(s.Drawn, option.Label) {
			available = append(available, option)
		}
	}
	if len(available) == 0 {
		return state
	}

	card := available[rand.IntN(len(available))]
	s.Drawn = append(s.Drawn, card.Label)
	s.LastDrawn = &card.Label
	s.IsDrawing = true
	s.DrawTimestamp = now

	return encodeState(s)
}

// ResetCards returns the deck to its undrawn starting state.
func ResetCards(state json.RawMessage) json.RawMessage {
	return encodeState(CardsState{Drawn: []string{}})
}
