package rooms

import "encoding/json"

// decodeState parses a stored state document into its typed shape. A
// document that does not parse decodes to the zero state instead of
// failing, so a partial or racy write can never wedge a room: the
// next action rebuilds from the type's defaults.
func decodeState[T any](raw json.RawMessage) T {
	var state T
	if len(raw) == 0 {
		return state
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		var zero T
		return zero
	}
	return state
}

func encodeState(state any) json.RawMessage {
	data, err := json.Marshal(state)
	if err != nil {
		// state structs only carry marshalable fields
		return json.RawMessage(`{}`)
	}
	return data
}

// Exported decoders for collaborators (handlers, pollers, tests) that
// need the typed view of a stored document. All of them self-heal:
// malformed input decodes to the type's zero state.

func DecodeGachaState(raw json.RawMessage) GachaState { return decodeState[GachaState](raw) }

func DecodeVotingState(raw json.RawMessage) VotingState { return decodeState[VotingState](raw) }

func DecodePickerState(raw json.RawMessage) PickerState { return decodeState[PickerState](raw) }

func DecodeDiceState(raw json.RawMessage) DiceState { return decodeState[DiceState](raw) }

func DecodeCardsState(raw json.RawMessage) CardsState { return decodeState[CardsState](raw) }

func DecodeProsConsState(raw json.RawMessage) ProsConsState {
	return decodeState[ProsConsState](raw)
}

// InitialState returns the starting state document for a room type.
// Struct field order is fixed, so repeated encodes of the same
// logical state are byte-identical and pollers can compare snapshots
// structurally.
func InitialState(t Type) json.RawMessage {
	switch t {
	case TypeGacha:
		return encodeState(GachaState{Votes: map[string]int{}})
	case TypeVoting:
		return encodeState(VotingState{Votes: map[string]int{}})
	case TypePicker:
		return encodeState(PickerState{})
	case TypeDice:
		return encodeState(DiceState{DiceCount: 1, History: []int{}})
	case TypeCards:
		return encodeState(CardsState{Drawn: []string{}})
	case TypeProsCons:
		return encodeState(ProsConsState{Pros: []ProsConsItem{}, Cons: []ProsConsItem{}})
	}
	return json.RawMessage(`{}`)
}
