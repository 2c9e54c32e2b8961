package rooms

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Kind separates the two columns of a pros & cons board.
type Kind string

const (
	KindPro Kind = "pro"
	KindCon Kind = "con"
)

// ParseKind validates a raw kind string.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPro, KindCon:
		return Kind(s), true
	}
	return "", false
}

// ProsConsItem is one argument on the board.
type ProsConsItem struct {
	Id    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// ProsConsState holds both columns of the board.
type ProsConsState struct {
	Pros []ProsConsItem `json:"pros"`
	Cons []ProsConsItem `json:"cons"`
}

// AddItem appends a new argument with zero votes to the given column.
func AddItem(state json.RawMessage, kind Kind, text string) json.RawMessage {
	s := decodeState[ProsConsState](state)

	item := ProsConsItem{Id: uuid.New().String(), Text: text}
	if kind == KindPro {
		s.Pros = append(s.Pros, item)
	} else {
		s.Cons = append(s.Cons, item)
	}

	return encodeState(s)
}

// VoteItem increments the vote count of one argument. An id that no
// longer exists is a no-op rather than an error.
func VoteItem(state json.RawMessage, kind Kind, itemID string) json.RawMessage {
	s := decodeState[ProsConsState](state)

	list := s.Cons
	if kind == KindPro {
		list = s.Pros
	}
	for i := range list {
		if list[i].Id == itemID {
			list[i].Votes++
			break
		}
	}

	return encodeState(s)
}
