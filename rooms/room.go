// Package rooms implements the state model for ephemeral decision
// rooms. Each room type has a typed state document and a small set of
// reducers that compute the next document from the current one; the
// surrounding service persists whatever the reducer returns.
package rooms

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Type selects which state shape and reducers apply to a room. It
// never changes after creation.
type Type string

const (
	TypeGacha    Type = "gacha"
	TypeVoting   Type = "voting"
	TypePicker   Type = "picker"
	TypeDice     Type = "dice"
	TypeCards    Type = "cards"
	TypeProsCons Type = "pros_cons"
)

// ParseType validates a raw type string against the closed set of
// room types.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeGacha, TypeVoting, TypePicker, TypeDice, TypeCards, TypeProsCons:
		return Type(s), true
	}
	return "", false
}

// RequiresOptions reports whether rooms of this type are created with
// a fixed list of choices.
func (t Type) RequiresOptions() bool {
	switch t {
	case TypeGacha, TypeVoting, TypePicker, TypeCards:
		return true
	}
	return false
}

// Option is one fixed choice of an options-backed room. The list is
// immutable after creation and option ids are unique within a room.
type Option struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// goldenAngle keeps consecutive option hues perceptually far apart no
// matter how many options a room has.
const goldenAngle = 137.5

// ParseOptionsText turns raw textarea input into the room's option
// list: one option per line, trimmed, blank lines dropped. Each
// option gets a fresh id and a hue rotated by the golden angle per
// index, independent of the label.
func ParseOptionsText(raw string) []Option {
	options := []Option{}
	for _, line := range strings.Split(raw, "\n") {
		label := strings.TrimSpace(line)
		if label == "" {
			continue
		}
		options = append(options, Option{
			Id:    uuid.New().String(),
			Label: label,
			Color: optionColor(len(options)),
		})
	}
	return options
}

func optionColor(index int) string {
	hue := math.Mod(float64(index)*goldenAngle, 360)
	return fmt.Sprintf("hsl(%s, 70%%, 60%%)", strconv.FormatFloat(hue, 'f', -1, 64))
}

// EncodeOptions serializes the option list for storage.
func EncodeOptions(options []Option) (json.RawMessage, error) {
	if options == nil {
		options = []Option{}
	}
	return json.Marshal(options)
}

// DecodeOptions parses the stored option document. An unreadable
// document decodes to an empty list rather than failing the action.
func DecodeOptions(raw json.RawMessage) []Option {
	var options []Option
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil
	}
	return options
}

func findOption(options []Option, id string) (Option, bool) {
	for _, option := range options {
		if option.Id == id {
			return option, true
		}
	}
	return Option{}, false
}
