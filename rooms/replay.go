package rooms

import "strconv"

// EffectMarker identifies one animation-triggering result. Every
// reducer that starts a timed visual effect stamps the state with a
// fresh wall-clock timestamp, so a viewer polling on a short interval
// sees the same state object many times but plays the effect once.
type EffectMarker struct {
	Timestamp int64  `json:"resultTimestamp"`
	ResultId  string `json:"resultId,omitempty"`
}

// IsZero reports whether the marker belongs to a room where the
// effect has never fired.
func (m EffectMarker) IsZero() bool {
	return m.Timestamp == 0
}

// ReplayGuard remembers the last marker a viewer has played.
// Viewers keep one guard per room; the zero value is ready to use.
type ReplayGuard struct {
	last EffectMarker
}

// ShouldPlay reports whether the marker belongs to an effect this
// viewer has not played yet, and records it as played. Repeated polls
// of an unchanged snapshot return false.
func (g *ReplayGuard) ShouldPlay(m EffectMarker) bool {
	if m.IsZero() || m == g.last {
		return false
	}
	g.last = m
	return true
}

// Marker returns the spin animation's replay marker.
func (s GachaState) Marker() EffectMarker {
	var id string
	if s.Winner != nil {
		id = *s.Winner
	}
	return EffectMarker{Timestamp: s.SpinTimestamp, ResultId: id}
}

// Marker returns the pick animation's replay marker.
func (s PickerState) Marker() EffectMarker {
	var id string
	if s.LastPicked != nil {
		id = *s.LastPicked
	}
	return EffectMarker{Timestamp: s.PickTimestamp, ResultId: id}
}

// Marker returns the roll animation's replay marker.
func (s DiceState) Marker() EffectMarker {
	var id string
	if s.LastRoll != nil {
		id = strconv.Itoa(*s.LastRoll)
	}
	return EffectMarker{Timestamp: s.RollTimestamp, ResultId: id}
}

// Marker returns the card flip animation's replay marker.
func (s CardsState) Marker() EffectMarker {
	var id string
	if s.LastDrawn != nil {
		id = *s.LastDrawn
	}
	return EffectMarker{Timestamp: s.DrawTimestamp, ResultId: id}
}
