package shared

import (
	"bytes"
	"encoding/json"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// Room is the sole persistent entity: one row per decision room. The
// options and state columns hold free-form JSON documents whose shape
// is selected by Type; State is the only field mutated after creation.
// Timestamps are epoch milliseconds so clients can compare them to
// Date.now() directly.
type Room struct {
	Id        string          `json:"id"        gorm:"column:id;primaryKey"`
	Type      string          `json:"type"      gorm:"column:type"`
	Title     string          `json:"title"     gorm:"column:title"`
	Options   json.RawMessage `json:"options"   gorm:"column:options"`
	CreatedAt int64           `json:"createdAt" gorm:"column:created_at"`
	ExpiresAt int64           `json:"expiresAt" gorm:"column:expires_at"`
	State     json.RawMessage `json:"state"     gorm:"column:state"`
}

func (Room) TableName() string {
	return "rooms"
}

// Expired reports whether the room is past its expiry instant. An
// expired room stays readable until a purge sweep removes the row;
// only mutations are refused.
func (r *Room) Expired(nowMillis int64) bool {
	return r.ExpiresAt <= nowMillis
}

// Equal is the structural comparison polling clients rely on to
// detect "nothing changed" between two snapshots of the same room.
func (r *Room) Equal(other *Room) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Id == other.Id &&
		r.Type == other.Type &&
		r.Title == other.Title &&
		r.CreatedAt == other.CreatedAt &&
		r.ExpiresAt == other.ExpiresAt &&
		bytes.Equal(r.Options, other.Options) &&
		bytes.Equal(r.State, other.State)
}

// State carries the process-wide dependencies handed to controllers
// and services. The clock is injected so expiry behavior is testable.
type State struct {
	Database    *gorm.DB
	Clock       clockwork.Clock
	Environment string
}
