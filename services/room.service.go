package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Hengki-Setiawan/pilihpilih/logger"
	"github.com/Hengki-Setiawan/pilihpilih/rooms"
	"github.com/Hengki-Setiawan/pilihpilih/shared"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	roomIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	roomIDLength   = 8
)

type RoomService struct {
	state *shared.State
}

func NewRoomService(state *shared.State) *RoomService {
	return &RoomService{
		state: state,
	}
}

// Now is the service's current instant in epoch milliseconds, taken
// from the injected clock.
func (roomService *RoomService) Now() int64 {
	return roomService.state.Clock.Now().UnixMilli()
}

// Create assigns a fresh room its id, options, expiry and initial
// state, and persists the row in one insert.
func (roomService *RoomService) Create(title string, roomType string, optionsText string, durationHours int) (*shared.Room, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewInvalidInput("title is required")
	}

	parsedType, ok := rooms.ParseType(roomType)
	if !ok {
		return nil, shared.NewInvalidInput("unknown room type %q", roomType)
	}

	if durationHours <= 0 {
		durationHours = shared.DefaultRoomDurationHours
	}
	if durationHours > shared.MaxRoomDurationHours {
		return nil, shared.NewInvalidInput("duration may not exceed %d hours", shared.MaxRoomDurationHours)
	}

	options := []rooms.Option{}
	if parsedType.RequiresOptions() {
		options = rooms.ParseOptionsText(optionsText)
		if len(options) < 2 {
			return nil, shared.NewInvalidInput("%s rooms need at least 2 options", parsedType)
		}
	}

	roomID, err := gonanoid.Generate(roomIDAlphabet, roomIDLength)
	if err != nil {
		logger.Error("failed to generate room id: %v", err)
		return nil, err
	}

	encodedOptions, err := rooms.EncodeOptions(options)
	if err != nil {
		logger.Error("failed to marshal room options: %v", err)
		return nil, err
	}

	now := roomService.Now()
	room := &shared.Room{
		Id:        roomID,
		Type:      string(parsedType),
		Title:     title,
		Options:   encodedOptions,
		CreatedAt: now,
		ExpiresAt: now + int64(durationHours)*time.Hour.Milliseconds(),
		State:     rooms.InitialState(parsedType),
	}

	result := roomService.state.Database.Create(room)
	if result.Error != nil {
		logger.Error("failed to create room in database: %v", result.Error)
		return nil, result.Error
	}

	return room, nil
}

// Get returns the current room snapshot. Expired rooms are still
// returned until the purge sweep removes them; the caller decides how
// to render expiry.
func (roomService *RoomService) Get(roomID string) (*shared.Room, error) {
	var room shared.Room
	result := roomService.state.Database.First(&room, "id = ?", roomID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, shared.ErrRoomNotFound
	}
	if result.Error != nil {
		logger.Error("failed to fetch room %s: %v", roomID, result.Error)
		return nil, result.Error
	}
	return &room, nil
}

// Delete removes the room unconditionally. Deleting an id that no
// longer exists is not an error.
func (roomService *RoomService) Delete(roomID string) error {
	result := roomService.state.Database.Delete(&shared.Room{}, "id = ?", roomID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// PurgeExpired deletes every room whose expiry instant has passed.
// Safe to run repeatedly and alongside live room actions: it only
// touches rows that are already expired.
func (roomService *RoomService) PurgeExpired(nowMillis int64) error {
	result := roomService.state.Database.Delete(&shared.Room{}, "expires_at <= ?", nowMillis)
	if result.Error != nil {
		logger.Error("failed to purge expired rooms: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected > 0 {
		logger.Info("purged %d expired rooms", result.RowsAffected)
	}
	return nil
}

// StartPurgeSweep runs PurgeExpired on a fixed interval until the
// process exits.
func (roomService *RoomService) StartPurgeSweep(interval time.Duration) {
	ticker := roomService.state.Clock.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.Chan() {
		if err := roomService.PurgeExpired(roomService.Now()); err != nil {
			logger.Error("purge sweep failed: %v", err)
		}
	}
}

// mutate runs one reducer against the room's current state document
// and writes the replacement back. The read and the write are not
// coupled with a compare-and-swap: two near-simultaneous actions can
// both start from the same snapshot and the later write wins. For
// throwaway party rooms that lost-update window is an accepted trade,
// so do not add per-room locking here without changing the stated
// contract.
func (roomService *RoomService) mutate(roomID string, want rooms.Type, reduce func(room *shared.Room) (json.RawMessage, error)) error {
	room, err := roomService.Get(roomID)
	if err != nil {
		return err
	}
	if room.Expired(roomService.Now()) {
		return shared.ErrRoomExpired
	}
	if room.Type != string(want) {
		return shared.NewInvalidInput("room %s is a %s room", roomID, room.Type)
	}

	newState, err := reduce(room)
	if err != nil {
		return err
	}

	result := roomService.state.Database.Model(&shared.Room{}).
		Where("id = ?", roomID).
		Update("state", newState)
	if result.Error != nil {
		logger.Error("failed to update room %s state: %v", roomID, result.Error)
		return result.Error
	}
	return nil
}

// Spin runs the gacha wheel.
func (roomService *RoomService) Spin(roomID string) error {
	return roomService.mutate(roomID, rooms.TypeGacha, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.Spin(rooms.DecodeOptions(room.Options), room.State, roomService.Now()), nil
	})
}

// Vote tallies one vote for an option of a voting room.
func (roomService *RoomService) Vote(roomID string, optionID string) error {
	return roomService.mutate(roomID, rooms.TypeVoting, func(room *shared.Room) (json.RawMessage, error) {
		newState, err := rooms.Vote(rooms.DecodeOptions(room.Options), room.State, optionID)
		if errors.Is(err, rooms.ErrUnknownOption) {
			return nil, shared.NewInvalidInput("option %s does not belong to this room", optionID)
		}
		return newState, err
	})
}

// Pick selects a random option of a picker room.
func (roomService *RoomService) Pick(roomID string) error {
	return roomService.mutate(roomID, rooms.TypePicker, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.Pick(rooms.DecodeOptions(room.Options), room.State, roomService.Now()), nil
	})
}

// Roll rolls the die of a dice room.
func (roomService *RoomService) Roll(roomID string) error {
	return roomService.mutate(roomID, rooms.TypeDice, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.Roll(room.State, roomService.Now()), nil
	})
}

// Draw draws the next card of a cards room.
func (roomService *RoomService) Draw(roomID string) error {
	return roomService.mutate(roomID, rooms.TypeCards, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.Draw(rooms.DecodeOptions(room.Options), room.State, roomService.Now()), nil
	})
}

// ResetCards returns a cards room's deck to its undrawn state.
func (roomService *RoomService) ResetCards(roomID string) error {
	return roomService.mutate(roomID, rooms.TypeCards, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.ResetCards(room.State), nil
	})
}

// AddItem appends an argument to one column of a pros & cons room.
func (roomService *RoomService) AddItem(roomID string, kind string, text string) error {
	parsedKind, ok := rooms.ParseKind(kind)
	if !ok {
		return shared.NewInvalidInput("kind must be %q or %q", rooms.KindPro, rooms.KindCon)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return shared.NewInvalidInput("text is required")
	}
	return roomService.mutate(roomID, rooms.TypeProsCons, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.AddItem(room.State, parsedKind, text), nil
	})
}

// VoteItem upvotes one argument of a pros & cons room.
func (roomService *RoomService) VoteItem(roomID string, kind string, itemID string) error {
	parsedKind, ok := rooms.ParseKind(kind)
	if !ok {
		return shared.NewInvalidInput("kind must be %q or %q", rooms.KindPro, rooms.KindCon)
	}
	return roomService.mutate(roomID, rooms.TypeProsCons, func(room *shared.Room) (json.RawMessage, error) {
		return rooms.VoteItem(room.State, parsedKind, itemID), nil
	})
}
