package controllers

import (
	"errors"

	"github.com/Hengki-Setiawan/pilihpilih/services"
	"github.com/Hengki-Setiawan/pilihpilih/shared"

	"github.com/gofiber/fiber/v2"
)

type RoomController struct {
	roomService *services.RoomService
}

func NewRoomController(state *shared.State) *RoomController {
	roomService := services.NewRoomService(state)
	go roomService.StartPurgeSweep(shared.PurgeSweepInterval)
	return &RoomController{
		roomService,
	}
}

// sendError maps service errors onto the standard response envelope:
// recoverable client errors keep their status, everything else is a
// 500 with a generic message.
func sendError(c *fiber.Ctx, err error, fallback string) error {
	var clientErr *shared.ClientError
	if errors.As(err, &clientErr) {
		return shared.SendStandardResponse(c, clientErr.Code(), nil, clientErr.Error())
	}
	return shared.SendStandardResponse(c, shared.StatusInternalServerError, nil, fallback)
}

type createRoomRequest struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	Options       string `json:"options"`
	DurationHours int    `json:"durationHours"`
}

func (rc *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req createRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.SendStandardResponse(c, shared.StatusBadRequest, nil, "invalid request body")
	}

	room, err := rc.roomService.Create(req.Title, req.Type, req.Options, req.DurationHours)
	if err != nil {
		return sendError(c, err, "failed to create room")
	}

	return shared.SendStandardResponse(
		c,
		shared.StatusOK,
		&map[string]interface{}{
			"room": room,
		},
		"room created successfully",
	)
}

// GetRoom is the polling endpoint. Expired rooms are still returned,
// with an expired flag, so viewers can render the dedicated expired
// view instead of a not-found page.
func (rc *RoomController) GetRoom(c *fiber.Ctx) error {
	room, err := rc.roomService.Get(c.Params("roomId"))
	if err != nil {
		return sendError(c, err, "failed to fetch room")
	}

	return shared.SendStandardResponse(
		c,
		shared.StatusOK,
		&map[string]interface{}{
			"room":    room,
			"expired": room.Expired(rc.roomService.Now()),
		},
		"room fetched successfully",
	)
}

func (rc *RoomController) DeleteRoom(c *fiber.Ctx) error {
	if err := rc.roomService.Delete(c.Params("roomId")); err != nil {
		return sendError(c, err, "failed to delete room")
	}
	return shared.SendStandardResponse(c, shared.StatusOK, nil, "room deleted successfully")
}

// ok is the shared happy-path response for action endpoints; pollers
// pick up the new state on their next tick.
func ok(c *fiber.Ctx, message string) error {
	return shared.SendStandardResponse(c, shared.StatusOK, nil, message)
}

func (rc *RoomController) Spin(c *fiber.Ctx) error {
	if err := rc.roomService.Spin(c.Params("roomId")); err != nil {
		return sendError(c, err, "failed to spin the wheel")
	}
	return ok(c, "wheel spun")
}

type voteRequest struct {
	OptionId string `json:"optionId"`
}

func (rc *RoomController) Vote(c *fiber.Ctx) error {
	var req voteRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.SendStandardResponse(c, shared.StatusBadRequest, nil, "invalid request body")
	}
	if err := rc.roomService.Vote(c.Params("roomId"), req.OptionId); err != nil {
		return sendError(c, err, "failed to record vote")
	}
	return ok(c, "vote recorded")
}

func (rc *RoomController) Pick(c *fiber.Ctx) error {
	if err := rc.roomService.Pick(c.Params("roomId")); err != nil {
		return sendError(c, err, "failed to pick")
	}
	return ok(c, "picked")
}

func (rc *RoomController) Roll(c *fiber.Ctx) error {
	if err := rc.roomService.Roll(c.Params("roomId")); err != nil {
		return sendError(c, err, "failed to roll")
	}
	return ok(c, "rolled")
}

func (rc *RoomController) Draw(c *fiber.Ctx) error {
	if err := rc.roomService.Draw(c.Params("roomId")); err != nil {
		return sendError(c, err, "failed to draw a card")
	}
	return ok(c, "card drawn")
}

func (rc *RoomController) ResetCards(c *fiber.Ctx) error {
	if err := rc.roomService.ResetCards(c.Params("roomId")); err != nil {
		return sendError(c, err, "failed to reset the deck")
	}
	return ok(c, "deck reset")
}

type addItemRequest struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (rc *RoomController) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.SendStandardResponse(c, shared.StatusBadRequest, nil, "invalid request body")
	}
	if err := rc.roomService.AddItem(c.Params("roomId"), req.Kind, req.Text); err != nil {
		return sendError(c, err, "failed to add item")
	}
	return ok(c, "item added")
}

type voteItemRequest struct {
	Kind string `json:"kind"`
}

func (rc *RoomController) VoteItem(c *fiber.Ctx) error {
	var req voteItemRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.SendStandardResponse(c, shared.StatusBadRequest, nil, "invalid request body")
	}
	if err := rc.roomService.VoteItem(c.Params("roomId"), req.Kind, c.Params("itemId")); err != nil {
		return sendError(c, err, "failed to vote for item")
	}
	return ok(c, "item vote recorded")
}
