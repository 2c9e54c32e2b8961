package routes

import (
	"github.com/Hengki-Setiawan/pilihpilih/controllers"
	"github.com/Hengki-Setiawan/pilihpilih/shared"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, state *shared.State) {
	app.Use(shared.GetRequestLoggingMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(200).JSON(fiber.Map{
			"message": "pilihpilih is alive",
		})
	})

	roomController := controllers.NewRoomController(state)

	api := app.Group("/api")
	api.Post("/rooms", roomController.CreateRoom)
	api.Get("/rooms/:roomId", roomController.GetRoom)
	api.Delete("/rooms/:roomId", roomController.DeleteRoom)

	api.Post("/rooms/:roomId/spin", roomController.Spin)
	api.Post("/rooms/:roomId/vote", roomController.Vote)
	api.Post("/rooms/:roomId/pick", roomController.Pick)
	api.Post("/rooms/:roomId/roll", roomController.Roll)
	api.Post("/rooms/:roomId/draw", roomController.Draw)
	api.Post("/rooms/:roomId/draw/reset", roomController.ResetCards)
	api.Post("/rooms/:roomId/items", roomController.AddItem)
	api.Post("/rooms/:roomId/items/:itemId/vote", roomController.VoteItem)
}
