// handlers/fighter.go
package handlers

import (
	"fighter-arena/services"

	"github.com/gofiber/fiber/v2"
)

func SetupFighterRoutes(api fiber.Router, fighterService *services.FighterService) {
	api.Get("/fighters", fighterService.GetAllFighters)
	api.Post("/fighters", fighterService.CreateFighter)

	// 📥 Bulk import
	api.Post("/fighters/import_csv", fighterService.ImportCSV)

	api.Get("/fighters/:id", fighterService.GetFighterByID)
	api.Put("/fighters/:id", fighterService.UpdateFighter)
	api.Delete("/fighters/:id", fighterService.DeleteFighter)
	api.Post("/fighters/:id/image", fighterService.UploadFighterImage)
}
