// handlers/contest.go
package handlers

import (
	"fighter-arena/services"

	"github.com/gofiber/fiber/v2"
)

// SetupContestRoutes registers contest endpoints. There is no update route:
// contests are immutable.
func SetupContestRoutes(api fiber.Router, contestService *services.ContestService) {
	api.Get("/contests", contestService.GetAllContests)
	api.Post("/contests", contestService.CreateContest)
	api.Get("/contests/:id", contestService.GetContestByID)
	api.Delete("/contests/:id", contestService.DeleteContest)
}
