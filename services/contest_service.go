package services

import (
	"errors"
	"fmt"
	"log"

	"fighter-arena/combat"
	"fighter-arena/models"
	"fighter-arena/store"

	"github.com/gofiber/fiber/v2"
)

type ContestService struct {
	Fighters store.FighterStore
	Contests store.ContestStore
}

func NewContestService(fighters store.FighterStore, contests store.ContestStore) *ContestService {
	return &ContestService{Fighters: fighters, Contests: contests}
}

// CreateContest loads both fighters, resolves the fight and stores the outcome.
func (s *ContestService) CreateContest(c *fiber.Ctx) error {
	var req models.CreateContestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.FighterA == nil || *req.FighterA == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fighter A id is required"})
	}
	if req.FighterB == nil || *req.FighterB == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fighter B id is required"})
	}

	ctx := c.UserContext()
	fighters := make([]*models.Fighter, 2)
	for i, id := range []string{*req.FighterA, *req.FighterB} {
		label := string(rune('A' + i))
		f, err := s.Fighters.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("fighter %s id not found", label)})
		}
		if err != nil {
			log.Printf("❌ [CONTEST] Fighter %s lookup failed: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
		}
		if f.HitPoints <= 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("fighter %s has no hit points left", label),
			})
		}
		fighters[i] = f
	}

	// 🎲 Resolver gets value copies; stored fighters are never touched
	outcome := combat.Outcome(*fighters[0], *fighters[1])

	contest, err := s.Contests.Create(ctx, models.Contest{
		FighterAID: fighters[0].ID,
		FighterBID: fighters[1].ID,
		WinnerID:   outcome.Winner.ID,
	})
	if err != nil {
		log.Printf("❌ [CONTEST] Create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create contest"})
	}

	log.Printf("⚔️ [CONTEST] %s vs %s → %s wins after %d turns", fighters[0].Name, fighters[1].Name, outcome.Winner.Name, outcome.Turns)
	return c.Status(fiber.StatusCreated).JSON(contest)
}

// GetAllContests returns every contest
func (s *ContestService) GetAllContests(c *fiber.Ctx) error {
	contests, err := s.Contests.List(c.UserContext())
	if err != nil {
		log.Printf("❌ [CONTEST] List failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch contests"})
	}
	return c.JSON(contests)
}

// GetContestByID returns a single contest
func (s *ContestService) GetContestByID(c *fiber.Ctx) error {
	contest, err := s.Contests.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return contestLookupError(c, err)
	}
	return c.JSON(contest)
}

// DeleteContest soft-deletes a contest
func (s *ContestService) DeleteContest(c *fiber.Ctx) error {
	if err := s.Contests.Delete(c.UserContext(), c.Params("id")); err != nil {
		return contestLookupError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func contestLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "contest not found"})
	}
	log.Printf("❌ [CONTEST] DB error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
}
