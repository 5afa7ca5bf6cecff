package services

import (
	"context"
	"log"
	"time"

	"fighter-arena/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthService struct {
	DB *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{DB: db}
}

func (s *HealthService) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readyz reports whether the database answers within two seconds.
func (s *HealthService) Readyz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := store.Ping(ctx, s.DB); err != nil {
		log.Printf("⚠️ [HEALTH] Database not ready: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
