package services

import (
	"errors"
	"log"
	"strings"

	"fighter-arena/importer"
	"fighter-arena/models"
	"fighter-arena/storage"
	"fighter-arena/store"
	"fighter-arena/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type FighterService struct {
	Fighters store.FighterStore
	Images   storage.ImageUploader // nil when object storage is not configured
}

func NewFighterService(fighters store.FighterStore, images storage.ImageUploader) *FighterService {
	return &FighterService{Fighters: fighters, Images: images}
}

// GetAllFighters returns every fighter
func (s *FighterService) GetAllFighters(c *fiber.Ctx) error {
	fighters, err := s.Fighters.List(c.UserContext())
	if err != nil {
		log.Printf("❌ [FIGHTER] List failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch fighters"})
	}
	return c.JSON(fighters)
}

// GetFighterByID returns a single fighter
func (s *FighterService) GetFighterByID(c *fiber.Ctx) error {
	fighter, err := s.Fighters.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fighterLookupError(c, err)
	}
	return c.JSON(fighter)
}

// CreateFighter stores a new fighter; the id is always generated here.
func (s *FighterService) CreateFighter(c *fiber.Ctx) error {
	input, err := parseFighterInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fighter, err := s.Fighters.Create(c.UserContext(), input.Fighter())
	if err != nil {
		log.Printf("❌ [FIGHTER] Create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create fighter"})
	}
	return c.Status(fiber.StatusCreated).JSON(fighter)
}

// UpdateFighter replaces every editable field of an existing fighter
func (s *FighterService) UpdateFighter(c *fiber.Ctx) error {
	input, err := parseFighterInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fighter, err := s.Fighters.Update(c.UserContext(), c.Params("id"), input.Fighter())
	if err != nil {
		return fighterLookupError(c, err)
	}
	return c.JSON(fighter)
}

// DeleteFighter soft-deletes a fighter
func (s *FighterService) DeleteFighter(c *fiber.Ctx) error {
	if err := s.Fighters.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fighterLookupError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportCSV bulk-creates fighters from the multipart "file" field.
// A malformed row rejects the whole file; store failures are reported per row.
func (s *FighterService) ImportCSV(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file uploaded"})
	}
	files := form.File["file"]
	if len(files) == 0 {
		if len(form.Value["file"]) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file name provided"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file uploaded"})
	}
	fileHeader := files[0]
	if fileHeader.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file name provided"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open uploaded file"})
	}
	defer file.Close()

	fighters, err := importer.Parse(file)
	if err != nil {
		log.Printf("⚠️ [IMPORT] Rejected %s: %v", fileHeader.Filename, err)
		if errors.Is(err, importer.ErrNoRows) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no valid fighters found in the CSV file"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "incomplete data, check your file",
			"details": err.Error(),
		})
	}

	result := s.Fighters.CreateMany(c.UserContext(), fighters)
	log.Printf("📥 [IMPORT] %s: %d created, %d failed", fileHeader.Filename, len(result.Created), len(result.Failed))

	if len(result.Created) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "failed to create fighters",
			"failed": result.Failed,
		})
	}
	return c.JSON(result)
}

// UploadFighterImage stores the multipart "image" in object storage and points
// the fighter's image_url at it.
func (s *FighterService) UploadFighterImage(c *fiber.Ctx) error {
	if s.Images == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "image storage is not configured"})
	}

	ctx := c.UserContext()
	id := c.Params("id")
	fighter, err := s.Fighters.Get(ctx, id)
	if err != nil {
		return fighterLookupError(c, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image is required"})
	}
	body, contentType, err := utils.ReadFormFile(fileHeader, utils.MaxImageSize)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !strings.HasPrefix(contentType, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file must be an image"})
	}

	url, err := s.Images.Upload(ctx, storage.FighterImageKey(fighter.Name, fileHeader.Filename), contentType, body)
	if err != nil {
		log.Printf("❌ [FIGHTER] Image upload for %s failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload image"})
	}

	updated, err := s.Fighters.SetImageURL(ctx, id, url)
	if err != nil {
		return fighterLookupError(c, err)
	}
	return c.JSON(updated)
}

func parseFighterInput(c *fiber.Ctx) (*models.FighterInput, error) {
	var input models.FighterInput
	if err := c.BodyParser(&input); err != nil {
		return nil, errors.New("invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	return &input, nil
}

func fighterLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "fighter not found"})
	}
	log.Printf("❌ [FIGHTER] DB error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
}
