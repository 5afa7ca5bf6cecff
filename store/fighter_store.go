package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fighter-arena/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FighterStore interface {
	List(ctx context.Context) ([]models.Fighter, error)
	Get(ctx context.Context, id string) (*models.Fighter, error)
	Create(ctx context.Context, f models.Fighter) (*models.Fighter, error)
	Update(ctx context.Context, id string, f models.Fighter) (*models.Fighter, error)
	// SetImageURL changes only image_url, leaving concurrent edits to other fields intact.
	SetImageURL(ctx context.Context, id, url string) (*models.Fighter, error)
	Delete(ctx context.Context, id string) error
	// CreateMany creates every fighter on its own; failures do not roll back earlier rows.
	CreateMany(ctx context.Context, fighters []models.Fighter) BulkResult
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

// BulkFailure records a fighter that could not be stored. Index is the
// position in the slice handed to CreateMany.
type BulkFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

type BulkResult struct {
	Created []models.Fighter `json:"created"`
	Failed  []BulkFailure    `json:"failed"`
}

type fighterStore struct {
	db *gorm.DB
}

func NewFighterStore(db *gorm.DB) FighterStore {
	return &fighterStore{db: db}
}

func (s *fighterStore) List(ctx context.Context) ([]models.Fighter, error) {
	fighters := []models.Fighter{}
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&fighters).Error; err != nil {
		return nil, fmt.Errorf("list fighters: %w", err)
	}
	return fighters, nil
}

func (s *fighterStore) Get(ctx context.Context, id string) (*models.Fighter, error) {
	var f models.Fighter
	if err := s.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (s *fighterStore) Create(ctx context.Context, f models.Fighter) (*models.Fighter, error) {
	// ✅ Server-side id always wins over anything the client sent
	f.ID = uuid.NewString()
	f.Timestamps = models.Timestamps{}
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, fmt.Errorf("create fighter: %w", err)
	}
	return &f, nil
}

func (s *fighterStore) Update(ctx context.Context, id string, f models.Fighter) (*models.Fighter, error) {
	var updated models.Fighter
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		updated.Name = f.Name
		updated.ImageURL = f.ImageURL
		updated.Attack = f.Attack
		updated.Defense = f.Defense
		updated.Speed = f.Speed
		updated.HitPoints = f.HitPoints
		updated.UpdatedAt = time.Now()

		return tx.Save(&updated).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update fighter %s: %w", id, err)
	}
	return &updated, nil
}

func (s *fighterStore) SetImageURL(ctx context.Context, id, url string) (*models.Fighter, error) {
	var updated models.Fighter
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Fighter{}).Where("id = ?", id).Update("image_url", url)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("set image of fighter %s: %w", id, err)
	}
	return &updated, nil
}

func (s *fighterStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Fighter{})
	if res.Error != nil {
		return fmt.Errorf("delete fighter %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *fighterStore) CreateMany(ctx context.Context, fighters []models.Fighter) BulkResult {
	result := BulkResult{Created: []models.Fighter{}, Failed: []BulkFailure{}}
	for i, f := range fighters {
		created, err := s.Create(ctx, f)
		if err != nil {
			result.Failed = append(result.Failed, BulkFailure{Index: i, Name: f.Name, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, *created)
	}
	return result
}

func (s *fighterStore) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	n, err := purge(ctx, s.db, &models.Fighter{}, before)
	if err != nil {
		return 0, fmt.Errorf("purge fighters: %w", err)
	}
	return n, nil
}
