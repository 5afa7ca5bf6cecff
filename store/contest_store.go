package store

import (
	"context"
	"fmt"
	"time"

	"fighter-arena/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContestStore has no Update: contests are immutable once written.
type ContestStore interface {
	List(ctx context.Context) ([]models.Contest, error)
	Get(ctx context.Context, id string) (*models.Contest, error)
	Create(ctx context.Context, c models.Contest) (*models.Contest, error)
	Delete(ctx context.Context, id string) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

type contestStore struct {
	db *gorm.DB
}

func NewContestStore(db *gorm.DB) ContestStore {
	return &contestStore{db: db}
}

func (s *contestStore) List(ctx context.Context) ([]models.Contest, error) {
	contests := []models.Contest{}
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&contests).Error; err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}
	return contests, nil
}

func (s *contestStore) Get(ctx context.Context, id string) (*models.Contest, error) {
	var c models.Contest
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// Create stores an already resolved contest. The winner is checked, never recomputed.
func (s *contestStore) Create(ctx context.Context, c models.Contest) (*models.Contest, error) {
	if c.WinnerID == "" || (c.WinnerID != c.FighterAID && c.WinnerID != c.FighterBID) {
		return nil, ErrInvalidWinner
	}
	c.ID = uuid.NewString()
	c.Timestamps = models.Timestamps{}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create contest: %w", err)
	}
	return &c, nil
}

func (s *contestStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contest{})
	if res.Error != nil {
		return fmt.Errorf("delete contest %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *contestStore) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	n, err := purge(ctx, s.db, &models.Contest{}, before)
	if err != nil {
		return 0, fmt.Errorf("purge contests: %w", err)
	}
	return n, nil
}
