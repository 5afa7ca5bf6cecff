package services

import (
	"context"
	"testing"
	"time"

	"fighter-arena/models"
	"fighter-arena/store"
	"fighter-arena/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionService_Purge(t *testing.T) {
	ctx := context.Background()
	db := storetest.New(t)
	fighters := store.NewFighterStore(db)
	contests := store.NewContestStore(db)

	a, err := fighters.Create(ctx, models.Fighter{Name: "a", Attack: 5, HitPoints: 5})
	require.NoError(t, err)
	b, err := fighters.Create(ctx, models.Fighter{Name: "b", Attack: 5, HitPoints: 5})
	require.NoError(t, err)
	c, err := contests.Create(ctx, models.Contest{FighterAID: a.ID, FighterBID: b.ID, WinnerID: a.ID})
	require.NoError(t, err)

	require.NoError(t, fighters.Delete(ctx, a.ID))
	require.NoError(t, contests.Delete(ctx, c.ID))

	svc := NewRetentionService(fighters, contests, 24*time.Hour)

	n, err := svc.Purge(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "rows deleted just now are still inside the retention window")

	svc.Now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	n, err = svc.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var remaining int64
	require.NoError(t, db.Unscoped().Model(&models.Fighter{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining, "live fighter b is kept")
}

func TestRetentionService_StartPurgeScheduler(t *testing.T) {
	db := storetest.New(t)
	svc := NewRetentionService(store.NewFighterStore(db), store.NewContestStore(db), time.Hour)

	sched, err := svc.StartPurgeScheduler(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Len(t, sched.Jobs(), 1)
	require.NoError(t, sched.Shutdown())
}
