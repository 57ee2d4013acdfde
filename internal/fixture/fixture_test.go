package fixture_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgrattan/fieldhand/internal/crop"
	"github.com/jgrattan/fieldhand/internal/farm"
	"github.com/jgrattan/fieldhand/internal/fixture"
	"github.com/jgrattan/fieldhand/internal/task"
	"github.com/jgrattan/fieldhand/internal/transaction"
)

var ctx = context.Background()

func TestFarmStore_CRUD(t *testing.T) {
	store := fixture.NewFarmStore(fixture.SeedFarms(time.Now()))

	farms, err := store.ListFarms(ctx)
	require.NoError(t, err)
	require.Len(t, farms, 3)

	created := &farm.Farm{Name: "New Holding", SizeAcres: 10}
	require.NoError(t, store.CreateFarm(ctx, created))
	assert.Equal(t, int64(4), created.ID)

	got, err := store.GetFarm(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "New Holding", got.Name)

	got.Name = "Renamed Holding"
	require.NoError(t, store.UpdateFarm(ctx, got))

	got, err = store.GetFarm(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Holding", got.Name)

	require.NoError(t, store.DeleteFarm(ctx, 4))

	_, err = store.GetFarm(ctx, 4)
	assert.ErrorIs(t, err, farm.ErrNotFound)
}

func TestFarmStore_NotFound(t *testing.T) {
	store := fixture.NewFarmStore(nil)

	_, err := store.GetFarm(ctx, 1)
	assert.ErrorIs(t, err, farm.ErrNotFound)

	assert.ErrorIs(t, store.UpdateFarm(ctx, &farm.Farm{ID: 1}), farm.ErrNotFound)
	assert.ErrorIs(t, store.DeleteFarm(ctx, 1), farm.ErrNotFound)
}

func TestFarmStore_ReturnsCopies(t *testing.T) {
	store := fixture.NewFarmStore([]*farm.Farm{{ID: 1, Name: "Green Valley Farm"}})

	got, err := store.GetFarm(ctx, 1)
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store.
	got.Name = "Changed"

	again, err := store.GetFarm(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Green Valley Farm", again.Name)
}

func TestCropStore_ListByFarm(t *testing.T) {
	store := fixture.NewCropStore(fixture.SeedCrops(time.Now()))

	crops, err := store.ListCropsByFarm(ctx, 1)
	require.NoError(t, err)
	require.Len(t, crops, 2)

	for _, c := range crops {
		assert.Equal(t, int64(1), c.FarmID)
	}
}

func TestCropStore_CreateAssignsNextID(t *testing.T) {
	store := fixture.NewCropStore(fixture.SeedCrops(time.Now()))

	c := &crop.Crop{FarmID: 1, Name: "Pumpkin", Status: crop.StatusPlanted}
	require.NoError(t, store.CreateCrop(ctx, c))
	assert.Equal(t, int64(6), c.ID)
}

func TestTaskStore_CRUD(t *testing.T) {
	store := fixture.NewTaskStore(nil)

	created := &task.Task{FarmID: 1, Title: "Check irrigation", Priority: task.PriorityLow, DueDate: time.Now()}
	require.NoError(t, store.CreateTask(ctx, created))
	assert.Equal(t, int64(1), created.ID)

	created.Completed = true
	require.NoError(t, store.UpdateTask(ctx, created))

	got, err := store.GetTask(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	_, err = store.GetTask(ctx, 2)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestTransactionStore_ListByFarm(t *testing.T) {
	store := fixture.NewTransactionStore(fixture.SeedTransactions(time.Now()))

	txs, err := store.ListTransactionsByFarm(ctx, 3)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Irrigation pump repair", txs[0].Description)
}

func TestTransactionStore_Delete(t *testing.T) {
	store := fixture.NewTransactionStore([]*transaction.Transaction{{ID: 1}})

	require.NoError(t, store.DeleteTransaction(ctx, 1))
	assert.ErrorIs(t, store.DeleteTransaction(ctx, 1), transaction.ErrNotFound)
}

func TestSeeds_AnchoredToNow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tasks := fixture.SeedTasks(now)

	var overdue, dueSoon, completed int

	for _, tsk := range tasks {
		if task.IsOverdue(tsk, now) {
			overdue++
		}

		if task.IsDueSoon(tsk, now) {
			dueSoon++
		}

		if tsk.Completed {
			completed++
		}
	}

	// The sample data always demonstrates every task state.
	assert.NotZero(t, overdue)
	assert.NotZero(t, dueSoon)
	assert.NotZero(t, completed)

	crops := fixture.SeedCrops(now)

	var harvestOverdue bool

	for _, c := range crops {
		if c.Status != crop.StatusHarvested && crop.DaysToHarvest(c.ExpectedHarvest, now) < 0 {
			harvestOverdue = true
		}
	}

	assert.True(t, harvestOverdue)
}
