package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/persistence/model"
)

func newTestGoal(userID uuid.UUID, name string, priority entity.GoalPriority) *entity.Goal {
	return entity.NewGoal(userID, name, "", decimal.RequireFromString("1000"),
		entity.GoalCategoryOther, priority, nil, false, decimal.Zero)
}

func TestGoalRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := newTestGoal(userID, "Emergency Fund", entity.GoalPriorityHigh)
	require.NoError(t, repo.Create(ctx, goal))

	t.Run("finds an owned goal", func(t *testing.T) {
		found, err := repo.FindByID(ctx, goal.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, goal.ID, found.ID)
		assert.Equal(t, "Emergency Fund", found.Name)
		assert.True(t, found.TargetAmount.Equal(goal.TargetAmount))
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New(), userID)
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	})

	t.Run("another user's goal yields not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, goal.ID, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	})
}

func TestGoalRepository_FindByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	low := newTestGoal(userID, "Vacation", entity.GoalPriorityLow)
	high := newTestGoal(userID, "Emergency Fund", entity.GoalPriorityHigh)
	medium := newTestGoal(userID, "New Car", entity.GoalPriorityMedium)
	for _, g := range []*entity.Goal{low, high, medium} {
		require.NoError(t, repo.Create(ctx, g))
	}
	require.NoError(t, repo.Create(ctx, newTestGoal(uuid.New(), "Not Mine", entity.GoalPriorityHigh)))

	t.Run("orders by priority descending", func(t *testing.T) {
		goals, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)

		require.Len(t, goals, 3)
		assert.Equal(t, "Emergency Fund", goals[0].Goal.Name)
		assert.Equal(t, "New Car", goals[1].Goal.Name)
		assert.Equal(t, "Vacation", goals[2].Goal.Name)
	})

	t.Run("carries at most five most recent contributions", func(t *testing.T) {
		base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 7; i++ {
			c := entity.NewGoalContribution(high.ID, userID, decimal.RequireFromString("10"),
				fmt.Sprintf("contribution %d", i), entity.ContributionTypeManual)
			c.ContributionDate = base.AddDate(0, 0, i)
			require.NoError(t, db.Create(model.GoalContributionFromEntity(c)).Error)
		}

		goals, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)

		require.Len(t, goals[0].Contributions, 5)
		assert.Equal(t, "contribution 6", goals[0].Contributions[0].Description)
		assert.Equal(t, "contribution 2", goals[0].Contributions[4].Description)
		assert.Empty(t, goals[1].Contributions)
	})
}

func TestGoalRepository_AddContribution(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists contribution and goal together", func(t *testing.T) {
		goal := newTestGoal(userID, "Emergency Fund", entity.GoalPriorityHigh)
		require.NoError(t, repo.Create(ctx, goal))

		contribution := entity.NewGoalContribution(goal.ID, userID,
			decimal.RequireFromString("250"), "bonus", entity.ContributionTypeManual)
		goal.CurrentAmount = goal.CurrentAmount.Add(contribution.Amount)

		require.NoError(t, repo.AddContribution(ctx, goal, contribution))

		found, err := repo.FindByID(ctx, goal.ID, userID)
		require.NoError(t, err)
		assert.True(t, found.CurrentAmount.Equal(decimal.RequireFromString("250")))

		var count int64
		require.NoError(t, db.Model(&model.GoalContributionModel{}).
			Where("goal_id = ?", goal.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestGoalRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("removes the goal and its contributions", func(t *testing.T) {
		goal := newTestGoal(userID, "Vacation", entity.GoalPriorityMedium)
		require.NoError(t, repo.Create(ctx, goal))
		contribution := entity.NewGoalContribution(goal.ID, userID,
			decimal.RequireFromString("50"), "", entity.ContributionTypeManual)
		require.NoError(t, repo.AddContribution(ctx, goal, contribution))

		require.NoError(t, repo.Delete(ctx, goal.ID))

		_, err := repo.FindByID(ctx, goal.ID, userID)
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

		var count int64
		require.NoError(t, db.Model(&model.GoalContributionModel{}).
			Where("goal_id = ?", goal.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown goal yields not found", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
	})
}

func TestGoalRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := newTestGoal(userID, "Vacation", entity.GoalPriorityLow)
	require.NoError(t, repo.Create(ctx, goal))

	goal.Name = "Dream Vacation"
	goal.Status = entity.GoalStatusPaused
	require.NoError(t, repo.Update(ctx, goal))

	found, err := repo.FindByID(ctx, goal.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Dream Vacation", found.Name)
	assert.Equal(t, entity.GoalStatusPaused, found.Status)
}
