// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
	"github.com/fitness-partner/backend/internal/integration/persistence/model"
)

// mealRepository implements the adapter.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository instance.
func NewMealRepository(db *gorm.DB) adapter.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// CreateWithGoalCredit persists the meal and credits its calories to the
// owner's daily goal for today, regardless of the meal's own date, inside a
// single transaction. When today has no aggregate row yet one is created
// seeded with calorieGoal; a concurrent insert race is resolved by fetching
// the winner's row.
func (r *mealRepository) CreateWithGoalCredit(ctx context.Context, meal *entity.Meal, calorieGoal int) (*entity.DailyGoal, error) {
	var goal *entity.DailyGoal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mealModel := model.MealFromEntity(meal)
		if err := tx.Create(mealModel).Error; err != nil {
			return err
		}

		date := entity.TruncateToDate(time.Now().UTC())
		loaded, err := findOrCreateGoal(tx, meal.UserID, date, calorieGoal)
		if err != nil {
			return err
		}

		loaded.AddMeal(meal.Calories)
		if err := tx.Save(model.DailyGoalFromEntity(loaded)).Error; err != nil {
			return err
		}

		goal = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// findOrCreateGoal loads the aggregate row for (userID, date), creating it
// when absent. The insert runs with ON CONFLICT DO NOTHING so a concurrent
// writer winning the race does not abort the enclosing transaction; the
// winner's row is fetched afterwards.
func findOrCreateGoal(tx *gorm.DB, userID uuid.UUID, date time.Time, calorieGoal int) (*entity.DailyGoal, error) {
	var goalModel model.DailyGoalModel
	err := tx.Where("user_id = ?", userID).Where("date = ?", date).First(&goalModel).Error
	if err == nil {
		return goalModel.ToEntity(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := entity.NewDailyGoal(userID, date, calorieGoal)
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model.DailyGoalFromEntity(fresh))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return fresh, nil
	}

	if err := tx.Where("user_id = ?", userID).Where("date = ?", date).First(&goalModel).Error; err != nil {
		return nil, domainerror.ErrDailyGoalConflict
	}
	return goalModel.ToEntity(), nil
}

// FindByID retrieves a meal by its ID.
func (r *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealModel model.MealModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&mealModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMealNotFound
		}
		return nil, result.Error
	}
	return mealModel.ToEntity(), nil
}

// FindByUser retrieves all meals for a user, newest first.
func (r *mealRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Meal, error) {
	var mealModels []model.MealModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("meal_date DESC").
		Find(&mealModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMealEntities(mealModels), nil
}

// FindByUserAndDateRange retrieves the user's meals within [start, end), newest first.
func (r *mealRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Meal, error) {
	var mealModels []model.MealModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("meal_date >= ? AND meal_date < ?", start, end).
		Order("meal_date DESC").
		Find(&mealModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMealEntities(mealModels), nil
}

// CountByUserOnDate counts the user's meals on the given calendar date.
func (r *mealRepository) CountByUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	dayStart := entity.TruncateToDate(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("user_id = ?", userID).
		Where("meal_date >= ? AND meal_date < ?", dayStart, dayEnd).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes a meal from the database.
func (r *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MealModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toMealEntities(mealModels []model.MealModel) []*entity.Meal {
	meals := make([]*entity.Meal, len(mealModels))
	for i, mealModel := range mealModels {
		meals[i] = mealModel.ToEntity()
	}
	return meals
}
