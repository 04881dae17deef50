package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fitness-partner/backend/internal/domain/entity"
	"github.com/fitness-partner/backend/internal/integration/persistence/model"
)

// openTestDB opens a private in-memory database migrated with the full
// schema. A single connection keeps the database alive for the test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.MealModel{},
		&model.DailyGoalModel{},
		&model.ConversationModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func seedableUser(phone string) *entity.User {
	return entity.NewUser(
		"Joao Silva",
		phone,
		time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		80, 180,
		entity.GenderMale,
		entity.ActivityModeratelyActive,
		entity.GoalLoseWeight,
	)
}

func seedUser(t *testing.T, db *gorm.DB, phone string) *entity.User {
	t.Helper()
	user := seedableUser(phone)
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedMeal(t *testing.T, userID uuid.UUID, calories int, mealDate time.Time) *entity.Meal {
	t.Helper()
	return entity.NewMeal(
		userID,
		"frango grelhado com arroz",
		entity.MealTypeLunch,
		calories,
		nil, nil, nil,
		mealDate,
		nil, nil,
	)
}
