package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

var userColumns = []string{
	"user_id", "name", "email", "password_hash",
	"dietary_preference", "allergies", "nutritional_goal",
	"preferred_cuisine", "created_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string { return &s }

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:              "John",
		Email:             "john@example.com",
		PasswordHash:      "hash",
		DietaryPreference: models.DietVegetarian,
		Allergies:         []string{"Peanuts"},
		NutritionalGoal:   models.GoalWeightLoss,
		PreferredCuisine:  "Mediterranean",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.Name, user.Email, user.PasswordHash,
			string(user.DietaryPreference), []byte(`["Peanuts"]`),
			string(user.NutritionalGoal), user.PreferredCuisine, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash,
			string(user.DietaryPreference), []byte(`["Peanuts"]`),
			string(user.NutritionalGoal), user.PreferredCuisine).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if len(created.Allergies) != 1 || created.Allergies[0] != "Peanuts" {
		t.Errorf("expected allergies [Peanuts], got %v", created.Allergies)
	}
}

func TestCreateUser_NilAllergiesStoredAsEmptyArray(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "hash"}

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.Name, user.Email, user.PasswordHash, "", []byte(`[]`), "", "", time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash, "", []byte(`[]`), "", "").
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Allergies == nil || len(created.Allergies) != 0 {
		t.Errorf("expected empty non-nil allergies, got %v", created.Allergies)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "John", "john@example.com", "hash",
			"vegetarian", []byte(`["Shellfish"]`), "weight-loss", "Italian", time.Now())

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "john@example.com" {
		t.Errorf("expected email john@example.com, got %s", found.Email)
	}
	if found.DietaryPreference != models.DietVegetarian {
		t.Errorf("expected vegetarian preference, got %s", found.DietaryPreference)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(42, "Jane", "jane@example.com", "hash", "", []byte(`[]`), "", "", time.Now())

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", found.UserID)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 42)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	update := models.ProfileUpdate{
		UserID: 1,
		Name:   strPtr("Johnny"),
	}

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "Johnny", "john@example.com", "hash", "", []byte(`[]`), "", "", time.Now())

	mock.ExpectQuery("UPDATE users SET name").
		WithArgs("Johnny", int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateProfile(ctx, update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Johnny" {
		t.Errorf("expected name Johnny, got %s", updated.Name)
	}
}

func TestUpdateProfile_AllergiesReplaced(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	allergies := []string{"Dairy", "Gluten"}
	update := models.ProfileUpdate{
		UserID:    1,
		Allergies: &allergies,
	}

	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "John", "john@example.com", "hash", "", []byte(`["Dairy","Gluten"]`), "", "", time.Now())

	mock.ExpectQuery("UPDATE users SET allergies").
		WithArgs([]byte(`["Dairy","Gluten"]`), int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateProfile(ctx, update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Allergies) != 2 {
		t.Errorf("expected 2 allergies, got %v", updated.Allergies)
	}
}

func TestUpdateProfile_NoFields(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	_, err := repo.UpdateProfile(ctx, models.ProfileUpdate{UserID: 1})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestUpdateProfile_UserGone(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	update := models.ProfileUpdate{UserID: 99, Name: strPtr("Ghost")}

	mock.ExpectQuery("UPDATE users SET name").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProfile(ctx, update)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	update := models.ProfileUpdate{UserID: 1, Email: strPtr("taken@example.com")}

	mock.ExpectQuery("UPDATE users SET email").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateProfile(ctx, update)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}
