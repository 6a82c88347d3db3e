package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and partial profile updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	allergiesJSON, err := marshalAllergies(user.Allergies)
	if err != nil {
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, createUser,
		user.Name, user.Email, user.PasswordHash,
		string(user.DietaryPreference), allergiesJSON,
		string(user.NutritionalGoal), user.PreferredCuisine,
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves a user record by email using the
// [findUserByEmail] query.
//
// An empty result set is mapped to [ErrNoUserWasFound]; any other failure is
// wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its identifier using the
// [findUserByID] query. Error mapping matches [FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile update built dynamically from the
// non-nil fields of update (see [buildUpdateProfileQuery]) and returns the
// updated record from the RETURNING clause.
//
// Error handling:
//   - No row updated → [ErrNoUserWasFound] (the user no longer exists).
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists]
//     (the new email is already taken by another account).
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	var allergiesJSON []byte
	if update.Allergies != nil {
		var err error
		allergiesJSON, err = marshalAllergies(*update.Allergies)
		if err != nil {
			return models.User{}, err
		}
	}

	query, args, err := buildUpdateProfileQuery(update, allergiesJSON)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updatedUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updatedUser, nil
}

// scanUser scans one users row (the full column list shared by every user
// query) into a [models.User], decoding the JSONB allergy list.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var allergiesJSON []byte

	err := row.Scan(
		&user.UserID, &user.Name, &user.Email, &user.PasswordHash,
		&user.DietaryPreference, &allergiesJSON,
		&user.NutritionalGoal, &user.PreferredCuisine, &user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Allergies, err = unmarshalAllergies(allergiesJSON)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// marshalAllergies encodes the allergy list for JSONB storage. A nil list is
// stored as an empty array so that reads never yield null.
func marshalAllergies(allergies []string) ([]byte, error) {
	if allergies == nil {
		allergies = []string{}
	}

	data, err := json.Marshal(allergies)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return data, nil
}

func unmarshalAllergies(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var allergies []string
	if err := json.Unmarshal(data, &allergies); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return allergies, nil
}
