package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles profile and contact persistence against the "users" table.
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
// [models.User] with the server-assigned identity.
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new profile.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.Surname, user.Birthday)

	var created models.User
	if err := row.Scan(&created.ID, &created.FirstName, &created.LastName, &created.Surname, &created.Birthday, &created.Email, &created.PhoneNumber); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetUserByID retrieves a user record by its identity.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	var found models.User
	if err := row.Scan(&found.ID, &found.FirstName, &found.LastName, &found.Surname, &found.Birthday, &found.Email, &found.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetUserByID").Int64("user_id", userID).Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllUsers retrieves every stored user. Returns an empty slice when the
// table is empty; row order is whatever the storage engine yields.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("failed to execute query for getting all users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)

	for rows.Next() {
		var user models.User

		scanErr := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Surname, &user.Birthday, &user.Email, &user.PhoneNumber)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.GetAllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.GetAllUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateUser overwrites first name, last name, surname and birthday of an
// existing user in place and returns the stored row. The UPDATE carries a
// RETURNING clause, so the absence of a result row means the user does not
// exist.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.User
	if err := row.Scan(&updated.ID, &updated.FirstName, &updated.LastName, &updated.Surname, &updated.Birthday, &updated.Email, &updated.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("failed to scan updated user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user row. Owned images are removed by the
// ON DELETE CASCADE constraint on the images table.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateContacts sets or clears both contact columns of a user in a single
// statement. Passing nil for both clears the pair; passing values for both
// sets it. The precondition checks ("not yet added" / "already added") are
// the service's responsibility.
func (r *userRepository) UpdateContacts(ctx context.Context, userID int64, email, phoneNumber *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactsQuery(userID, email, phoneNumber)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateContacts").Int64("user_id", userID).Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.db.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).Str("func", "*userRepository.UpdateContacts").Int64("user_id", userID).Msg("failed to update contacts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
