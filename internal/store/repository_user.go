// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and session bookkeeping against the
// "users" table.
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

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user             models.User
		lastLoginAttempt sql.NullTime
		refreshToken     sql.NullString
		refreshExpiresAt sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsLoggedIn,
		&user.FailedLoginAttempts,
		&lastLoginAttempt,
		&user.IPAddress,
		&refreshToken,
		&refreshExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if lastLoginAttempt.Valid {
		user.LastLoginAttempt = &lastLoginAttempt.Time
	}
	if refreshToken.Valid {
		user.RefreshToken = refreshToken.String
	}
	if refreshExpiresAt.Valid {
		user.RefreshTokenExpiresAt = &refreshExpiresAt.Time
	}

	return user, nil
}

// queryUser runs a query returning one user row and maps the well-known
// failures to sentinels.
func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		log.Err(err).Str("func", funcName).Msg("username is taken")
		return models.User{}, ErrUsernameAlreadyExists
	default:
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.CreateUser", createUser, user.Username, user.PasswordHash)
}

// FindUserByUsername retrieves the user with the given username or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID retrieves the user with the given ID or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) RegisterFailedLogin(ctx context.Context, userID int64, maxAttempts int) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.RegisterFailedLogin", registerFailedLogin, userID, maxAttempts)
}

func (r *userRepository) StartSession(ctx context.Context, userID int64, refreshToken string, expiresAt time.Time) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.StartSession", startSession, userID, refreshToken, expiresAt)
}

func (r *userRepository) UpdateIPAddress(ctx context.Context, userID int64, ipAddress string) error {
	_, err := r.exec(ctx, "*userRepository.UpdateIPAddress", updateIPAddress, userID, ipAddress)
	return err
}

func (r *userRepository) EndSession(ctx context.Context, userID int64, refreshToken string) (bool, error) {
	affected, err := r.exec(ctx, "*userRepository.EndSession", endSession, userID, refreshToken)
	return affected > 0, err
}

func (r *userRepository) RevokeRefreshToken(ctx context.Context, refreshToken string) (int64, error) {
	return r.exec(ctx, "*userRepository.RevokeRefreshToken", revokeRefreshToken, refreshToken)
}

func (r *userRepository) ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return r.exec(ctx, "*userRepository.ClearExpiredSessions", clearExpiredSessions, now)
}

// DeleteUser hard-deletes the user; jobs and stages cascade.
// Returns [ErrNoUserWasFound] when nothing was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	affected, err := r.exec(ctx, "*userRepository.DeleteUser", deleteUser, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}

func (r *userRepository) exec(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
