// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MyungJiwoo/career-log/internal/adapter"
	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/internal/validators"
	"github.com/MyungJiwoo/career-log/models"
)

// Messages returned in [models.VerifyResponse].
const (
	verifyMessageNoToken      = "no access token"
	verifyMessageInvalidToken = "token is invalid"
	verifyMessageExpiredLogin = "login has expired"
)

// authService is the concrete implementation of AuthService.
// It handles signup, password checks with lockout, and the access/refresh
// token lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// ipLookup records the public address of the host on login. Optional.
	ipLookup adapter.IPLookup

	validator validators.Validator

	accessTokenSignKey  string
	refreshTokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	maxFailedLoginAttempts int
	passwordHashCost       int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, ipLookup adapter.IPLookup, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		ipLookup:               ipLookup,
		validator:              validator,
		accessTokenSignKey:     cfg.AccessTokenSignKey,
		refreshTokenSignKey:    cfg.RefreshTokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		accessTokenDuration:    cfg.AccessTokenDuration,
		refreshTokenDuration:   cfg.RefreshTokenDuration,
		maxFailedLoginAttempts: cfg.MaxFailedLoginAttempts,
		passwordHashCost:       cfg.PasswordHashCost,
		logger:                 logger,
	}
}

// Signup creates a new user account.
//
// Returns the persisted user or:
//   - ErrInvalidArgument if the username is not 2-30 characters after
//     trimming or the password is empty.
//   - ErrConflict if the username is taken.
func (a *authService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Username: credentials.Username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Err(err).Str("func", "authService.Signup").Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return user, nil
}

// Login authenticates an existing user.
//
// Returns the session or:
//   - ErrInvalidCredentials if the user does not exist.
//   - ErrAccountLocked if the account is inactive, including when this very
//     attempt reached the failure limit.
//   - *WrongPasswordError with the remaining attempts otherwise.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if credentials.Username == "" || credentials.Password == "" {
		return models.Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !user.IsActive {
		return models.Session{}, ErrAccountLocked
	}

	matches, err := utils.ComparePassword(user.PasswordHash, credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("stored password hash is malformed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !matches {
		return models.Session{}, a.registerFailedLogin(ctx, user)
	}

	return a.startSession(ctx, user)
}

func (a *authService) registerFailedLogin(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	updated, err := a.userRepository.RegisterFailedLogin(ctx, user.UserID, a.maxFailedLoginAttempts)
	if err != nil {
		log.Err(err).Str("func", "authService.registerFailedLogin").Int64("user_id", user.UserID).Msg("failed to count wrong password")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !updated.IsActive {
		log.Info().Int64("user_id", user.UserID).Msg("account locked after too many failed logins")
		return ErrAccountLocked
	}

	return &WrongPasswordError{RemainingAttempts: max(a.maxFailedLoginAttempts-updated.FailedLoginAttempts, 0)}
}

func (a *authService) startSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)
	sessionUser := models.SessionUser{UserID: user.UserID, Username: user.Username}

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, sessionUser, a.accessTokenDuration, a.accessTokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, sessionUser, a.refreshTokenDuration, a.refreshTokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	loggedIn, err := a.userRepository.StartSession(ctx, user.UserID, refreshToken.SignedString, refreshToken.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "authService.startSession").Int64("user_id", user.UserID).Msg("failed to store session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if ip := a.lookupIP(ctx, user.UserID); ip != "" {
		loggedIn.IPAddress = ip
	}

	return models.Session{User: loggedIn, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// lookupIP records the public address best-effort and returns it, or "" on
// any failure.
func (a *authService) lookupIP(ctx context.Context, userID int64) string {
	if a.ipLookup == nil {
		return ""
	}
	log := logger.FromContext(ctx)

	ip, err := a.ipLookup.LookupIP(ctx)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("ip lookup failed")
		return ""
	}
	if err = a.userRepository.UpdateIPAddress(ctx, userID, ip); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("failed to store ip address")
		return ""
	}
	return ip
}

// Refresh issues a new access token. The refresh token itself is not
// rotated.
//
// Returns ErrUnauthorized (wrapped) when the token is missing, and in
// addition ErrSessionExpired when it no longer verifies (the stored session
// is cleared) or ErrStaleSession when a newer login replaced it.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.Token{}, fmt.Errorf("%w: no refresh token", ErrUnauthorized)
	}

	parsed, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSignKey, a.tokenIssuer)
	if err != nil {
		if _, revokeErr := a.userRepository.RevokeRefreshToken(ctx, refreshToken); revokeErr != nil {
			log.Err(revokeErr).Str("func", "authService.Refresh").Msg("failed to revoke refresh token")
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrSessionExpired)
	}

	user, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrSessionExpired)
		}
		log.Err(err).Str("func", "authService.Refresh").Int64("user_id", parsed.UserID).Msg("user search by id failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if user.RefreshToken != refreshToken {
		log.Info().Int64("user_id", user.UserID).Msg("refresh with a replaced token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrStaleSession)
	}

	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, models.SessionUser{UserID: user.UserID, Username: user.Username}, a.accessTokenDuration, a.accessTokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return accessToken, nil
}

// Logout clears the stored session when refreshToken verifies and is still
// the one on file.
func (a *authService) Logout(ctx context.Context, refreshToken string) error {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return nil
	}

	parsed, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("logout with an unverifiable refresh token")
		return nil
	}

	ended, err := a.userRepository.EndSession(ctx, parsed.UserID, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "authService.Logout").Int64("user_id", parsed.UserID).Msg("failed to end session")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !ended {
		log.Debug().Int64("user_id", parsed.UserID).Msg("logout with a token that is no longer stored")
	}

	return nil
}

// Verify checks the access token and that the user still holds a session.
func (a *authService) Verify(ctx context.Context, accessToken string) models.VerifyResponse {
	if accessToken == "" {
		return models.VerifyResponse{IsValid: false, Message: verifyMessageNoToken}
	}

	parsed, err := a.ParseAccessToken(ctx, accessToken)
	if err != nil {
		return models.VerifyResponse{IsValid: false, Message: verifyMessageInvalidToken}
	}

	user, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Str("func", "authService.Verify").Msg("user search by id failed")
		}
		return models.VerifyResponse{IsValid: false, Message: verifyMessageInvalidToken}
	}
	if user.RefreshToken == "" {
		return models.VerifyResponse{IsValid: false, Message: verifyMessageExpiredLogin}
	}

	sessionUser := parsed.SessionUser()
	return models.VerifyResponse{IsValid: true, User: &sessionUser}
}

// ParseAccessToken validates a raw access token.
func (a *authService) ParseAccessToken(ctx context.Context, accessToken string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, a.accessTokenSignKey, a.tokenIssuer)
	if err != nil {
		if utils.IsTokenExpired(err) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
