package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/internal/validators"
	"github.com/cosmic-community/coffee-closer-network/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the session
// token lifecycle. Passwords are hashed with bcrypt through PasswordHasher.
type authService struct {
	// accounts is used to look up accounts at login.
	accounts store.AccountRepository

	// profiles persists new accounts at signup.
	profiles ProfileService

	// duplicates rejects signups whose slug or email is taken.
	duplicates DuplicateChecker

	hasher    PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration        time.Duration
	refreshTokenDuration time.Duration

	// defaultTimezone is applied when a signup carries no timezone.
	defaultTimezone string

	// admins holds lower-cased emails that receive the isAdmin claim.
	admins map[string]struct{}

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	accounts store.AccountRepository,
	profiles ProfileService,
	duplicates DuplicateChecker,
	hasher PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			admins[email] = struct{}{}
		}
	}

	return &authService{
		accounts:             accounts,
		profiles:             profiles,
		duplicates:           duplicates,
		hasher:               hasher,
		validator:            validators.NewAccountValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		defaultTimezone:      cfg.DefaultTimezone,
		admins:               admins,
		logger:               logger,
	}
}

// Signup creates a new account.
//
// A missing timezone is replaced by the configured default. The request is
// validated before any store call, the duplicate checker rejects a taken
// slug or email, and the password is hashed before the profile is written.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if the request is invalid.
//   - store.ErrAccountAlreadyExists if the name or email is taken. The store
//     may also report this when a concurrent signup won the race.
//   - a wrapped error if hashing or persistence fails.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (account models.Account, err error) {
	defer func() { observeAuth("signup", err) }()
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Timezone) == "" {
		req.Timezone = a.defaultTimezone
	}

	if err = a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("signup request rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := a.duplicates.ExistsAny(ctx, req.FullName, req.Email)
	if err != nil {
		return models.Account{}, fmt.Errorf("signup duplicate check failed: %w", err)
	}
	if exists {
		log.Info().Msg("signup rejected: account already exists")
		return models.Account{}, store.ErrAccountAlreadyExists
	}

	hash, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, err
	}

	account, err = a.profiles.CreateProfile(ctx, models.AccountInput{
		FullName:         req.FullName,
		Email:            req.Email,
		PasswordHash:     hash,
		CurrentRole:      req.CurrentRole,
		Company:          req.Company,
		SeniorityLevel:   req.SeniorityLevel,
		IndustryVertical: req.IndustryVertical,
		Timezone:         req.Timezone,
		Bio:              req.Bio,
	})
	if err != nil {
		log.Err(err).Msg("signup failed")
		return models.Account{}, fmt.Errorf("signup failed: %w", err)
	}

	log.Info().Str("account_id", account.ID).Msg("account signed up")
	return account, nil
}

// Login authenticates an existing account.
//
// Returns the account or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if no account has the email or the password
//     does not match. Both cases are indistinguishable to the caller.
//   - ErrAccountSuspended if the account may not sign in.
//   - a wrapped store error if the lookup fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (account models.Account, err error) {
	defer func() { observeAuth("login", err) }()
	log := logger.FromContext(ctx)

	if err = a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err = a.accounts.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Msg("login for unknown email")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !a.hasher.Verify(ctx, req.Password, account.PasswordHash) {
		log.Info().Str("account_id", account.ID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	if !account.IsActive() {
		log.Info().Str("account_id", account.ID).Str("status", account.AccountStatus.Key).Msg("inactive account tried to log in")
		return models.Account{}, ErrAccountSuspended
	}

	return account, nil
}

// CreateToken issues a signed token for account.
//
// The token carries the account id, email, full name and the admin flag.
// Its lifetime depends on kind: session tokens use the configured token
// duration, refresh tokens the refresh duration.
func (a *authService) CreateToken(ctx context.Context, account models.Account, kind models.TokenKind) (models.Token, error) {
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: account.ID},
		Email:            account.Email,
		FullName:         account.FullName,
		IsAdmin:          a.isAdmin(account.Email),
	}

	return a.issue(claims, kind)
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	token.Kind = token.Claims.Kind
	if token.Kind == "" {
		token.Kind = models.SessionToken
	}
	return token, nil
}

// Refresh reissues a valid token with the same identity claims and the
// refresh lifetime. No password is required.
func (a *authService) Refresh(ctx context.Context, tokenString string) (models.Token, error) {
	current, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Token{}, err
	}

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: current.Claims.Subject},
		Email:            current.Claims.Email,
		FullName:         current.Claims.FullName,
		IsAdmin:          current.Claims.IsAdmin,
	}

	return a.issue(claims, models.RefreshToken)
}

func (a *authService) issue(claims *models.Claims, kind models.TokenKind) (models.Token, error) {
	duration := a.tokenDuration
	if kind == models.RefreshToken {
		duration = a.refreshTokenDuration
	}
	claims.Kind = kind

	token, err := utils.GenerateSessionToken(claims, a.tokenIssuer, duration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token.Kind = kind
	return token, nil
}

func (a *authService) isAdmin(email string) bool {
	_, ok := a.admins[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
