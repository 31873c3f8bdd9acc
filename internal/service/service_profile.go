package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/internal/validators"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// profileService validates profile input before any store call and maps
// it onto the account record.
type profileService struct {
	accounts  store.AccountRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewProfileService(accounts store.AccountRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		accounts:  accounts,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

// CreateProfile persists a new account built from input.
//
// New accounts start active, with profile_complete and async_communication
// taken from input (false unless set). The slug is derived from the full name.
//
// Returns:
//   - ErrInvalidDataProvided (with models.ValidationErrors in the chain) on
//     invalid input. The store is not called.
//   - store.ErrAccountAlreadyExists if the store rejects the slug or email.
//   - a wrapped store error otherwise.
func (p *profileService) CreateProfile(ctx context.Context, input models.AccountInput) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Msg("profile input rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if input.PasswordHash == "" {
		log.Error().Msg("profile input has no password hash")
		return models.Account{}, fmt.Errorf("%w: missing password hash", ErrInvalidDataProvided)
	}

	fullName := strings.TrimSpace(input.FullName)
	account := models.Account{
		Slug:               utils.Slugify(fullName),
		FullName:           fullName,
		Email:              strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:       input.PasswordHash,
		CurrentRole:        textValue(input.CurrentRole),
		Company:            textValue(input.Company),
		SeniorityLevel:     optionValue(input.SeniorityLevel, models.SeniorityLevels),
		IndustryVertical:   optionValue(input.IndustryVertical, models.IndustryVerticals),
		Timezone:           textValue(input.Timezone),
		Bio:                strings.TrimSpace(input.Bio),
		ProfileComplete:    input.ProfileComplete,
		AsyncCommunication: input.AsyncCommunication,
		AccountStatus:      models.KeyValue{Key: models.AccountStatusActive, Value: "Active"},
	}

	created, err := p.accounts.Create(ctx, account)
	if err != nil {
		return models.Account{}, fmt.Errorf("profile creation failed: %w", err)
	}

	return created, nil
}

// UpdateProfile applies the non-nil fields of update to the account.
// Only provided fields are validated and written; concurrent updates are
// last-writer-wins.
//
// Returns ErrInvalidDataProvided on invalid or empty input and
// store.ErrAccountNotFound if the account does not exist.
func (p *profileService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error) {
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := p.GetProfile(ctx, id); err != nil {
		return models.Account{}, err
	}

	fields := store.AccountFields{
		CurrentRole:        trimmed(update.CurrentRole),
		Company:            trimmed(update.Company),
		SeniorityLevel:     update.SeniorityLevel,
		IndustryVertical:   update.IndustryVertical,
		Timezone:           update.Timezone,
		Bio:                trimmed(update.Bio),
		AsyncCommunication: update.AsyncCommunication,
	}

	updated, err := p.accounts.Update(ctx, id, fields)
	if err != nil {
		return models.Account{}, fmt.Errorf("profile update failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("account_id", id).Msg("profile updated")
	return updated, nil
}

// SetupProfile writes the full set of profile fields and marks the profile
// complete.
func (p *profileService) SetupProfile(ctx context.Context, id string, setup models.ProfileSetup) (models.Account, error) {
	if err := p.validator.Validate(ctx, setup); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := p.GetProfile(ctx, id); err != nil {
		return models.Account{}, err
	}

	complete := true
	fields := store.AccountFields{
		CurrentRole:        trimmed(&setup.CurrentRole),
		Company:            trimmed(&setup.Company),
		SeniorityLevel:     &setup.SeniorityLevel,
		IndustryVertical:   &setup.IndustryVertical,
		Timezone:           &setup.Timezone,
		Bio:                trimmed(&setup.Bio),
		AsyncCommunication: &setup.AsyncCommunication,
		ProfileComplete:    &complete,
	}

	updated, err := p.accounts.Update(ctx, id, fields)
	if err != nil {
		return models.Account{}, fmt.Errorf("profile setup failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("account_id", id).Msg("profile setup completed")
	return updated, nil
}

// GetProfile returns the stored account. The password hash is present on
// the returned value; callers expose it only through Account.Public.
func (p *profileService) GetProfile(ctx context.Context, id string) (models.Account, error) {
	if strings.TrimSpace(id) == "" {
		return models.Account{}, store.ErrAccountNotFound
	}

	account, err := p.accounts.FindByID(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return account, nil
}

func textValue(s string) models.KeyValue {
	s = strings.TrimSpace(s)
	return models.KeyValue{Key: s, Value: s}
}

func optionValue(key string, labels map[string]string) models.KeyValue {
	if key == "" {
		return models.KeyValue{}
	}
	return models.KeyValue{Key: key, Value: labels[key]}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
