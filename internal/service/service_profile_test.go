package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/mock"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/validators"
	"github.com/cosmic-community/coffee-closer-network/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (ProfileService, *mock.MockAccountRepository) {
	t.Helper()
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	return NewProfileService(repo, logger.Nop()), repo
}

func validAccountInput() models.AccountInput {
	return models.AccountInput{
		FullName:         "Jane Doe",
		Email:            "Jane@Example.com",
		PasswordHash:     "$2a$04$hash",
		CurrentRole:      "Account Executive",
		Company:          "Acme",
		SeniorityLevel:   "senior",
		IndustryVertical: "technology",
		Timezone:         "America/New_York",
		Bio:              "  Closing deals since 2015.  ",
	}
}

func strPtr(s string) *string { return &s }

func TestProfileService_CreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the account record", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.Equal(t, "jane-doe", a.Slug)
				assert.Equal(t, "Jane Doe", a.FullName)
				assert.Equal(t, "jane@example.com", a.Email)
				assert.Equal(t, "$2a$04$hash", a.PasswordHash)
				assert.Equal(t, models.KeyValue{Key: "Acme", Value: "Acme"}, a.Company)
				assert.Equal(t, models.KeyValue{Key: "senior", Value: "Senior (6-10 years)"}, a.SeniorityLevel)
				assert.Equal(t, models.KeyValue{Key: "technology", Value: "Technology"}, a.IndustryVertical)
				assert.Equal(t, "America/New_York", a.Timezone.Key)
				assert.Equal(t, "Closing deals since 2015.", a.Bio)
				assert.False(t, a.ProfileComplete)
				assert.False(t, a.AsyncCommunication)
				assert.Equal(t, models.AccountStatusActive, a.AccountStatus.Key)

				a.ID = "obj-1"
				return a, nil
			})

		created, err := svc.CreateProfile(ctx, validAccountInput())
		require.NoError(t, err)
		assert.Equal(t, "obj-1", created.ID)
	})

	t.Run("optional industry stays empty", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		in := validAccountInput()
		in.IndustryVertical = ""
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.True(t, a.IndustryVertical.IsZero())
				return a, nil
			})

		_, err := svc.CreateProfile(ctx, in)
		require.NoError(t, err)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		svc, _ := newTestProfileService(t)
		in := validAccountInput()
		in.Email = "not-an-email"
		in.SeniorityLevel = "intern"

		_, err := svc.CreateProfile(ctx, in)
		require.ErrorIs(t, err, ErrInvalidDataProvided)

		var verrs models.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has(validators.FieldEmail))
		assert.True(t, verrs.Has(validators.FieldSeniorityLevel))
	})

	t.Run("missing password hash", func(t *testing.T) {
		svc, _ := newTestProfileService(t)
		in := validAccountInput()
		in.PasswordHash = ""

		_, err := svc.CreateProfile(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("store conflict", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountAlreadyExists)

		_, err := svc.CreateProfile(ctx, validAccountInput())
		assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("writes only provided fields", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().FindByID(gomock.Any(), "obj-1").Return(models.Account{ID: "obj-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "obj-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f store.AccountFields) (models.Account, error) {
				require.NotNil(t, f.Bio)
				assert.Equal(t, "New bio", *f.Bio)
				assert.Nil(t, f.CurrentRole)
				assert.Nil(t, f.Company)
				assert.Nil(t, f.SeniorityLevel)
				assert.Nil(t, f.ProfileComplete)
				return models.Account{ID: "obj-1", Bio: *f.Bio}, nil
			})

		updated, err := svc.UpdateProfile(ctx, "obj-1", models.ProfileUpdate{Bio: strPtr(" New bio ")})
		require.NoError(t, err)
		assert.Equal(t, "New bio", updated.Bio)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _ := newTestProfileService(t)

		_, err := svc.UpdateProfile(ctx, "obj-1", models.ProfileUpdate{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
	})

	t.Run("invalid field", func(t *testing.T) {
		svc, _ := newTestProfileService(t)

		_, err := svc.UpdateProfile(ctx, "obj-1", models.ProfileUpdate{Timezone: strPtr("Mars/Olympus")})
		require.ErrorIs(t, err, ErrInvalidDataProvided)

		var verrs models.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has(validators.FieldTimezone))
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().FindByID(gomock.Any(), "missing").Return(models.Account{}, store.ErrAccountNotFound)

		_, err := svc.UpdateProfile(ctx, "missing", models.ProfileUpdate{Bio: strPtr("x")})
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}

func TestProfileService_SetupProfile(t *testing.T) {
	ctx := context.Background()
	setup := models.ProfileSetup{
		CurrentRole:        "SDR",
		Company:            "Acme",
		SeniorityLevel:     "entry",
		Timezone:           "Europe/Berlin",
		AsyncCommunication: true,
	}

	t.Run("marks the profile complete", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().FindByID(gomock.Any(), "obj-1").Return(models.Account{ID: "obj-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "obj-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f store.AccountFields) (models.Account, error) {
				require.NotNil(t, f.ProfileComplete)
				assert.True(t, *f.ProfileComplete)
				require.NotNil(t, f.AsyncCommunication)
				assert.True(t, *f.AsyncCommunication)
				assert.Equal(t, "entry", *f.SeniorityLevel)
				assert.Nil(t, f.FullName)
				return models.Account{ID: "obj-1", ProfileComplete: true}, nil
			})

		updated, err := svc.SetupProfile(ctx, "obj-1", setup)
		require.NoError(t, err)
		assert.True(t, updated.ProfileComplete)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc, _ := newTestProfileService(t)

		_, err := svc.SetupProfile(ctx, "obj-1", models.ProfileSetup{Company: "Acme"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)

		var verrs models.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has(validators.FieldCurrentRole))
		assert.False(t, verrs.Has(validators.FieldCompany))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().FindByID(gomock.Any(), "obj-1").Return(models.Account{ID: "obj-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "obj-1", gomock.Any()).Return(models.Account{}, store.ErrUpstream)

		_, err := svc.SetupProfile(ctx, "obj-1", setup)
		assert.ErrorIs(t, err, store.ErrUpstream)
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, repo := newTestProfileService(t)
		repo.EXPECT().FindByID(gomock.Any(), "obj-1").Return(models.Account{ID: "obj-1", FullName: "Jane Doe"}, nil)

		account, err := svc.GetProfile(ctx, "obj-1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", account.FullName)
	})

	t.Run("empty id", func(t *testing.T) {
		svc, _ := newTestProfileService(t)

		_, err := svc.GetProfile(ctx, "")
		assert.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}
