package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"
	_ "time/tzdata" // timezone names are checked without relying on the host database
	"unicode/utf8"

	"github.com/cosmic-community/coffee-closer-network/internal/utils"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// Field names reported in [models.ValidationErrors]. They match the JSON
// names of the request bodies so clients can attach messages to inputs.
const (
	FieldFullName         = "fullName"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldCurrentRole      = "currentRole"
	FieldCompany          = "company"
	FieldSeniorityLevel   = "seniorityLevel"
	FieldIndustryVertical = "industryVertical"
	FieldTimezone         = "timezone"
	FieldBio              = "bio"
)

const (
	MinPasswordLength   = 8
	MaxPasswordBytes    = 72
	maxFullNameLength   = 100
	maxShortTextLength  = 120
	maxBioLength        = 1000
	msgRequired         = "is required"
	msgInvalidEmail     = "must be a valid email address"
	msgPasswordTooShort = "must be at least 8 characters"
	msgPasswordTooLong  = "must be at most 72 bytes"
	msgTooLong          = "is too long"
	msgUnknownOption    = "is not a valid option"
	msgUnknownTimezone  = "is not a valid timezone"
	msgNoLetters        = "must contain latin letters or digits"
)

// AccountValidator validates account, signup, login and profile inputs.
type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate implements [Validator]. When fields is not empty only the named
// fields are reported.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var errs models.ValidationErrors

	switch value := obj.(type) {
	case models.AccountInput:
		errs = v.validateAccountInput(value)
	case *models.AccountInput:
		errs = v.validateAccountInput(*value)

	case models.SignupRequest:
		errs = v.validateSignupRequest(value)
	case *models.SignupRequest:
		errs = v.validateSignupRequest(*value)

	case models.LoginRequest:
		errs = v.validateLoginRequest(value)
	case *models.LoginRequest:
		errs = v.validateLoginRequest(*value)

	case models.DuplicateCheckRequest:
		errs = v.validateDuplicateCheckRequest(value)
	case *models.DuplicateCheckRequest:
		errs = v.validateDuplicateCheckRequest(*value)

	case models.ProfileSetup:
		errs = v.validateProfileSetup(value)
	case *models.ProfileSetup:
		errs = v.validateProfileSetup(*value)

	case models.ProfileUpdate:
		if value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
		errs = v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		if value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
		errs = v.validateProfileUpdate(*value)

	default:
		return ErrUnsupportedType
	}

	return onlyFields(errs, fields).Err()
}

func (v *AccountValidator) validateAccountInput(in models.AccountInput) models.ValidationErrors {
	errs := models.ValidationErrors{}
	checkFullName(errs, in.FullName)
	checkEmail(errs, in.Email)
	checkRequiredText(errs, FieldCurrentRole, in.CurrentRole, maxShortTextLength)
	checkRequiredText(errs, FieldCompany, in.Company, maxShortTextLength)
	checkTimezone(errs, in.Timezone, true)
	checkOption(errs, FieldSeniorityLevel, in.SeniorityLevel, models.SeniorityLevels, true)
	checkOption(errs, FieldIndustryVertical, in.IndustryVertical, models.IndustryVerticals, false)
	checkBio(errs, in.Bio)
	return errs
}

func (v *AccountValidator) validateSignupRequest(in models.SignupRequest) models.ValidationErrors {
	errs := v.validateAccountInput(models.AccountInput{
		FullName:         in.FullName,
		Email:            in.Email,
		CurrentRole:      in.CurrentRole,
		Company:          in.Company,
		SeniorityLevel:   in.SeniorityLevel,
		IndustryVertical: in.IndustryVertical,
		Timezone:         in.Timezone,
		Bio:              in.Bio,
	})
	checkPassword(errs, in.Password)
	return errs
}

func (v *AccountValidator) validateLoginRequest(in models.LoginRequest) models.ValidationErrors {
	errs := models.ValidationErrors{}
	if strings.TrimSpace(in.Email) == "" {
		errs.Add(FieldEmail, msgRequired)
	}
	if in.Password == "" {
		errs.Add(FieldPassword, msgRequired)
	}
	return errs
}

func (v *AccountValidator) validateDuplicateCheckRequest(in models.DuplicateCheckRequest) models.ValidationErrors {
	errs := models.ValidationErrors{}
	if strings.TrimSpace(in.FullName) == "" && strings.TrimSpace(in.Email) == "" {
		errs.Add(FieldFullName, msgRequired)
		return errs
	}
	if strings.TrimSpace(in.FullName) != "" {
		checkFullName(errs, in.FullName)
	}
	if strings.TrimSpace(in.Email) != "" {
		checkEmail(errs, in.Email)
	}
	return errs
}

func (v *AccountValidator) validateProfileSetup(in models.ProfileSetup) models.ValidationErrors {
	errs := models.ValidationErrors{}
	checkRequiredText(errs, FieldCurrentRole, in.CurrentRole, maxShortTextLength)
	checkRequiredText(errs, FieldCompany, in.Company, maxShortTextLength)
	checkTimezone(errs, in.Timezone, true)
	checkOption(errs, FieldSeniorityLevel, in.SeniorityLevel, models.SeniorityLevels, true)
	checkOption(errs, FieldIndustryVertical, in.IndustryVertical, models.IndustryVerticals, false)
	checkBio(errs, in.Bio)
	return errs
}

func (v *AccountValidator) validateProfileUpdate(in models.ProfileUpdate) models.ValidationErrors {
	errs := models.ValidationErrors{}
	if in.CurrentRole != nil {
		checkRequiredText(errs, FieldCurrentRole, *in.CurrentRole, maxShortTextLength)
	}
	if in.Company != nil {
		checkRequiredText(errs, FieldCompany, *in.Company, maxShortTextLength)
	}
	if in.Timezone != nil {
		checkTimezone(errs, *in.Timezone, true)
	}
	if in.SeniorityLevel != nil {
		checkOption(errs, FieldSeniorityLevel, *in.SeniorityLevel, models.SeniorityLevels, true)
	}
	if in.IndustryVertical != nil {
		checkOption(errs, FieldIndustryVertical, *in.IndustryVertical, models.IndustryVerticals, false)
	}
	if in.Bio != nil {
		checkBio(errs, *in.Bio)
	}
	return errs
}

func checkFullName(errs models.ValidationErrors, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs.Add(FieldFullName, msgRequired)
	case utf8.RuneCountInString(name) > maxFullNameLength:
		errs.Add(FieldFullName, msgTooLong)
	case utils.Slugify(name) == "":
		errs.Add(FieldFullName, msgNoLetters)
	}
}

// IsValidEmail reports whether s is a bare address such as "a@b.c".
// Display-name forms ("Jane <a@b.c>") are rejected.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

func checkEmail(errs models.ValidationErrors, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs.Add(FieldEmail, msgRequired)
	case !IsValidEmail(email):
		errs.Add(FieldEmail, msgInvalidEmail)
	}
}

func checkPassword(errs models.ValidationErrors, password string) {
	switch {
	case password == "":
		errs.Add(FieldPassword, msgRequired)
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs.Add(FieldPassword, msgPasswordTooShort)
	case len(password) > MaxPasswordBytes:
		errs.Add(FieldPassword, msgPasswordTooLong)
	}
}

func checkRequiredText(errs models.ValidationErrors, field, value string, maxLen int) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.Add(field, msgRequired)
	case utf8.RuneCountInString(value) > maxLen:
		errs.Add(field, msgTooLong)
	}
}

func checkOption(errs models.ValidationErrors, field, key string, options map[string]string, required bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		if required {
			errs.Add(field, msgRequired)
		}
		return
	}
	if _, ok := options[key]; !ok {
		errs.Add(field, msgUnknownOption)
	}
}

func checkTimezone(errs models.ValidationErrors, tz string, required bool) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		if required {
			errs.Add(FieldTimezone, msgRequired)
		}
		return
	}
	if _, err := time.LoadLocation(tz); err != nil || strings.EqualFold(tz, "local") {
		errs.Add(FieldTimezone, msgUnknownTimezone)
	}
}

func checkBio(errs models.ValidationErrors, bio string) {
	if utf8.RuneCountInString(bio) > maxBioLength {
		errs.Add(FieldBio, msgTooLong)
	}
}

// onlyFields drops every entry not named in fields. An empty fields list
// keeps all entries.
func onlyFields(errs models.ValidationErrors, fields []string) models.ValidationErrors {
	if len(fields) == 0 || len(errs) == 0 {
		return errs
	}

	scoped := models.ValidationErrors{}
	for _, f := range fields {
		if errs.Has(f) {
			scoped[f] = errs[f]
		}
	}
	return scoped
}
