package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cosmic-community/coffee-closer-network/internal/adapter"
	"github.com/cosmic-community/coffee-closer-network/models"
)

// Metadata field names of an account object in the content store.
const (
	fieldFullName           = "full_name"
	fieldEmail              = "email"
	fieldPasswordHash       = "password_hash"
	fieldCurrentRole        = "current_role"
	fieldCompany            = "company"
	fieldSeniorityLevel     = "seniority_level"
	fieldIndustryVertical   = "industry_vertical"
	fieldTimezone           = "timezone"
	fieldBio                = "bio"
	fieldProfileComplete    = "profile_complete"
	fieldAsyncCommunication = "async_communication"
	fieldAccountStatus      = "account_status"
)

// AccountFields is a partial metadata write. Nil fields are not sent, so
// the store keeps their current values.
type AccountFields struct {
	FullName           *string
	CurrentRole        *string
	Company            *string
	SeniorityLevel     *string
	IndustryVertical   *string
	Timezone           *string
	Bio                *string
	ProfileComplete    *bool
	AsyncCommunication *bool
	AccountStatus      *string
}

// IsEmpty reports whether no field is set.
func (f AccountFields) IsEmpty() bool {
	return len(f.metadata()) == 0
}

// select fields are written by key; the store resolves the display value.
func (f AccountFields) metadata() map[string]any {
	m := make(map[string]any)
	putString(m, fieldFullName, f.FullName)
	putString(m, fieldCurrentRole, f.CurrentRole)
	putString(m, fieldCompany, f.Company)
	putString(m, fieldSeniorityLevel, f.SeniorityLevel)
	putString(m, fieldIndustryVertical, f.IndustryVertical)
	putString(m, fieldTimezone, f.Timezone)
	putString(m, fieldBio, f.Bio)
	putString(m, fieldAccountStatus, f.AccountStatus)
	if f.ProfileComplete != nil {
		m[fieldProfileComplete] = *f.ProfileComplete
	}
	if f.AsyncCommunication != nil {
		m[fieldAsyncCommunication] = *f.AsyncCommunication
	}
	return m
}

func putString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func accountMetadata(a models.Account) map[string]any {
	return map[string]any{
		fieldFullName:           a.FullName,
		fieldEmail:              a.Email,
		fieldPasswordHash:       a.PasswordHash,
		fieldCurrentRole:        a.CurrentRole.Value,
		fieldCompany:            a.Company.Value,
		fieldSeniorityLevel:     a.SeniorityLevel.Key,
		fieldIndustryVertical:   a.IndustryVertical.Key,
		fieldTimezone:           a.Timezone.Key,
		fieldBio:                a.Bio,
		fieldProfileComplete:    a.ProfileComplete,
		fieldAsyncCommunication: a.AsyncCommunication,
		fieldAccountStatus:      a.AccountStatus.Key,
	}
}

// toAccount maps a stored object onto an account. Missing metadata fields
// keep their zero values.
func toAccount(obj adapter.Object) (models.Account, error) {
	a := models.Account{
		ID:         obj.ID,
		Slug:       obj.Slug,
		FullName:   obj.Title,
		CreatedAt:  obj.CreatedAt,
		ModifiedAt: obj.ModifiedAt,
	}

	md := metadataDecoder{raw: obj.Metadata}
	if name := md.text(fieldFullName); name != "" {
		a.FullName = name
	}
	a.Email = strings.ToLower(md.text(fieldEmail))
	a.PasswordHash = md.text(fieldPasswordHash)
	a.CurrentRole = md.keyValue(fieldCurrentRole)
	a.Company = md.keyValue(fieldCompany)
	a.SeniorityLevel = withLabel(md.keyValue(fieldSeniorityLevel), models.SeniorityLevels)
	a.IndustryVertical = withLabel(md.keyValue(fieldIndustryVertical), models.IndustryVerticals)
	a.Timezone = md.keyValue(fieldTimezone)
	a.Bio = md.text(fieldBio)
	a.ProfileComplete = md.flag(fieldProfileComplete)
	a.AsyncCommunication = md.flag(fieldAsyncCommunication)
	a.AccountStatus = md.keyValue(fieldAccountStatus)
	if a.AccountStatus.IsZero() {
		// records written before the status field existed
		a.AccountStatus = models.KeyValue{Key: models.AccountStatusActive, Value: "Active"}
	}

	if md.err != nil {
		return models.Account{}, fmt.Errorf("%w: object %s: %w", ErrDecodingAccount, obj.ID, md.err)
	}
	return a, nil
}

// withLabel fills the display value of a select field that was stored by
// key only.
func withLabel(kv models.KeyValue, labels map[string]string) models.KeyValue {
	if kv.Key == "" || (kv.Value != "" && kv.Value != kv.Key) {
		return kv
	}
	if label, ok := labels[kv.Key]; ok {
		kv.Value = label
	}
	return kv
}

// metadataDecoder decodes metadata values leniently: text fields may come
// back as strings or {key, value} objects, switches as booleans or strings.
// The first decoding failure is kept in err.
type metadataDecoder struct {
	raw map[string]json.RawMessage
	err error
}

func (d *metadataDecoder) value(field string) (any, bool) {
	raw, ok := d.raw[field]
	if !ok || len(raw) == 0 {
		return nil, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		d.fail(field, err)
		return nil, false
	}
	return v, v != nil
}

func (d *metadataDecoder) fail(field string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("field %q: %w", field, err)
	}
}

func (d *metadataDecoder) text(field string) string {
	v, ok := d.value(field)
	if !ok {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["value"].(string); ok {
			return s
		}
	}
	d.fail(field, fmt.Errorf("unexpected type %T", v))
	return ""
}

func (d *metadataDecoder) keyValue(field string) models.KeyValue {
	v, ok := d.value(field)
	if !ok {
		return models.KeyValue{}
	}

	switch t := v.(type) {
	case string:
		return models.KeyValue{Key: t, Value: t}
	case map[string]any:
		key, _ := t["key"].(string)
		value, _ := t["value"].(string)
		return models.KeyValue{Key: key, Value: value}
	}
	d.fail(field, fmt.Errorf("unexpected type %T", v))
	return models.KeyValue{}
}

func (d *metadataDecoder) flag(field string) bool {
	v, ok := d.value(field)
	if !ok {
		return false
	}

	switch t := v.(type) {
	case bool:
		return t
	case string:
		if t == "" {
			return false
		}
		b, err := strconv.ParseBool(t)
		if err != nil {
			d.fail(field, err)
		}
		return b
	}
	d.fail(field, fmt.Errorf("unexpected type %T", v))
	return false
}
