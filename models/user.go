// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account status keys stored in the "account_status" select field.
const (
	AccountStatusActive    = "ACTIVE"
	AccountStatusSuspended = "SUSPENDED"
)

// KeyValue is a select-field value as stored by the content store:
// a machine key plus a display value.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// IsZero reports whether neither key nor value is set.
func (kv KeyValue) IsZero() bool {
	return kv.Key == "" && kv.Value == ""
}

// Account is a member account as persisted in the external content store.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// ID is the content-store object identifier.
	ID string `json:"id"`

	// Slug is the URL-safe identifier derived from FullName. Unique.
	Slug string `json:"slug"`

	FullName string `json:"full_name"`

	// Email is stored lower-cased. Unique.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized into client-facing JSON.
	PasswordHash string `json:"-"`

	CurrentRole      KeyValue `json:"current_role"`
	Company          KeyValue `json:"company"`
	SeniorityLevel   KeyValue `json:"seniority_level"`
	IndustryVertical KeyValue `json:"industry_vertical"`
	Timezone         KeyValue `json:"timezone"`

	Bio string `json:"bio"`

	ProfileComplete    bool `json:"profile_complete"`
	AsyncCommunication bool `json:"async_communication"`

	AccountStatus KeyValue `json:"account_status"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// IsActive reports whether the account may sign in.
func (a Account) IsActive() bool {
	return a.AccountStatus.Key == "" || a.AccountStatus.Key == AccountStatusActive
}

// PublicAccount is the client-facing projection of [Account].
// It deliberately has no password hash field.
type PublicAccount struct {
	ID                 string    `json:"id"`
	Slug               string    `json:"slug"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	CurrentRole        string    `json:"currentRole,omitempty"`
	Company            string    `json:"company,omitempty"`
	SeniorityLevel     KeyValue  `json:"seniorityLevel"`
	IndustryVertical   KeyValue  `json:"industryVertical"`
	Timezone           KeyValue  `json:"timezone"`
	Bio                string    `json:"bio,omitempty"`
	ProfileComplete    bool      `json:"profileComplete"`
	AsyncCommunication bool      `json:"asyncCommunication"`
	AccountStatus      KeyValue  `json:"accountStatus"`
	IsAdmin            bool      `json:"isAdmin"`
	CreatedAt          time.Time `json:"createdAt,omitempty"`
}

// Public builds the client-facing view of the account.
func (a Account) Public(isAdmin bool) PublicAccount {
	return PublicAccount{
		ID:                 a.ID,
		Slug:               a.Slug,
		FullName:           a.FullName,
		Email:              a.Email,
		CurrentRole:        a.CurrentRole.Value,
		Company:            a.Company.Value,
		SeniorityLevel:     a.SeniorityLevel,
		IndustryVertical:   a.IndustryVertical,
		Timezone:           a.Timezone,
		Bio:                a.Bio,
		ProfileComplete:    a.ProfileComplete,
		AsyncCommunication: a.AsyncCommunication,
		AccountStatus:      a.AccountStatus,
		IsAdmin:            isAdmin,
		CreatedAt:          a.CreatedAt,
	}
}
