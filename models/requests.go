// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	CurrentRole      string `json:"currentRole"`
	Company          string `json:"company"`
	SeniorityLevel   string `json:"seniorityLevel"`
	IndustryVertical string `json:"industryVertical"`
	Bio              string `json:"bio"`
	Timezone         string `json:"timezone"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DuplicateCheckRequest is the body of POST /api/auth/check-duplicate.
// At least one of the fields must be set.
type DuplicateCheckRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
}

// AccountInput is the validated-on-write input of the profile writer.
// PasswordHash is filled by the auth service, never by clients.
type AccountInput struct {
	FullName           string
	Email              string
	PasswordHash       string
	CurrentRole        string
	Company            string
	SeniorityLevel     string
	IndustryVertical   string
	Timezone           string
	Bio                string
	ProfileComplete    bool
	AsyncCommunication bool
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched.
type ProfileUpdate struct {
	CurrentRole        *string `json:"currentRole,omitempty"`
	Company            *string `json:"company,omitempty"`
	SeniorityLevel     *string `json:"seniorityLevel,omitempty"`
	IndustryVertical   *string `json:"industryVertical,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	AsyncCommunication *bool   `json:"asyncCommunication,omitempty"`
}

// IsEmpty reports whether the update carries no changes.
func (u ProfileUpdate) IsEmpty() bool {
	return u.CurrentRole == nil && u.Company == nil && u.SeniorityLevel == nil &&
		u.IndustryVertical == nil && u.Timezone == nil && u.Bio == nil && u.AsyncCommunication == nil
}

// ProfileSetup is the body of POST /api/profile/setup. Completing it marks
// the profile as complete.
type ProfileSetup struct {
	CurrentRole        string `json:"currentRole"`
	Company            string `json:"company"`
	SeniorityLevel     string `json:"seniorityLevel"`
	IndustryVertical   string `json:"industryVertical"`
	Timezone           string `json:"timezone"`
	Bio                string `json:"bio"`
	AsyncCommunication bool   `json:"asyncCommunication"`
}
