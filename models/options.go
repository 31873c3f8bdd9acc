// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SeniorityLevels maps seniority select keys to their display values.
var SeniorityLevels = map[string]string{
	"entry":     "Entry Level (0-2 years)",
	"mid":       "Mid Level (3-5 years)",
	"senior":    "Senior (6-10 years)",
	"lead":      "Lead / Principal",
	"executive": "Executive / C-Suite",
}

// IndustryVerticals maps industry select keys to their display values.
var IndustryVerticals = map[string]string{
	"technology":    "Technology",
	"finance":       "Finance",
	"healthcare":    "Healthcare",
	"education":     "Education",
	"marketing":     "Marketing & Advertising",
	"consulting":    "Consulting",
	"manufacturing": "Manufacturing",
	"retail":        "Retail & E-commerce",
	"nonprofit":     "Non-profit",
	"other":         "Other",
}
