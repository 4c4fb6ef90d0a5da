package profile

import (
	"strconv"
	"strings"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

// fieldTable maps canonical profile fields to the names a source uses for them.
type fieldTable struct {
	userID     string
	collection string
	fields     map[string]string
}

var directTable = &fieldTable{
	userID:     "userId",
	collection: "collection",
	fields: map[string]string{
		domain.FieldPronouns:        domain.FieldPronouns,
		domain.FieldLocation:        domain.FieldLocation,
		domain.FieldLinkedinURL:     domain.FieldLinkedinURL,
		domain.FieldResumeURL:       domain.FieldResumeURL,
		domain.FieldProfilePicture:  domain.FieldProfilePicture,
		domain.FieldJobTitle:        domain.FieldJobTitle,
		domain.FieldYearsExperience: domain.FieldYearsExperience,
		domain.FieldSkills:          domain.FieldSkills,
		domain.FieldGoals:           domain.FieldGoals,
		domain.FieldJobSearchStatus: domain.FieldJobSearchStatus,
		domain.FieldCurrentCompany:  domain.FieldCurrentCompany,
		domain.FieldIsPublic:        domain.FieldIsPublic,
	},
}

// Webflow form field labels.
var webflowTable = &fieldTable{
	userID:     "User ID",
	collection: "Collection",
	fields: map[string]string{
		domain.FieldPronouns:        "Preferred pronouns",
		domain.FieldLocation:        "Location",
		domain.FieldLinkedinURL:     "LinkedIn URL",
		domain.FieldResumeURL:       "Resume upload",
		domain.FieldProfilePicture:  "Profile picture",
		domain.FieldJobTitle:        "Job title",
		domain.FieldYearsExperience: "Years of experience",
		domain.FieldSkills:          "Skills",
		domain.FieldGoals:           "Future goals",
		domain.FieldJobSearchStatus: "Job search status",
		domain.FieldCurrentCompany:  "Current company",
		domain.FieldIsPublic:        "Public Profile",
	},
}

// RawInput is one of the recognized incoming record shapes: DirectInput or
// WebflowInput.
type RawInput interface {
	table() *fieldTable
	values() map[string]any
}

// DirectInput is a request body keyed by canonical field names.
type DirectInput map[string]any

func (in DirectInput) table() *fieldTable     { return directTable }
func (in DirectInput) values() map[string]any { return in }

// WebflowInput is a form-submission payload keyed by Webflow labels.
type WebflowInput map[string]any

// NewWebflowInput unwraps body.data when it is an object and otherwise
// treats body itself as the payload.
func NewWebflowInput(body map[string]any) WebflowInput {
	if data, ok := body["data"].(map[string]any); ok {
		return WebflowInput(data)
	}
	return WebflowInput(body)
}

func (in WebflowInput) table() *fieldTable     { return webflowTable }
func (in WebflowInput) values() map[string]any { return in }

// field returns the raw value the input carries for a canonical field.
func field(in RawInput, canonical string) (any, bool) {
	name, ok := in.table().fields[canonical]
	if !ok {
		return nil, false
	}
	v, ok := in.values()[name]
	return v, ok
}

// collectionOf resolves the target collection named by the input.
func collectionOf(in RawInput) string {
	name, _ := in.values()[in.table().collection].(string)
	return domain.ProfileCollection(name)
}

// userIDOf returns the caller-supplied user id as a string. ok is false when
// the input carries no usable id.
func userIDOf(in RawInput) (string, bool) {
	switch v := in.values()[in.table().userID].(type) {
	case string:
		id := strings.TrimSpace(v)
		return id, id != ""
	case float64:
		if v == 0 {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}
