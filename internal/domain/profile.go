package domain

import "slices"

// NotSpecified is shown for absent display fields and, on input, means "clear this field".
const NotSpecified = "Not specified"

// Collections
const (
	CollectionMentees = "mentees"
	CollectionMentors = "mentors"
	CollectionMembers = "members"

	DefaultCollection = CollectionMentees
)

// Profile field names as stored in the document store
const (
	FieldID              = "id"
	FieldPronouns        = "pronouns"
	FieldLocation        = "location"
	FieldLinkedinURL     = "linkedinUrl"
	FieldResumeURL       = "resumeUrl"
	FieldProfilePicture  = "profilePicture"
	FieldJobTitle        = "jobTitle"
	FieldYearsExperience = "years_experience"
	FieldSkills          = "skills"
	FieldGoals           = "goals"
	FieldJobSearchStatus = "jobSearchStatus"
	FieldCurrentCompany  = "currentCompany"
	FieldIsPublic        = "isPublic"
	FieldCompleteness    = "completeness"

	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldAvailability = "availability"
	FieldIndustry     = "industry"
	FieldRole         = "role"
	FieldTimezone     = "timezone"
	FieldTeam         = "team"
	FieldEducation    = "education"
)

// TextFields are the free-text profile fields, trimmed on write.
var TextFields = []string{
	FieldPronouns,
	FieldLocation,
	FieldLinkedinURL,
	FieldResumeURL,
	FieldProfilePicture,
	FieldJobTitle,
	FieldGoals,
	FieldJobSearchStatus,
	FieldCurrentCompany,
}

// RequiredFields drive the completeness score and read-side defaulting.
var RequiredFields = []string{
	FieldPronouns,
	FieldLocation,
	FieldLinkedinURL,
	FieldResumeURL,
	FieldProfilePicture,
	FieldJobTitle,
	FieldYearsExperience,
	FieldSkills,
	FieldGoals,
	FieldJobSearchStatus,
	FieldCurrentCompany,
}

// Document is a loosely-typed stored record. The document key is not part of
// the stored fields; directory reads attach it under FieldID.
type Document map[string]any

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// IsProfileCollection reports whether profile updates may target name.
func IsProfileCollection(name string) bool {
	return slices.Contains([]string{CollectionMentees, CollectionMentors}, name)
}

// ProfileCollection resolves a requested collection to a writable one.
func ProfileCollection(requested string) string {
	if IsProfileCollection(requested) {
		return requested
	}
	return DefaultCollection
}
