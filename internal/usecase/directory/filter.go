package directory

import (
	"strings"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

// Experience range tokens accepted by the experience filter.
const (
	ExperienceJunior = "0-1"
	ExperienceMid    = "2-3"
	ExperienceSenior = "4+"
)

// FilterSpec holds the directory query predicates. Empty slices and an empty
// search term are no-ops. Multi-valued filters pass a document when any value
// matches; distinct filters must all pass.
type FilterSpec struct {
	Admin bool

	Skills       []string
	Availability []string
	Role         []string
	Timezone     []string
	Team         []string
	Education    []string
	Industry     []string
	Experience   []string

	Search string
}

type predicate func(domain.Document) bool

// Filter defaults display fields on every document and returns the ones
// matching spec, in input order. docs are not modified.
func Filter(docs []domain.Document, spec FilterSpec) []domain.Document {
	preds := spec.predicates()

	out := make([]domain.Document, 0, len(docs))
next:
	for _, doc := range docs {
		doc = withDefaults(doc)
		for _, p := range preds {
			if !p(doc) {
				continue next
			}
		}
		out = append(out, doc)
	}
	return out
}

func (s FilterSpec) predicates() []predicate {
	var preds []predicate

	if !s.Admin {
		preds = append(preds, isPublic)
	}

	listFields := []struct {
		field  string
		values []string
	}{
		{domain.FieldSkills, s.Skills},
		{domain.FieldAvailability, s.Availability},
	}
	for _, lf := range listFields {
		if values := lowerSet(lf.values); values != nil {
			preds = append(preds, listContains(lf.field, values))
		}
	}

	// Stored either as a list or as a single string.
	mixedFields := []struct {
		field  string
		values []string
	}{
		{domain.FieldRole, s.Role},
		{domain.FieldTimezone, s.Timezone},
		{domain.FieldTeam, s.Team},
	}
	for _, mf := range mixedFields {
		if values := lowerSet(mf.values); values != nil {
			field := mf.field
			preds = append(preds, func(doc domain.Document) bool {
				return listContains(field, values)(doc) || scalarEquals(field, values)(doc)
			})
		}
	}

	scalarFields := []struct {
		field  string
		values []string
	}{
		{domain.FieldEducation, s.Education},
		{domain.FieldIndustry, s.Industry},
	}
	for _, sf := range scalarFields {
		if values := lowerSet(sf.values); values != nil {
			preds = append(preds, scalarEquals(sf.field, values))
		}
	}

	if ranges := nonEmpty(s.Experience); len(ranges) > 0 {
		preds = append(preds, experienceIn(ranges))
	}

	if term := strings.ToLower(strings.TrimSpace(s.Search)); term != "" {
		preds = append(preds, matchesSearch(term))
	}

	return preds
}

// withDefaults returns a copy of doc with absent required fields shown as
// domain.NotSpecified and an absent isPublic shown as false.
func withDefaults(doc domain.Document) domain.Document {
	out := doc.Clone()
	for _, f := range domain.RequiredFields {
		if out[f] == nil {
			out[f] = domain.NotSpecified
		}
	}
	if out[domain.FieldIsPublic] == nil {
		out[domain.FieldIsPublic] = false
	}
	return out
}

func isPublic(doc domain.Document) bool {
	public, _ := doc[domain.FieldIsPublic].(bool)
	return public
}

func listContains(field string, values map[string]struct{}) predicate {
	return func(doc domain.Document) bool {
		entries, ok := domain.Strings(doc[field])
		if !ok {
			return false
		}
		for _, e := range entries {
			if _, hit := values[strings.ToLower(e)]; hit {
				return true
			}
		}
		return false
	}
}

func scalarEquals(field string, values map[string]struct{}) predicate {
	return func(doc domain.Document) bool {
		s, ok := doc[field].(string)
		if !ok || s == "" {
			return false
		}
		_, hit := values[strings.ToLower(s)]
		return hit
	}
}

func experienceIn(ranges []string) predicate {
	return func(doc domain.Document) bool {
		years, ok := domain.Number(doc[domain.FieldYearsExperience])
		if !ok {
			return false
		}
		for _, r := range ranges {
			switch r {
			case ExperienceJunior:
				if years >= 0 && years <= 1 {
					return true
				}
			case ExperienceMid:
				if years >= 2 && years <= 3 {
					return true
				}
			case ExperienceSenior:
				if years >= 4 {
					return true
				}
			}
		}
		return false
	}
}

// matchesSearch matches term as a substring of first_name, last_name,
// industry or any skill.
func matchesSearch(term string) predicate {
	return func(doc domain.Document) bool {
		for _, f := range []string{domain.FieldFirstName, domain.FieldLastName, domain.FieldIndustry} {
			if s, ok := doc[f].(string); ok && strings.Contains(strings.ToLower(s), term) {
				return true
			}
		}
		skills, _ := domain.Strings(doc[domain.FieldSkills])
		for _, skill := range skills {
			if strings.Contains(strings.ToLower(skill), term) {
				return true
			}
		}
		return false
	}
}

// lowerSet lowercases the non-empty values. It returns nil when none remain.
func lowerSet(values []string) map[string]struct{} {
	var set map[string]struct{}
	for _, v := range nonEmpty(values) {
		if set == nil {
			set = make(map[string]struct{}, len(values))
		}
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
