package profile

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

var (
	schemeRe        = regexp.MustCompile(`(?i)^https?://`)
	partialSchemeRe = regexp.MustCompile(`(?i)^(https?:)?/*`)
)

// Normalize converts a raw input into a canonical update. Every text field,
// years_experience and skills always get an entry; isPublic only when the
// input carries it.
func Normalize(in RawInput) (domain.Update, error) {
	u := domain.Update{}

	for _, f := range domain.TextFields {
		raw, ok := field(in, f)
		s, err := text(f, raw, ok)
		if err != nil {
			return nil, err
		}
		if s == "" {
			u.Delete(f)
			continue
		}
		if f == domain.FieldLinkedinURL {
			s = withScheme(s)
		}
		u.Set(f, s)
	}

	raw, ok := field(in, domain.FieldYearsExperience)
	if years, valid := yearsExperience(raw, ok); valid {
		u.Set(domain.FieldYearsExperience, years)
	} else {
		u.Delete(domain.FieldYearsExperience)
	}

	raw, _ = field(in, domain.FieldSkills)
	u.Set(domain.FieldSkills, skills(raw))

	if raw, ok := field(in, domain.FieldIsPublic); ok {
		u.Set(domain.FieldIsPublic, isPublic(raw))
	}

	return u, nil
}

// text returns the trimmed value of a free-text field, or "" when the field
// should be cleared.
func text(name string, raw any, present bool) (string, error) {
	if !present || raw == nil {
		return "", nil
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case bool:
		s = strconv.FormatBool(v)
	case map[string]any, []any:
		return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidField, name)
	default:
		n, ok := domain.Number(v)
		if !ok {
			return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidField, name)
		}
		s = strconv.FormatFloat(n, 'f', -1, 64)
	}

	s = strings.TrimSpace(s)
	if s == domain.NotSpecified {
		return "", nil
	}
	return s, nil
}

func withScheme(url string) string {
	if schemeRe.MatchString(url) {
		return url
	}
	return "https://" + partialSchemeRe.ReplaceAllString(url, "")
}

// yearsExperience coerces a raw value to a non-negative number.
func yearsExperience(raw any, present bool) (float64, bool) {
	if !present || raw == nil {
		return 0, false
	}

	var n float64
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" || s == domain.NotSpecified {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	case bool:
		return 0, false
	default:
		parsed, ok := domain.Number(v)
		if !ok {
			return 0, false
		}
		n = parsed
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}
	return n, true
}

// skills accepts a list or a comma separated string. Sentinel and empty
// entries are dropped; anything else yields an empty list.
func skills(raw any) []string {
	out := []string{}

	var parts []string
	switch v := raw.(type) {
	case []any, []string:
		parts, _ = domain.Strings(v)
	case string:
		if strings.TrimSpace(v) == domain.NotSpecified {
			return out
		}
		parts = strings.Split(v, ",")
	}

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == domain.NotSpecified {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isPublic(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}
