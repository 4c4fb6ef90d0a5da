package profile

import (
	"math"
	"reflect"
	"strings"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

// Completeness is the share of required fields filled in doc, 0 to 100.
func Completeness(doc domain.Document) int {
	filled := 0
	for _, f := range domain.RequiredFields {
		if isFilled(doc[f]) {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(len(domain.RequiredFields))))
}

func isFilled(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case domain.Document:
		return len(t) > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
