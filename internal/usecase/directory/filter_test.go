package directory

import (
	"testing"

	"github.com/gdugdh24/mentor-directory/internal/domain"
)

func ids(docs []domain.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		id, _ := d[domain.FieldID].(string)
		out = append(out, id)
	}
	return out
}

func assertIDs(t *testing.T, got []domain.Document, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func sampleDocs() []domain.Document {
	return []domain.Document{
		{
			"id": "ada", "first_name": "Ada", "last_name": "Lovelace", "isPublic": true,
			"skills": []any{"Python", "Engineering"}, "role": "mentor", "industry": "Tech",
			"education": "PhD", "years_experience": float64(10), "availability": []any{"Weekends"},
			"timezone": "UTC", "team": []any{"Platform"},
		},
		{
			"id": "bob", "first_name": "Bob", "last_name": "Stone", "isPublic": true,
			"skills": []any{"python"}, "role": "Mentee", "industry": "Finance",
			"years_experience": float64(3), "availability": []any{"evenings"},
		},
		{
			"id": "cy", "first_name": "Cy", "isPublic": false,
			"skills": []any{"Go"}, "role": "mentor", "years_experience": float64(1),
		},
		{
			"id": "dee", "first_name": "Dee", "skills": "Python", "years_experience": "5",
		},
	}
}

func TestFilterVisibility(t *testing.T) {
	assertIDs(t, Filter(sampleDocs(), FilterSpec{}), "ada", "bob")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Admin: true}), "ada", "bob", "cy", "dee")
}

func TestFilterNonBoolIsPublicHidden(t *testing.T) {
	docs := []domain.Document{{"id": "x", "isPublic": "true"}}
	assertIDs(t, Filter(docs, FilterSpec{}))
}

func TestFilterDefaults(t *testing.T) {
	got := Filter([]domain.Document{{"id": "bare"}}, FilterSpec{Admin: true})
	if len(got) != 1 {
		t.Fatalf("expected 1 document, got %d", len(got))
	}
	for _, f := range domain.RequiredFields {
		if got[0][f] != domain.NotSpecified {
			t.Errorf("%s: expected %q, got %v", f, domain.NotSpecified, got[0][f])
		}
	}
	if got[0]["isPublic"] != false {
		t.Errorf("expected isPublic false, got %v", got[0]["isPublic"])
	}
	if _, ok := got[0]["role"]; ok {
		t.Error("non-required fields should not be defaulted")
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	docs := []domain.Document{{"id": "bare", "isPublic": true}}
	Filter(docs, FilterSpec{})
	if _, ok := docs[0]["pronouns"]; ok {
		t.Error("input document was modified")
	}
}

func TestFilterSkills(t *testing.T) {
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Skills: []string{"PYTHON"}}), "ada", "bob")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Admin: true, Skills: []string{"go", "rust"}}), "cy")
	// dee stores skills as a string and never matches a list filter.
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Admin: true, Skills: []string{"python"}}), "ada", "bob")
}

func TestFilterCombined(t *testing.T) {
	got := Filter(sampleDocs(), FilterSpec{Skills: []string{"python"}, Role: []string{"mentor"}})
	assertIDs(t, got, "ada")
}

func TestFilterMixedFields(t *testing.T) {
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Team: []string{"platform"}}), "ada")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Timezone: []string{"utc"}}), "ada")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Role: []string{"mentee", "mentor"}}), "ada", "bob")
}

func TestFilterScalarFields(t *testing.T) {
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Industry: []string{"finance"}}), "bob")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Education: []string{"phd", "msc"}}), "ada")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Education: []string{"bsc"}}))
}

func TestFilterAvailability(t *testing.T) {
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Availability: []string{"EVENINGS"}}), "bob")
}

func TestFilterExperience(t *testing.T) {
	tests := []struct {
		ranges []string
		want   []string
	}{
		{[]string{"4+"}, []string{"ada"}},
		{[]string{"2-3"}, []string{"bob"}},
		{[]string{"0-1"}, []string{"cy"}},
		{[]string{"0-1", "4+"}, []string{"ada", "cy"}},
		{[]string{"10-20"}, nil},
	}

	for _, tt := range tests {
		got := Filter(sampleDocs(), FilterSpec{Admin: true, Experience: tt.ranges})
		assertIDs(t, got, tt.want...)
	}
}

func TestFilterExperienceSeniorBoundary(t *testing.T) {
	docs := []domain.Document{
		{"id": "ten", "isPublic": true, "years_experience": 10},
		{"id": "three", "isPublic": true, "years_experience": 3},
	}
	assertIDs(t, Filter(docs, FilterSpec{Experience: []string{"4+"}}), "ten")
}

func TestFilterSearch(t *testing.T) {
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Search: "eng"}), "ada")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Search: "STONE"}), "bob")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Search: "fin"}), "bob")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Search: "python"}), "ada", "bob")
	assertIDs(t, Filter(sampleDocs(), FilterSpec{Search: "zzz"}))
}

func TestFilterEmptyValuesIgnored(t *testing.T) {
	got := Filter(sampleDocs(), FilterSpec{Skills: []string{""}, Experience: []string{" "}, Search: "  "})
	assertIDs(t, got, "ada", "bob")
}
