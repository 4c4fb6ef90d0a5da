package domain

import "sort"

// FieldOp says what a write does to one field.
type FieldOp int

const (
	// OpKeep leaves the stored value untouched.
	OpKeep FieldOp = iota
	// OpSet replaces the stored value.
	OpSet
	// OpDelete removes the field from the stored document.
	OpDelete
)

// FieldUpdate is a tri-state change for a single field.
type FieldUpdate struct {
	Op    FieldOp
	Value any
}

func SetField(v any) FieldUpdate { return FieldUpdate{Op: OpSet, Value: v} }

func DeleteField() FieldUpdate { return FieldUpdate{Op: OpDelete} }

// Update maps field names to changes. A field with no entry is kept.
type Update map[string]FieldUpdate

func (u Update) Set(field string, v any) { u[field] = SetField(v) }

func (u Update) Delete(field string) { u[field] = DeleteField() }

// Get returns the change recorded for field, OpKeep when there is none.
func (u Update) Get(field string) FieldUpdate {
	if fu, ok := u[field]; ok {
		return fu
	}
	return FieldUpdate{Op: OpKeep}
}

// Apply merges u over existing and returns the result. existing is not modified.
func (u Update) Apply(existing Document) Document {
	merged := existing.Clone()
	for field, fu := range u {
		switch fu.Op {
		case OpSet:
			merged[field] = fu.Value
		case OpDelete:
			delete(merged, field)
		}
	}
	return merged
}

// Patch converts u into the form a document store applies in one merge-write.
func (u Update) Patch() Patch {
	p := Patch{Set: Document{}}
	for field, fu := range u {
		switch fu.Op {
		case OpSet:
			p.Set[field] = fu.Value
		case OpDelete:
			p.Delete = append(p.Delete, field)
		}
	}
	sort.Strings(p.Delete)
	return p
}

// Patch is a merge-write: Set fields are written, Delete fields are removed,
// every other stored field is preserved.
type Patch struct {
	Set    Document
	Delete []string
}

// IsEmpty reports whether applying p would change nothing.
func (p Patch) IsEmpty() bool {
	return len(p.Set) == 0 && len(p.Delete) == 0
}

// SetPatch builds a patch that writes every field of doc.
func SetPatch(doc Document) Patch {
	return Patch{Set: doc.Clone()}
}
