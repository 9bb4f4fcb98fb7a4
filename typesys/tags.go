package typesys

import (
	"sort"
)

// Reserved and standard semantic tags.
const (
	// TagIndex marks the index column of a table. Reserved: it is managed
	// through table construction and stripped from derived columns.
	TagIndex = "index"
	// TagTimeIndex marks the time index column of a table. Reserved.
	TagTimeIndex = "time_index"
	// TagNumeric is the standard tag of numeric logical types.
	TagNumeric = "numeric"
	// TagCategory is the standard tag of categorical logical types.
	TagCategory = "category"
)

// Tags is a set of semantic tags attached to a column or series.
// A nil Tags means "unset", which is distinct from an empty set.
type Tags map[string]struct{}

// NewTags creates a tag set from the given tags.
func NewTags(tags ...string) Tags {
	t := make(Tags, len(tags))
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
	return t
}

// Has reports whether the tag is in the set.
func (t Tags) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// Clone returns a copy of the set. Cloning nil returns nil.
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	for tag := range t {
		out[tag] = struct{}{}
	}
	return out
}

// Union returns a new set containing the tags of both sets.
func (t Tags) Union(o Tags) Tags {
	out := make(Tags, len(t)+len(o))
	for tag := range t {
		out[tag] = struct{}{}
	}
	for tag := range o {
		out[tag] = struct{}{}
	}
	return out
}

// Without returns a new set with the given tags removed.
func (t Tags) Without(tags ...string) Tags {
	if t == nil {
		return nil
	}
	out := t.Clone()
	for _, tag := range tags {
		delete(out, tag)
	}
	return out
}

// Equal reports whether two sets contain the same tags.
// A nil set only equals another nil set when both are empty.
func (t Tags) Equal(o Tags) bool {
	if len(t) != len(o) {
		return false
	}
	for tag := range t {
		if !o.Has(tag) {
			return false
		}
	}
	return true
}

// Sorted returns the tags in lexical order.
func (t Tags) Sorted() []string {
	out := make([]string, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
