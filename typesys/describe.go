package typesys

import (
	"sort"
)

// TypeDescription describes one registered logical type.
type TypeDescription struct {
	Name         string
	TypeString   string
	PhysicalType string
	StandardTags []string
}

// ListLogicalTypes returns a description of every registered logical type,
// sorted by name.
func ListLogicalTypes() []TypeDescription {
	out := make([]TypeDescription, 0, len(registered))
	for _, lt := range registered {
		out = append(out, TypeDescription{
			Name:         lt.name,
			TypeString:   lt.typeString,
			PhysicalType: lt.physical.String(),
			StandardTags: lt.StandardTags().Sorted(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TagDescription describes one common semantic tag.
type TagDescription struct {
	Name       string
	IsStandard bool
	// ValidTypes lists the logical types the tag applies to.
	// Empty means any logical type.
	ValidTypes []string
}

// ListSemanticTags returns a description of the standard tags contributed
// by the registered logical types plus the reserved table-role tags.
func ListSemanticTags() []TagDescription {
	byTag := map[string][]string{}
	for _, lt := range registered {
		for tag := range lt.standard {
			byTag[tag] = append(byTag[tag], lt.name)
		}
	}

	out := make([]TagDescription, 0, len(byTag)+2)
	for tag, types := range byTag {
		sort.Strings(types)
		out = append(out, TagDescription{Name: tag, IsStandard: true, ValidTypes: types})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	// Reserved role tags apply regardless of logical type, except that a
	// time index must be a datetime or numeric column.
	timeIndexTypes := []string{Datetime.name}
	for _, lt := range registered {
		if lt.IsNumeric() {
			timeIndexTypes = append(timeIndexTypes, lt.name)
		}
	}
	sort.Strings(timeIndexTypes)

	out = append(out,
		TagDescription{Name: TagIndex, IsStandard: false},
		TagDescription{Name: TagTimeIndex, IsStandard: false, ValidTypes: timeIndexTypes},
	)
	return out
}
