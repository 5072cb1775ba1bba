package domain

import "strings"

type SortField int

const (
	SortByName SortField = iota
	SortByLastUsed
	SortBySize
	SortByType
	sortFieldCount // sentinel: number of fields
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

// SortKey is the parsed form of the external sort mode strings
// ("name", "size-desc", ...).
type SortKey struct {
	Field SortField
	Dir   Direction
}

var fieldNames = [sortFieldCount]string{"name", "lastused", "size", "type"}

// DefaultSortKey is used for empty or unrecognized sort modes.
var DefaultSortKey = SortKey{Field: SortByName, Dir: Asc}

// ParseSortKey maps an external sort mode to a SortKey. Unrecognized modes
// fall back to DefaultSortKey.
func ParseSortKey(s string) SortKey {
	key, _ := LookupSortKey(s)
	return key
}

// LookupSortKey is ParseSortKey that also reports whether s was recognized.
func LookupSortKey(s string) (SortKey, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	dir := Asc
	if base, ok := strings.CutSuffix(s, "-desc"); ok {
		s = base
		dir = Desc
	}
	for i, name := range fieldNames {
		if name == s {
			return SortKey{Field: SortField(i), Dir: dir}, true
		}
	}
	return DefaultSortKey, false
}

// String returns the external sort mode.
func (k SortKey) String() string {
	name := fieldNames[SortByName]
	if k.Field >= 0 && k.Field < sortFieldCount {
		name = fieldNames[k.Field]
	}
	if k.Dir == Desc {
		return name + "-desc"
	}
	return name
}

// Next cycles to the next field, keeping the direction.
func (k SortKey) Next() SortKey {
	k.Field = (k.Field + 1) % sortFieldCount
	return k
}

// Reverse flips the direction.
func (k SortKey) Reverse() SortKey {
	if k.Dir == Asc {
		k.Dir = Desc
	} else {
		k.Dir = Asc
	}
	return k
}

// SortModes lists every accepted external sort mode.
func SortModes() []string {
	modes := make([]string, 0, 2*len(fieldNames))
	for _, name := range fieldNames {
		modes = append(modes, name, name+"-desc")
	}
	return modes
}
