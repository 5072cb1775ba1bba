package domain

import (
	"cmp"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// missingType sorts records without a category after every named type.
const missingType = "ZZZ"

// Comparator orders two records; negative means a sorts first.
type Comparator func(a, b ModelRecord) int

// Compare returns the pairwise comparator for key. The returned function
// owns a collator and must not be shared between goroutines.
func Compare(key SortKey) Comparator {
	coll := collate.New(language.English)
	byName := func(a, b ModelRecord) int {
		return coll.CompareString(a.DisplayName(), b.DisplayName())
	}
	typeOf := func(r ModelRecord) string {
		if t := r.TypeOrEmpty(); t != "" {
			return t
		}
		return missingType
	}

	var c Comparator
	switch key.Field {
	case SortByLastUsed:
		// Ascending means most recent first.
		c = func(a, b ModelRecord) int {
			return cmp.Compare(b.LastUsedUnix(), a.LastUsedUnix())
		}
	case SortBySize:
		c = func(a, b ModelRecord) int {
			return cmp.Compare(a.Size(), b.Size())
		}
	case SortByType:
		c = func(a, b ModelRecord) int {
			if r := coll.CompareString(typeOf(a), typeOf(b)); r != 0 {
				return r
			}
			return byName(a, b)
		}
	default:
		c = byName
	}

	if key.Dir == Desc {
		return func(a, b ModelRecord) int { return c(b, a) }
	}
	return c
}

// Sort returns a stably sorted copy of records.
func Sort(records []ModelRecord, key SortKey) []ModelRecord {
	out := make([]ModelRecord, len(records))
	copy(out, records)
	c := Compare(key)
	sort.SliceStable(out, func(i, j int) bool {
		return c(out[i], out[j]) < 0
	})
	return out
}
