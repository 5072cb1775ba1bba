package domain

import "testing"

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in    string
		want  SortKey
		known bool
	}{
		{"name", SortKey{SortByName, Asc}, true},
		{"name-desc", SortKey{SortByName, Desc}, true},
		{"lastused", SortKey{SortByLastUsed, Asc}, true},
		{"lastused-desc", SortKey{SortByLastUsed, Desc}, true},
		{"size", SortKey{SortBySize, Asc}, true},
		{" SIZE-DESC ", SortKey{SortBySize, Desc}, true},
		{"type", SortKey{SortByType, Asc}, true},
		{"type-desc", SortKey{SortByType, Desc}, true},
		{"", DefaultSortKey, false},
		{"popularity", DefaultSortKey, false},
		{"-desc", DefaultSortKey, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, known := LookupSortKey(tt.in)
			if got != tt.want || known != tt.known {
				t.Errorf("LookupSortKey(%q) = %v, %v; want %v, %v", tt.in, got, known, tt.want, tt.known)
			}
			if ParseSortKey(tt.in) != tt.want {
				t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, ParseSortKey(tt.in), tt.want)
			}
		})
	}
}

func TestSortKey_RoundTrip(t *testing.T) {
	for _, mode := range SortModes() {
		if got := ParseSortKey(mode).String(); got != mode {
			t.Errorf("ParseSortKey(%q).String() = %q", mode, got)
		}
	}
	if len(SortModes()) != 8 {
		t.Errorf("SortModes() has %d entries, want 8", len(SortModes()))
	}
}

func TestSortKey_NextReverse(t *testing.T) {
	k := SortKey{SortByType, Desc}.Next()
	if k != (SortKey{SortByName, Desc}) {
		t.Errorf("Next() wrapped to %v", k)
	}
	if k.Reverse().Reverse() != k {
		t.Error("Reverse twice should be identity")
	}
	if DefaultSortKey.Reverse().Dir != Desc {
		t.Error("Reverse() did not flip direction")
	}
}
