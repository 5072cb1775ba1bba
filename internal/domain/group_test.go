package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/guregu/null.v3"
)

func member(name, id string, update bool) ModelRecord {
	r := named(name)
	if id != "" {
		r.Info.ModelID = null.StringFrom(id)
	}
	if update {
		r.Info.UpdateAvailable = null.BoolFrom(true)
	}
	return r
}

func TestGroupByModelID_Contiguous(t *testing.T) {
	records := []ModelRecord{
		member("delta v1", "10", false),
		member("alpha", "20", false),
		member("loose", "", false),
		member("charlie v2", "10", false),
		member("bravo", "Unknown", false),
		member("ace v1", "10", false),
	}

	got := names(GroupByModelID(records, DefaultSortKey))
	// Bucket 10 sorts by its first member "ace v1", ahead of bucket 20.
	want := []string{"ace v1", "charlie v2", "delta v1", "alpha", "bravo", "loose"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByModelID_Empty(t *testing.T) {
	if got := GroupByModelID(nil, DefaultSortKey); len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
}

func TestGenerateGroupInfo(t *testing.T) {
	ordered := []ModelRecord{
		member("a1", "1", true),
		member("a2", "1", false),
		member("a3", "1", true),
		member("solo", "2", false),
		member("b1", "3", true),
		member("b2", "3", true),
		member("none", "", false),
	}
	got := GenerateGroupInfo(ordered, nil)

	id := null.StringFrom
	want := []GroupInfo{
		{ModelID: id("1"), IsGroupMember: true, IsGroupFirst: true, GroupSize: 3, GroupHasLatestVersion: true},
		{ModelID: id("1"), IsGroupMember: true, GroupSize: 3, GroupHasLatestVersion: true},
		{ModelID: id("1"), IsGroupMember: true, IsGroupLast: true, GroupSize: 3, GroupHasLatestVersion: true},
		{ModelID: id("2"), GroupSize: 1},
		{ModelID: id("3"), IsGroupMember: true, IsGroupFirst: true, GroupSize: 2},
		{ModelID: id("3"), IsGroupMember: true, IsGroupLast: true, GroupSize: 2},
		{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateGroupInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateGroupInfo_CustomPredicate(t *testing.T) {
	ordered := []ModelRecord{member("a", "1", false), member("b", "1", false)}
	always := func(Info) bool { return true }

	for _, gi := range GenerateGroupInfo(ordered, always) {
		if gi.GroupHasLatestVersion {
			t.Error("every member has an update, latest should be false")
		}
	}
}

func TestGroupPipeline_Contiguity(t *testing.T) {
	records := []ModelRecord{
		member("x", "5", false),
		member("y", "6", false),
		member("z", "5", false),
		member("w", "6", false),
		member("v", "", false),
	}
	ordered := GroupByModelID(records, ParseSortKey("name-desc"))

	seen := make(map[string]bool)
	prev := ""
	for _, r := range ordered {
		id, ok := r.GroupID()
		if !ok {
			continue
		}
		if id != prev && seen[id] {
			t.Errorf("model id %s is not contiguous in %v", id, names(ordered))
		}
		seen[id] = true
		prev = id
	}
}
