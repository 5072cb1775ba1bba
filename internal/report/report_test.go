package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/guregu/null.v3"

	"github.com/arcum42/sagemodels/internal/domain"
)

func model(path, id, name, modelType string, size int64, update bool) domain.ModelRecord {
	r := domain.ModelRecord{FilePath: path}
	if id != "" {
		r.Info.ModelID = null.StringFrom(id)
	}
	if name != "" {
		r.Info.Name = null.StringFrom(name)
	}
	if modelType != "" {
		r.Info.ModelType = null.StringFrom(modelType)
	}
	if size > 0 {
		r.Info.FileSize = null.IntFrom(size)
	}
	if update {
		r.Info.UpdateAvailable = null.BoolFrom(true)
	}
	return r
}

func library() []domain.ModelRecord {
	return []domain.ModelRecord{
		model("/m/lora/detail_v2.safetensors", "100", "Detail v2", "LORA", 1000, false),
		model("/m/lora/detail_v1.safetensors", "100", "Detail v1", "LORA", 900, true),
		model("/m/ckpt/dream.safetensors", "200", "Dream", "Checkpoint", 5000, true),
		model("/m/ckpt/dream.safetensors", "", "", "", 0, false), // duplicate path
		model("/m/vae/ft.pt", "", "ft", "", 300, false),
	}
}

func TestBuild(t *testing.T) {
	rep := Build(library(), Options{Sort: domain.DefaultSortKey})

	var got []string
	for _, r := range rep.Rows {
		got = append(got, r.Name)
	}
	want := []string{"Detail v1", "Detail v2", "Dream", "ft"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}

	wantStats := Stats{
		Input:            5,
		Unique:           4,
		Duplicates:       1,
		Filtered:         4,
		Groups:           1,
		Grouped:          2,
		Ungrouped:        2,
		TotalBytes:       7200,
		UpdatesAvailable: 1,
	}
	if diff := cmp.Diff(wantStats, rep.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if rep.Sort != "name" {
		t.Errorf("Sort = %q, want name", rep.Sort)
	}
	if diff := cmp.Diff([]string{"LORA", "Checkpoint", domain.UnknownType}, rep.Types); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_ShowUpdate(t *testing.T) {
	rep := Build(library(), Options{})
	byName := make(map[string]Row)
	for _, r := range rep.Rows {
		byName[r.Name] = r
	}

	// Stale sibling of a group that has the latest version.
	v1 := byName["Detail v1"]
	if !v1.UpdateAvailable || v1.ShowUpdate {
		t.Errorf("Detail v1: update=%v show=%v, want true/false", v1.UpdateAvailable, v1.ShowUpdate)
	}
	if !v1.IsGroupMember || !v1.IsGroupFirst || v1.GroupSize != 2 || !v1.GroupHasLatestVersion {
		t.Errorf("Detail v1 group info = %+v", v1)
	}
	// Singleton with an update keeps its indicator.
	if d := byName["Dream"]; !d.ShowUpdate || d.IsGroupMember {
		t.Errorf("Dream: show=%v member=%v, want true/false", d.ShowUpdate, d.IsGroupMember)
	}
}

func TestBuild_MergedRecordKeepsFields(t *testing.T) {
	rep := Build(library(), Options{})
	for _, r := range rep.Rows {
		if r.Name != "Dream" {
			continue
		}
		if r.Size != 5000 || r.SizeHuman != "5.0 kB" {
			t.Errorf("size = %d %q, want 5000 5.0 kB", r.Size, r.SizeHuman)
		}
		if r.ModelID != "200" {
			t.Errorf("ModelID = %q, want 200", r.ModelID)
		}
		return
	}
	t.Fatal("Dream row missing")
}

func TestBuild_TypeFilter(t *testing.T) {
	rep := Build(library(), Options{Types: []string{"lora"}})
	if len(rep.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rep.Rows))
	}
	if rep.Stats.Unique != 4 || rep.Stats.Filtered != 2 {
		t.Errorf("stats = %+v", rep.Stats)
	}
	// Types still lists every category so a browser can cycle through them.
	if len(rep.Types) != 3 {
		t.Errorf("Types = %v, want 3 entries", rep.Types)
	}
}

func TestBuild_SizeDesc(t *testing.T) {
	rep := Build(library(), Options{Sort: domain.ParseSortKey("size-desc")})
	var got []string
	for _, r := range rep.Rows {
		got = append(got, r.Name)
	}
	// Group 100 is ordered by its largest member under size-desc.
	want := []string{"Dream", "Detail v2", "Detail v1", "ft"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_CustomPredicate(t *testing.T) {
	records := []domain.ModelRecord{
		model("/a", "1", "a", "", 0, false),
	}
	records[0].Info.Extra = map[string]any{"civitai_update": true}

	rep := Build(records, Options{HasUpdate: domain.UpdateFlagPredicate([]string{"civitai_update"})})
	if !rep.Rows[0].ShowUpdate {
		t.Error("custom predicate not applied")
	}
}

func TestBuild_Empty(t *testing.T) {
	rep := Build(nil, Options{})
	if len(rep.Rows) != 0 || rep.Stats != (Stats{}) {
		t.Errorf("got %+v, want empty report", rep)
	}
}

func TestBuild_LastUsed(t *testing.T) {
	used := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	r := model("/a", "", "a", "", 0, false)
	r.Info.LastUsed = null.TimeFrom(used)

	rep := Build([]domain.ModelRecord{r, model("/b", "", "b", "", 0, false)}, Options{})
	if rep.Rows[0].LastUsed == nil || !rep.Rows[0].LastUsed.Equal(used) {
		t.Errorf("LastUsed = %v, want %v", rep.Rows[0].LastUsed, used)
	}
	if rep.Rows[1].LastUsed != nil {
		t.Errorf("LastUsed = %v, want nil", rep.Rows[1].LastUsed)
	}
}

func TestRowGutter(t *testing.T) {
	tests := []struct {
		row  Row
		want string
	}{
		{Row{}, " "},
		{Row{IsGroupMember: true, IsGroupFirst: true}, "╭"},
		{Row{IsGroupMember: true}, "│"},
		{Row{IsGroupMember: true, IsGroupLast: true}, "╰"},
	}
	for _, tt := range tests {
		if got := tt.row.Gutter(); got != tt.want {
			t.Errorf("Gutter(%+v) = %q, want %q", tt.row, got, tt.want)
		}
	}
}
