package domain

import (
	"testing"

	"gopkg.in/guregu/null.v3"
)

func typed(path, modelType string) ModelRecord {
	r := ModelRecord{FilePath: path}
	if modelType != "" {
		r.Info.ModelType = null.StringFrom(modelType)
	}
	return r
}

func TestFilterByType(t *testing.T) {
	records := []ModelRecord{
		typed("/a", "LORA"),
		typed("/b", "Checkpoint"),
		typed("/c", "lora"),
		typed("/d", ""),
	}

	tests := []struct {
		name  string
		types []string
		want  int
	}{
		{"no filter", nil, 4},
		{"blank filter", []string{" ", ""}, 4},
		{"case insensitive", []string{"Lora"}, 2},
		{"multiple", []string{"lora", "checkpoint"}, 3},
		{"unknown", []string{UnknownType}, 1},
		{"no match", []string{"VAE"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterByType(records, tt.types); len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestTypes(t *testing.T) {
	records := []ModelRecord{
		typed("/a", "LORA"),
		typed("/b", ""),
		typed("/c", "Checkpoint"),
		typed("/d", "LORA"),
	}
	got := Types(records)
	want := []string{"LORA", UnknownType, "Checkpoint"}
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
