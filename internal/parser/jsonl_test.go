package parser

import (
	"strings"
	"testing"
)

func TestParseReader(t *testing.T) {
	input := strings.Join([]string{
		`{"filePath":"/models/a.safetensors","hash":"h1","info":{"modelId":"12","model":{"name":"Alpha","type":"LORA"},"file_size":2048}}`,
		`{"file_path":"/models/b.ckpt","name":"Bravo","model_type":"Checkpoint","lastUsed":1714564800}`,
		`{"hash":"no-path"}`,
		`invalid json line`,
		``,
	}, "\n")

	result := ParseReader(strings.NewReader(input))

	if len(result.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(result.Records))
	}
	if result.SkipCount != 1 {
		t.Errorf("SkipCount = %d, want 1", result.SkipCount)
	}
	if result.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", result.ErrorCount)
	}

	a := result.Records[0]
	if h, ok := a.HashKey(); !ok || h != "h1" {
		t.Errorf("hash = %q, %v; want h1", h, ok)
	}
	if a.DisplayName() != "Alpha" {
		t.Errorf("DisplayName() = %q, want Alpha", a.DisplayName())
	}
	if a.TypeOrEmpty() != "LORA" {
		t.Errorf("type = %q, want LORA", a.TypeOrEmpty())
	}
	if a.Size() != 2048 {
		t.Errorf("Size() = %d, want 2048", a.Size())
	}
	if id, _ := a.GroupID(); id != "12" {
		t.Errorf("GroupID() = %q, want 12", id)
	}

	// Without an "info" object the top-level keys are the info bag.
	b := result.Records[1]
	if b.DisplayName() != "Bravo" {
		t.Errorf("DisplayName() = %q, want Bravo", b.DisplayName())
	}
	if b.TypeOrEmpty() != "Checkpoint" {
		t.Errorf("type = %q, want Checkpoint", b.TypeOrEmpty())
	}
	if b.LastUsedUnix() != 1714564800*1000 {
		t.Errorf("LastUsedUnix() = %d, want %d", b.LastUsedUnix(), int64(1714564800*1000))
	}
}

func TestParseReader_Empty(t *testing.T) {
	result := ParseReader(strings.NewReader(""))
	if len(result.Records) != 0 || result.SkipCount != 0 || result.ErrorCount != 0 {
		t.Errorf("got %+v, want zero result", result)
	}
}

func TestDecodeJSON_Array(t *testing.T) {
	input := `[
		{"filePath": "/m/a.ckpt", "hash": "Unknown"},
		{"filePath": "/m/b.ckpt", "info": {"size": "1024"}},
		42,
		{"name": "no path"}
	]`
	result, err := DecodeJSON(strings.NewReader(input), "cache.json")
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(result.Records))
	}
	if _, ok := result.Records[0].HashKey(); ok {
		t.Error("Unknown hash should not be usable")
	}
	if result.Records[1].Size() != 1024 {
		t.Errorf("Size() = %d, want 1024", result.Records[1].Size())
	}
	if result.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", result.ErrorCount)
	}
	if result.SkipCount != 1 {
		t.Errorf("SkipCount = %d, want 1", result.SkipCount)
	}
}

func TestDecodeJSON_ObjectKeyedByPath(t *testing.T) {
	input := `{
		"/m/z.safetensors": {"hash": "hz", "info": {"model_type": "VAE"}},
		"/m/a.safetensors": "ha",
		"/m/p.safetensors": {"filePath": "/elsewhere/p.safetensors"}
	}`
	result, err := DecodeJSON(strings.NewReader(input), "hashes.json")
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if len(result.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(result.Records))
	}

	want := []struct {
		path, hash string
	}{
		{"/m/a.safetensors", "ha"},
		{"/elsewhere/p.safetensors", ""},
		{"/m/z.safetensors", "hz"},
	}
	for i, w := range want {
		r := result.Records[i]
		if r.FilePath != w.path {
			t.Errorf("[%d] FilePath = %q, want %q", i, r.FilePath, w.path)
		}
		if h, _ := r.HashKey(); h != w.hash {
			t.Errorf("[%d] hash = %q, want %q", i, h, w.hash)
		}
	}
	if result.Records[2].TypeOrEmpty() != "VAE" {
		t.Errorf("type = %q, want VAE", result.Records[2].TypeOrEmpty())
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", `{"a": `},
		{"scalar", `42`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.input), "bad.json")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "bad.json") {
				t.Errorf("error %q does not name the source", err)
			}
		})
	}
}
