package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arcum42/sagemodels/internal/domain"
)

var (
	pathKeys = []string{"filePath", "file_path", "path"}
	hashKeys = []string{"hash", "sha256"}
)

// ParseResult holds decoded records and skip/error stats for one source.
type ParseResult struct {
	Records    []domain.ModelRecord
	SkipCount  int // records without a usable file path
	ErrorCount int // lines or values that failed to decode
}

// ParseReader reads JSONL from r, one record object per line, streaming
// line by line. Bad lines are counted, not fatal.
func ParseReader(r io.Reader) ParseResult {
	var result ParseResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024) // 10MB max line

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		raw, err := decodeObject(line)
		if err != nil {
			result.ErrorCount++
			continue
		}
		rec, ok := recordFromRaw(raw, "")
		if !ok {
			result.SkipCount++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		result.ErrorCount++
	}

	return result
}

// DecodeJSON reads a .json cache file: either an array of record objects or
// an object whose values are record objects (or hashes). Object keys are
// used as the file path when a record has none.
func DecodeJSON(r io.Reader, source string) (ParseResult, error) {
	var result ParseResult
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return result, fmt.Errorf("decode %s: %w", source, err)
	}

	add := func(v any, fallbackPath string) {
		// A path -> hash map is the hash-only cache shape.
		if h, ok := v.(string); ok && fallbackPath != "" {
			v = map[string]any{"filePath": fallbackPath, "hash": h}
		}
		raw, ok := v.(map[string]any)
		if !ok {
			result.ErrorCount++
			return
		}
		rec, ok := recordFromRaw(raw, fallbackPath)
		if !ok {
			result.SkipCount++
			return
		}
		result.Records = append(result.Records, rec)
	}

	switch x := doc.(type) {
	case []any:
		for _, v := range x {
			add(v, "")
		}
	case map[string]any:
		for _, k := range sortedKeys(x) {
			add(x[k], k)
		}
	default:
		return result, fmt.Errorf("decode %s: unexpected top-level %T", source, doc)
	}
	return result, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// recordFromRaw maps one record object. When it has no "info" object the
// remaining top-level keys are taken as the info bag.
func recordFromRaw(raw map[string]any, fallbackPath string) (domain.ModelRecord, bool) {
	if raw == nil {
		return domain.ModelRecord{}, false
	}
	var rec domain.ModelRecord

	rest := make(map[string]any, len(raw))
	for k, v := range raw {
		rest[k] = v
	}
	for _, k := range pathKeys {
		if s, ok := rest[k].(string); ok && rec.FilePath == "" && strings.TrimSpace(s) != "" {
			rec.FilePath = strings.TrimSpace(s)
		}
		delete(rest, k)
	}
	for _, k := range hashKeys {
		if h := domain.ParseHash(rest[k]); h.Valid && !rec.Hash.Valid {
			rec.Hash = h
		}
		delete(rest, k)
	}
	if rec.FilePath == "" {
		rec.FilePath = strings.TrimSpace(fallbackPath)
	}
	if rec.FilePath == "" {
		return rec, false
	}

	if info, ok := rest["info"].(map[string]any); ok {
		rec.Info = domain.NewInfo(info)
	} else {
		delete(rest, "info")
		rec.Info = domain.NewInfo(rest)
	}
	return rec, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
