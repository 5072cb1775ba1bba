package domain

import (
	"path"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// UnknownValue is the placeholder the cache writer uses for missing ids and hashes.
const UnknownValue = "Unknown"

// SizeNameMinBytes is the size a file must exceed before two records with
// the same size and file name are considered the same file.
const SizeNameMinBytes = 1 << 20

// ModelRecord describes one locally stored model file and its metadata.
type ModelRecord struct {
	FilePath string
	Hash     null.String
	Info     Info
}

// Info is the validated attribute bag of a record. Invalid fields mean
// "not known" and degrade to zero values when read.
type Info struct {
	ModelID         null.String
	ModelName       null.String // nested model.name
	Name            null.String // flat name
	FileSize        null.Int
	LastUsed        null.Time
	ModelType       null.String
	UpdateAvailable null.Bool

	// Extra holds every key that has no typed field, verbatim.
	Extra map[string]any
}

// HashKey returns the content hash if it is usable for deduplication.
func (r ModelRecord) HashKey() (string, bool) {
	if !r.Hash.Valid || r.Hash.String == "" || r.Hash.String == UnknownValue {
		return "", false
	}
	return r.Hash.String, true
}

// NormalizedPath returns the canonical form of FilePath.
func (r ModelRecord) NormalizedPath() string {
	return NormalizePath(r.FilePath)
}

// FileName returns the last element of the normalized path.
func (r ModelRecord) FileName() string {
	p := r.NormalizedPath()
	if p == "" || p == "." || p == "/" {
		return ""
	}
	return path.Base(p)
}

// DisplayName prefers the nested model name, then the flat name, then the
// file name.
func (r ModelRecord) DisplayName() string {
	if r.Info.ModelName.Valid && r.Info.ModelName.String != "" {
		return r.Info.ModelName.String
	}
	if r.Info.Name.Valid && r.Info.Name.String != "" {
		return r.Info.Name.String
	}
	return r.FileName()
}

// Size returns the file size in bytes, or 0 when unknown.
func (r ModelRecord) Size() int64 {
	if r.Info.FileSize.Valid && r.Info.FileSize.Int64 > 0 {
		return r.Info.FileSize.Int64
	}
	return 0
}

// LastUsedUnix returns the last use as unix milliseconds, 0 when never used.
func (r ModelRecord) LastUsedUnix() int64 {
	if !r.Info.LastUsed.Valid {
		return 0
	}
	return r.Info.LastUsed.Time.UnixMilli()
}

// TypeOrEmpty returns the model category or "" when unknown.
func (r ModelRecord) TypeOrEmpty() string {
	if r.Info.ModelType.Valid {
		return r.Info.ModelType.String
	}
	return ""
}

// GroupID returns the external catalog id when it can be used for grouping.
func (r ModelRecord) GroupID() (string, bool) {
	id := r.Info.ModelID
	if !id.Valid || id.String == "" || id.String == UnknownValue {
		return "", false
	}
	return id.String, true
}

// Clone returns a copy that shares no mutable state with r.
func (r ModelRecord) Clone() ModelRecord {
	c := r
	if r.Info.Extra != nil {
		c.Info.Extra = make(map[string]any, len(r.Info.Extra))
		for k, v := range r.Info.Extra {
			c.Info.Extra[k] = v
		}
	}
	return c
}

// NormalizePath converts separators to "/", collapses repeated slashes and
// resolves "." and ".." segments textually. The filesystem is not consulted.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}
