package parser

import (
	"fmt"
	"strings"

	"github.com/arcum42/sagemodels/internal/domain"
)

type keyKind int

const (
	keyHash keyKind = iota
	keyPath
	keySizeName
)

type dedupKey struct {
	kind  keyKind
	value string
}

// matchers are tried in priority order: hash, normalized path, size+name.
var matchers = []struct {
	kind keyKind
	key  func(r domain.ModelRecord) (string, bool)
}{
	{keyHash, func(r domain.ModelRecord) (string, bool) { return r.HashKey() }},
	{keyPath, func(r domain.ModelRecord) (string, bool) {
		p := r.NormalizedPath()
		return p, p != ""
	}},
	{keySizeName, sizeNameKey},
}

// sizeNameKey only yields a key above SizeNameMinBytes; small files with the
// same size and name are too often unrelated.
func sizeNameKey(r domain.ModelRecord) (string, bool) {
	size, name := r.Size(), r.FileName()
	if size <= domain.SizeNameMinBytes || name == "" {
		return "", false
	}
	return fmt.Sprintf("%d_%s", size, name), true
}

func keysOf(r domain.ModelRecord) []dedupKey {
	keys := make([]dedupKey, 0, len(matchers))
	for _, m := range matchers {
		if v, ok := m.key(r); ok {
			keys = append(keys, dedupKey{kind: m.kind, value: v})
		}
	}
	return keys
}

// Dedup collapses records that refer to the same physical file.
// Records without a file path are dropped. The input is not modified.
func Dedup(records []domain.ModelRecord) []domain.ModelRecord {
	d := &deduper{index: make(map[dedupKey]int, len(records)*len(matchers))}
	for _, r := range records {
		if strings.TrimSpace(r.FilePath) == "" {
			continue
		}
		d.add(r.Clone())
	}

	result := make([]domain.ModelRecord, 0, len(d.records))
	for i, r := range d.records {
		if d.parent[i] == i {
			result = append(result, r)
		}
	}
	return result
}

type deduper struct {
	records []domain.ModelRecord
	parent  []int // survivor of a merged record; parent[i] == i when alive
	index   map[dedupKey]int
}

func (d *deduper) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *deduper) lookup(k dedupKey) (int, bool) {
	idx, ok := d.index[k]
	if !ok {
		return 0, false
	}
	return d.find(idx), true
}

func (d *deduper) add(r domain.ModelRecord) {
	keys := keysOf(r)
	for _, k := range keys {
		target, ok := d.lookup(k)
		if !ok {
			continue
		}
		mergeInto(&d.records[target], r)
		d.absorb(target, keys)
		return
	}

	d.records = append(d.records, r)
	d.parent = append(d.parent, len(d.records)-1)
	d.absorb(len(d.records)-1, keys)
}

// absorb registers keys for target. A key already held by another survivor
// merges the two, keeping the earlier record; the merged record's recomputed
// keys are registered in turn.
func (d *deduper) absorb(target int, keys []dedupKey) {
	pending := append(append([]dedupKey{}, keys...), keysOf(d.records[target])...)
	for len(pending) > 0 {
		k := pending[0]
		pending = pending[1:]

		target = d.find(target)
		other, ok := d.lookup(k)
		if !ok || other == target {
			d.index[k] = target
			continue
		}

		keep, drop := min(target, other), max(target, other)
		mergeInto(&d.records[keep], d.records[drop])
		d.parent[drop] = keep
		d.index[k] = keep
		target = keep
		pending = append(pending, keysOf(d.records[drop])...)
		pending = append(pending, keysOf(d.records[keep])...)
	}
}

// mergeInto folds src into dst. Set fields are never overwritten, except
// sizes which heal from unknown or 0.
func mergeInto(dst *domain.ModelRecord, src domain.ModelRecord) {
	if preferPath(dst.FilePath, src.FilePath) {
		dst.FilePath = src.FilePath
	}
	if _, ok := dst.HashKey(); !ok {
		if _, ok := src.HashKey(); ok {
			dst.Hash = src.Hash
		}
	}

	di, si := &dst.Info, src.Info
	if !di.ModelID.Valid && si.ModelID.Valid {
		di.ModelID = si.ModelID
	}
	if !di.ModelName.Valid && si.ModelName.Valid {
		di.ModelName = si.ModelName
	}
	if !di.Name.Valid && si.Name.Valid {
		di.Name = si.Name
	}
	if si.FileSize.Valid && (!di.FileSize.Valid || di.FileSize.Int64 == 0) {
		di.FileSize = si.FileSize
	}
	if !di.LastUsed.Valid && si.LastUsed.Valid {
		di.LastUsed = si.LastUsed
	}
	if !di.ModelType.Valid && si.ModelType.Valid {
		di.ModelType = si.ModelType
	}
	if !di.UpdateAvailable.Valid && si.UpdateAvailable.Valid {
		di.UpdateAvailable = si.UpdateAvailable
	}

	for k, v := range si.Extra {
		if v == nil {
			continue
		}
		old, ok := di.Extra[k]
		if ok && old != nil && !(isSizeKey(k) && isZero(old)) {
			continue
		}
		if di.Extra == nil {
			di.Extra = make(map[string]any)
		}
		di.Extra[k] = v
	}
}

// preferPath reports whether next should replace cur: it is strictly
// shorter, or cur is a bare file name and next is a real path.
func preferPath(cur, next string) bool {
	if next == "" {
		return false
	}
	if len(next) < len(cur) {
		return true
	}
	return !hasSeparator(cur) && hasSeparator(next)
}

func hasSeparator(p string) bool {
	return strings.ContainsAny(p, `/\`)
}

func isSizeKey(k string) bool {
	return strings.Contains(k, "size") || strings.Contains(k, "Size")
}

func isZero(v any) bool {
	switch x := v.(type) {
	case float64:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case string:
		return x == "0"
	case fmt.Stringer: // json.Number
		return x.String() == "0"
	}
	return false
}
