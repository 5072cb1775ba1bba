package report

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arcum42/sagemodels/internal/domain"
	"github.com/arcum42/sagemodels/internal/parser"
)

// Options controls one pipeline run.
type Options struct {
	Sort      domain.SortKey
	Types     []string
	HasUpdate domain.UpdatePredicate // nil means domain.HasUpdateAvailable
}

// Report is the rendered view of a model library.
type Report struct {
	Rows        []Row     `json:"rows" yaml:"rows"`
	Stats       Stats     `json:"stats" yaml:"stats"`
	Sort        string    `json:"sort" yaml:"sort"`
	Filter      []string  `json:"filter,omitempty" yaml:"filter,omitempty"`
	Types       []string  `json:"types" yaml:"types"` // categories present before filtering
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// Row is one record flattened together with its group annotation.
type Row struct {
	FilePath              string     `json:"file_path" yaml:"file_path"`
	Hash                  string     `json:"hash,omitempty" yaml:"hash,omitempty"`
	ModelID               string     `json:"model_id,omitempty" yaml:"model_id,omitempty"`
	Name                  string     `json:"name" yaml:"name"`
	Type                  string     `json:"type,omitempty" yaml:"type,omitempty"`
	Size                  int64      `json:"size" yaml:"size"`
	SizeHuman             string     `json:"size_human,omitempty" yaml:"size_human,omitempty"`
	LastUsed              *time.Time `json:"last_used,omitempty" yaml:"last_used,omitempty"`
	UpdateAvailable       bool       `json:"update_available" yaml:"update_available"`
	IsGroupMember         bool       `json:"is_group_member" yaml:"is_group_member"`
	IsGroupFirst          bool       `json:"is_group_first" yaml:"is_group_first"`
	IsGroupLast           bool       `json:"is_group_last" yaml:"is_group_last"`
	GroupSize             int        `json:"group_size" yaml:"group_size"`
	GroupHasLatestVersion bool       `json:"group_has_latest_version" yaml:"group_has_latest_version"`

	// ShowUpdate is false for stale members of a group that already holds
	// the latest version.
	ShowUpdate bool `json:"show_update" yaml:"show_update"`
}

// Stats summarizes one pipeline run.
type Stats struct {
	Input            int   `json:"input" yaml:"input"`
	Unique           int   `json:"unique" yaml:"unique"`
	Duplicates       int   `json:"duplicates" yaml:"duplicates"`
	Filtered         int   `json:"filtered" yaml:"filtered"`
	Groups           int   `json:"groups" yaml:"groups"`
	Grouped          int   `json:"grouped" yaml:"grouped"`
	Ungrouped        int   `json:"ungrouped" yaml:"ungrouped"`
	TotalBytes       int64 `json:"total_bytes" yaml:"total_bytes"`
	UpdatesAvailable int   `json:"updates_available" yaml:"updates_available"`
}

// Build runs dedup, type filter, grouping and annotation over records.
// records is not modified.
func Build(records []domain.ModelRecord, opts Options) Report {
	hasUpdate := opts.HasUpdate
	if hasUpdate == nil {
		hasUpdate = domain.HasUpdateAvailable
	}

	unique := parser.Dedup(records)
	filtered := domain.FilterByType(unique, opts.Types)
	ordered := domain.GroupByModelID(filtered, opts.Sort)
	infos := domain.GenerateGroupInfo(ordered, hasUpdate)

	rep := Report{
		Rows:        make([]Row, len(ordered)),
		Sort:        opts.Sort.String(),
		Filter:      opts.Types,
		Types:       domain.Types(unique),
		GeneratedAt: time.Now().UTC(),
		Stats: Stats{
			Input:      len(records),
			Unique:     len(unique),
			Duplicates: len(records) - len(unique),
			Filtered:   len(ordered),
		},
	}
	for i, r := range ordered {
		row := newRow(r, infos[i], hasUpdate(r.Info))
		rep.Rows[i] = row

		st := &rep.Stats
		st.TotalBytes += row.Size
		if row.ShowUpdate {
			st.UpdatesAvailable++
		}
		if row.IsGroupMember {
			st.Grouped++
			if row.IsGroupFirst {
				st.Groups++
			}
		} else {
			st.Ungrouped++
		}
	}
	return rep
}

func newRow(r domain.ModelRecord, gi domain.GroupInfo, update bool) Row {
	row := Row{
		FilePath:              r.FilePath,
		Name:                  r.DisplayName(),
		Type:                  r.TypeOrEmpty(),
		Size:                  r.Size(),
		UpdateAvailable:       update,
		IsGroupMember:         gi.IsGroupMember,
		IsGroupFirst:          gi.IsGroupFirst,
		IsGroupLast:           gi.IsGroupLast,
		GroupSize:             gi.GroupSize,
		GroupHasLatestVersion: gi.GroupHasLatestVersion,
		ShowUpdate:            update && !(gi.IsGroupMember && gi.GroupHasLatestVersion),
	}
	if h, ok := r.HashKey(); ok {
		row.Hash = h
	}
	if id, ok := r.GroupID(); ok {
		row.ModelID = id
	}
	if row.Size > 0 {
		row.SizeHuman = humanize.Bytes(uint64(row.Size))
	}
	if r.Info.LastUsed.Valid {
		t := r.Info.LastUsed.Time
		row.LastUsed = &t
	}
	return row
}

// Gutter returns the group bracket drawn left of a row.
func (r Row) Gutter() string {
	switch {
	case !r.IsGroupMember:
		return " "
	case r.IsGroupFirst:
		return "╭"
	case r.IsGroupLast:
		return "╰"
	default:
		return "│"
	}
}
