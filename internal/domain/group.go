package domain

import (
	"sort"

	"gopkg.in/guregu/null.v3"
)

// GroupInfo annotates one position of an already grouped record list.
type GroupInfo struct {
	ModelID               null.String
	IsGroupMember         bool
	IsGroupFirst          bool
	IsGroupLast           bool
	GroupSize             int
	GroupHasLatestVersion bool
}

// GroupByModelID orders records so that records sharing a model id are
// contiguous. Buckets are sorted internally by key and ordered by their
// first member; records without a usable id follow, sorted by key.
func GroupByModelID(records []ModelRecord, key SortKey) []ModelRecord {
	var (
		order     []string
		buckets   = make(map[string][]ModelRecord)
		ungrouped []ModelRecord
	)
	for _, r := range records {
		id, ok := r.GroupID()
		if !ok {
			ungrouped = append(ungrouped, r)
			continue
		}
		if _, seen := buckets[id]; !seen {
			order = append(order, id)
		}
		buckets[id] = append(buckets[id], r)
	}

	sorted := make([][]ModelRecord, 0, len(order))
	for _, id := range order {
		sorted = append(sorted, Sort(buckets[id], key))
	}
	c := Compare(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c(sorted[i][0], sorted[j][0]) < 0
	})

	out := make([]ModelRecord, 0, len(records))
	for _, bucket := range sorted {
		out = append(out, bucket...)
	}
	return append(out, Sort(ungrouped, key)...)
}

// GenerateGroupInfo annotates the output of GroupByModelID in a single
// forward pass. Only runs of two or more records sharing an id are groups.
// A nil predicate means HasUpdateAvailable.
func GenerateGroupInfo(ordered []ModelRecord, hasUpdate UpdatePredicate) []GroupInfo {
	if hasUpdate == nil {
		hasUpdate = HasUpdateAvailable
	}
	infos := make([]GroupInfo, len(ordered))

	closeRun := func(start, end int) {
		size := end - start
		if size == 0 {
			return
		}
		id := null.StringFrom(mustGroupID(ordered[start]))
		if size == 1 {
			infos[start] = GroupInfo{ModelID: id, GroupSize: 1}
			return
		}
		latest := false
		for i := start; i < end; i++ {
			if !hasUpdate(ordered[i].Info) {
				latest = true
				break
			}
		}
		for i := start; i < end; i++ {
			infos[i] = GroupInfo{
				ModelID:               id,
				IsGroupMember:         true,
				IsGroupFirst:          i == start,
				IsGroupLast:           i == end-1,
				GroupSize:             size,
				GroupHasLatestVersion: latest,
			}
		}
	}

	runStart, runID := -1, ""
	for i, r := range ordered {
		id, ok := r.GroupID()
		if runStart >= 0 && (!ok || id != runID) {
			closeRun(runStart, i)
			runStart = -1
		}
		if !ok {
			continue
		}
		if runStart < 0 {
			runStart, runID = i, id
		}
	}
	if runStart >= 0 {
		closeRun(runStart, len(ordered))
	}
	return infos
}

func mustGroupID(r ModelRecord) string {
	id, _ := r.GroupID()
	return id
}
