package client

import (
	"sort"
	"strconv"
)

// IDList is the normalized identifier argument for detail fetches:
// either a single id or an ordered sequence of ids. The shape is
// resolved once at the public-method edge so the orchestration logic
// only ever sees one form; the public methods decide whether the
// result is a single object or a sequence. Order is caller-significant
// and duplicates are allowed; both survive into the result.
type IDList struct {
	ids []string
}

// One wraps a single numeric id.
func One(id int) IDList {
	return IDList{ids: []string{strconv.Itoa(id)}}
}

// Many wraps an ordered sequence of numeric ids.
func Many(ids ...int) IDList {
	list := IDList{ids: make([]string, len(ids))}
	for i, id := range ids {
		list.ids[i] = strconv.Itoa(id)
	}
	return list
}

// OneName wraps a single string id (professions, legends, guild
// permission names, WvW objective ids).
func OneName(name string) IDList {
	return IDList{ids: []string{name}}
}

// Names wraps an ordered sequence of string ids.
func Names(names ...string) IDList {
	return IDList{ids: append([]string(nil), names...)}
}

// Empty reports whether no ids were supplied.
func (l IDList) Empty() bool {
	return len(l.ids) == 0
}

// Values returns the ids in caller order.
func (l IDList) Values() []string {
	return l.ids
}

// sortIDs orders ids ascending for the batch request, numerically when
// every id parses as an integer. Batch order never reaches the caller.
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
}
