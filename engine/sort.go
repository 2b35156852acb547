package engine

import (
	"sort"
	"strings"

	"okizeme/entity"
	"okizeme/filter"
)

// sortKey is the transient per-record key computed once before sorting,
// so the extractor never runs inside the comparator.
type sortKey struct {
	str     string
	num     float64
	numeric bool
	null    bool
}

// Sorted returns a fresh, stably sorted copy of moves. Numeric columns
// compare numerically, everything else case-folded lexicographically.
// Absent values sort last under either direction and tie with each other.
func Sorted(moves []entity.Move, rs filter.Resolver, spec entity.Sort) []entity.Move {

	out := make([]entity.Move, len(moves))
	copy(out, moves)

	if spec.Field == "" {
		return out
	}

	fieldCfg, known := rs.Reg.Field(spec.Field)
	numeric := known && fieldCfg.Type == entity.Number

	keys := make([]sortKey, len(out))
	for i, m := range out {
		keys[i] = makeKey(m, rs, spec.Field, numeric)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(keys[i], keys[j], spec.Desc)
	})
	return out
}

func makeKey(m entity.Move, rs filter.Resolver, field string, numeric bool) sortKey {

	fv, ok := rs.Resolve(m, field)
	if !ok {
		return sortKey{null: true}
	}

	if numeric {
		if fv.Num == nil {
			return sortKey{null: true, numeric: true}
		}
		return sortKey{num: *fv.Num, numeric: true}
	}

	if fv.Str == "" {
		return sortKey{null: true}
	}
	return sortKey{str: strings.ToLower(fv.Str)}
}

// less orders a before b; nulls always land last regardless of direction.
func less(a, b sortKey, desc bool) bool {

	if a.null || b.null {
		return !a.null && b.null
	}

	var cmp int
	if a.numeric && b.numeric {
		switch {
		case a.num < b.num:
			cmp = -1
		case a.num > b.num:
			cmp = 1
		}
	} else {
		cmp = strings.Compare(a.str, b.str)
	}

	if desc {
		return cmp > 0
	}
	return cmp < 0
}

// SelectSort applies the toggle rule: the same column flips direction, a
// new column starts ascending.
func SelectSort(current entity.Sort, field string) entity.Sort {

	if current.Field == field {
		return entity.Sort{Field: field, Desc: !current.Desc}
	}
	return entity.Sort{Field: field}
}
