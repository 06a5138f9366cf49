package util

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// KeyValue is one keyed value taken from a catalog or a table.
type KeyValue struct {
	Key   string
	Value string
}

// AlignedRow pairs the values of one key from two sources.
type AlignedRow struct {
	Key       string
	Primary   string
	Secondary string
	// InPrimary and InSecondary tell whether the key exists in each source.
	InPrimary   bool
	InSecondary bool
	// Extra marks a key found only in the secondary source, appended after
	// the primary keys.
	Extra bool
}

// PositionalStat describes how values were fitted onto slots.
type PositionalStat struct {
	Slots  int
	Values int
}

// Shortfall is the number of slots filled with an empty string.
func (s PositionalStat) Shortfall() int {
	if s.Slots > s.Values {
		return s.Slots - s.Values
	}
	return 0
}

// Excess is the number of values dropped.
func (s PositionalStat) Excess() int {
	if s.Values > s.Slots {
		return s.Values - s.Slots
	}
	return 0
}

// Mismatch returns true if the number of values differs from the number of slots.
func (s PositionalStat) Mismatch() bool {
	return s.Slots != s.Values
}

// AlignPositional pairs slot i with value i. Missing values are empty
// strings, extra values are dropped.
func AlignPositional(slots int, values []string) ([]string, PositionalStat) {
	out := make([]string, slots)
	copy(out, values)
	return out, PositionalStat{Slots: slots, Values: len(values)}
}

// orderedMap is a string map that remembers the first insertion order of
// its keys. Assigning an existing key replaces the value in place.
type orderedMap struct {
	keys   []string
	values map[string]string
}

func newOrderedMap(kvs []KeyValue) *orderedMap {
	m := &orderedMap{values: make(map[string]string, len(kvs))}
	for _, kv := range kvs {
		if _, ok := m.values[kv.Key]; !ok {
			m.keys = append(m.keys, kv.Key)
		}
		m.values[kv.Key] = kv.Value
	}
	return m
}

func (m *orderedMap) get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// AlignKeyed walks the keys of primary in order and looks up each one in
// secondary. Keys only found in secondary are appended with Extra set. For
// duplicated keys the last value wins, at the position of the first one.
func AlignKeyed(primary, secondary []KeyValue) []AlignedRow {
	pm := newOrderedMap(primary)
	sm := newOrderedMap(secondary)

	rows := make([]AlignedRow, 0, len(pm.keys))
	for _, key := range pm.keys {
		row := AlignedRow{Key: key, InPrimary: true}
		row.Primary, _ = pm.get(key)
		row.Secondary, row.InSecondary = sm.get(key)
		rows = append(rows, row)
	}
	if n := len(primary) - len(pm.keys); n > 0 {
		log.Debugf("%d duplicated keys merged", n)
	}
	for _, key := range sm.keys {
		if _, ok := pm.get(key); ok {
			continue
		}
		value, _ := sm.get(key)
		rows = append(rows, AlignedRow{
			Key:         key,
			Secondary:   value,
			InSecondary: true,
			Extra:       true,
		})
	}
	return rows
}

// AlignmentError reports two sequences that are not in the same order.
// Index is -1 when only the lengths differ.
type AlignmentError struct {
	Index       int
	LeftLen     int
	RightLen    int
	Left, Right string
}

func (e *AlignmentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("different number of entries: %d and %d", e.LeftLen, e.RightLen)
	}
	return fmt.Sprintf("msgid mismatch at index %d: %q and %q", e.Index, e.Left, e.Right)
}

// ValidateExactOrder checks that a and b have the same length and the same
// msgid at every index.
func ValidateExactOrder(a, b []PoEntry) error {
	if len(a) != len(b) {
		return &AlignmentError{Index: -1, LeftLen: len(a), RightLen: len(b)}
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return &AlignmentError{
				Index:    i,
				LeftLen:  len(a),
				RightLen: len(b),
				Left:     a[i].ID,
				Right:    b[i].ID,
			}
		}
	}
	return nil
}
