package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignPositional(t *testing.T) {
	values, stat := AlignPositional(3, []string{"a"})
	assert.Equal(t, []string{"a", "", ""}, values)
	assert.Equal(t, 2, stat.Shortfall())
	assert.Equal(t, 0, stat.Excess())
	assert.True(t, stat.Mismatch())

	values, stat = AlignPositional(2, []string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b"}, values)
	assert.Equal(t, 0, stat.Shortfall())
	assert.Equal(t, 1, stat.Excess())

	values, stat = AlignPositional(0, nil)
	assert.Empty(t, values)
	assert.False(t, stat.Mismatch())
}

func TestAlignKeyed(t *testing.T) {
	primary := []KeyValue{{"k1", "a"}, {"k2", "b"}, {"k3", "c"}}
	secondary := []KeyValue{{"k2", "B"}, {"k1", "A"}, {"k4", "D"}}

	expect := []AlignedRow{
		{Key: "k1", Primary: "a", Secondary: "A", InPrimary: true, InSecondary: true},
		{Key: "k2", Primary: "b", Secondary: "B", InPrimary: true, InSecondary: true},
		{Key: "k3", Primary: "c", InPrimary: true},
		{Key: "k4", Secondary: "D", InSecondary: true, Extra: true},
	}
	assert.Equal(t, expect, AlignKeyed(primary, secondary))
}

func TestAlignKeyedDuplicates(t *testing.T) {
	primary := []KeyValue{{"k", "1"}, {"j", "2"}, {"k", "3"}}
	secondary := []KeyValue{{"x", "first"}, {"x", "second"}}

	rows := AlignKeyed(primary, secondary)
	require.Len(t, rows, 3)
	assert.Equal(t, "k", rows[0].Key)
	assert.Equal(t, "3", rows[0].Primary)
	assert.Equal(t, "j", rows[1].Key)
	assert.Equal(t, "x", rows[2].Key)
	assert.Equal(t, "second", rows[2].Secondary)
	assert.True(t, rows[2].Extra)
}

func TestValidateExactOrder(t *testing.T) {
	a := []PoEntry{{ID: ""}, {ID: "one"}, {ID: "two"}}

	assert.NoError(t, ValidateExactOrder(a, []PoEntry{{ID: ""}, {ID: "one", Value: "en"}, {ID: "two"}}))

	err := ValidateExactOrder(a, a[:2])
	var alignErr *AlignmentError
	require.True(t, errors.As(err, &alignErr))
	assert.Equal(t, -1, alignErr.Index)
	assert.Equal(t, "different number of entries: 3 and 2", err.Error())

	err = ValidateExactOrder(a, []PoEntry{{ID: ""}, {ID: "one"}, {ID: "three"}})
	require.True(t, errors.As(err, &alignErr))
	assert.Equal(t, 2, alignErr.Index)
	assert.Equal(t, "two", alignErr.Left)
	assert.Equal(t, "three", alignErr.Right)
	assert.Equal(t, `msgid mismatch at index 2: "two" and "three"`, err.Error())
}
