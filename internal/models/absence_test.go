package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		absenceType AbsenceType
		want        string
	}{
		{"Krankheit", "#CBFFA9"},
		{"Unfall", "#FF9B9B"},
		{"Other", "#FFD6A5"},
	}

	for _, tt := range tests {
		t.Run(string(tt.absenceType), func(t *testing.T) {
			got, err := ColorFor(tt.absenceType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorFor_EveryTypeHasDistinctColor(t *testing.T) {
	seen := map[string]AbsenceType{}
	for _, at := range AbsenceTypes() {
		c, err := ColorFor(at)
		require.NoError(t, err)
		prev, dup := seen[c]
		require.False(t, dup, "%s and %s share color %s", at, prev, c)
		seen[c] = at
	}
	assert.Len(t, seen, 3)
}

func TestColorFor_Unknown(t *testing.T) {
	_, err := ColorFor("Urlaub")
	assert.ErrorIs(t, err, ErrUnknownAbsenceType)
	assert.Equal(t, "", AbsenceType("Urlaub").Color())
	assert.False(t, AbsenceType("").IsValid())
}

func TestParseAbsenceType(t *testing.T) {
	cases := map[string]AbsenceType{
		"Krankheit":  AbsenceTypeIllness,
		" unfall ":   AbsenceTypeAccident,
		"OTHER":      AbsenceTypeOther,
		"больничный": AbsenceTypeIllness,
	}
	for input, want := range cases {
		got, err := ParseAbsenceType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseAbsenceType("vacation")
	assert.ErrorIs(t, err, ErrUnknownAbsenceType)
}

func TestNewAbsence(t *testing.T) {
	a, err := NewAbsence("  Alice ", AbsenceTypeIllness, "2024-03-11", "2024-03-12")
	require.NoError(t, err)
	assert.Equal(t, "Alice", a.PersonName)
	assert.Equal(t, "2024-03-11 - 2024-03-12", a.DisplayRange())
	assert.Equal(t, 2, a.Days())

	single, err := NewAbsence("Bob", AbsenceTypeOther, "2024-03-15", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
}

func TestNewAbsence_Errors(t *testing.T) {
	tests := []struct {
		name    string
		person  string
		typ     AbsenceType
		start   string
		end     string
		wantErr error
	}{
		{"empty name", "  ", AbsenceTypeOther, "2024-03-11", "2024-03-11", ErrEmptyPersonName},
		{"unknown type", "Alice", "Urlaub", "2024-03-11", "2024-03-11", ErrUnknownAbsenceType},
		{"bad start", "Alice", AbsenceTypeOther, "11.03.2024", "2024-03-11", ErrInvalidDate},
		{"bad end", "Alice", AbsenceTypeOther, "2024-03-11", "2024-02-30", ErrInvalidDate},
		{"reversed", "Alice", AbsenceTypeOther, "2024-03-12", "2024-03-11", ErrReversedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAbsence(tt.person, tt.typ, tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAbsence_CoversAndOverlaps(t *testing.T) {
	a := Absence{PersonName: "Alice", Type: AbsenceTypeAccident, StartDate: "2024-03-11", EndDate: "2024-03-13"}

	assert.False(t, a.Covers("2024-03-10"))
	assert.True(t, a.Covers("2024-03-11"))
	assert.True(t, a.Covers("2024-03-13"))
	assert.False(t, a.Covers("2024-03-14"))

	assert.True(t, a.Overlaps("2024-03-13", "2024-03-20"))
	assert.True(t, a.Overlaps("2024-03-01", "2024-03-11"))
	assert.False(t, a.Overlaps("2024-03-14", "2024-03-20"))
}
