package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConferenceFilters(t *testing.T) {
	tests := []struct {
		name    string
		raw     []Filter
		want    *FilterSet
		wantErr bool
	}{
		{
			name: "equality only",
			raw: []Filter{
				{Field: "CITY", Operator: "EQ", Value: "London"},
				{Field: "TOPIC", Operator: "EQ", Value: "Medical Innovations"},
			},
			want: &FilterSet{
				Primary: []Clause{
					{Field: FieldCity, Op: OpEqual, Value: "London"},
					{Field: FieldTopic, Op: OpEqual, Value: "Medical Innovations"},
				},
			},
		},
		{
			name: "numeric coercion",
			raw:  []Filter{{Field: "MONTH", Operator: "EQ", Value: "6"}},
			want: &FilterSet{
				Primary: []Clause{{Field: FieldMonth, Op: OpEqual, Value: "6", IntValue: 6}},
			},
		},
		{
			name: "single inequality becomes active",
			raw:  []Filter{{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"}},
			want: &FilterSet{
				InequalityField: FieldMaxAttendees,
				HasInequality:   true,
				Primary:         []Clause{{Field: FieldMaxAttendees, Op: OpGreater, Value: "10", IntValue: 10}},
			},
		},
		{
			name: "same-field inequalities stay primary",
			raw: []Filter{
				{Field: "MONTH", Operator: "GTEQ", Value: "3"},
				{Field: "MONTH", Operator: "LTEQ", Value: "6"},
			},
			want: &FilterSet{
				InequalityField: FieldMonth,
				HasInequality:   true,
				Primary: []Clause{
					{Field: FieldMonth, Op: OpGreaterOrEqual, Value: "3", IntValue: 3},
					{Field: FieldMonth, Op: OpLessOrEqual, Value: "6", IntValue: 6},
				},
			},
		},
		{
			name: "second inequality field routed to excess",
			raw: []Filter{
				{Field: "MONTH", Operator: "GT", Value: "3"},
				{Field: "MAX_ATTENDEES", Operator: "GT", Value: "100"},
				{Field: "CITY", Operator: "EQ", Value: "Paris"},
			},
			want: &FilterSet{
				InequalityField: FieldMonth,
				HasInequality:   true,
				Primary: []Clause{
					{Field: FieldMonth, Op: OpGreater, Value: "3", IntValue: 3},
					{Field: FieldCity, Op: OpEqual, Value: "Paris"},
				},
				Excess: []Clause{
					{Field: FieldMaxAttendees, Op: OpGreater, Value: "100", IntValue: 100},
				},
			},
		},
		{
			name:    "unknown field",
			raw:     []Filter{{Field: "SPEAKER", Operator: "EQ", Value: "x"}},
			wantErr: true,
		},
		{
			name:    "session field rejected for conferences",
			raw:     []Filter{{Field: "DURATION", Operator: "GT", Value: "30"}},
			wantErr: true,
		},
		{
			name:    "unknown operator",
			raw:     []Filter{{Field: "CITY", Operator: "LIKE", Value: "Lon"}},
			wantErr: true,
		},
		{
			name:    "non-integer numeric value",
			raw:     []Filter{{Field: "MONTH", Operator: "EQ", Value: "June"}},
			wantErr: true,
		},
		{
			name:    "ordered operator on topic set",
			raw:     []Filter{{Field: "TOPIC", Operator: "GT", Value: "A"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConferenceFilters(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFilter))
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSessionFilters_SplitRule(t *testing.T) {
	raw := []Filter{
		{Field: "DURATION", Operator: "GT", Value: "30"},
		{Field: "START_TIME", Operator: "GTEQ", Value: "14:00"},
		{Field: "TYPE_OF_SESSION", Operator: "EQ", Value: "WORKSHOP"},
		{Field: "DATE", Operator: "LT", Value: "2026-09-01"},
	}
	fs, err := ParseSessionFilters(raw)
	require.NoError(t, err)

	// First inequality field wins; every later inequality on a different
	// field is excess.
	assert.True(t, fs.HasInequality)
	assert.Equal(t, FieldDuration, fs.InequalityField)
	require.Len(t, fs.Primary, 2)
	assert.Equal(t, FieldDuration, fs.Primary[0].Field)
	assert.Equal(t, FieldSessionType, fs.Primary[1].Field)
	require.Len(t, fs.Excess, 2)
	assert.Equal(t, FieldStartTime, fs.Excess[0].Field)
	assert.Equal(t, FieldDate, fs.Excess[1].Field)
}

func TestParseSessionFilters_RejectsConferenceField(t *testing.T) {
	_, err := ParseSessionFilters([]Filter{{Field: "CITY", Operator: "EQ", Value: "London"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFilter))
}

func TestParseSessionFilters_ValueFormats(t *testing.T) {
	_, err := ParseSessionFilters([]Filter{{Field: "DATE", Operator: "GT", Value: "tomorrow"}})
	require.Error(t, err)

	_, err = ParseSessionFilters([]Filter{{Field: "START_TIME", Operator: "GT", Value: "2pm"}})
	require.Error(t, err)

	_, err = ParseSessionFilters([]Filter{{Field: "DURATION", Operator: "GT", Value: "1h"}})
	require.Error(t, err)
}

func TestOperatorSQL(t *testing.T) {
	assert.Equal(t, "=", OpEqual.SQL())
	assert.Equal(t, ">", OpGreater.SQL())
	assert.Equal(t, ">=", OpGreaterOrEqual.SQL())
	assert.Equal(t, "<", OpLess.SQL())
	assert.Equal(t, "<=", OpLessOrEqual.SQL())
	assert.Equal(t, "<>", OpNotEqual.SQL())

	assert.False(t, OpEqual.Inequality())
	for _, op := range []Operator{OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual, OpNotEqual} {
		assert.True(t, op.Inequality())
	}
}
