package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionFixture(name string, duration int, startTime string) *Session {
	return &Session{Name: name, Duration: duration, StartTime: startTime, Date: "2026-06-15", TypeOfSession: "LECTURE"}
}

func TestPostFilterSessions_Identity(t *testing.T) {
	sessions := []*Session{
		sessionFixture("a", 20, "10:00"),
		sessionFixture("b", 45, "15:00"),
	}
	got := PostFilterSessions(nil, sessions)
	assert.Equal(t, sessions, got)

	assert.Empty(t, PostFilterSessions([]Clause{{Field: FieldDuration, Op: OpGreater, IntValue: 30}}, nil))
}

func TestPostFilterSessions_MultiFieldRangeScenario(t *testing.T) {
	// Sessions longer than 30 minutes and starting at or after 14:00.
	sessions := []*Session{
		sessionFixture("short morning", 20, "10:00"),
		sessionFixture("long afternoon", 45, "15:00"),
		sessionFixture("long-ish early", 60, "13:00"),
	}
	fs, err := ParseSessionFilters([]Filter{
		{Field: "DURATION", Operator: "GT", Value: "30"},
		{Field: "START_TIME", Operator: "GTEQ", Value: "14:00"},
	})
	require.NoError(t, err)

	// The duration clause is primary here; apply all clauses in memory to
	// exercise the full conjunction.
	all := append(append([]Clause{}, fs.Primary...), fs.Excess...)
	got := PostFilterSessions(all, sessions)
	require.Len(t, got, 1)
	assert.Equal(t, 45, got[0].Duration)
	assert.Equal(t, "15:00", got[0].StartTime)
}

func TestPostFilterSessions_Subset(t *testing.T) {
	sessions := []*Session{
		sessionFixture("a", 20, "10:00"),
		sessionFixture("b", 45, "15:00"),
		sessionFixture("c", 60, "13:00"),
	}
	clauses := []Clause{
		{Field: FieldStartTime, Op: OpLess, Value: "14:00"},
		{Field: FieldDuration, Op: OpNotEqual, IntValue: 20},
	}
	got := PostFilterSessions(clauses, sessions)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Name)
	for _, s := range got {
		assert.Contains(t, sessions, s)
	}
}

func TestPostFilterSessions_TypedComparisons(t *testing.T) {
	tests := []struct {
		name   string
		clause Clause
		sess   *Session
		want   bool
	}{
		{
			name:   "date greater",
			clause: Clause{Field: FieldDate, Op: OpGreater, Value: "2026-06-01"},
			sess:   sessionFixture("x", 30, "09:00"),
			want:   true,
		},
		{
			name:   "date not-equal",
			clause: Clause{Field: FieldDate, Op: OpNotEqual, Value: "2026-06-15"},
			sess:   sessionFixture("x", 30, "09:00"),
			want:   false,
		},
		{
			name:   "time-of-day boundary inclusive",
			clause: Clause{Field: FieldStartTime, Op: OpGreaterOrEqual, Value: "09:00"},
			sess:   sessionFixture("x", 30, "09:00"),
			want:   true,
		},
		{
			name:   "time-of-day boundary exclusive",
			clause: Clause{Field: FieldStartTime, Op: OpGreater, Value: "09:00"},
			sess:   sessionFixture("x", 30, "09:00"),
			want:   false,
		},
		{
			name:   "session type lexical",
			clause: Clause{Field: FieldSessionType, Op: OpNotEqual, Value: "WORKSHOP"},
			sess:   sessionFixture("x", 30, "09:00"),
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PostFilterSessions([]Clause{tt.clause}, []*Session{tt.sess})
			if tt.want {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestPostFilterConferences(t *testing.T) {
	confs := []*Conference{
		{Name: "go conf", City: "Berlin", Month: 6, MaxAttendees: 50, Topics: []string{"Go", "Cloud"}},
		{Name: "ml conf", City: "Paris", Month: 9, MaxAttendees: 200, Topics: []string{"ML"}},
	}

	got := PostFilterConferences([]Clause{{Field: FieldMonth, Op: OpGreater, IntValue: 6}}, confs)
	require.Len(t, got, 1)
	assert.Equal(t, "ml conf", got[0].Name)

	got = PostFilterConferences([]Clause{{Field: FieldTopic, Op: OpNotEqual, Value: "ML"}}, confs)
	require.Len(t, got, 1)
	assert.Equal(t, "go conf", got[0].Name)

	got = PostFilterConferences(nil, confs)
	assert.Equal(t, confs, got)
}
