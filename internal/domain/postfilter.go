package domain

import (
	"strings"
	"time"
)

// PostFilterSessions applies excess inequality clauses in memory against an
// already-fetched session list. Clauses are applied sequentially, each
// narrowing the previous clause's output, so a session must satisfy every
// clause to remain. An empty clause list returns the input unchanged.
func PostFilterSessions(clauses []Clause, sessions []*Session) []*Session {
	for _, c := range clauses {
		kept := sessions[:0:0]
		for _, s := range sessions {
			if c.matchesSession(s) {
				kept = append(kept, s)
			}
		}
		sessions = kept
	}
	return sessions
}

// PostFilterConferences is the conference counterpart of PostFilterSessions.
func PostFilterConferences(clauses []Clause, confs []*Conference) []*Conference {
	for _, c := range clauses {
		kept := confs[:0:0]
		for _, conf := range confs {
			if c.matchesConference(conf) {
				kept = append(kept, conf)
			}
		}
		confs = kept
	}
	return confs
}

func (c Clause) matchesSession(s *Session) bool {
	switch c.Field {
	case FieldStartTime:
		return c.Op.holds(compareClock(s.StartTime, c.Value))
	case FieldDate:
		return c.Op.holds(compareDate(s.Date, c.Value))
	case FieldDuration:
		return c.Op.holds(compareInt(int64(s.Duration), c.IntValue))
	case FieldSessionType:
		return c.Op.holds(strings.Compare(s.TypeOfSession, c.Value))
	}
	return false
}

func (c Clause) matchesConference(conf *Conference) bool {
	switch c.Field {
	case FieldCity:
		return c.Op.holds(strings.Compare(conf.City, c.Value))
	case FieldMonth:
		return c.Op.holds(compareInt(int64(conf.Month), c.IntValue))
	case FieldMaxAttendees:
		return c.Op.holds(compareInt(int64(conf.MaxAttendees), c.IntValue))
	case FieldTopic:
		has := false
		for _, t := range conf.Topics {
			if t == c.Value {
				has = true
				break
			}
		}
		if c.Op == OpNotEqual {
			return !has
		}
		return has
	}
	return false
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareClock compares two HH:MM time-of-day strings. Filter values are
// validated at parse time; an unparsable stored value sorts before any valid
// one.
func compareClock(a, b string) int {
	ta, errA := time.Parse(TimeLayout, a)
	tb, errB := time.Parse(TimeLayout, b)
	if errA != nil || errB != nil {
		return boolCompare(errA == nil, errB == nil)
	}
	return ta.Compare(tb)
}

// compareDate compares two YYYY-MM-DD calendar-date strings.
func compareDate(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		return boolCompare(errA == nil, errB == nil)
	}
	return ta.Compare(tb)
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
