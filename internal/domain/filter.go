package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Wire formats for date and time-of-day filter values and session fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Filter is a raw user-supplied filter clause: logical field name, symbolic
// operator, and value, all strings. It is validated and normalized into a
// Clause before use.
// swagger:model Filter
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Operator is a comparison operator in a normalized filter clause.
type Operator int

const (
	OpEqual Operator = iota
	OpGreater
	OpGreaterOrEqual
	OpLess
	OpLessOrEqual
	OpNotEqual
)

// ParseOperator maps a symbolic operator to its Operator, rejecting unknown
// symbols with ErrInvalidFilter.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "EQ":
		return OpEqual, nil
	case "GT":
		return OpGreater, nil
	case "GTEQ":
		return OpGreaterOrEqual, nil
	case "LT":
		return OpLess, nil
	case "LTEQ":
		return OpLessOrEqual, nil
	case "NE":
		return OpNotEqual, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, s)
	}
}

// SQL returns the SQL comparison operator.
func (op Operator) SQL() string {
	switch op {
	case OpEqual:
		return "="
	case OpGreater:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessOrEqual:
		return "<="
	case OpNotEqual:
		return "<>"
	}
	return ""
}

// Inequality reports whether the operator is anything but equals.
func (op Operator) Inequality() bool {
	return op != OpEqual
}

// holds reports whether the operator is satisfied by a three-way comparison
// result (negative: left < right, zero: equal, positive: left > right).
func (op Operator) holds(cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpGreater:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpNotEqual:
		return cmp != 0
	}
	return false
}

// FilterField is a whitelisted queryable field. The whitelist differs per
// entity kind; ParseConferenceField and ParseSessionField enforce it.
type FilterField int

const (
	FieldCity FilterField = iota
	FieldTopic
	FieldMonth
	FieldMaxAttendees
	FieldDuration
	FieldDate
	FieldStartTime
	FieldSessionType
)

// ParseConferenceField maps a logical conference field name to its
// FilterField, rejecting fields outside the conference whitelist.
func ParseConferenceField(s string) (FilterField, error) {
	switch s {
	case "CITY":
		return FieldCity, nil
	case "TOPIC":
		return FieldTopic, nil
	case "MONTH":
		return FieldMonth, nil
	case "MAX_ATTENDEES":
		return FieldMaxAttendees, nil
	default:
		return 0, fmt.Errorf("%w: unknown conference field %q", ErrInvalidFilter, s)
	}
}

// ParseSessionField maps a logical session field name to its FilterField,
// rejecting fields outside the session whitelist.
func ParseSessionField(s string) (FilterField, error) {
	switch s {
	case "DURATION":
		return FieldDuration, nil
	case "DATE":
		return FieldDate, nil
	case "START_TIME":
		return FieldStartTime, nil
	case "TYPE_OF_SESSION":
		return FieldSessionType, nil
	default:
		return 0, fmt.Errorf("%w: unknown session field %q", ErrInvalidFilter, s)
	}
}

// Column returns the physical column name of the field.
func (f FilterField) Column() string {
	switch f {
	case FieldCity:
		return "city"
	case FieldTopic:
		return "topics"
	case FieldMonth:
		return "month"
	case FieldMaxAttendees:
		return "max_attendees"
	case FieldDuration:
		return "duration"
	case FieldDate:
		return "date"
	case FieldStartTime:
		return "start_time"
	case FieldSessionType:
		return "type_of_session"
	}
	return ""
}

// Numeric reports whether filter values for the field are coerced to integers.
func (f FilterField) Numeric() bool {
	return f == FieldMonth || f == FieldMaxAttendees || f == FieldDuration
}

// Clause is a validated, normalized filter clause. IntValue is set for
// numeric fields.
type Clause struct {
	Field    FilterField
	Op       Operator
	Value    string
	IntValue int64
}

// Arg returns the comparison value in the type the backing store expects.
func (c Clause) Arg() any {
	if c.Field.Numeric() {
		return c.IntValue
	}
	return c.Value
}

// FilterSet is the result of normalizing and splitting a filter list. The
// backing store supports at most one inequality field per query and requires
// the sort order to start with it, so the first inequality field encountered
// becomes the active one; inequality clauses on any other field are set
// aside in Excess for in-memory evaluation.
type FilterSet struct {
	InequalityField FilterField
	HasInequality   bool
	Primary         []Clause
	Excess          []Clause
}

// ParseConferenceFilters validates raw filters against the conference
// whitelist and splits them per the single-inequality-field rule.
func ParseConferenceFilters(raw []Filter) (*FilterSet, error) {
	return parseFilters(raw, ParseConferenceField)
}

// ParseSessionFilters validates raw filters against the session whitelist and
// splits them per the single-inequality-field rule.
func ParseSessionFilters(raw []Filter) (*FilterSet, error) {
	return parseFilters(raw, ParseSessionField)
}

func parseFilters(raw []Filter, parseField func(string) (FilterField, error)) (*FilterSet, error) {
	fs := &FilterSet{}
	for _, f := range raw {
		field, err := parseField(f.Field)
		if err != nil {
			return nil, err
		}
		op, err := ParseOperator(f.Operator)
		if err != nil {
			return nil, err
		}
		c := Clause{Field: field, Op: op, Value: f.Value}
		if err := validateClauseValue(&c); err != nil {
			return nil, err
		}
		if op.Inequality() {
			if fs.HasInequality && fs.InequalityField != field {
				fs.Excess = append(fs.Excess, c)
				continue
			}
			fs.HasInequality = true
			fs.InequalityField = field
		}
		fs.Primary = append(fs.Primary, c)
	}
	return fs, nil
}

func validateClauseValue(c *Clause) error {
	switch {
	case c.Field.Numeric():
		n, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: field %s requires an integer value, got %q",
				ErrInvalidFilter, c.Field.Column(), c.Value)
		}
		c.IntValue = n
	case c.Field == FieldDate:
		if _, err := time.Parse(DateLayout, c.Value); err != nil {
			return fmt.Errorf("%w: field date requires a YYYY-MM-DD value, got %q",
				ErrInvalidFilter, c.Value)
		}
	case c.Field == FieldStartTime:
		if _, err := time.Parse(TimeLayout, c.Value); err != nil {
			return fmt.Errorf("%w: field start_time requires an HH:MM value, got %q",
				ErrInvalidFilter, c.Value)
		}
	case c.Field == FieldTopic:
		// Topics are a set; membership tests support only EQ and NE.
		if c.Op != OpEqual && c.Op != OpNotEqual {
			return fmt.Errorf("%w: topic filters support only EQ and NE", ErrInvalidFilter)
		}
	}
	return nil
}
