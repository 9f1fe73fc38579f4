package postgres

import (
	"fmt"
	"strings"

	"conferencecentral/internal/domain"
)

// appendClauses renders primary filter clauses as conjunctive SQL predicates,
// appending their comparison values to args. Placeholders continue from
// len(args)+1 so callers may seed args with scoping parameters.
func appendClauses(clauses []domain.Clause, conds []string, args []any) ([]string, []any) {
	for _, c := range clauses {
		n := len(args) + 1
		conds = append(conds, clausePredicate(c, n))
		args = append(args, c.Arg())
	}
	return conds, args
}

// clausePredicate renders one clause against placeholder $n. Date and
// time-of-day values arrive as validated strings and are cast; topic clauses
// are set-membership tests.
func clausePredicate(c domain.Clause, n int) string {
	col := c.Field.Column()
	switch c.Field {
	case domain.FieldTopic:
		if c.Op == domain.OpNotEqual {
			return fmt.Sprintf("NOT ($%d = ANY(topics))", n)
		}
		return fmt.Sprintf("$%d = ANY(topics)", n)
	case domain.FieldDate:
		return fmt.Sprintf("%s %s $%d::date", col, c.Op.SQL(), n)
	case domain.FieldStartTime:
		return fmt.Sprintf("%s %s $%d::time", col, c.Op.SQL(), n)
	default:
		return fmt.Sprintf("%s %s $%d", col, c.Op.SQL(), n)
	}
}

// whereSQL joins predicates into a WHERE clause, or returns "" when empty.
func whereSQL(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

// orderSQL returns the ORDER BY clause for a filter set. The store requires
// the sort order to start with the field of the active inequality filter.
func orderSQL(fs *domain.FilterSet) string {
	if fs.HasInequality {
		return fmt.Sprintf("ORDER BY %s ASC, name ASC", fs.InequalityField.Column())
	}
	return "ORDER BY name ASC"
}
