package repositories

import (
	"fmt"
	"strings"
)

// Filters is a sparse set of optional query constraints supplied by a
// caller, keyed by recognized names (search, status, category, warehouse,
// type, date, priority). Unrecognized keys are ignored.
type Filters map[string]string

// filterKeys is the fixed evaluation order for exact-match filter keys.
// A stable order keeps the generated SQL deterministic.
var filterKeys = []string{"status", "category", "warehouse", "type", "date", "priority"}

// TableQuery describes how one entity table is listed: the base SELECT
// (including any enrichment joins), which columns a free-text search spans,
// which filter key maps to which column, and the default ordering.
type TableQuery struct {
	Base          string
	SearchColumns []string
	Columns       map[string]string
	OrderBy       string
}

// Build composes the final statement from the base query plus one AND-ed
// predicate per non-empty recognized filter. Every value travels as a bound
// parameter; filter text is never concatenated into the statement.
func (q TableQuery) Build(f Filters) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if search := strings.TrimSpace(f["search"]); search != "" && len(q.SearchColumns) > 0 {
		matches := make([]string, len(q.SearchColumns))
		for i, col := range q.SearchColumns {
			matches[i] = fmt.Sprintf("LOWER(%s) LIKE $%d", col, argCount)
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
		args = append(args, "%"+strings.ToLower(search)+"%")
		argCount++
	}

	for _, key := range filterKeys {
		col, recognized := q.Columns[key]
		if !recognized {
			continue
		}
		value := f[key]
		if value == "" {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col, argCount))
		args = append(args, value)
		argCount++
	}

	var sb strings.Builder
	sb.WriteString(q.Base)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	if q.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.OrderBy)
	}
	return sb.String(), args
}

// placeholders renders $n placeholders for n values starting at start,
// for IN (...) lists.
func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}
