package repositories

import (
	"strings"
	"testing"
)

var testQuery = TableQuery{
	Base:          `SELECT id, code, name FROM widgets`,
	SearchColumns: []string{"code", "name"},
	Columns: map[string]string{
		"status":   "status",
		"category": "category_code",
	},
	OrderBy: "updated_at DESC",
}

func TestBuildNoFilters(t *testing.T) {
	query, args := testQuery.Build(Filters{})

	if strings.Contains(query, "WHERE") {
		t.Errorf("Expected no WHERE clause, got: %s", query)
	}
	if !strings.HasSuffix(query, "ORDER BY updated_at DESC") {
		t.Errorf("Expected ORDER BY suffix, got: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %d", len(args))
	}
}

func TestBuildSingleFilter(t *testing.T) {
	query, args := testQuery.Build(Filters{"status": "active"})

	if !strings.Contains(query, "status = $1") {
		t.Errorf("Expected status predicate, got: %s", query)
	}
	if len(args) != 1 || args[0] != "active" {
		t.Errorf("Expected args [active], got %v", args)
	}
}

func TestBuildSearchSpansColumnsWithSharedParameter(t *testing.T) {
	query, args := testQuery.Build(Filters{"search": "Widget"})

	if !strings.Contains(query, "LOWER(code) LIKE $1") || !strings.Contains(query, "LOWER(name) LIKE $1") {
		t.Errorf("Expected search over both columns with shared parameter, got: %s", query)
	}
	if !strings.Contains(query, " OR ") {
		t.Errorf("Expected OR-ed search predicates, got: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("Expected single search arg, got %v", args)
	}
	if args[0] != "%widget%" {
		t.Errorf("Expected lowercased wildcard pattern, got %v", args[0])
	}
}

func TestBuildComposesFiltersWithAND(t *testing.T) {
	query, args := testQuery.Build(Filters{
		"search":   "gear",
		"status":   "active",
		"category": "CAT001",
	})

	if !strings.Contains(query, "WHERE") {
		t.Fatalf("Expected WHERE clause, got: %s", query)
	}
	if strings.Count(query, " AND ") != 2 {
		t.Errorf("Expected two AND joins, got: %s", query)
	}
	// Search binds first, then exact filters in fixed key order.
	if !strings.Contains(query, "status = $2") || !strings.Contains(query, "category_code = $3") {
		t.Errorf("Expected deterministic placeholder numbering, got: %s", query)
	}
	if len(args) != 3 {
		t.Errorf("Expected 3 args, got %v", args)
	}
}

func TestBuildIgnoresUnrecognizedAndUnmappedKeys(t *testing.T) {
	query, args := testQuery.Build(Filters{
		"bogus":    "x",
		"priority": "high", // recognized key, but not mapped by this table
	})

	if strings.Contains(query, "WHERE") {
		t.Errorf("Expected unmapped keys to be ignored, got: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %v", args)
	}
}

func TestBuildNeverInterpolatesValues(t *testing.T) {
	hostile := "'; DROP TABLE widgets; --"
	query, args := testQuery.Build(Filters{
		"search": hostile,
		"status": hostile,
	})

	if strings.Contains(query, "DROP TABLE") {
		t.Fatalf("Filter value leaked into SQL text: %s", query)
	}
	for _, arg := range args {
		s, ok := arg.(string)
		if !ok {
			t.Fatalf("Expected string arg, got %T", arg)
		}
		if !strings.Contains(s, "drop table") && !strings.Contains(s, "DROP TABLE") {
			t.Errorf("Expected hostile value preserved as bound arg, got %q", s)
		}
	}
}
