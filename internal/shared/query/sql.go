package query

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// PSQL is the statement builder for Postgres ($n placeholders)
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Columns maps the filter dimensions of an entity onto table columns.
// Empty Status or Category means the dimension does not exist for the table.
type Columns struct {
	Status   string
	Category string
	Search   []string
}

// Where pushes the filter down into a select: exact match on status and
// category, case-insensitive substring (ILIKE) OR-ed across the search columns.
func Where(b sq.SelectBuilder, f Filter, cols Columns) sq.SelectBuilder {
	n := f.Normalize()

	if n.Status != "" && cols.Status != "" {
		b = b.Where(sq.Eq{cols.Status: n.Status})
	}
	if n.Category != "" && cols.Category != "" {
		b = b.Where(sq.Eq{cols.Category: n.Category})
	}
	if n.Search != "" && len(cols.Search) > 0 {
		pattern := "%" + EscapeLike(n.Search) + "%"
		or := make(sq.Or, 0, len(cols.Search))
		for _, col := range cols.Search {
			or = append(or, sq.ILike{col: pattern})
		}
		b = b.Where(or)
	}
	return b
}

// Page adds LIMIT/OFFSET for a page. Unbounded leaves the query untouched.
func Page(b sq.SelectBuilder, page, perPage int) sq.SelectBuilder {
	if perPage == Unbounded {
		return b
	}
	return b.Limit(uint64(perPage)).Offset(uint64(Offset(page, perPage)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so user input is matched literally
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
