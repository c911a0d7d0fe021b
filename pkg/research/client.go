package research

import "context"

// Source contributes one section of the research blob for a query.
// Returning an empty section with a nil error means the source had
// nothing for this query.
type Source interface {
	Research(ctx context.Context, query string) (string, error)
	Name() string
}
