package routes

import "strings"

// Well-known paths referenced throughout the app.
const (
	Login     = "/login"
	Dashboard = "/dashboard"
)

// Table provides in-memory lookup over the fixed set of screen routes.
type Table struct {
	paths []string
	known map[string]struct{}
}

// New creates a Table from a slice of paths.
func New(paths []string) *Table {
	known := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		known[p] = struct{}{}
	}
	return &Table{paths: paths, known: known}
}

// Default returns the route table for the demo app's screens.
func Default() *Table {
	return New([]string{
		"/",
		Login,
		"/signup",
		Dashboard,
		"/send",
		"/send/amount",
		"/send/confirm",
		"/send/success",
		"/request",
		"/transactions",
		"/bills",
		"/cards",
		"/profile",
		"/kyc",
		"/kyc/documents",
		"/settings",
		"/support",
	})
}

// All returns all known paths.
func (t *Table) All() []string {
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Contains reports whether path is a known route after normalization.
func (t *Table) Contains(path string) bool {
	_, ok := t.known[Normalize(path)]
	return ok
}

// Fallback returns the recovery route for the given authentication state.
func (t *Table) Fallback(authenticated bool) string {
	if authenticated {
		return Dashboard
	}
	return Login
}

// Normalize strips any query string and fragment from a path.
// "/send?to=alice#top" -> "/send"
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return path
}
