// Package seed loads demo data into an empty database.
package seed

import "fmt"

// Result tracks counts and errors from a seeding operation.
type Result struct {
	TeamsCreated   int
	TeamsExisting  int
	LeaguesCreated int
	MatchesCreated int
	Errors         []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.TeamsCreated += other.TeamsCreated
	r.TeamsExisting += other.TeamsExisting
	r.LeaguesCreated += other.LeaguesCreated
	r.MatchesCreated += other.MatchesCreated
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"teams=%d existing=%d leagues=%d matches=%d errors=%d",
		r.TeamsCreated, r.TeamsExisting, r.LeaguesCreated, r.MatchesCreated,
		len(r.Errors),
	)
}
