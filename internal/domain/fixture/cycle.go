package fixture

import (
	"fmt"
	"strings"
)

// Cycle maps instance index i onto a table of size n.
func Cycle(i, n int) int {
	if n <= 0 {
		return 0
	}

	return i % n
}

// Pick returns table[i mod len(table)].
func Pick[T any](table []T, i int) T {
	return table[Cycle(i, len(table))]
}

// Round returns how many full passes over a table of size n precede index i.
func Round(i, n int) int {
	if n <= 0 {
		return 0
	}

	return i / n
}

// UniqueName keeps cycled names distinct: the first pass uses base as is,
// later passes append "-<pass>".
func UniqueName(base string, i, n int) string {
	round := Round(i, n)
	if round == 0 {
		return base
	}

	return fmt.Sprintf("%s-%d", base, round+1)
}

// UniqueEmail tags the local part of a cycled email with "+<pass>".
func UniqueEmail(email string, i, n int) string {
	round := Round(i, n)
	if round == 0 {
		return email
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return fmt.Sprintf("%s+%d", email, round+1)
	}

	return fmt.Sprintf("%s+%d@%s", local, round+1, domain)
}

// SplitUsername splits "first_last" into its parts.
func SplitUsername(username string) (first, last string) {
	first, last, _ = strings.Cut(username, "_")

	return first, last
}
