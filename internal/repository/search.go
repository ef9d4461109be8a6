package repository

import "strings"

// likePattern builds the case-insensitive substring pattern shared by the
// venue and artist name searches. The term is lowercased here and matched
// against LOWER(name) in SQL, so collation differences cannot change the
// result.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
