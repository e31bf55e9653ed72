package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tracesnap/internal/models"
)

// FilterAll is the status filter value that keeps every post.
const FilterAll = "all"

// Filtered returns the posts matching the status filter and search query.
// Both are optional and compose conjunctively. The search is a
// case-insensitive substring match against description, item and location
// (any of the three). Input order is preserved; with the ledger that means
// newest first.
func Filtered(posts []models.Post, statusFilter string, searchQuery string) []models.Post {
	query := strings.ToLower(searchQuery)

	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if statusFilter != FilterAll && string(p.Status) != statusFilter {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesQuery(p models.Post, query string) bool {
	return strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Item), query) ||
		strings.Contains(strings.ToLower(p.Location), query)
}

// ByUser returns the posts owned by username, preserving input order.
func ByUser(posts []models.Post, username string) []models.Post {
	own := make([]models.Post, 0)
	for _, p := range posts {
		if p.Username == username {
			own = append(own, p)
		}
	}
	return own
}

// LikedBySummary renders the like attribution line for a post: up to two
// liker names, then a count of the rest. Empty when nobody has liked it.
func LikedBySummary(p models.Post) string {
	switch n := len(p.Likes); {
	case n == 0:
		return ""
	case n <= 2:
		return "Liked by " + strings.Join(p.Likes, ", ")
	default:
		return fmt.Sprintf("Liked by %s and %d others", strings.Join(p.Likes[:2], ", "), n-2)
	}
}
