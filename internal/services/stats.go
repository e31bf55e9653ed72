package services

import "github.com/dmitrijs2005/tracesnap/internal/models"

// Stats are the aggregate counters shown in the app header.
type Stats struct {
	UserCount  int
	PostCount  int
	TotalLikes int
}

// ComputeStats derives the aggregate counters from directory and ledger
// snapshots. Pure; O(posts).
func ComputeStats(users []models.User, posts []models.Post) Stats {
	s := Stats{UserCount: len(users), PostCount: len(posts)}
	for _, p := range posts {
		s.TotalLikes += len(p.Likes)
	}
	return s
}

// UserStats are the per-user counters shown on the profile view.
type UserStats struct {
	PostCount int
	LikeCount int
}

// ComputeUserStats counts username's own posts and the likes they received.
func ComputeUserStats(username string, posts []models.Post) UserStats {
	var s UserStats
	for _, p := range posts {
		if p.Username != username {
			continue
		}
		s.PostCount++
		s.LikeCount += len(p.Likes)
	}
	return s
}
