package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/dmitrijs2005/tracesnap/internal/services"
)

// Profile prints the current user's own stats and posts.
func (a *App) Profile(ctx context.Context) error {
	cur := a.session.Current()
	if cur == nil {
		fmt.Fprintln(a.out, "Please log in to view your profile")
		return common.ErrorUnauthenticated
	}

	all := a.posts.All()
	stats := services.ComputeUserStats(cur.Username, all)

	fmt.Fprintf(a.out, "%s (@%s)\n", cur.Username, cur.Username)
	fmt.Fprintf(a.out, "Posts: %d · Likes received: %d\n", stats.PostCount, stats.LikeCount)

	own := services.ByUser(all, cur.Username)
	if len(own) == 0 {
		fmt.Fprintln(a.out, "You haven't posted anything yet")
		return nil
	}
	for _, p := range own {
		a.printPost(p)
	}
	return nil
}
