package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracesnap/internal/services"
)

func (a *App) Stats(ctx context.Context) error {
	stats := services.ComputeStats(a.auth.All(), a.posts.All())
	fmt.Fprintf(a.out, "Users: %d · Posts: %d · Total likes: %d\n",
		stats.UserCount, stats.PostCount, stats.TotalLikes)
	return nil
}
