package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/dmitrijs2005/tracesnap/internal/services"
)

// Feed prints the posts matching the active filter and search query,
// newest first.
func (a *App) Feed(ctx context.Context) error {
	posts := services.Filtered(a.posts.All(), a.filter, a.search)

	if a.filter != services.FilterAll || a.search != "" {
		fmt.Fprintf(a.out, "Feed (filter: %s, search: %q)\n", a.filter, a.search)
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts found")
		return nil
	}

	for _, p := range posts {
		a.printPost(p)
	}
	return nil
}

// SetFilter updates the active status filter; with no argument it resets
// to all.
func (a *App) SetFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.filter = services.FilterAll
		return a.Feed(ctx)
	}

	f := args[0]
	switch f {
	case services.FilterAll, string(models.StatusLost), string(models.StatusFound), string(models.StatusClaimed):
		a.filter = f
	default:
		fmt.Fprintln(a.out, "Usage: filter <all|lost|found|claimed>")
		return common.ErrorValidation
	}
	return a.Feed(ctx)
}

// SetSearch updates the search query; with no argument it clears it.
func (a *App) SetSearch(ctx context.Context, args []string) error {
	a.search = strings.Join(args, " ")
	return a.Feed(ctx)
}

func (a *App) printPost(p models.Post) {
	viewer := ""
	if cur := a.session.Current(); cur != nil && p.HasLiked(cur.Username) {
		viewer = " [you liked this]"
	}

	fmt.Fprintf(a.out, "[%s] %s — %s (%s)\n", strings.ToUpper(string(p.Status)), p.Item, p.Description, p.Location)
	fmt.Fprintf(a.out, "  #%d by @%s on %s · %d likes, %d comments%s\n",
		p.ID, p.Username, p.Timestamp.Format("2006-01-02"), len(p.Likes), len(p.Comments), viewer)

	if p.Phone != nil {
		fmt.Fprintf(a.out, "  Contact: %s\n", *p.Phone)
	}
	if p.Image != nil {
		fmt.Fprintf(a.out, "  Image attached (%d bytes encoded)\n", len(*p.Image))
	}
	if summary := services.LikedBySummary(p); summary != "" {
		fmt.Fprintf(a.out, "  %s\n", summary)
	}
	for _, c := range p.Comments {
		fmt.Fprintf(a.out, "  > %s: %s\n", c.User, c.Text)
	}
}
