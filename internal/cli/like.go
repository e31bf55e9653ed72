package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tracesnap/internal/common"
)

func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: like <post id>")
		return common.ErrorValidation
	}

	postID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid post id %q\n", args[0])
		return fmt.Errorf("invalid post id %q: %w", args[0], common.ErrorValidation)
	}

	actingUser := a.session.Current()
	if actingUser == nil {
		fmt.Fprintln(a.out, "Please log in to like posts")
		return common.ErrorUnauthenticated
	}

	post, err := a.posts.ToggleLike(ctx, postID, actingUser)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if post.HasLiked(actingUser.Username) {
		fmt.Fprintf(a.out, "Liked post %d (%d likes)\n", post.ID, len(post.Likes))
	} else {
		fmt.Fprintf(a.out, "Unliked post %d (%d likes)\n", post.ID, len(post.Likes))
	}
	return nil
}
