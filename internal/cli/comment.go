package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tracesnap/internal/common"
)

func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: comment <post id>")
		return common.ErrorValidation
	}

	postID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid post id %q\n", args[0])
		return fmt.Errorf("invalid post id %q: %w", args[0], common.ErrorValidation)
	}

	actingUser := a.session.Current()
	if actingUser == nil {
		fmt.Fprintln(a.out, "Please log in to comment")
		return common.ErrorUnauthenticated
	}

	text, err := GetSimpleText(a.reader, "- Comment", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	post, err := a.posts.AddComment(ctx, postID, actingUser, text)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Comment added! (%d comments)\n", len(post.Comments))
	return nil
}
