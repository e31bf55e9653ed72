package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/dmitrijs2005/tracesnap/internal/services"
)

// CreatePost walks the user through a new post. An image, if given, is
// acquired first and committed together with the rest of the fields.
func (a *App) CreatePost(ctx context.Context) error {
	author := a.session.Current()
	if author == nil {
		fmt.Fprintln(a.out, "Please log in to create a post")
		return common.ErrorUnauthenticated
	}

	status, err := GetSimpleText(a.reader, "- Status (lost/found/claimed)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	item, err := GetSimpleText(a.reader, "- Item", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	description, err := GetSimpleText(a.reader, "- Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	location, err := GetSimpleText(a.reader, "- Location", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	phone, err := GetSimpleText(a.reader, "- Contact phone (optional, Enter to skip)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	imagePath, err := GetSimpleText(a.reader, "- Image file (optional, Enter to skip)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	params := services.CreateParams{
		Status:      models.Status(status),
		Item:        item,
		Description: description,
		Location:    location,
		Phone:       phone,
	}

	if imagePath != "" {
		att, err := services.AcquireAttachment(imagePath)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		params.Attachment = att
	}

	post, err := a.posts.Create(ctx, *author, params)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create post: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Post created successfully! (id %d)\n", post.ID)
	return nil
}
