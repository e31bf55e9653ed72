package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/dmitrijs2005/tracesnap/internal/logging"
	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
)

// PostService owns the ledger: the newest-first collection of all posts.
// Mutations replace the affected post as a whole value and persist the entire
// ledger, so the durable copy is always a complete snapshot.
type PostService struct {
	store kvstore.Repository
	log   logging.Logger
	posts []models.Post

	// lastID guards millisecond ids against same-tick collisions: an id never
	// repeats and never decreases, even when the clock has not advanced.
	lastID int64
	now    func() time.Time
}

// NewPostService loads the persisted ledger and returns the service.
func NewPostService(ctx context.Context, store kvstore.Repository, log logging.Logger) (*PostService, error) {
	s := &PostService{store: store, log: log.With("component", "posts"), now: time.Now}

	data, err := store.Get(ctx, KeyPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &s.posts); err != nil {
			return nil, fmt.Errorf("failed to decode posts: %w", err)
		}
	}

	for i := range s.posts {
		s.posts[i].Normalize()
		if s.posts[i].ID > s.lastID {
			s.lastID = s.posts[i].ID
		}
	}

	return s, nil
}

// CreateParams carries the fields of a new post. Phone and Attachment are
// optional; Attachment must come from AcquireAttachment.
type CreateParams struct {
	Status      models.Status
	Item        string
	Description string
	Location    string
	Phone       string
	Attachment  *Attachment
}

// Create builds a post owned by author, prepends it to the ledger (new posts
// sort first) and persists the full collection. Validation failures abort
// before anything is written.
func (s *PostService) Create(ctx context.Context, author models.User, p CreateParams) (models.Post, error) {
	post := models.Post{
		ID:          s.nextID(),
		Username:    author.Username,
		Status:      p.Status,
		Item:        p.Item,
		Description: p.Description,
		Location:    p.Location,
		Timestamp:   s.now(),
	}
	if p.Phone != "" {
		post.Phone = &p.Phone
	}
	if p.Attachment != nil {
		uri := p.Attachment.DataURI
		post.Image = &uri
	}
	post.Normalize()

	if err := models.Validate(post); err != nil {
		return models.Post{}, err
	}

	next := append([]models.Post{post}, s.posts...)
	if err := s.persist(ctx, next); err != nil {
		return models.Post{}, err
	}
	s.posts = next

	s.log.Info(ctx, "post created", "id", post.ID, "status", post.Status, "item", post.Item)
	return post, nil
}

// ToggleLike adds actingUser to the post's like set, or removes it when
// already present. Two consecutive toggles by the same user restore the
// original like state.
func (s *PostService) ToggleLike(ctx context.Context, postID int64, actingUser *models.User) (models.Post, error) {
	if actingUser == nil {
		return models.Post{}, common.ErrorUnauthenticated
	}

	idx := s.indexOf(postID)
	if idx < 0 {
		return models.Post{}, fmt.Errorf("post %d: %w", postID, common.ErrorNotFound)
	}

	updated := s.posts[idx].WithLikeToggled(actingUser.Username)

	next := slices.Clone(s.posts)
	next[idx] = updated
	if err := s.persist(ctx, next); err != nil {
		return models.Post{}, err
	}
	s.posts = next

	return updated, nil
}

// AddComment appends a comment to the post's sequence. Prior comments are
// never replaced or reordered. Text that trims to empty is rejected before
// anything is written.
func (s *PostService) AddComment(ctx context.Context, postID int64, actingUser *models.User, text string) (models.Post, error) {
	if actingUser == nil {
		return models.Post{}, common.ErrorUnauthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.Post{}, fmt.Errorf("comment text is empty: %w", common.ErrorValidation)
	}

	idx := s.indexOf(postID)
	if idx < 0 {
		return models.Post{}, fmt.Errorf("post %d: %w", postID, common.ErrorNotFound)
	}

	updated := s.posts[idx].WithComment(models.Comment{
		User:      actingUser.Username,
		Text:      text,
		Timestamp: s.now(),
	})

	next := slices.Clone(s.posts)
	next[idx] = updated
	if err := s.persist(ctx, next); err != nil {
		return models.Post{}, err
	}
	s.posts = next

	return updated, nil
}

// All returns a copy of the ledger, newest first.
func (s *PostService) All() []models.Post {
	return slices.Clone(s.posts)
}

func (s *PostService) indexOf(postID int64) int {
	return slices.IndexFunc(s.posts, func(p models.Post) bool { return p.ID == postID })
}

// nextID returns the current time in milliseconds, bumped past the last
// issued id when the clock has not advanced since.
func (s *PostService) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *PostService) persist(ctx context.Context, posts []models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	if err := s.store.Set(ctx, KeyPosts, data); err != nil {
		return fmt.Errorf("failed to persist posts: %w", err)
	}
	return nil
}
