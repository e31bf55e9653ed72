package services

import (
	"testing"

	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/stretchr/testify/require"
)

func feedFixture() []models.Post {
	mk := func(id int64, user string, status models.Status, item, desc, loc string) models.Post {
		p := models.Post{ID: id, Username: user, Status: status, Item: item, Description: desc, Location: loc}
		p.Normalize()
		return p
	}
	// Ledger order: newest first.
	return []models.Post{
		mk(4, "carol", models.StatusClaimed, "Umbrella", "Black umbrella", "Lobby"),
		mk(3, "bob", models.StatusFound, "Wallet", "Brown leather wallet", "Cafeteria"),
		mk(2, "alice", models.StatusLost, "Keys", "Bunch of keys", "Gym"),
		mk(1, "alice", models.StatusLost, "Phone", "Cracked screen", "Parking lot"),
	}
}

func TestFiltered_StatusSubset(t *testing.T) {
	posts := feedFixture()

	lost := Filtered(posts, "lost", "")
	require.Len(t, lost, 2)
	for _, p := range lost {
		require.Equal(t, models.StatusLost, p.Status)
	}
}

func TestFiltered_AllKeepsOrder(t *testing.T) {
	posts := feedFixture()

	out := Filtered(posts, FilterAll, "")
	require.Len(t, out, len(posts))
	for i := range posts {
		require.Equal(t, posts[i].ID, out[i].ID, "input order must be preserved")
	}
}

func TestFiltered_SearchIsCaseInsensitive(t *testing.T) {
	posts := feedFixture()

	for _, q := range []string{"WALLET", "wallet", "WaLLet"} {
		hits := Filtered(posts, FilterAll, q)
		require.Len(t, hits, 1, "query %q", q)
		require.Equal(t, "Wallet", hits[0].Item)
	}
}

func TestFiltered_SearchSpansThreeFields(t *testing.T) {
	posts := feedFixture()

	require.Len(t, Filtered(posts, FilterAll, "keys"), 1)    // item
	require.Len(t, Filtered(posts, FilterAll, "cracked"), 1) // description
	require.Len(t, Filtered(posts, FilterAll, "gym"), 1)     // location
	require.Empty(t, Filtered(posts, FilterAll, "bicycle"))
}

func TestFiltered_FilterAndSearchCompose(t *testing.T) {
	posts := feedFixture()

	hits := Filtered(posts, "lost", "keys")
	require.Len(t, hits, 1)
	require.Equal(t, int64(2), hits[0].ID)

	require.Empty(t, Filtered(posts, "found", "keys"))
}

func TestByUser(t *testing.T) {
	posts := feedFixture()

	own := ByUser(posts, "alice")
	require.Len(t, own, 2)
	require.Equal(t, int64(2), own[0].ID)
	require.Equal(t, int64(1), own[1].ID)

	require.Empty(t, ByUser(posts, "nobody"))
}

func TestLikedBySummary(t *testing.T) {
	p := feedFixture()[0]

	require.Empty(t, LikedBySummary(p))

	p.Likes = []string{"alice"}
	require.Equal(t, "Liked by alice", LikedBySummary(p))

	p.Likes = []string{"alice", "bob"}
	require.Equal(t, "Liked by alice, bob", LikedBySummary(p))

	p.Likes = []string{"alice", "bob", "carol", "dave"}
	require.Equal(t, "Liked by alice, bob and 2 others", LikedBySummary(p))
}
