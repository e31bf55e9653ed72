package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/stretchr/testify/require"
)

func samplePost() Post {
	p := Post{
		ID:          1700000000000,
		Username:    "alice",
		Status:      StatusLost,
		Item:        "Wallet",
		Description: "Brown leather wallet",
		Location:    "Library",
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	p.Normalize()
	return p
}

func TestNormalize_EmptyCollections(t *testing.T) {
	var p Post
	p.Normalize()
	require.NotNil(t, p.Likes)
	require.NotNil(t, p.Comments)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(b), `"likes":[]`)
	require.Contains(t, string(b), `"comments":[]`)
}

func TestWithLikeToggled_AddsAndRemoves(t *testing.T) {
	p := samplePost()

	liked := p.WithLikeToggled("bob")
	require.True(t, liked.HasLiked("bob"))
	require.False(t, p.HasLiked("bob"), "receiver must not be modified")

	back := liked.WithLikeToggled("bob")
	require.Equal(t, p.Likes, back.Likes, "double toggle restores the like set")
}

func TestWithLikeToggled_PreservesOtherLikers(t *testing.T) {
	p := samplePost()
	p.Likes = []string{"bob", "carol", "dave"}

	out := p.WithLikeToggled("carol")
	require.Equal(t, []string{"bob", "dave"}, out.Likes)
}

func TestWithComment_AppendsInOrder(t *testing.T) {
	p := samplePost()

	first := Comment{User: "bob", Text: "seen it", Timestamp: time.Now()}
	second := Comment{User: "carol", Text: "check the desk", Timestamp: time.Now()}

	out := p.WithComment(first).WithComment(second)
	require.Len(t, out.Comments, 2)
	require.Equal(t, "seen it", out.Comments[0].Text)
	require.Equal(t, "check the desk", out.Comments[1].Text)
	require.Empty(t, p.Comments, "receiver must not be modified")
}

func TestValidate_Post(t *testing.T) {
	p := samplePost()
	require.NoError(t, Validate(p))

	missing := p
	missing.Location = ""
	err := Validate(missing)
	require.ErrorIs(t, err, common.ErrorValidation)

	badStatus := p
	badStatus.Status = "misplaced"
	require.ErrorIs(t, Validate(badStatus), common.ErrorValidation)
}

func TestValidate_User(t *testing.T) {
	require.NoError(t, Validate(NewUser("alice", "secret", "")))
	require.ErrorIs(t, Validate(NewUser("", "secret", "")), common.ErrorValidation)
	require.ErrorIs(t, Validate(NewUser("alice", "", "")), common.ErrorValidation)
}

func TestNewUser_OptionalPhone(t *testing.T) {
	withPhone := NewUser("alice", "secret", "555-0100")
	require.NotNil(t, withPhone.Phone)
	require.Equal(t, "555-0100", *withPhone.Phone)

	b, err := json.Marshal(NewUser("bob", "secret", ""))
	require.NoError(t, err)
	require.JSONEq(t, `{"username":"bob","password":"secret","phone":null}`, string(b))
}

func TestPost_JSONRoundTrip(t *testing.T) {
	p := samplePost()
	p.Likes = []string{"bob"}
	p.Comments = []Comment{{User: "bob", Text: "hi", Timestamp: time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)}}

	first, err := json.Marshal([]Post{p})
	require.NoError(t, err)

	var reloaded []Post
	require.NoError(t, json.Unmarshal(first, &reloaded))

	second, err := json.Marshal(reloaded)
	require.NoError(t, err)
	require.Equal(t, first, second, "serialize/reload/serialize must be byte-identical")
}
