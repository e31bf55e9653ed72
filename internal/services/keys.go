// Package services contains the application services of the TraceSnap core:
// the user directory, the session, the post ledger, and the pure feed/stats
// views. Each service keeps an in-memory mirror of its collection and writes
// the whole collection back to the durable store on every mutation.
package services

// Durable-store keys. Layout matches the original client so an existing
// store loads unchanged.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyPosts       = "posts"
	KeyTheme       = "theme"
)
