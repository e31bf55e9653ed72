package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CreatePost(ctx context.Context) error
	Like(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Feed(ctx context.Context) error
	SetFilter(ctx context.Context, args []string) error
	SetSearch(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Stats(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
}

// runREPL reads a line from scanner, parses the first token as the command,
// and dispatches to methods on a. The loop exits on scanner EOF or when the
// user types "exit" or "quit". Handler errors are already reported by the
// handlers themselves; the loop stays resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "tracesnap %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (f)eed, post, like <id>, comment <id>, filter <all|lost|found|claimed>, search [text], profile, stats, theme, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, feed, stats, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "post":
			_ = a.CreatePost(ctx)

		case "like":
			_ = a.Like(ctx, args)

		case "comment":
			_ = a.Comment(ctx, args)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "filter":
			_ = a.SetFilter(ctx, args)

		case "search":
			_ = a.SetSearch(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
