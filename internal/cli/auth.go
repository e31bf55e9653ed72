package cli

import (
	"context"
	"fmt"
)

// Register creates an account and, mirroring the original app, immediately
// starts a session for it.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "- Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	phone, err := GetSimpleText(a.reader, "- Enter phone (optional, Enter to skip)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	user, err := a.auth.Register(ctx, username, password, phone)
	if err != nil {
		fmt.Fprintf(a.out, "Sign up unsuccessful: %v\n", err)
		return err
	}

	if err := a.session.Login(ctx, user); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Sign up successful! Welcome to TraceSnap, %s\n", user.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "- Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	user, err := a.auth.Authenticate(ctx, username, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return err
	}

	if err := a.session.Login(ctx, user); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
