package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
	"github.com/dmitrijs2005/tracesnap/internal/services"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

// loadTheme reads the persisted theme once at startup. The store may have
// been written by the original client, so only "light" switches away from
// the default.
func loadTheme(ctx context.Context, store kvstore.Repository) (string, error) {
	v, err := store.Get(ctx, services.KeyTheme)
	if err != nil {
		return "", err
	}
	if string(v) == themeLight {
		return themeLight, nil
	}
	return themeDark, nil
}

// ToggleTheme flips between dark and light and persists the choice. The core
// never reads this value; it belongs to presentation alone.
func (a *App) ToggleTheme(ctx context.Context) error {
	next := themeLight
	if a.theme == themeLight {
		next = themeDark
	}

	if err := a.store.Set(ctx, services.KeyTheme, []byte(next)); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	a.theme = next
	fmt.Fprintf(a.out, "Theme set to %s\n", next)
	return nil
}
