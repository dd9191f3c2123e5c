package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server.
//
// On success the user identity is kept in memory and the username becomes
// the owner tag of all catalog reads. If the cache already holds dealers
// for that user, a hint is printed that cached data is available offline.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}
	a.user = user
	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)

	dealers, err := a.catalog.Dealers(ctx, user.Username)
	if err == nil && len(dealers) > 0 {
		fmt.Printf("%d dealers available from the local cache; run 'sync' to refresh\n", len(dealers))
	}
	return nil
}

// Logout drops the in-memory user. The local cache stays on disk; it is
// scoped per user and replaced wholesale on the next sync.
func (a *App) Logout(ctx context.Context) error {
	a.user = nil
	fmt.Println("Logged out")
	return nil
}
