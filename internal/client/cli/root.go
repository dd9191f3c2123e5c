package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.user.Username, a.user.Role)
}

// Root prints the welcome banner, prompts for login once and hands off to
// the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to fieldassets CLI (type 'help' for commands)")

	_ = a.Login(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
