package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Sync(ctx context.Context) error
	Dealers(ctx context.Context) error
	Customers(ctx context.Context, dealerCode string) error
	Find(ctx context.Context, dealerCode, query string) error
	Verify(ctx context.Context, customerCode string) error
	Requests(ctx context.Context, status string) error
	NewRequest(ctx context.Context) error
	Complete(ctx context.Context, requestNo string) error
	CancelRequest(ctx context.Context, requestNo string) error
}

// runREPL starts a simple read-eval-print loop for the fieldassets CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                       — show available commands
//	  - login                      — authenticate
//	  - exit | quit                — leave the program
//
//	Logged in:
//	  - help                       — show available commands
//	  - sync                       — full refresh of the local catalog
//	  - dealers                    — list cached dealers
//	  - customers <dealer_code>    — list a dealer's cached customers
//	  - find <dealer_code> <text>  — filter a dealer's customers
//	  - verify <customer_code>     — start a scan-verification session
//	  - requests [status]          — list install requests
//	  - newrequest                 — file a new install request
//	  - complete <request_no>      — complete a request by scanning
//	  - cancelreq <request_no>     — cancel a pending request
//	  - logout                     — log out
//	  - exit | quit                — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fa> %s > ", statusFn()))
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

		if cmd != "help" && cmd != "login" && cmd != "exit" && cmd != "quit" && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: sync, dealers, customers, find, verify, requests, newrequest, complete, cancelreq, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "dealers":
			_ = a.Dealers(ctx)

		case "customers":
			if len(args) == 0 {
				printlnFn("Usage: customers <dealer_code>")
				continue
			}
			_ = a.Customers(ctx, args[0])

		case "find":
			if len(args) < 2 {
				printlnFn("Usage: find <dealer_code> <text>")
				continue
			}
			_ = a.Find(ctx, args[0], strings.Join(args[1:], " "))

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <customer_code>")
				continue
			}
			_ = a.Verify(ctx, args[0])

		case "requests":
			status := ""
			if len(args) > 0 {
				status = args[0]
			}
			_ = a.Requests(ctx, status)

		case "newrequest":
			_ = a.NewRequest(ctx)

		case "complete":
			if len(args) == 0 {
				printlnFn("Usage: complete <request_no>")
				continue
			}
			_ = a.Complete(ctx, args[0])

		case "cancelreq":
			if len(args) == 0 {
				printlnFn("Usage: cancelreq <request_no>")
				continue
			}
			_ = a.CancelRequest(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
