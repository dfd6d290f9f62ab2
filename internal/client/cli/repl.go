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
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until the
// user types "exit" or "quit", input ends, or ctx is canceled.
//
// The prompt shows the current status (from statusFn). "login" takes an
// optional email argument; anything else after a command is ignored.
// Unknown commands are reported back to the user.
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("signin %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, login, logout, exit")
			} else {
				printlnFn("Available commands: login [email], exit")
			}

		case "login":
			email := ""
			if len(args) > 0 {
				email = args[0]
			}
			err = a.Login(ctx, email)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err)
		}
	}
}
