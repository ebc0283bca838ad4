package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Advice(ctx context.Context) error
	Quiz(ctx context.Context) error
	Alarms(ctx context.Context) error
	SetAlarm(ctx context.Context) error
	EditAlarm(ctx context.Context) error
	RemoveAlarm(ctx context.Context) error
	Profile(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Super Dentinho CLI.
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
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — sign in
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - advice         — browse brushing advice by category
//	  - quiz           — play the oral hygiene quiz
//	  - alarms         — list brushing alarms
//	  - setalarm       — schedule a brushing alarm
//	  - editalarm      — change an alarm's time
//	  - rmalarm        — remove an alarm (asks for confirmation)
//	  - profile        — view and edit the profile
//	  - admin          — advice administration (requires admin sign-in)
//	  - logout         — sign out (asks for confirmation)
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors to the user. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dentinho %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: advice, quiz, alarms, setalarm, editalarm, rmalarm, profile, admin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "advice":
			_ = a.Advice(ctx)

		case "quiz":
			_ = a.Quiz(ctx)

		case "alarms":
			_ = a.Alarms(ctx)

		case "setalarm":
			_ = a.SetAlarm(ctx)

		case "editalarm":
			_ = a.EditAlarm(ctx)

		case "rmalarm":
			_ = a.RemoveAlarm(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// Root restores a persisted session, greets the user and hands control to
// the REPL until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	if s, err := a.accounts.CurrentSession(ctx); err == nil {
		a.session = s
	}

	a.printf("Welcome to Super Dentinho (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
