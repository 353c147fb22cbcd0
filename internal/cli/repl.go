package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error

	Trips(ctx context.Context) error
	Trip(ctx context.Context, args []string) error
	AddTrip(ctx context.Context) error
	EditTrip(ctx context.Context, args []string) error
	DeleteTrip(ctx context.Context, args []string) error

	Events(ctx context.Context) error
	Event(ctx context.Context, args []string) error
	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context, args []string) error
	DeleteEvent(ctx context.Context, args []string) error

	Media(ctx context.Context, args []string) error
	AddMedia(ctx context.Context, args []string) error
	DeleteMedia(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, status, exit"
	helpLoggedIn  = "Available commands: trips, trip <id>, addtrip, edittrip <id>, deltrip <id>, " +
		"events, event <id>, addevent, editevent <id>, delevent <id>, " +
		"media [id], addmedia <eventID> <file>, delmedia <id>, status, logout, exit"
)

// runREPL reads commands from reader until EOF or "exit"/"quit".
// Handlers share reader for their prompts, so lines are read one at a time.
// Handlers print their own errors, so their return values are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "tj %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "status":
			_ = a.Status(ctx)

		case "trips":
			_ = a.Trips(ctx)
		case "trip":
			_ = a.Trip(ctx, args)
		case "addtrip":
			_ = a.AddTrip(ctx)
		case "edittrip":
			_ = a.EditTrip(ctx, args)
		case "deltrip":
			_ = a.DeleteTrip(ctx, args)

		case "events":
			_ = a.Events(ctx)
		case "event":
			_ = a.Event(ctx, args)
		case "addevent":
			_ = a.AddEvent(ctx)
		case "editevent":
			_ = a.EditEvent(ctx, args)
		case "delevent":
			_ = a.DeleteEvent(ctx, args)

		case "media":
			_ = a.Media(ctx, args)
		case "addmedia":
			_ = a.AddMedia(ctx, args)
		case "delmedia":
			_ = a.DeleteMedia(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
