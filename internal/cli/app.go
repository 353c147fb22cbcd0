package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/tripjournal/internal/client"
	"github.com/dmitrijs2005/tripjournal/internal/logging"
)

type App struct {
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	mu       sync.Mutex
	online   bool
	userName string

	unsubscribe func()
}

// NewApp wires the shell to c. The prompt follows c's authentication signal.
func NewApp(c client.Client, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.NopLogger{}
	}
	a := &App{client: c, reader: bufio.NewReader(in), out: out, log: log}
	a.unsubscribe = c.Subscribe(a.setOnline)
	return a
}

func (a *App) setOnline(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.online = v
	if !v {
		a.userName = ""
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.online
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}

// getStatus renders the prompt status, e.g. "(alice online)" or "(offline)".
func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := "offline"
	if a.online {
		state = "online"
	}
	if a.userName != "" {
		return fmt.Sprintf("(%s %s)", a.userName, state)
	}
	return fmt.Sprintf("(%s)", state)
}

// Run starts the REPL and returns when the input ends or the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.unsubscribe()

	fmt.Fprintln(a.out, "Welcome to tripjournal (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints err in user terms and returns it unchanged.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	a.log.Debug(ctx, "command failed", "error", err)

	var he *client.HTTPError
	switch {
	case client.IsUnauthorized(err):
		a.println("Not authorized. Please login.")
	case client.IsNotFound(err):
		a.println("Not found.")
	case errors.As(err, &he):
		if d := he.Detail(); d != "" {
			a.printf("Server error %d: %s\n", he.StatusCode, d)
		} else {
			a.printf("Server error %d\n", he.StatusCode)
		}
	case errors.Is(err, client.ErrInvalidResponse):
		a.println("Server unavailable:", err)
	case errors.Is(err, client.ErrDecoding):
		a.println("Unexpected response from server:", err)
	default:
		a.println("Error:", err)
	}
	return err
}
