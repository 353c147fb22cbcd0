package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

const dateLayout = "2006-01-02"

// GetSimpleText prints prompt to w and reads one trimmed line from reader.
// A partial last line before EOF is returned without error.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetDefaultText is GetSimpleText with a fallback shown in brackets and
// returned when the user just presses Enter.
func GetDefaultText(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// GetPassword reads a password from the terminal without echo.
// The caller should wipe the returned slice.
func GetPassword(w io.Writer) ([]byte, error) {
	return GetSecret(w, "Enter password: ")
}

// GetSecret prints prompt and reads a line from the terminal without echo.
func GetSecret(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetDate accepts YYYY-MM-DD (midnight UTC) or a full RFC 3339 timestamp.
// An empty answer returns def.
func GetDate(reader *bufio.Reader, prompt string, def time.Time, w io.Writer) (time.Time, error) {
	shown := ""
	if !def.IsZero() {
		shown = formatDate(def)
	}
	s, err := GetDefaultText(reader, prompt+" (YYYY-MM-DD)", shown, w)
	if err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return def, nil
	}
	return parseDate(s)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}

// GetOptionalText returns nil for an empty answer. When def is non-nil it is
// shown and kept on Enter; "-" clears it.
func GetOptionalText(reader *bufio.Reader, prompt string, def *string, w io.Writer) (*string, error) {
	shown := ""
	if def != nil {
		shown = *def
		prompt += " ('-' to clear)"
	}
	s, err := GetDefaultText(reader, prompt, shown, w)
	if err != nil {
		return nil, err
	}
	if s == "" || s == "-" {
		return nil, nil
	}
	return &s, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// parseID parses a positive numeric id from a command argument.
func parseID[T ~int64](args []string, usage string) (T, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return T(n), nil
}
