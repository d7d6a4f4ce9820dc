package console

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// readLine returns the next trimmed input line. Any read failure (including
// closed stdin) is returned to the caller, which aborts the command.
func (u *UI) readLine(label string) (string, error) {
	u.printf("%s", label)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptString re-prompts until a non-empty line is entered.
func (u *UI) promptString(label string) (string, error) {
	for {
		line, err := u.readLine(label)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		u.println("A value is required.")
	}
}

// promptInt re-prompts until the line parses as an integer.
func (u *UI) promptInt(label string) (int, error) {
	for {
		line, err := u.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := cast.ToIntE(line)
		if err != nil {
			u.println("Please enter a number.")
			continue
		}
		return n, nil
	}
}

// promptInt64 re-prompts until the line parses as an integer id.
func (u *UI) promptInt64(label string) (int64, error) {
	for {
		line, err := u.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := cast.ToInt64E(line)
		if err != nil {
			u.println("Please enter a number.")
			continue
		}
		return n, nil
	}
}

// promptFloat re-prompts until the line parses as a number.
func (u *UI) promptFloat(label string) (float64, error) {
	for {
		line, err := u.readLine(label)
		if err != nil {
			return 0, err
		}
		f, err := cast.ToFloat64E(line)
		if err != nil {
			u.println("Please enter an amount.")
			continue
		}
		return f, nil
	}
}

// promptDate re-prompts until the line parses as a date. An empty line
// yields today.
func (u *UI) promptDate(label string) (time.Time, error) {
	for {
		line, err := u.readLine(label)
		if err != nil {
			return time.Time{}, err
		}
		if line == "" {
			return time.Now(), nil
		}
		t, err := dateparse.ParseIn(line, time.Local)
		if err != nil {
			u.println("Please enter a date such as 2026-01-31.")
			continue
		}
		return t, nil
	}
}

// promptYesNo returns true for a line starting with y or Y.
func (u *UI) promptYesNo(label string) (bool, error) {
	line, err := u.readLine(label)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}
