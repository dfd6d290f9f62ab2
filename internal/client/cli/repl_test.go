package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	loginErr error

	calls  []string
	emails []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(_ context.Context, email string) error {
	f.calls = append(f.calls, "login")
	f.emails = append(f.emails, email)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func scannerOf(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, scannerOf(
		"help",
		"login a@x.com",
		"help",
		"whoami",
		"logout",
		"logout",
		"foobar",
		"exit",
		"whoami",
	))

	assert.Equal(t, []string{"login", "whoami", "logout"}, exec.calls, "second logout is refused and nothing runs after exit")
	assert.Equal(t, []string{"a@x.com"}, exec.emails)
}

func TestRunREPL_LoginWithoutArgumentPrompts(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, scannerOf("login", "quit"))

	assert.Equal(t, []string{""}, exec.emails)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, scannerOf("help", "login a@x.com", "help", "quit"))

	assert.Contains(t, *lines, "Available commands: login [email], exit")
	assert.Contains(t, *lines, "Available commands: whoami, login, logout, exit")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{loginErr: errors.New("EOF")}
	runREPL(context.Background(), exec, func() string { return "" }, scannerOf("login", "bogus", "quit"))

	assert.Contains(t, *lines, "error: EOF")
	assert.Contains(t, *lines, "Unknown command: bogus")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, scannerOf("", "   "))
	assert.Empty(t, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runREPL(ctx, exec, func() string { return "" }, scannerOf("login a@x.com"))
	assert.Empty(t, exec.calls)
}
