// Package cli provides the interactive sign-in command-line client.
//
// It wires configuration, the local session database, the login API client
// and the sign-in form into a small REPL. On start the previously stored
// session, if any, is restored so the user stays signed in across runs.
//
// Commands:
//   - login [email]  sign in; the password is read without echo
//   - logout         end the session and remove it from disk
//   - whoami         show the signed-in user and token details
//   - help           list commands
//   - exit | quit    leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
