// Package cli implements the interactive tripjournal shell.
//
// The shell is a thin front end over client.Client: every command maps to
// one or two API calls, prompts for missing input and prints the result.
// Type "help" at the prompt for the command list.
package cli
