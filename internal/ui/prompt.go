package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether both stdin and stdout are terminals.
// Prompts are skipped entirely when the program runs in a pipe, in
// which case every confirmation answers "no".
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// Confirm asks a yes/no question and returns the answer. Off a
// terminal it returns false without prompting.
func Confirm(message string) bool {
	if !Interactive() {
		return false
	}
	fmt.Printf("%s %s ", message, Hint("[y/N]"))
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// Ask prints a prompt and returns the trimmed line the user typed.
func Ask(message string) (string, error) {
	fmt.Printf("%s: ", message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(response), nil
}
