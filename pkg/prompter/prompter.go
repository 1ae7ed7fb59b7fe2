package prompter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptSecret prompts user for a secret value (hidden input)
func PromptSecret(label string) (string, error) {
	fmt.Print(label)

	// Read without echoing
	bytepw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}

	fmt.Println() // New line after hidden input

	return string(bytepw), nil
}

// PromptWithDefault prompts for a string, keeping the current value on
// an empty reply.
func PromptWithDefault(label, current string) (string, error) {
	suffix := ": "
	if current != "" {
		suffix = fmt.Sprintf(" [%s]: ", current)
	}
	input, err := PromptString(label + suffix)
	if err != nil {
		return "", err
	}
	if input == "" {
		return current, nil
	}
	return input, nil
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Print(label + " (y/n) ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options, returning the index
func PromptSelect(label string, options []string) (int, error) {
	fmt.Println(label)
	for i, opt := range options {
		fmt.Printf("%d) %s\n", i+1, opt)
	}

	fmt.Print("Select option: ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return -1, err
	}

	input = strings.TrimSpace(input)

	var selection int
	if _, err := fmt.Sscanf(input, "%d", &selection); err != nil {
		return -1, fmt.Errorf("invalid selection: %s", input)
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("selection out of range: %d", selection)
	}

	return selection - 1, nil
}
