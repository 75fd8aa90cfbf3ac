package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// PrintError writes a user-facing error message to stderr. When verbose mode
// is on, the underlying error is included.
func PrintError(message string, err error) {
	if err != nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// HandleFatalError prints the error and exits.
func HandleFatalError(message string, err error) {
	PrintError(message, err)
	os.Exit(1)
}
