package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "pws3vault",
	Short: "Password Safe V3 vault tool",
	Long: `pws3vault opens, creates, and inspects Password Safe V3 containers:
  - SHA-256 keystretch and HMAC-SHA-256 integrity over the field stream
  - Twofish-CBC encrypted TLV fields, atomic save-and-verify on write`,
	Version: Version,
}

// Execute runs the CLI application, returning true if a known subcommand was
// invoked. There is no GUI fallback here; main always calls Execute and
// exits.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	if len(os.Args) < 2 {
		return false
	}

	cmd := os.Args[1]
	switch cmd {
	case "open", "create", "dump", "help", "--help", "-h", "version", "--version", "-v":
	default:
		return false
	}

	// Vault saves aren't resumable mid-write, so Ctrl-C exits at once with
	// status 1. A save in progress stops before its rename, leaving the
	// destination untouched; its .part temp file is not removed.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\ninterrupted")
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	return true
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
