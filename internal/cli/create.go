package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pws3vault/internal/vault"
)

func init() {
	createCmd.SilenceErrors = true
	createCmd.SilenceUsage = true
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new, empty Password Safe V3 vault",
	Long: `Create writes a fresh, empty vault to PATH.

If no password is provided, you will be prompted to enter one interactively
(with confirmation). The password is hidden while typing.

Examples:
  pws3vault create -o new.psafe3
  echo "mypassword" | pws3vault create -o new.psafe3 -P`,
	RunE: runCreate,
}

var (
	createOutput        string
	createPassword      string
	createPasswordStdin bool
	createYes           bool
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Output vault path")
	createCmd.Flags().StringVarP(&createPassword, "password", "p", "", "Vault passphrase")
	createCmd.Flags().BoolVarP(&createPasswordStdin, "password-stdin", "P", false, "Read passphrase from stdin")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Overwrite an existing file (otherwise an existing file is an error)")

	_ = createCmd.MarkFlagRequired("output")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(createOutput); err == nil && !createYes {
		return fmt.Errorf("%s already exists (pass --yes to overwrite)", createOutput)
	}

	password, err := resolvePassword(createPassword, createPasswordStdin, true)
	if err != nil {
		return err
	}

	if _, err := vault.CreateAndSave(createOutput, password); err != nil {
		return fmt.Errorf("creating vault: %w", err)
	}

	fmt.Fprintf(os.Stderr, "created %s\n", createOutput)
	return nil
}

// resolvePassword centralizes the three ways a passphrase can reach a
// subcommand: flag, stdin pipe, or interactive prompt.
func resolvePassword(flagValue string, stdin, confirm bool) (string, error) {
	if stdin {
		return ReadPasswordFromStdin()
	}
	if flagValue != "" {
		return flagValue, nil
	}
	password, err := ReadPasswordInteractive(confirm)
	if err != nil {
		return "", fmt.Errorf("password input: %w", err)
	}
	return password, nil
}
