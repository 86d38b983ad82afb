package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pws3vault/internal/vault"
	"pws3vault/internal/vaultutil"
)

func init() {
	openCmd.SilenceErrors = true
	openCmd.SilenceUsage = true
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a vault and report its record count",
	Long: `Open parses and authenticates PATH, reporting how many records it
holds and when it was last saved. It never prints record contents, use
"dump" for that.

Examples:
  pws3vault open vault.psafe3
  echo "mypassword" | pws3vault open vault.psafe3 -P`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

var (
	openPassword      string
	openPasswordStdin bool
)

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringVarP(&openPassword, "password", "p", "", "Vault passphrase")
	openCmd.Flags().BoolVarP(&openPasswordStdin, "password-stdin", "P", false, "Read passphrase from stdin")
}

func runOpen(cmd *cobra.Command, args []string) error {
	password, err := resolvePassword(openPassword, openPasswordStdin, false)
	if err != nil {
		return err
	}

	v, err := vault.OpenFile(args[0], password)
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}

	records := v.Records()
	fmt.Fprintf(os.Stderr, "%s: %d record(s)", args[0], len(records))
	if info, err := os.Stat(args[0]); err == nil {
		fmt.Fprintf(os.Stderr, ", %s", vaultutil.Sizeify(info.Size()))
	}
	if saved := v.Header().LastSave(); saved != "" {
		fmt.Fprintf(os.Stderr, ", last saved %s", saved)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}
