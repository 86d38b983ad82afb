package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pws3vault/internal/vault"
)

func init() {
	dumpCmd.SilenceErrors = true
	dumpCmd.SilenceUsage = true
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print header metadata and record titles",
	Long: `Dump opens PATH and prints the header's WHAT_SAVED/LAST_SAVE fields
followed by one line per record: group, title, and user. Passwords and notes
are never printed.

Examples:
  pws3vault dump vault.psafe3`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

var (
	dumpPassword      string
	dumpPasswordStdin bool
)

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpPassword, "password", "p", "", "Vault passphrase")
	dumpCmd.Flags().BoolVarP(&dumpPasswordStdin, "password-stdin", "P", false, "Read passphrase from stdin")
}

func runDump(cmd *cobra.Command, args []string) error {
	password, err := resolvePassword(dumpPassword, dumpPasswordStdin, false)
	if err != nil {
		return err
	}

	v, err := vault.OpenFile(args[0], password)
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}

	h := v.Header()
	fmt.Printf("producer: %s\n", h.WhatSaved())
	if saved := h.LastSave(); saved != "" {
		fmt.Printf("last saved: %s\n", saved)
	}
	fmt.Println()

	for _, r := range v.Records() {
		group := r.Group()
		if group == "" {
			group = "-"
		}
		fmt.Printf("[%s] %s (%s)\n", group, r.Title(), r.User())
	}
	return nil
}
