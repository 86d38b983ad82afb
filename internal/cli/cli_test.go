package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestResolvePasswordFromFlag(t *testing.T) {
	got, err := resolvePassword("flag-value", false, false)
	if err != nil {
		t.Fatalf("resolvePassword: %v", err)
	}
	if got != "flag-value" {
		t.Errorf("resolvePassword = %q; want %q", got, "flag-value")
	}
}

func TestCreateCommandRequiresOutput(t *testing.T) {
	flag := createCmd.Flags().Lookup("output")
	if flag == nil {
		t.Fatal("create command is missing its --output flag")
	}
	if req := flag.Annotations[cobra.BashCompOneRequiredFlag]; len(req) == 0 || req[0] != "true" {
		t.Error("create command's --output flag is not marked required")
	}
}

func TestOpenCommandExactlyOneArg(t *testing.T) {
	if err := openCmd.Args(openCmd, nil); err == nil {
		t.Error("open command should reject zero arguments")
	}
	if err := openCmd.Args(openCmd, []string{"a", "b"}); err == nil {
		t.Error("open command should reject more than one argument")
	}
	if err := openCmd.Args(openCmd, []string{"vault.psafe3"}); err != nil {
		t.Errorf("open command should accept exactly one argument: %v", err)
	}
}
