package controller

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

// NewUI picks how disksort reports sort runs. On a terminal the TUI renders
// disk rows as colored blocks and pages long report lists; otherwise SimpleUI
// writes plain tables that stay readable in logs and pipes.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. Files, pipes and
// character devices such as /dev/null are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(f.Fd())
}
