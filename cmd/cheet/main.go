// Command cheet looks up a named cheatsheet in the configuration directory
// and renders it to the terminal with styled markdown and syntax-highlighted
// code blocks.
//
// Usage:
//
//	cheet <topic> [--config-dir DIR] [--width N]
//	cheet --list [--config-dir DIR]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cheetsheet/cheet"
	"github.com/cheetsheet/cheet/render"
	"github.com/cheetsheet/cheet/sheet"
)

const defaultWidth = 80

var (
	flagConfigDir string
	flagWidth     int
	flagList      bool
)

var rootCmd = &cobra.Command{
	Use:   "cheet <topic>",
	Short: "cheet — terminal cheatsheet viewer",
	Long: `cheet renders a markdown cheatsheet to the terminal.

Sheets live as <topic>.md files in the configuration directory
(default: ~/.config/cheet, or $XDG_CONFIG_HOME/cheet).

Examples:
  cheet tmux
  cheet git --width 100
  cheet --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfigDir, "config-dir", "c", "", "Cheatsheet directory (default: ~/.config/cheet)")
	rootCmd.Flags().IntVarP(&flagWidth, "width", "w", 0, "Output width (0 uses terminal width if available)")
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "List available cheatsheets")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cheet: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dir := sheet.Dir(flagConfigDir)

	if flagList {
		topics, err := sheet.List(dir)
		if err != nil {
			return err
		}
		for _, topic := range topics {
			fmt.Fprintln(cmd.OutOrStdout(), topic)
		}
		return nil
	}

	path, err := sheet.Find(dir, args[0])
	if err != nil {
		return err
	}
	content, err := sheet.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Document(content, width(), cheet.DefaultTheme()))
	return nil
}

// width resolves the prose wrap width: flag override first, then the
// terminal width, then 80. Code lines are never reflowed regardless.
func width() int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
