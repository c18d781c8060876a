package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/textflux/textflux-site/internal/clipboard"
	"github.com/textflux/textflux-site/internal/content"
	"github.com/textflux/textflux-site/internal/session"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the install command to the clipboard",
	Long: `Copies the install command to the system clipboard. When no system
clipboard is available the command is sent to the terminal with an OSC 52
escape sequence, which most terminal emulators (and tmux) forward to the
local clipboard.`,
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().Bool("print", false, "also print the command to stdout")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	text := content.Default().InstallCommand
	sess := session.New(session.Options{
		Text:   text,
		Copier: clipboard.NewCopier(clipboard.System{}, clipboard.OSC52{}, log),
		Logger: log,
	})
	defer sess.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	res := sess.Copy(ctx)
	if printCmd, _ := cmd.Flags().GetBool("print"); printCmd {
		fmt.Println(text)
	}
	if !res.Copied() {
		return fmt.Errorf("could not copy %q: %w", text, res.Err)
	}
	fmt.Fprintf(os.Stderr, "Copied! (%s)\n", text)
	return nil
}
