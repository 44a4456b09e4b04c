package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gammadia/haikunator/cli/flags"
	"github.com/gammadia/haikunator/cli/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Versioning information set at build time
var version, commit = "dev", "n/a"

var haikunatorCmd = &cobra.Command{
	Use:   "haikunator",
	Short: "Haikunator generates random human-readable names.",
	Long: `Haikunator generates random human-readable names such as "autumn-waterfall-1337",
made of an adjective, a noun and a random token. Running it without a command
is the same as running "haikunator generate".`,
	Args: cobra.NoArgs,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := flags.Bind(cmd.Flags()); err != nil {
			return err
		}
		if err := log.Init(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log.Debug("starting", "version", version, "commit", commit, "command", cmd.Name())
		return nil
	},

	RunE: runGenerate,
}

func init() {
	haikunatorCmd.AddCommand(completionCmd)
	haikunatorCmd.AddCommand(generateCmd)
	haikunatorCmd.AddCommand(versionCmd)
	haikunatorCmd.AddCommand(wordsCmd)

	flags.RegisterGlobal(haikunatorCmd.PersistentFlags())
	flags.RegisterGenerate(haikunatorCmd.Flags())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	haikunatorCmd.SetOut(os.Stdout)
	if err := haikunatorCmd.ExecuteContext(ctx); err != nil {
		lo.Must(fmt.Fprintln(os.Stderr, color.HiRedString(fmt.Sprint(err))))
		os.Exit(1)
	}
}
