package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hakan-ronngren/textfile/internal/cli"
	"github.com/hakan-ronngren/textfile/internal/cli/config"
)

var (
	// Set at build time via -ldflags.
	version = "dev"
	commit  = "none"
	date    = "unknown"

	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textfile [flags] FILE...",
	Short: "Normalize line endings, byte-order marks and encodings of text files.",
	Long: `textfile rewrites text files into a canonical form: one line-ending
style throughout, a policy for the terminator on the last line, optional
removal of a leading byte-order mark, and optional transcoding between
character encodings (with heuristic detection of the source encoding).

Files are replaced atomically; a file whose content is already in the
requested form is left untouched.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		cfg, logger, err := config.Load(cfgFile, verbose, cmd.Flags(), args)
		if err != nil {
			return err
		}
		return cli.Run(ctx, cfg, logger, cmd.OutOrStdout())
	},
}

// Execute runs the root command; cobra prints the error and exits non-zero
// on failure.
func Execute() {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"configuration file path (default: search . and $HOME/.config/textfile/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose (debug) logging")

	// Required, but enforced by Options.Validate rather than cobra so the
	// value may also arrive via the config file or TEXTFILE_EOL.
	rootCmd.Flags().String("eol", "", "target line ending: CR, LF or CRLF")
	rootCmd.Flags().String("end-eol", "as-is",
		"line ending on the last line: absent, present or as-is")
	rootCmd.Flags().String("bom", "as-is", "leading byte-order mark: absent or as-is")
	rootCmd.Flags().String("encoding", "as-is", "target encoding, or as-is to skip transcoding")
	rootCmd.Flags().String("original-encoding", "guess", "source encoding, or guess to detect it")
	rootCmd.Flags().String("encoding-errors", "strict",
		"handling of unencodable characters: strict, replace or ignore")
	rootCmd.Flags().Bool("check", false, "report what would change without writing")
	rootCmd.Flags().String("output-format", "text", "run summary format: text or json")
}
