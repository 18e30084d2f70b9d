package main

import (
	"fmt"
	"log/slog"

	"github.com/leolimasa/leolang/internal/serializer"
	"github.com/leolimasa/leolang/lang/lexer"
	"github.com/spf13/cobra"
)

var version = "dev"

type options struct {
	format  string
	verbose bool
	dbConn  string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "leolang",
		Short:         "leolang is a CLI tool for the leolang front end",
		Long:          `leolang tokenizes offside-rule sources, rewrites indentation into delimiters, and versions token streams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := serializer.Lookup(opts.format); err != nil {
				return err
			}

			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", fmt.Sprintf("Output format %v", serializer.Formats()))
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newLexCmd(opts))
	rootCmd.AddCommand(newLayoutCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newDiffCmd(opts))
	rootCmd.AddCommand(newSnapshotCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the leolang version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "leolang %s\n", version)
		},
	}
}

// lexFile tokenizes the named file, or stdin for "-" or no argument,
// through the layout pass when layout is set.
func (o *options) lexFile(cmd *cobra.Command, args []string, layout, wrap bool) ([]lexer.Token, []*lexer.LexError, string, error) {
	var (
		tokens []lexer.Token
		errs   []*lexer.LexError
		name   = "<stdin>"
	)

	switch {
	case len(args) == 0 || args[0] == "-":
		if layout {
			tokens, errs = lexer.TokenizeLayout(cmd.InOrStdin(), wrap)
		} else {
			tokens, errs = lexer.Tokenize(cmd.InOrStdin())
		}
	default:
		name = args[0]
		var err error
		tokens, errs, err = lexer.TokenizeFile(name, layout, wrap)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to open source: %w", err)
		}
	}

	o.logger.Debug("source lexed", "source", name, "tokens", len(tokens), "errors", len(errs))
	return tokens, errs, name, nil
}

// reportErrors lists lexer errors on stderr and turns them into a failing exit.
func reportErrors(cmd *cobra.Command, errs []*lexer.LexError) error {
	if len(errs) == 0 {
		return nil
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "Lexing errors:")
	for _, err := range errs {
		fmt.Fprintf(w, "  - %v\n", err)
	}
	return fmt.Errorf("%d lexing error(s)", len(errs))
}
