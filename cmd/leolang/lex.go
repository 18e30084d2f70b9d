package main

import (
	"fmt"

	"github.com/leolimasa/leolang/internal/serializer"
	"github.com/leolimasa/leolang/lang/lexer"
	"github.com/leolimasa/leolang/lang/sexpr"
	"github.com/leolimasa/leolang/lang/snapshot"
	"github.com/spf13/cobra"
)

func newLexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "Tokenize a source file",
		Long:  `Tokenize a source file and print the raw token stream, indentation markers included.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, errs, _, err := opts.lexFile(cmd, args, false, false)
			if err != nil {
				return err
			}
			if err := serializer.Encode(opts.format, tokens, cmd.OutOrStdout()); err != nil {
				return err
			}
			return reportErrors(cmd, errs)
		},
	}
}

func newLayoutCmd(opts *options) *cobra.Command {
	var wrap bool

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Rewrite indentation into delimiters",
		Long:  `Tokenize a source file and print the token stream with indentation turned into explicit delimiters.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, errs, _, err := opts.lexFile(cmd, args, true, wrap)
			if err != nil {
				return err
			}
			if err := serializer.Encode(opts.format, tokens, cmd.OutOrStdout()); err != nil {
				return err
			}
			return reportErrors(cmd, errs)
		},
	}
	cmd.Flags().BoolVarP(&wrap, "wrap", "w", false, "Enclose the whole program in one outer list")

	return cmd
}

func newParseCmd(opts *options) *cobra.Command {
	var wrap bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Read a source file into s-expressions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, errs, name, err := opts.lexFile(cmd, args, true, wrap)
			if err != nil {
				return err
			}
			if err := reportErrors(cmd, errs); err != nil {
				return err
			}

			program, err := sexpr.Parse(lexer.NewSliceSource(tokens))
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", name, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), program.String())
			if opts.verbose {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "Parsed %d top-level form(s) from %s\n", len(program), name)
				for i, form := range program {
					if head, ok := form.Head(); ok {
						fmt.Fprintf(w, "  %d: %s (%d elements) at %s\n", i+1, head, len(form.List), form.Pos)
					} else {
						fmt.Fprintf(w, "  %d: %s at %s\n", i+1, form, form.Pos)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&wrap, "wrap", "w", false, "Enclose the whole program in one outer list")

	return cmd
}

func newDiffCmd(opts *options) *cobra.Command {
	var layout bool

	cmd := &cobra.Command{
		Use:   "diff [old] [new]",
		Short: "Show token stream differences between two sources",
		Long:  `Tokenize two sources and show the tokens added and removed between them. Positions are ignored.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldTokens, oldErrs, _, err := opts.lexFile(cmd, args[:1], layout, false)
			if err != nil {
				return err
			}
			newTokens, newErrs, _, err := opts.lexFile(cmd, args[1:], layout, false)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), snapshot.Diff(oldTokens, newTokens).String())
			return reportErrors(cmd, append(oldErrs, newErrs...))
		},
	}
	cmd.Flags().BoolVarP(&layout, "layout", "l", false, "Compare the streams after the layout pass")

	return cmd
}
