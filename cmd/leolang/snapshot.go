package main

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/leolimasa/leolang/lang/snapshot"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Version token streams in Postgres",
		Long:  `Store token streams of named sources so lexer changes show up as diffs.`,
	}
	cmd.PersistentFlags().StringVarP(&opts.dbConn, "db", "d", "", "Database connection string")

	cmd.AddCommand(newSnapshotInitCmd(opts))
	cmd.AddCommand(newSnapshotApplyCmd(opts))
	cmd.AddCommand(newSnapshotVersionCmd(opts))

	return cmd
}

func (o *options) openDB() (*sql.DB, error) {
	if o.dbConn == "" {
		return nil, fmt.Errorf("database connection string is required")
	}
	db, err := sql.Open("postgres", o.dbConn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func newSnapshotInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := snapshot.NewMigrator(db).InitializeSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Schema initialized successfully")
			return nil
		},
	}
}

func newSnapshotApplyCmd(opts *options) *cobra.Command {
	var (
		name   string
		layout bool
	)

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Store the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, errs, path, err := opts.lexFile(cmd, args, layout, false)
			if err != nil {
				return err
			}
			if err := reportErrors(cmd, errs); err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(path)
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			migrator := snapshot.NewMigrator(db)
			if err := migrator.InitializeSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			description := fmt.Sprintf("Snapshot of %s at %s", filepath.Base(path), time.Now().Format(time.RFC3339))
			diff, err := migrator.ApplySnapshot(name, tokens, description)
			if err != nil {
				return fmt.Errorf("failed to apply snapshot: %w", err)
			}

			out := cmd.OutOrStdout()
			if diff == snapshot.SkippedMessage {
				fmt.Fprintln(out, diff)
				return nil
			}

			fmt.Fprintln(out, "Snapshot applied successfully")
			if opts.verbose {
				fmt.Fprintln(out, "\nChanges:")
				fmt.Fprintln(out, diff)
			}

			version, err := migrator.GetCurrentVersion(name)
			if err != nil {
				return fmt.Errorf("failed to get current version: %w", err)
			}
			fmt.Fprintf(out, "Current version: %d\n", version)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Snapshot name (defaults to the file name)")
	cmd.Flags().BoolVarP(&layout, "layout", "l", false, "Store the stream after the layout pass")

	return cmd
}

func newSnapshotVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version [name]",
		Short: "Show the current snapshot version of a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := snapshot.NewMigrator(db).GetCurrentVersion(args[0])
			if err != nil {
				return fmt.Errorf("failed to get current version: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Current snapshot version of %s: %d\n", args[0], version)
			return nil
		},
	}
}
