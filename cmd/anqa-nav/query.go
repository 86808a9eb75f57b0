package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/anqa-lang/anqa/internal/navigate"
	"github.com/anqa-lang/anqa/internal/snapshot"
	"github.com/anqa-lang/anqa/internal/source"
)

var (
	queryFile  string
	queryStart uint32
	queryEnd   uint32
)

var definitionCmd = &cobra.Command{
	Use:   "definition",
	Short: "Resolve the definition site under a position",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(r *navigate.Resolver, q source.Location) (source.Location, bool) {
			return r.Definition(q)
		})
	},
}

var declarationCmd = &cobra.Command{
	Use:   "declaration",
	Short: "Resolve the abstract declaration behind a position",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, func(r *navigate.Resolver, q source.Location) (source.Location, bool) {
			return r.Declaration(q)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{definitionCmd, declarationCmd} {
		cmd.Flags().StringVar(&queryFile, "file", "", "Source file path as recorded in the snapshot")
		cmd.Flags().Uint32Var(&queryStart, "start", 0, "Query span start offset")
		cmd.Flags().Uint32Var(&queryEnd, "end", 0, "Query span end offset")
	}
}

// pathStyles holds the color formatters of the query result line.
type pathStyles struct {
	path    *color.Color
	span    *color.Color
	missing *color.Color
}

func newPathStyles() pathStyles {
	return pathStyles{
		path:    color.New(color.FgGreen, color.Bold),
		span:    color.New(color.FgCyan),
		missing: color.New(color.Faint),
	}
}

func runQuery(cmd *cobra.Command, resolve func(*navigate.Resolver, source.Location) (source.Location, bool)) error {
	if snapshotPath == "" {
		return errors.New("--snapshot is required")
	}
	if queryFile == "" {
		return errors.New("--file is required")
	}

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	snap, err := snapshot.Parse(data)
	if err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}

	fileID, ok := snap.FileID(queryFile)
	if !ok {
		return fmt.Errorf("file %q is not part of the snapshot", queryFile)
	}

	in, err := snap.Build()
	if err != nil {
		return fmt.Errorf("build tables: %w", err)
	}

	slog.Debug("snapshot loaded",
		"path", snapshotPath,
		"files", len(snap.Files),
		"nodes", len(snap.Nodes),
	)

	q := source.New(fileID, queryStart, queryEnd)
	loc, ok := resolve(navigate.New(in), q)

	styles := newPathStyles()
	out := cmd.OutOrStdout()
	if !ok {
		styles.missing.Fprintln(out, "no result")
		return nil
	}

	path := pathOf(snap, loc.File)
	styles.path.Fprint(out, path)
	styles.span.Fprintf(out, ":%d-%d", loc.Span.Start, loc.Span.End)
	fmt.Fprintln(out)

	return nil
}

func pathOf(snap *snapshot.Snapshot, id source.FileID) string {
	for _, f := range snap.Files {
		if source.FileID(f.ID) == id {
			return f.Path
		}
	}

	return fmt.Sprintf("file#%d", uint32(id))
}
