package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/example/vecdraw/internal/session"
)

// newCmd writes the starter drawing to a file.
type newCmd struct {
	*root
	fs    *flag.FlagSet
	file  string
	force bool
}

func (n *newCmd) FlagSet() *flag.FlagSet { return n.fs }

func (n *newCmd) Program() string { return n.root.Program() + " new" }

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	n := &newCmd{root: r, fs: fs}
	fs.Usage = usageFunc(n)
	fs.StringVar(&n.file, "file", r.config.SaveFile, "drawing file to create")
	fs.BoolVar(&n.force, "force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if n.file == "" {
		return nil, fmt.Errorf("file is required")
	}
	return n, nil
}

func (n *newCmd) Run() error {
	if !n.force {
		if _, err := os.Stat(n.file); err == nil {
			return fmt.Errorf("%s already exists; use -force to overwrite", n.file)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	s := session.New(
		session.WithConfig(n.config),
		session.WithPath(n.file),
		session.WithTheme(n.activeTheme),
		session.WithNotifier(n.notifier),
	)
	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to create drawing: %w", err)
	}
	fmt.Fprintf(n.stdout, "created %s\n", n.file)
	return nil
}
