package main

import (
	"flag"
	"fmt"
)

// execCmd types each argument into the command node, commits it and saves the
// drawing.
type execCmd struct {
	*root
	fs       *flag.FlagSet
	file     string
	dryRun   bool
	commands []string
}

func (e *execCmd) FlagSet() *flag.FlagSet { return e.fs }

func (e *execCmd) Program() string { return e.root.Program() + " exec" }

func parseExecCmd(args []string, r *root) (*execCmd, error) {
	fs := flag.NewFlagSet("exec", flag.ExitOnError)
	e := &execCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.file, "file", r.config.SaveFile, "drawing file to edit")
	fs.BoolVar(&e.dryRun, "n", false, "print the results without saving")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	e.commands = fs.Args()
	if len(e.commands) == 0 {
		return nil, &UsageError{of: e}
	}
	return e, nil
}

func (e *execCmd) Run() error {
	s, err := e.openSession(e.file)
	if err != nil {
		return err
	}
	for _, command := range e.commands {
		o, text := s.Execute(command)
		if o == nil {
			fmt.Fprintf(e.stdout, "%q: %s\n", command, text)
			continue
		}
		fmt.Fprintf(e.stdout, "%q: %s\n", command, o)
	}
	if e.dryRun {
		return nil
	}
	return s.Save()
}
