package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/example/vecdraw/internal/server"
	"github.com/example/vecdraw/internal/window"
)

// windowCmd opens the drawing in a desktop window.
type windowCmd struct {
	*root
	fs    *flag.FlagSet
	file  string
	serve string
}

func (w *windowCmd) FlagSet() *flag.FlagSet { return w.fs }

func (w *windowCmd) Program() string { return w.root.Program() + " window" }

func parseWindowCmd(args []string, r *root) (*windowCmd, error) {
	fs := flag.NewFlagSet("window", flag.ExitOnError)
	w := &windowCmd{root: r, fs: fs}
	fs.Usage = usageFunc(w)
	fs.StringVar(&w.file, "file", r.config.SaveFile, "drawing file to edit")
	fs.StringVar(&w.serve, "serve", "", "also serve the HTTP preview on this address, e.g. :8080")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *windowCmd) Run() error {
	s, err := w.openSession(w.file)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if w.serve != "" {
		go func() {
			if err := server.New(s).ListenAndServe(ctx, w.serve); err != nil {
				slog.Error("preview server", "addr", w.serve, "err", err)
			}
		}()
	}
	win := window.New(s,
		window.WithTitle(window.DefaultTitle+" - "+w.file),
		window.WithOnClose(cancel),
	)
	win.Run()
	return nil
}
