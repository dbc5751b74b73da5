package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/vecdraw/internal/server"
)

// serveCmd serves a drawing over HTTP until interrupted.
type serveCmd struct {
	*root
	fs   *flag.FlagSet
	file string
	addr string
}

func (s *serveCmd) FlagSet() *flag.FlagSet { return s.fs }

func (s *serveCmd) Program() string { return s.root.Program() + " serve" }

func parseServeCmd(args []string, r *root) (*serveCmd, error) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	s := &serveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(s)
	fs.StringVar(&s.file, "file", r.config.SaveFile, "drawing file to serve")
	fs.StringVar(&s.addr, "addr", ":8080", "listen address")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *serveCmd) Run() error {
	sess, err := s.openSession(s.file)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(sess).ListenAndServe(ctx, s.addr)
}
