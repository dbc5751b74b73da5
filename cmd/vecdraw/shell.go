package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/vecdraw/internal/clipboard"
	"github.com/example/vecdraw/internal/scene"
	"github.com/example/vecdraw/internal/session"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// readScene fetches a scene document from the clipboard; tests replace it.
var readScene = clipboard.ReadScene

// shellCmd is a line-oriented editor over a drawing.
type shellCmd struct {
	*root
	fs      *flag.FlagSet
	file    string
	execs   commandList
	session *session.Session
}

func (s *shellCmd) FlagSet() *flag.FlagSet { return s.fs }

func (s *shellCmd) Program() string { return s.root.Program() + " shell" }

func parseShellCmd(args []string, r *root) (*shellCmd, error) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	s := &shellCmd{root: r, fs: fs}
	fs.Usage = usageFunc(s)
	fs.StringVar(&s.file, "file", r.config.SaveFile, "drawing file to edit")
	fs.Var(&s.execs, "e", "execute a shell command and exit (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shellCmd) Run() error {
	sess, err := s.openSession(s.file)
	if err != nil {
		return err
	}
	s.session = sess
	if len(s.execs) > 0 {
		for _, line := range s.execs {
			done, err := s.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}
	return s.loop(s.stdin)
}

func (s *shellCmd) loop(in io.Reader) error {
	fmt.Fprintln(s.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := s.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

const shellHelp = `next                 select the next object
move DX DY           move the selection
scale D              add D to the selection's scale
rotate D             add D degrees to the selection's rotation
pan DX DY            move the camera
zoom D               add D to the global scale
turn D               add D degrees to the global rotation
group N              move the selection into group slot N
ungroup              release the children of the selected group
type TEXT            append TEXT to the prompt
backspace            remove the last prompt character
clear                empty the prompt
commit               run the prompt text
run TEXT             replace the prompt with TEXT and run it
save, load           write or read the drawing file
copy                 copy the rendered frame to the clipboard
copy-scene           copy the scene document to the clipboard
paste                replace the scene with a document from the clipboard
list                 list the top-level objects
status               show the status line
exit                 leave the shell
`

// executeLine runs one shell command and reports whether the shell should
// exit.
func (s *shellCmd) executeLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	verb, rest, _ := strings.Cut(line, " ")
	args := strings.Fields(rest)
	sess := s.session

	switch verb {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprint(s.stdout, shellHelp)
	case "next":
		return false, sess.Apply(session.ActionNext)
	case "move", "pan":
		v, err := ints(verb, args, 2)
		if err != nil {
			return false, err
		}
		return false, sess.Edit(func(sc *scene.Scene) error {
			if verb == "pan" {
				sc.Pan(v[0], v[1])
				return nil
			}
			return sc.MoveSelected(v[0], v[1])
		})
	case "scale", "rotate", "zoom", "turn":
		d, err := number(verb, args)
		if err != nil {
			return false, err
		}
		return false, sess.Edit(func(sc *scene.Scene) error {
			switch verb {
			case "scale":
				return sc.ScaleSelected(d)
			case "rotate":
				return sc.RotateSelected(d)
			case "zoom":
				sc.Zoom(d)
			default:
				sc.Turn(d)
			}
			return nil
		})
	case "group":
		v, err := ints(verb, args, 1)
		if err != nil {
			return false, err
		}
		return false, sess.Edit(func(sc *scene.Scene) error { return sc.AssignToGroup(v[0]) })
	case "ungroup":
		return false, sess.Apply(session.ActionUngroup)
	case "type":
		sess.Type(rest)
		fmt.Fprintf(s.stdout, "prompt: %q\n", sess.Text())
	case "backspace":
		sess.Backspace()
		fmt.Fprintf(s.stdout, "prompt: %q\n", sess.Text())
	case "clear":
		sess.Clear()
	case "commit":
		s.report(sess.Commit(), sess.Text())
	case "run":
		s.report(sess.Execute(rest))
	case "save":
		if err := sess.Save(); err != nil {
			return false, err
		}
		fmt.Fprintf(s.stdout, "saved %s\n", sess.Path())
	case "load":
		if err := sess.Load(); err != nil {
			return false, err
		}
		fmt.Fprintf(s.stdout, "loaded %s\n", sess.Path())
	case "copy":
		return false, sess.Copy()
	case "copy-scene":
		return false, sess.CopyScene()
	case "paste":
		sc, err := readScene()
		if err != nil {
			return false, fmt.Errorf("paste: %w", err)
		}
		sess.Replace(sc)
	case "list":
		s.list()
	case "status":
		fmt.Fprintln(s.stdout, sess.Status())
	default:
		return false, fmt.Errorf("unknown command %q (type 'help')", verb)
	}
	return false, nil
}

func (s *shellCmd) report(o *scene.Object, text string) {
	if o == nil {
		fmt.Fprintf(s.stdout, "prompt: %q\n", text)
		return
	}
	fmt.Fprintf(s.stdout, "spawned %s\n", o)
}

func (s *shellCmd) list() {
	s.session.View(func(sc *scene.Scene, p *scene.Prompt) {
		for i, o := range sc.Objects {
			mark := " "
			if i == sc.Selected {
				mark = "*"
			}
			note := ""
			if o == p.Node() {
				note = " (prompt)"
			}
			if g, ok := o.Shape.(*scene.Group); ok {
				note += fmt.Sprintf(" children=%d", len(g.Children))
			}
			fmt.Fprintf(s.stdout, "%s %2d %s bounds=%v%s\n", mark, i, o, o.Points().Bounds(), note)
		}
	})
}

func ints(verb string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", verb, n)
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", verb, a)
		}
		out[i] = v
	}
	return out, nil
}

func number(verb string, args []string) (float32, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s requires one number", verb)
	}
	v, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", verb, args[0])
	}
	return float32(v), nil
}
