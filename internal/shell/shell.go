// Package shell implements the interactive driver over the vector: a
// line-oriented command loop that reads one command at a time, applies it to
// the session's vector, and reports the outcome as text.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vecsh/internal/config"
	"vecsh/pkg/color"
	"vecsh/pkg/command"
	"vecsh/pkg/vector"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Shell holds the state of one interactive session. The vector it manipulates
// is session state, created by the `init` command and replaced by subsequent
// `init`s.
type Shell struct {
	cfg     *config.Config
	in      *bufio.Reader
	out     io.Writer
	session uuid.UUID

	v *vector.Vector[string] // nil until `init`
}

// New creates a shell that reads commands from in and writes results to out.
func New(cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		cfg:     cfg,
		in:      bufio.NewReader(in),
		out:     out,
		session: uuid.New(),
	}
}

// Run reads and dispatches commands until input is exhausted or an exit
// command is given.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, color.BoldText("Vector shell; use `help` if you are totally lost."))
	log.Debug("session started", "session", s.session)

	for {
		line, ok, err := s.readLine()
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
		if !ok {
			return nil
		}
		if !s.dispatch(line) {
			return nil
		}
	}
}

// readLine prompts and reads one line. Lines longer than the configured
// maximum are rejected with an error and a re-prompt, never truncated. The
// second return is false once input is exhausted.
func (s *Shell) readLine() (string, bool, error) {
	for {
		fmt.Fprint(s.out, s.cfg.Prompt)

		line, err := s.in.ReadString('\n')
		if err == io.EOF {
			if line == "" {
				return "", false, nil
			}
			// Final line without a trailing newline still counts.
		} else if err != nil {
			return "", false, err
		}

		line = strings.TrimRight(line, "\r\n")
		if len(line) <= s.cfg.MaxLine {
			return line, true, nil
		}
		s.errorf("line too long (> %d)", s.cfg.MaxLine)
	}
}

// dispatch parses and executes one input line. It returns false when the
// session should end.
func (s *Shell) dispatch(line string) bool {
	name, tokens := command.Split(line)
	if name == "" {
		return true
	}

	spec, ok := command.Lookup(name)
	if !ok {
		s.errorf("unknown command")
		return true
	}

	args, err := command.Parse(spec, tokens)
	if err != nil {
		s.errorf("%v", err)
		return true
	}

	log.Debug("dispatch", "session", s.session, "command", spec.Name, "args", tokens)

	switch spec.Name {
	case "help":
		for _, l := range command.Help() {
			s.printf("%s", l)
		}

	case "exit":
		return false

	case "init":
		if s.v != nil {
			s.v.Destroy()
		}
		s.v = vector.New[string]()
		s.printf("%s", color.GreenText("v = []"))

	case "size":
		if !s.ensureInit() {
			return true
		}
		s.printf("|v| = %d", s.v.Size())

	case "ls":
		if !s.ensureInit() {
			return true
		}
		s.printf("v = [%s]", strings.Join(s.v.Elems(), ", "))

	case "set":
		if !s.ensureInit() {
			return true
		}
		if !s.v.InBounds(args.Index) {
			s.errorf("out of bounds")
			return true
		}
		s.v.Set(args.Index, args.Value)
		s.printf("v[%d] = %s", args.Index, args.Value)

	case "get":
		if !s.ensureInit() {
			return true
		}
		if !s.v.InBounds(args.Index) {
			s.errorf("out of bounds")
			return true
		}
		s.printf("v[%d] = %s", args.Index, s.v.Get(args.Index))

	case "insert":
		if !s.ensureInit() {
			return true
		}
		// Inserting at the current size appends, so the bound is one past
		// the last element.
		if args.Index < 0 || args.Index > s.v.Size() {
			s.errorf("out of bounds")
			return true
		}
		s.v.Insert(args.Index, args.Value)
		s.printf("v[%d] = %s", args.Index, args.Value)

	case "remove":
		if !s.ensureInit() {
			return true
		}
		if !s.v.InBounds(args.Index) {
			s.errorf("out of bounds")
			return true
		}
		value := s.v.Remove(args.Index)
		s.printf("%s", color.GrayText(fmt.Sprintf("# v[%d] = %s", args.Index, value)))

	case "push":
		if !s.ensureInit() {
			return true
		}
		s.v.Push(args.Value)
		s.printf("v[%d] = %s", s.v.Size()-1, args.Value)

	case "pop":
		if !s.ensureInit() {
			return true
		}
		if s.v.Size() == 0 {
			s.errorf("empty")
			return true
		}
		value := s.v.Pop()
		s.printf("%s", color.GrayText(fmt.Sprintf("# v[%d] = %s", s.v.Size(), value)))
	}

	return true
}

// ensureInit reports whether the session vector exists, printing an error
// directing the user to `init` otherwise.
func (s *Shell) ensureInit() bool {
	if s.v != nil {
		return true
	}
	s.errorf("use `init` first to initialize a new empty vector")
	return false
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, "    "+format+"\n", args...)
}

func (s *Shell) errorf(format string, args ...any) {
	msg := "error; " + fmt.Sprintf(format, args...)
	fmt.Fprintf(s.out, "    %s\n", color.BrightRedText(msg))
}
