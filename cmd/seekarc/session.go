package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"dasa.cc/seekarc/config"
	"dasa.cc/seekarc/render"
	"dasa.cc/seekarc/ring"
	"dasa.cc/seekarc/seek"
)

var (
	errUsage   = errors.New("usage")
	errUnknown = errors.New("unknown command")
)

// session is a control laid out in a square view, driven by text commands.
type session struct {
	bar   *seek.Seekbar
	theme render.Theme
	size  int
	out   io.Writer
}

func newSession(cfg config.Config, size int, out io.Writer) (*session, error) {
	sess := &session{size: size, out: out, theme: render.DefaultTheme}
	sess.theme.Style = cfg.Style(ring.MDPI)
	rg := ring.Measure(size, size, sess.theme.Style)

	bar, err := seek.New(cfg.Seek(), seek.WithRing(rg), seek.WithListener(sess.changed))
	if err != nil {
		return nil, err
	}
	sess.bar = bar
	return sess, nil
}

func (sess *session) changed(c seek.Change) {
	fmt.Fprintf(sess.out, "value %v user %v\n", c.Value, c.FromUser)
}

type command struct {
	usage string
	nargs int
	run   func(sess *session, args []string) error
}

var commands = map[string]command{
	"down":   {"down x y", 2, pointer(seek.PhaseDown)},
	"move":   {"move x y", 2, pointer(seek.PhaseMove)},
	"up":     {"up", 0, (*session).up},
	"set":    {"set value", 1, (*session).set},
	"get":    {"get", 0, (*session).get},
	"max":    {"max n", 1, (*session).max},
	"angles": {"angles start end", 2, (*session).angles},
	"frame":  {"frame", 0, (*session).frame},
	"save":   {"save file", 1, (*session).save},
	"load":   {"load file", 1, (*session).load},
	"png":    {"png file", 1, (*session).png},
}

func commandNames() []string {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "help")
}

// exec runs one line of input.
func (sess *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if fields[0] == "help" {
		for _, name := range commandNames()[:len(commands)] {
			fmt.Fprintln(sess.out, commands[name].usage)
		}
		return nil
	}
	cmd, ok := commands[fields[0]]
	if !ok {
		return fmt.Errorf("%w %q", errUnknown, fields[0])
	}
	if args := fields[1:]; len(args) == cmd.nargs {
		return cmd.run(sess, args)
	}
	return fmt.Errorf("%w: %s", errUsage, cmd.usage)
}

func floats(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, s := range args {
		var err error
		if v[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// pointer returns a command sending a sample at x, y relative to the center.
func pointer(p seek.Phase) func(*session, []string) error {
	return func(sess *session, args []string) error {
		v, err := floats(args)
		if err != nil {
			return err
		}
		if !sess.bar.Handle(p, v[0], v[1]) {
			fmt.Fprintln(sess.out, "ignored")
		}
		return nil
	}
}

func (sess *session) up(args []string) error {
	sess.bar.Handle(seek.PhaseUp, 0, 0)
	return nil
}

func (sess *session) set(args []string) error {
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	sess.bar.SetValue(v)
	return nil
}

func (sess *session) get(args []string) error {
	fmt.Fprintln(sess.out, render.ValueLabel(sess.bar.Value(), sess.bar.Max()))
	return nil
}

func (sess *session) max(args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	return sess.bar.SetMax(n)
}

func (sess *session) angles(args []string) error {
	v, err := floats(args)
	if err != nil {
		return err
	}
	return sess.bar.Configure(v[0], v[1], sess.bar.Max())
}

func (sess *session) frame(args []string) error {
	f := sess.bar.Frame()
	fmt.Fprintf(sess.out, "radii %.1f,%.1f arc %.1f+%.1f progress %.1f+%.1f pointer %.1f,%.1f angle %.1f value %v moving %v\n",
		f.RadiusX(), f.RadiusY(), f.Start, f.Sweep, f.ProgressStart, f.ProgressSweep,
		f.Pointer[0], f.Pointer[1], sess.bar.Range().Pointer(), f.Value, f.Moving)
	return nil
}

func (sess *session) save(args []string) error {
	file, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := sess.bar.Snapshot().Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (sess *session) load(args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()
	snap, err := seek.DecodeSnapshot(file)
	if err != nil {
		return err
	}
	return sess.bar.Restore(snap)
}

func (sess *session) png(args []string) error {
	img, err := render.Image(sess.size, sess.size, sess.bar.Frame(), sess.theme)
	if err != nil {
		return err
	}
	return writePNG(args[0], img)
}
