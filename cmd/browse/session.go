package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/listing/urlsync"
)

const helpText = `commands:
  n                  next page
  p                  previous page
  g N                go to page N
  s [TEXT]           search (blank clears)
  c [CATEGORY]       filter by category ("all" clears)
  price [MIN] [MAX]  filter by price ("-" leaves a bound empty)
  r                  retry the last load
  refresh            drop cached pages and reload
  h                  show this help
  q                  quit`

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingArg     = errors.New("missing argument")
)

type command struct {
	name string
	args []string
}

// parseCommand splits an input line into a command and its arguments.
// Search text keeps its inner spaces.
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{}, nil
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	name = strings.ToLower(name)

	switch name {
	case "n", "next", "p", "prev", "r", "retry", "refresh", "h", "help", "q", "quit":
		return command{name: canonical(name)}, nil
	case "s", "search":
		return command{name: "s", args: []string{rest}}, nil
	case "c", "category":
		return command{name: "c", args: []string{rest}}, nil
	case "g", "goto":
		if rest == "" {
			return command{}, fmt.Errorf("%w: page number", errMissingArg)
		}
		return command{name: "g", args: []string{rest}}, nil
	case "price":
		bounds := strings.Fields(rest)
		for len(bounds) < 2 {
			bounds = append(bounds, "")
		}
		for i, b := range bounds[:2] {
			if b == "-" {
				bounds[i] = ""
			}
		}
		return command{name: "price", args: bounds[:2]}, nil
	}
	return command{}, fmt.Errorf("%w: %q", errUnknownCommand, name)
}

func canonical(name string) string {
	switch name {
	case "next":
		return "n"
	case "prev":
		return "p"
	case "retry":
		return "r"
	case "help":
		return "h"
	case "quit":
		return "q"
	}
	return name
}

type session struct {
	ctrl listing.Controller
	loc  *urlsync.MemoryLocation
	out  io.Writer
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	s.report(s.ctrl.InitFromLocation(ctx))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		quit, err := s.exec(ctx, cmd)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// exec applies cmd to the controller and prints the resulting status.
func (s *session) exec(ctx context.Context, cmd command) (bool, error) {
	var outcome listing.Outcome
	switch cmd.name {
	case "":
		return false, nil
	case "q":
		return true, nil
	case "h":
		fmt.Fprintln(s.out, helpText)
		return false, nil
	case "n":
		outcome = s.ctrl.NextPage(ctx)
	case "p":
		outcome = s.ctrl.PrevPage(ctx)
	case "g":
		page, err := cast.ToIntE(cmd.args[0])
		if err != nil || page < 1 {
			return false, fmt.Errorf("invalid page %q", cmd.args[0])
		}
		outcome = s.ctrl.GoToPage(ctx, page)
	case "s":
		outcome = s.ctrl.Search(ctx, cmd.args[0])
	case "c":
		outcome = s.ctrl.FilterByCategory(ctx, cmd.args[0])
	case "price":
		outcome = s.ctrl.FilterByPrice(ctx, cmd.args[0], cmd.args[1])
	case "r":
		outcome = s.ctrl.Retry(ctx)
	case "refresh":
		outcome = s.ctrl.Refresh(ctx)
	default:
		return false, fmt.Errorf("%w: %q", errUnknownCommand, cmd.name)
	}
	s.report(outcome)
	return false, nil
}

func (s *session) report(outcome listing.Outcome) {
	snap := s.ctrl.Snapshot()
	if snap.UI.Error != "" {
		fmt.Fprintln(s.out, "error:", snap.UI.Error)
	}
	if outcome == listing.OutcomeNoop && snap.UI.Error == "" {
		fmt.Fprintln(s.out, "nothing to do")
		return
	}
	if c := snap.UI.Controls; c != nil {
		fmt.Fprintln(s.out, formatControls(*c))
	}
	if snap.UI.Results != "" {
		fmt.Fprintln(s.out, snap.UI.Results)
	}
	fmt.Fprintln(s.out, "location:", s.loc.String())
}

// formatControls renders the pagination bar, e.g. "< 1 ... 4 [5] 6 ... 9 >".
func formatControls(c listing.Controls) string {
	var b strings.Builder
	if c.HasPrev {
		b.WriteString("< ")
	}
	for i, p := range c.Pages {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch {
		case p.Gap:
			b.WriteString("...")
		case p.Current:
			fmt.Fprintf(&b, "[%d]", p.Number)
		default:
			fmt.Fprintf(&b, "%d", p.Number)
		}
	}
	if c.HasNext {
		b.WriteString(" >")
	}
	return b.String()
}
