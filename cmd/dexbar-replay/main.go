// Command dexbar-replay feeds a script of search intents through a store
// and prints the snapshot produced by each one.
//
// Script lines:
//
//	query <text>
//	select <id>
//	back
//	cancel
//
// Blank lines and lines starting with # are ignored.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"dexbar/internal/catalog"
	"dexbar/internal/domain"
	"dexbar/internal/search"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUnknownID      = errors.New("unknown id")
	errBadArgument    = errors.New("bad argument")
)

func main() {
	var scriptPath string
	var historyLimit int
	flag.StringVar(&scriptPath, "f", "", "Read the script from file instead of stdin")
	flag.IntVar(&historyLimit, "history-limit", 0, "Cap the history (0 = unbounded)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay"})

	in := io.Reader(os.Stdin)
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			logger.Fatal("failed to open script", "path", scriptPath, "err", err)
		}
		defer f.Close()
		in = f
	}

	cat := catalog.Sample()
	store := search.NewStore(cat,
		search.WithHistoryLimit(historyLimit),
		search.WithLogger(log.New(io.Discard)),
	)

	rejected, err := run(in, os.Stdout, logger, store, cat)
	if err != nil {
		logger.Fatal("failed to read script", "err", err)
	}
	if rejected > 0 {
		os.Exit(1)
	}
}

// run dispatches every script line to store and writes one summary line
// per accepted intent to out. It returns the number of rejected lines.
func run(in io.Reader, out io.Writer, logger *log.Logger, store *search.Store, cat *catalog.Catalog) (int, error) {
	rejected := 0
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		intent, ok, err := parseLine(scanner.Text(), cat)
		if err != nil {
			logger.Error("rejected", "line", lineNo, "err", err)
			rejected++
			continue
		}
		if !ok {
			continue
		}
		st := store.Dispatch(intent)
		if _, err := fmt.Fprintln(out, formatState(st)); err != nil {
			return rejected, err
		}
	}
	return rejected, scanner.Err()
}

// parseLine turns one script line into an intent. ok is false for blank
// lines and comments.
func parseLine(line string, cat *catalog.Catalog) (intent search.Intent, ok bool, err error) {
	line = strings.TrimRight(line, "\r")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	// Only the single space after the command word separates it from the
	// argument; query text keeps any other whitespace.
	cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	cmd = strings.TrimSpace(cmd)

	switch cmd {
	case "query":
		return search.QueryChange{Query: arg}, true, nil
	case "select":
		arg = strings.TrimSpace(arg)
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, false, fmt.Errorf("%w: select needs a numeric id, got %q", errBadArgument, arg)
		}
		e, found := cat.ByID(id)
		if !found {
			return nil, false, fmt.Errorf("%w: %d", errUnknownID, id)
		}
		return search.Select{Entity: e}, true, nil
	case "back":
		return search.Back{}, true, nil
	case "cancel":
		return search.Cancel{}, true, nil
	}
	return nil, false, fmt.Errorf("%w: %q", errUnknownCommand, cmd)
}

func formatState(st search.State) string {
	selected := "-"
	if st.Selected != nil {
		tags := make([]string, len(st.Selected.Categories))
		for i, c := range st.Selected.Categories {
			tags[i] = c.String()
		}
		selected = fmt.Sprintf("%s(%s)", st.Selected.DisplayName, strings.Join(tags, ","))
	}
	return fmt.Sprintf("seq=%d mode=%s query=%q selected=%s results=[%s] history=[%s]",
		st.Seq, st.Mode(), st.Query, selected, names(st.Results), names(st.History))
}

func names(entities []domain.Entity) string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.DisplayName
	}
	return strings.Join(out, ",")
}
