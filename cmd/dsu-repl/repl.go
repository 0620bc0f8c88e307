package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phroun/dsu"
	"github.com/phroun/dsu/internal/edgelist"
)

// REPL holds the state of the interactive session
type REPL struct {
	forest      *dsu.Forest
	reader      *bufio.Reader
	out         io.Writer
	log         *slog.Logger
	interactive bool
}

// NewREPL returns a REPL reading commands from reader and printing results to out.
func NewREPL(reader *bufio.Reader, out io.Writer, log *slog.Logger) *REPL {
	return &REPL{reader: reader, out: out, log: log}
}

// Run processes commands until quit or end of input.
func (r *REPL) Run() error {
	if r.interactive {
		r.println("DSU REPL - disjoint-set forest shell")
		r.println("Type 'help' for available commands, 'quit' to exit")
		r.println()
	}

	for {
		if r.interactive {
			fmt.Fprint(r.out, "dsu> ")
		}
		input, err := r.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}

		line := strings.TrimSpace(input)
		if line != "" && !strings.HasPrefix(line, "#") {
			if !r.handleCommand(line) {
				return nil
			}
		}
		if err != nil {
			if r.interactive {
				r.println("\nGoodbye!")
			}
			return nil
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	r.log.Debug("command", "name", cmd, "args", args)

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		if r.interactive {
			r.println("Goodbye!")
		}
		return false

	case "new":
		r.cmdNew(args)

	case "status":
		r.cmdStatus()

	case "merge", "union":
		r.cmdMerge(args)

	case "same":
		r.cmdSame(args)

	case "leader", "find":
		r.cmdLeader(args)

	case "size":
		r.cmdSize(args)

	case "groups":
		r.cmdGroups()

	case "count":
		r.cmdCount()

	case "check":
		r.cmdCheck()

	case "load":
		r.cmdLoad(args)

	case "save":
		r.cmdSave(args)

	default:
		r.printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

FOREST:
  new <n>                 Create a forest of n singleton groups (n <= 67108864)
  status                  Show element and group counts
  load <file>             Load a forest from a YAML edge list
  save <file>             Save the forest as a YAML edge list

OPERATIONS:
  merge <u> <v>           Join the groups of u and v
  same <u> <v>            Report whether u and v share a group
  leader <v>              Show the representative of v's group
  size <v>                Show the number of elements in v's group

INSPECTION:
  groups                  List every group, ordered by leader
  count                   Show the number of groups
  check                   Verify the forest's invariants

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	r.println(help)
}

func (r *REPL) cmdNew(args []string) {
	if len(args) != 1 {
		r.println("Usage: new <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > edgelist.MaxSize {
		r.printf("Invalid size: %s (must be 0..%d)\n", args[0], edgelist.MaxSize)
		return
	}

	r.forest = dsu.New(n)
	r.log.Info("created forest", "size", n)
	r.printf("Created forest with %d elements\n", n)
}

func (r *REPL) cmdStatus() {
	if r.forest == nil {
		r.println("No forest. Use 'new <n>' to create one.")
		return
	}
	r.println("Forest Status:")
	r.printf("  Elements: %d\n", r.forest.Len())
	r.printf("  Groups:   %d\n", r.forest.Count())
}

func (r *REPL) cmdMerge(args []string) {
	ids, ok := r.elements("merge <u> <v>", args, 2)
	if !ok {
		return
	}
	if r.forest.Merge(ids[0], ids[1]) {
		r.printf("Merged %d and %d (size %d)\n", ids[0], ids[1], r.forest.Size(ids[0]))
	} else {
		r.printf("%d and %d already connected\n", ids[0], ids[1])
	}
}

func (r *REPL) cmdSame(args []string) {
	ids, ok := r.elements("same <u> <v>", args, 2)
	if !ok {
		return
	}
	r.printf("%v\n", r.forest.Same(ids[0], ids[1]))
}

func (r *REPL) cmdLeader(args []string) {
	ids, ok := r.elements("leader <v>", args, 1)
	if !ok {
		return
	}
	r.printf("%d\n", r.forest.Leader(ids[0]))
}

func (r *REPL) cmdSize(args []string) {
	ids, ok := r.elements("size <v>", args, 1)
	if !ok {
		return
	}
	r.printf("%d\n", r.forest.Size(ids[0]))
}

func (r *REPL) cmdGroups() {
	if !r.ensureForest() {
		return
	}
	for _, g := range r.forest.Groups() {
		r.printf("%d: %v\n", r.forest.Leader(g[0]), g)
	}
}

func (r *REPL) cmdCount() {
	if !r.ensureForest() {
		return
	}
	r.printf("%d\n", r.forest.Count())
}

func (r *REPL) cmdCheck() {
	if !r.ensureForest() {
		return
	}
	if err := r.forest.Check(); err != nil {
		r.log.Error("invariant check failed", "error", err)
		r.printf("Check failed: %v\n", err)
		return
	}
	r.println("OK")
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) != 1 {
		r.println("Usage: load <file>")
		return
	}
	f, err := edgelist.Load(args[0])
	if err != nil {
		r.log.Warn("load failed", "path", args[0], "error", err)
		r.printf("Error loading %s: %v\n", args[0], err)
		return
	}
	r.forest = f
	r.printf("Loaded %d elements in %d groups\n", f.Len(), f.Count())
}

func (r *REPL) cmdSave(args []string) {
	if len(args) != 1 {
		r.println("Usage: save <file>")
		return
	}
	if !r.ensureForest() {
		return
	}
	if err := edgelist.Save(args[0], r.forest); err != nil {
		r.log.Warn("save failed", "path", args[0], "error", err)
		r.printf("Error saving %s: %v\n", args[0], err)
		return
	}
	r.printf("Saved to %s\n", args[0])
}

// elements parses want element ids from args and checks them against the
// forest's bounds, so bad input is reported instead of panicking.
func (r *REPL) elements(usage string, args []string, want int) ([]int, bool) {
	if !r.ensureForest() {
		return nil, false
	}
	if len(args) != want {
		r.printf("Usage: %s\n", usage)
		return nil, false
	}

	ids := make([]int, want)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			r.printf("Invalid element: %s\n", a)
			return nil, false
		}
		if v < 0 || v >= r.forest.Len() {
			r.printf("Error: %v\n", &dsu.RangeError{Op: strings.Fields(usage)[0], Index: v, Len: r.forest.Len()})
			return nil, false
		}
		ids[i] = v
	}
	return ids, true
}

func (r *REPL) ensureForest() bool {
	if r.forest == nil {
		r.println("No forest. Use 'new <n>' to create one.")
		return false
	}
	return true
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *REPL) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}
