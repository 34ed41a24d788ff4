// nglazy migrates Angular route configurations to lazy-load standalone
// components.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"

	"github.com/phobologic/nglazy/internal/apply"
	"github.com/phobologic/nglazy/internal/discover"
	"github.com/phobologic/nglazy/internal/migrate"
	"github.com/phobologic/nglazy/internal/model"
	"github.com/phobologic/nglazy/internal/program"
)

var version = "dev"

const defaultMaxFileSize = 1_000_000 // 1 MB

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nglazy", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		dryRun      bool
		maxFileSize int
		showVersion bool
	)

	fs.BoolVar(&dryRun, "dry-run", false, "report what would change without modifying any file")
	fs.IntVar(&maxFileSize, "max-file-size", defaultMaxFileSize, "skip files larger than this many bytes")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "nglazy %s\n", version)
		return nil
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	// Discover files
	paths, err := discover.Files(root)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no TypeScript files found")
	}

	sources := readSources(root, paths, maxFileSize, stderr)
	if len(sources) == 0 {
		return fmt.Errorf("no TypeScript files could be read")
	}

	warn := func(format string, warnArgs ...any) {
		_, _ = fmt.Fprintf(stderr, format, warnArgs...)
	}
	prog, err := program.Load(sources, warn)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	changes, stats, err := migrate.Run(prog)
	if err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	if len(changes) == 0 {
		return fmt.Errorf("no standalone component routes to migrate")
	}

	if dryRun {
		printSummary(stdout, changes, stats)
		return nil
	}

	if err := writeChanges(root, prog, changes); err != nil {
		return err
	}
	printSummary(stdout, changes, stats)
	return nil
}

func readSources(root string, paths []string, maxSize int, stderr io.Writer) []program.FileSource {
	var sources []program.FileSource
	for _, p := range paths {
		absPath := filepath.Join(root, filepath.FromSlash(p))
		fi, err := os.Stat(absPath)
		if err == nil && fi.Size() > int64(maxSize) {
			_, _ = fmt.Fprintf(stderr, "Warning: %s: skipped (>%d bytes)\n", p, maxSize)
			continue
		}
		source, err := os.ReadFile(absPath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Warning: %s: %v\n", p, err)
			continue
		}
		sources = append(sources, program.FileSource{Path: p, Source: source})
	}
	return sources
}

// writeChanges applies each file's recorded edits against its original
// contents and writes the result back.
func writeChanges(root string, prog *program.Program, changes model.ChangesByFile) error {
	for path, edits := range changes {
		f := prog.FileAt(path)
		if f == nil {
			return fmt.Errorf("%s: changes recorded for unknown file", path)
		}
		updated, err := apply.Edits(f.Source, edits)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		absPath := filepath.Join(root, filepath.FromSlash(path))
		if err := os.WriteFile(absPath, updated, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func printSummary(w io.Writer, changes model.ChangesByFile, stats []migrate.FileStat) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Routes", "Edits"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	routes := 0
	for _, s := range stats {
		table.Append([]string{s.Path, fmt.Sprintf("%d", s.Routes), fmt.Sprintf("%d", len(changes[s.Path]))})
		routes += s.Routes
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "\n%d route(s) migrated in %d file(s)\n", routes, len(stats))
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-max-file-size": true, "--max-file-size": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
