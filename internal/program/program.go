// Package program holds the immutable parsed representation of a
// TypeScript project: one tree per file plus the per-file symbol tables
// used to resolve identifier references across file boundaries.
package program

import (
	"fmt"
	"path"
	"runtime"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/nglazy/internal/ts"
)

// FileSource is an unparsed input file. Path must be slash-separated
// and relative to the project root.
type FileSource struct {
	Path   string
	Source []byte
}

// Import is one local binding introduced by an import statement.
type Import struct {
	Local     string // binding name in this file
	Imported  string // exported name at the origin ("default" for default imports)
	Specifier string // module specifier as written, without quotes

	Stmt   *sitter.Node // the import_statement
	Clause *sitter.Node // the import_clause
	Spec   *sitter.Node // the import_specifier or identifier introducing the binding
}

// Class is a class declaration found in one file.
type Class struct {
	Name       string
	File       *File
	Node       *sitter.Node // the class_declaration
	Decorators []*sitter.Node
	Exported   bool
}

// File is one parsed source file with its symbol tables.
type File struct {
	Path   string
	Source []byte
	Tree   *sitter.Tree
	Root   *sitter.Node

	Imports map[string]*Import // by local binding name
	Classes map[string]*Class  // by declared name
}

// Program is a fixed set of parsed files. It is never mutated after
// Load; the analysis passes only read it and describe textual edits.
type Program struct {
	files  []*File
	byPath map[string]*File
}

// Load parses every input file and builds the symbol tables. Files
// whose path has no TypeScript grammar or that fail to parse are
// reported through warn and skipped.
func Load(sources []FileSource, warn func(format string, args ...any)) (*Program, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	parsed := make([]*File, len(sources))

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(sources) {
		numWorkers = len(sources)
	}

	work := make(chan int, len(sources))
	var wg sync.WaitGroup
	var warnMu sync.Mutex

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				src := sources[idx]
				lang := ts.LanguageFor(src.Path)
				if lang == nil {
					continue
				}
				tree, err := ts.Parse(lang, src.Source)
				if err != nil {
					warnMu.Lock()
					warn("Warning: %s: %v\n", src.Path, err)
					warnMu.Unlock()
					continue
				}
				f := &File{
					Path:    path.Clean(src.Path),
					Source:  src.Source,
					Tree:    tree,
					Root:    tree.RootNode(),
					Imports: make(map[string]*Import),
					Classes: make(map[string]*Class),
				}
				indexFile(f)
				parsed[idx] = f
			}
		}()
	}

	for i := range sources {
		work <- i
	}
	close(work)
	wg.Wait()

	p := &Program{byPath: make(map[string]*File)}
	for _, f := range parsed {
		if f == nil {
			continue
		}
		if _, dup := p.byPath[f.Path]; dup {
			return nil, fmt.Errorf("duplicate file path %q", f.Path)
		}
		p.files = append(p.files, f)
		p.byPath[f.Path] = f
	}

	sort.Slice(p.files, func(i, j int) bool {
		return p.files[i].Path < p.files[j].Path
	})

	return p, nil
}

// Files returns all parsed files in path order.
func (p *Program) Files() []*File {
	return p.files
}

// FileAt returns the file with the given cleaned slash path, or nil.
func (p *Program) FileAt(filePath string) *File {
	return p.byPath[path.Clean(filePath)]
}

// SymbolName resolves a local identifier to its origin symbol name:
// aliased imports (`import { RouterModule as RM }`) report the exported
// name, everything else reports the name as written.
func (p *Program) SymbolName(f *File, local string) string {
	if imp, ok := f.Imports[local]; ok {
		return imp.Imported
	}
	return local
}

// ResolveClass follows a local identifier to the class declaration it
// names, looking through relative imports into other files of the
// program. References that cannot be resolved statically (package
// imports, missing files, non-class targets) report false.
func (p *Program) ResolveClass(f *File, local string) (*Class, bool) {
	if c, ok := f.Classes[local]; ok {
		return c, true
	}

	imp, ok := f.Imports[local]
	if !ok {
		return nil, false
	}

	target := p.resolveModule(f, imp.Specifier)
	if target == nil {
		return nil, false
	}

	c, ok := target.Classes[imp.Imported]
	if !ok || !c.Exported {
		return nil, false
	}
	return c, true
}

// resolveModule maps a relative module specifier to a program file,
// probing the usual TypeScript suffixes. Non-relative (package)
// specifiers do not resolve.
func (p *Program) resolveModule(from *File, specifier string) *File {
	if len(specifier) == 0 || specifier[0] != '.' {
		return nil
	}
	base := path.Join(path.Dir(from.Path), specifier)
	for _, candidate := range []string{base + ".ts", base + ".tsx", base + "/index.ts", base} {
		if f := p.byPath[path.Clean(candidate)]; f != nil {
			return f
		}
	}
	return nil
}

// CountReferences counts identifier references to name in f outside of
// import statements. Property accesses (`obj.name`) do not count; type
// positions and shorthand object properties do.
func CountReferences(f *File, name string) int {
	count := 0
	ts.Walk(f.Root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			return false
		case "identifier", "type_identifier", "shorthand_property_identifier":
			if ts.NodeText(n, f.Source) == name {
				count++
			}
		}
		return true
	})
	return count
}
