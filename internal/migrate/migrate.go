// Package migrate drives the locate → rewrite pipeline over a whole
// program and collects one coherent change set.
package migrate

import (
	"github.com/phobologic/nglazy/internal/locate"
	"github.com/phobologic/nglazy/internal/model"
	"github.com/phobologic/nglazy/internal/program"
	"github.com/phobologic/nglazy/internal/rewrite"
	"github.com/phobologic/nglazy/internal/track"
)

// FileStat reports how many routes were migrated in one file.
type FileStat struct {
	Path   string
	Routes int
}

// Run applies the locator and rewriter to every file of the program,
// sharing a single tracker so the recorded changes form one consistent
// edit set. An empty change set is not an error at this layer; whether
// "nothing to migrate" is a failure is the caller's policy.
func Run(p *program.Program) (model.ChangesByFile, []FileStat, error) {
	tracker := track.New()

	var stats []FileStat
	for _, f := range p.Files() {
		arrays := locate.Arrays(p, f)
		if len(arrays) == 0 {
			continue
		}
		if routes := rewrite.File(p, f, arrays, tracker); routes > 0 {
			stats = append(stats, FileStat{Path: f.Path, Routes: routes})
		}
	}

	changes, err := tracker.RecordChanges()
	if err != nil {
		return nil, nil, err
	}
	return changes, stats, nil
}
