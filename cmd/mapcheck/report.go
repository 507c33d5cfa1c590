package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/milk9111/sheetrunner/obj"
)

// result is the outcome of parsing one level's map.
type result struct {
	id     string
	path   string
	layout *obj.Layout
	err    error
}

func checkLevels(dataDir, mapName string, ids []string) []result {
	results := make([]result, 0, len(ids))
	for _, id := range ids {
		path := filepath.Join(dataDir, id, mapName)
		layout, err := obj.ParseMapFile(path)
		results = append(results, result{id: id, path: path, layout: layout, err: err})
	}
	return results
}

func invalid(results []result) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	return n
}

// formatReport prints one line per level with its entity counts, or the
// parse error, followed by a summary line.
func formatReport(results []result) string {
	var b strings.Builder
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(&b, "%-16s FAIL %v\n", r.id, r.err)
			continue
		}
		l := r.layout
		fmt.Fprintf(&b, "%-16s ok   ground=%d spikes=%d plants=%d arachnes=%d ghosts=%d monsters=%d bonuses=%d pencils=%d\n",
			r.id, len(l.Ground), len(l.Spikes), len(l.Plants), len(l.Arachnes), len(l.Ghosts),
			len(l.Monsters), len(l.TimeBonuses), len(l.Pencils))
	}
	fmt.Fprintf(&b, "%d levels, %d invalid\n", len(results), invalid(results))
	return b.String()
}
