package ingest

import (
	"sort"

	"github.com/edafy/ingest-cli/internal/model"
)

// GroupTags collapses a flat list of tag instructions into one entry
// per file name, merging line and well references and de-duplicating
// them by identifier. The first instruction seen for a file supplies
// its path and category; output order follows first appearance.
func GroupTags(instrs []model.TagInstruction) []model.TagInstruction {
	byFile := make(map[string]*model.TagInstruction)
	var order []string

	for _, in := range instrs {
		name := in.File.Name
		if name == "" {
			continue
		}
		g, ok := byFile[name]
		if !ok {
			g = &model.TagInstruction{File: in.File}
			byFile[name] = g
			order = append(order, name)
		}
		g.Line = mergeRefs(g.Line, in.Line)
		g.Well = mergeRefs(g.Well, in.Well)
	}

	out := make([]model.TagInstruction, 0, len(byFile))
	for _, name := range order {
		out = append(out, *byFile[name])
	}
	return out
}

// mergeRefs appends refs not already present by ID, keeping the result
// sorted by ID so grouped output is stable regardless of input order.
func mergeRefs(existing, incoming []model.TagRef) []model.TagRef {
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[r.ID] = true
	}
	for _, r := range incoming {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		existing = append(existing, r)
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i].ID < existing[j].ID })
	return existing
}
