package ui

import (
	"strings"

	"seat-ca/internal/core"
)

// hudLines flattens a parameter snapshot into the text rows shown by the HUD.
// Group names are upper-cased headers followed by "label: value" rows.
func hudLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, group := range snap.Groups {
		lines = append(lines, "", strings.ToUpper(group.Name))
		for _, p := range group.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
