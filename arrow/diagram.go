package arrow

import (
	"fmt"
	"strings"
)

// GenerateGraphviz renders seeded profiles as a Graphviz DOT graph. Two
// profiles are connected when exactly one agent inverts exactly one adjacent
// pair in their order, which is the swap transition restricted to the seeded
// states. Useful for eyeballing that the seeds really cover the profile
// space and that single swaps connect it.
func GenerateGraphviz(profiles []Profile) string {
	var sb strings.Builder

	sb.WriteString("digraph SeedProfiles {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	sb.WriteString("  edge [dir=none];\n")
	sb.WriteString("\n")

	for _, pr := range profiles {
		var lines []string
		for i, agent := range pr.Agents {
			lines = append(lines, fmt.Sprintf("%d: %s", agent, orderString(pr.Orders[i])))
		}
		sb.WriteString(fmt.Sprintf("  \"s%d\" [label=\"s%d\\n%s\"];\n",
			pr.State, pr.State, strings.Join(lines, "\\n")))
	}
	sb.WriteString("\n")

	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			if adjacentSwap(profiles[i], profiles[j]) {
				sb.WriteString(fmt.Sprintf("  \"s%d\" -> \"s%d\";\n",
					profiles[i].State, profiles[j].State))
			}
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func orderString(order []int64) string {
	parts := make([]string, len(order))
	for i, alt := range order {
		parts[i] = fmt.Sprintf("%d", alt)
	}
	return strings.Join(parts, ">")
}

// adjacentSwap reports whether exactly one agent differs between the two
// profiles, by exactly one adjacent transposition of their order.
func adjacentSwap(p1, p2 Profile) bool {
	if len(p1.Orders) != len(p2.Orders) {
		return false
	}
	differing := -1
	for i := range p1.Orders {
		if !equalOrder(p1.Orders[i], p2.Orders[i]) {
			if differing >= 0 {
				return false
			}
			differing = i
		}
	}
	if differing < 0 {
		return false
	}
	return transposedOnce(p1.Orders[differing], p2.Orders[differing])
}

func equalOrder(o1, o2 []int64) bool {
	if len(o1) != len(o2) {
		return false
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			return false
		}
	}
	return true
}

func transposedOnce(o1, o2 []int64) bool {
	if len(o1) != len(o2) {
		return false
	}
	for k := 0; k+1 < len(o1); k++ {
		if o1[k] == o2[k+1] && o1[k+1] == o2[k] {
			// Everything outside positions k, k+1 must agree.
			for i := range o1 {
				if i == k || i == k+1 {
					continue
				}
				if o1[i] != o2[i] {
					return false
				}
			}
			return true
		}
	}
	return false
}
