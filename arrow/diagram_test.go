package arrow

import (
	"strings"
	"testing"
)

func TestGenerateGraphviz(t *testing.T) {
	profiles := SeedProfiles(DefaultAlternatives, DefaultAgents)
	dot := GenerateGraphviz(profiles)

	if !strings.HasPrefix(dot, "digraph SeedProfiles {") {
		t.Error("Expected a digraph header")
	}
	if !strings.Contains(dot, "\"s1\" [label=\"s1\\n1: 1>2>3\\n2: 1>2>3\"];") {
		t.Errorf("Expected a labeled node for the first profile, got:\n%s", dot)
	}

	// Each profile has 4 single-swap neighbors (2 adjacent transpositions
	// per agent), so the seed graph has 36*4/2 edges.
	if edges := strings.Count(dot, " -> "); edges != 72 {
		t.Errorf("Expected 72 swap edges, got %d", edges)
	}
}

func TestAdjacentSwap(t *testing.T) {
	base := Profile{State: 1, Agents: []int64{1, 2}, Orders: [][]int64{{1, 2, 3}, {1, 2, 3}}}

	oneSwap := Profile{State: 2, Agents: []int64{1, 2}, Orders: [][]int64{{2, 1, 3}, {1, 2, 3}}}
	if !adjacentSwap(base, oneSwap) {
		t.Error("Expected a single adjacent transposition to connect profiles")
	}

	bothAgents := Profile{State: 3, Agents: []int64{1, 2}, Orders: [][]int64{{2, 1, 3}, {1, 3, 2}}}
	if adjacentSwap(base, bothAgents) {
		t.Error("Expected profiles differing in two agents to be disconnected")
	}

	nonAdjacent := Profile{State: 4, Agents: []int64{1, 2}, Orders: [][]int64{{3, 2, 1}, {1, 2, 3}}}
	if adjacentSwap(base, nonAdjacent) {
		t.Error("Expected a non-adjacent reversal to be disconnected")
	}

	same := Profile{State: 5, Agents: []int64{1, 2}, Orders: [][]int64{{1, 2, 3}, {1, 2, 3}}}
	if adjacentSwap(base, same) {
		t.Error("Expected identical profiles to be disconnected")
	}
}
