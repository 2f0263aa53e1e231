// Command profiles prints the seeded preference profiles as a Graphviz DOT
// graph, with edges wherever one agent's single adjacent swap connects two
// profiles. Pipe it to dot:
//
//	go run ./cmd/profiles | dot -Tsvg -o profiles.svg
package main

import (
	"fmt"

	"github.com/rfielding/arrow-smt/arrow"
)

func main() {
	profiles := arrow.SeedProfiles(arrow.DefaultAlternatives, arrow.DefaultAgents)
	fmt.Print(arrow.GenerateGraphviz(profiles))
}
