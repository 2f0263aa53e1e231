package arrow

import "github.com/rfielding/arrow-smt/fol"

// Seed profiles give the universal axioms something concrete to bite on.
// Pure universals admit degenerate models; pinning down every combination
// of agent orderings over a small alternative set forces the solver to
// confront the theorem on a real domain.

// DefaultAgents and DefaultAlternatives are the smallest instance where the
// impossibility binds: two agents ranking three alternatives.
var (
	DefaultAgents       = []int64{1, 2}
	DefaultAlternatives = []int64{1, 2, 3}
)

// Profile is one seeded state: a synthetic state id plus a full strict
// order per agent, most preferred first. Orders is indexed like Agents.
type Profile struct {
	State  int64
	Agents []int64
	Orders [][]int64
}

// SeedProfiles enumerates every combination of one alternative permutation
// per agent, numbering states from 1. For two agents over three
// alternatives that is 3!·3! = 36 profiles.
func SeedProfiles(alternatives, agents []int64) []Profile {
	perms := permutations(alternatives)

	// Odometer over one permutation index per agent; the last agent's
	// digit turns fastest.
	choice := make([]int, len(agents))
	var profiles []Profile
	for {
		orders := make([][]int64, len(agents))
		for i, pi := range choice {
			orders[i] = perms[pi]
		}
		profiles = append(profiles, Profile{
			State:  int64(len(profiles) + 1),
			Agents: agents,
			Orders: orders,
		})

		i := len(choice) - 1
		for i >= 0 {
			choice[i]++
			if choice[i] < len(perms) {
				break
			}
			choice[i] = 0
			i--
		}
		if i < 0 {
			return profiles
		}
	}
}

// Facts renders one profile as a ground conjunction: for each agent, one p
// fact per ordered pair implied by that agent's permutation. A three-element
// order contributes exactly its three pairwise comparisons.
func Facts(d Decls, pr Profile) fol.Formula {
	s := fol.Lit(pr.State)
	var facts fol.And
	for ai, agent := range pr.Agents {
		order := pr.Orders[ai]
		for i := 0; i < len(order); i++ {
			for j := i + 1; j < len(order); j++ {
				facts = append(facts, d.P.At(fol.Lit(agent), fol.Lit(order[i]), fol.Lit(order[j]), s))
			}
		}
	}
	return facts
}

func permutations(xs []int64) [][]int64 {
	if len(xs) <= 1 {
		return [][]int64{append([]int64(nil), xs...)}
	}
	var out [][]int64
	for i, x := range xs {
		rest := make([]int64, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, tail := range permutations(rest) {
			out = append(out, append([]int64{x}, tail...))
		}
	}
	return out
}
