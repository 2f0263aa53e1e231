package arrow

import (
	"context"
	"fmt"

	"github.com/rfielding/arrow-smt/fol"
	"github.com/rfielding/arrow-smt/smt"
)

// Axiom names accepted by QueryWithout.
const (
	AxiomLinearity           = "linearity"
	AxiomProfileIndependence = "profile-independence"
	AxiomUnanimity           = "unanimity"
	AxiomNonDictatorship     = "non-dictatorship"
	AxiomIIA                 = "iia"
	AxiomSwap                = "swap"
)

var builders = []struct {
	name  string
	build func(Decls) fol.Formula
}{
	{AxiomLinearity, Linearity},
	{AxiomProfileIndependence, ProfileIndependence},
	{AxiomUnanimity, Unanimity},
	{AxiomNonDictatorship, NonDictatorship},
	{AxiomIIA, IIA},
	{AxiomSwap, SwapTransition},
}

// Axioms returns the five Arrow conditions plus the swap transition axiom.
func Axioms(d Decls) []fol.Formula {
	out := make([]fol.Formula, 0, len(builders))
	for _, b := range builders {
		out = append(out, b.build(d))
	}
	return out
}

// Query is the full conjunction submitted to the solver: all axioms followed
// by the 36 seeded profiles over the default two-agent, three-alternative
// instance. Arrow's theorem predicts this set is jointly unsatisfiable.
func Query(d Decls) []fol.Formula {
	sentences := Axioms(d)
	for _, pr := range SeedProfiles(DefaultAlternatives, DefaultAgents) {
		sentences = append(sentences, Facts(d, pr))
	}
	return sentences
}

// QueryWithout is Query minus one named axiom. Dropping non-dictatorship
// should flip the verdict to satisfiable (a dictatorship satisfies the
// rest), which is how one checks the conjunction is not unsatisfiable for
// an unrelated reason.
func QueryWithout(d Decls, drop string) ([]fol.Formula, error) {
	found := false
	var sentences []fol.Formula
	for _, b := range builders {
		if b.name == drop {
			found = true
			continue
		}
		sentences = append(sentences, b.build(d))
	}
	if !found {
		return nil, fmt.Errorf("unknown axiom %q", drop)
	}
	for _, pr := range SeedProfiles(DefaultAlternatives, DefaultAgents) {
		sentences = append(sentences, Facts(d, pr))
	}
	return sentences, nil
}

// Check builds the full query and performs the single solver invocation.
// The caller bounds it with the context; a deadline surfaces as unknown.
func Check(ctx context.Context, solver *smt.Solver) (smt.Result, error) {
	d := NewDecls()
	return solver.Check(ctx, d.List(), Query(d))
}
