package arrow

import "github.com/rfielding/arrow-smt/fol"

// SwapTransition pins down the swap successor-state function with one closed
// sentence in Reiter's style: an unconditional effect plus guarded frame
// conditions saying what must carry over unchanged.
//
// Effect: swap(x,a,b,s) always inverts x's order of (a,b):
//
//	p(x, a, b, swap(x,a,b,s)) ↔ p(x, b, a, s)
//
// Frame: a query about (x,a,b) is untouched by swap(y,a1,b1,s) when another
// agent acted, or when the swapped pair is disjoint from the queried pair.
// The inequality guard is asserted explicitly here; leaving it out would let
// the frame condition collide with the effect on the swapped pair itself and
// contradict Linearity the moment any preference fact exists.
//
// Two further carry-over cases keep chained swaps composable with Linearity
// when the pairs overlap in one alternative: the acting agent's (a,b) order
// survives swap(x,a,b1,s) when b1 already ranked above b, and survives
// swap(x,a1,b,s) when a already ranked above a1. Overlapping cases outside
// these guards are deliberately left unconstrained, so the solver is free to
// re-rank them however Linearity demands.
func SwapTransition(d Decls) fol.Formula {
	x := fol.Var{Name: "x"}
	y := fol.Var{Name: "y"}
	a := fol.Var{Name: "a"}
	a1 := fol.Var{Name: "a1"}
	b := fol.Var{Name: "b"}
	b1 := fol.Var{Name: "b1"}
	s := fol.Var{Name: "s"}

	effect := fol.Iff{
		L: d.P.At(x, a, b, d.Swap.At(x, a, b, s)),
		R: d.P.At(x, b, a, s),
	}

	// p(x,a,b,·) across somebody else's swap, or a swap of unrelated
	// alternatives.
	unchanged := fol.Iff{
		L: d.P.At(x, a, b, d.Swap.At(y, a1, b1, s)),
		R: d.P.At(x, a, b, s),
	}
	pairsDisjoint := fol.And{
		fol.Neq(a, a1), fol.Neq(a, b1),
		fol.Neq(b, a1), fol.Neq(b, b1),
	}
	frame := fol.Implies{
		If:   fol.Or{fol.Neq(x, y), pairsDisjoint},
		Then: unchanged,
	}

	carryLower := fol.Implies{
		If: fol.And{
			fol.Eq{L: x, R: y}, fol.Eq{L: a, R: a1},
			fol.Neq(b, b1), fol.Neq(b, a),
			d.P.At(x, b1, b, s),
		},
		Then: unchanged,
	}
	carryUpper := fol.Implies{
		If: fol.And{
			fol.Eq{L: x, R: y}, fol.Eq{L: b, R: b1},
			fol.Neq(a, a1), fol.Neq(b, a),
			d.P.At(x, a, a1, s),
		},
		Then: unchanged,
	}

	return fol.Forall{
		Vars: []fol.Var{x, y, a, a1, b, b1, s},
		Body: fol.And{effect, frame, carryLower, carryUpper},
	}
}
