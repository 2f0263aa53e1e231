package arrow

import "github.com/rfielding/arrow-smt/fol"

// The five Arrow conditions, one closed sentence each. Every builder creates
// its own bound variables and quantifies over all of them; no variable is
// shared across builders, so sentences compose without capture.

// Linearity: per state, p (for every agent) and w are strict total orders
// over the alternatives: any two distinct alternatives are comparable,
// nothing ranks above itself, and both relations are transitive.
func Linearity(d Decls) fol.Formula {
	x := fol.Var{Name: "x"}
	a := fol.Var{Name: "a"}
	b := fol.Var{Name: "b"}
	c := fol.Var{Name: "c"}
	s := fol.Var{Name: "s"}

	totalP := fol.Or{d.P.At(x, a, b, s), d.P.At(x, b, a, s), fol.Eq{L: a, R: b}}
	totalW := fol.Or{d.W.At(a, b, s), d.W.At(b, a, s), fol.Eq{L: a, R: b}}
	irreflexive := fol.And{fol.Not{F: d.P.At(x, a, a, s)}, fol.Not{F: d.W.At(a, a, s)}}
	transP := fol.Implies{
		If:   fol.And{d.P.At(x, a, b, s), d.P.At(x, b, c, s)},
		Then: d.P.At(x, a, c, s),
	}
	transW := fol.Implies{
		If:   fol.And{d.W.At(a, b, s), d.W.At(b, c, s)},
		Then: d.W.At(a, c, s),
	}

	return fol.Forall{
		Vars: []fol.Var{x, a, b, c, s},
		Body: fol.And{totalP, irreflexive, totalW, transP, transW},
	}
}

// ProfileIndependence: the welfare ranking is a pure function of the full
// preference profile. Two states whose agents all agree on every pair must
// carry identical welfare rankings; the state label itself contributes
// nothing.
func ProfileIndependence(d Decls) fol.Formula {
	s1 := fol.Var{Name: "s1"}
	s2 := fol.Var{Name: "s2"}
	x := fol.Var{Name: "x"}
	a := fol.Var{Name: "a"}
	b := fol.Var{Name: "b"}

	sameProfile := fol.Forall{
		Vars: []fol.Var{x, a, b},
		Body: fol.Iff{L: d.P.At(x, a, b, s1), R: d.P.At(x, a, b, s2)},
	}
	sameWelfare := fol.Forall{
		Vars: []fol.Var{a, b},
		Body: fol.Iff{L: d.W.At(a, b, s1), R: d.W.At(a, b, s2)},
	}

	return fol.Forall{
		Vars: []fol.Var{s1, s2},
		Body: fol.Implies{If: sameProfile, Then: sameWelfare},
	}
}

// Unanimity: when every agent strictly prefers a over b, so does society.
func Unanimity(d Decls) fol.Formula {
	x := fol.Var{Name: "x"}
	a := fol.Var{Name: "a"}
	b := fol.Var{Name: "b"}
	s := fol.Var{Name: "s"}

	everyone := fol.Forall{Vars: []fol.Var{x}, Body: d.P.At(x, a, b, s)}

	return fol.Forall{
		Vars: []fol.Var{a, b, s},
		Body: fol.Implies{If: everyone, Then: d.W.At(a, b, s)},
	}
}

// NonDictatorship: no single agent's preferences coincide with the welfare
// ranking in every state on every pair.
func NonDictatorship(d Decls) fol.Formula {
	x := fol.Var{Name: "x"}
	a := fol.Var{Name: "a"}
	b := fol.Var{Name: "b"}
	s := fol.Var{Name: "s"}

	alwaysMatches := fol.Forall{
		Vars: []fol.Var{s, a, b},
		Body: fol.Iff{L: d.P.At(x, a, b, s), R: d.W.At(a, b, s)},
	}

	return fol.Not{F: fol.Exists{Vars: []fol.Var{x}, Body: alwaysMatches}}
}

// IIA: the welfare ranking of a pair depends only on the agents' rankings of
// that pair. If every agent orders (a,b) the same way in two states, the
// welfare order of (a,b) agrees between them, whatever happens to other
// alternatives.
func IIA(d Decls) fol.Formula {
	a := fol.Var{Name: "a"}
	b := fol.Var{Name: "b"}
	s1 := fol.Var{Name: "s1"}
	s2 := fol.Var{Name: "s2"}
	x := fol.Var{Name: "x"}

	samePair := fol.Forall{
		Vars: []fol.Var{x},
		Body: fol.Iff{L: d.P.At(x, a, b, s1), R: d.P.At(x, a, b, s2)},
	}

	return fol.Forall{
		Vars: []fol.Var{a, b, s1, s2},
		Body: fol.Implies{
			If:   samePair,
			Then: fol.Iff{L: d.W.At(a, b, s1), R: d.W.At(a, b, s2)},
		},
	}
}
