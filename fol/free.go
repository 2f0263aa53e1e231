package fol

import "sort"

// FreeVars returns the names of variables that occur free in f, sorted.
// A builder that closes all of its own quantifiers produces an empty result;
// anything else is a construction-time defect in that builder.
func FreeVars(f Formula) []string {
	free := make(map[string]bool)
	walkFormula(f, make(map[string]int), free)

	out := make([]string, 0, len(free))
	for name := range free {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Closed reports whether f has no free variables.
func Closed(f Formula) bool {
	return len(FreeVars(f)) == 0
}

func walkFormula(f Formula, bound map[string]int, free map[string]bool) {
	switch v := f.(type) {
	case Atom:
		for _, t := range v.Args {
			walkTerm(t, bound, free)
		}
	case Eq:
		walkTerm(v.L, bound, free)
		walkTerm(v.R, bound, free)
	case Not:
		walkFormula(v.F, bound, free)
	case And:
		for _, g := range v {
			walkFormula(g, bound, free)
		}
	case Or:
		for _, g := range v {
			walkFormula(g, bound, free)
		}
	case Implies:
		walkFormula(v.If, bound, free)
		walkFormula(v.Then, bound, free)
	case Iff:
		walkFormula(v.L, bound, free)
		walkFormula(v.R, bound, free)
	case Forall:
		walkQuantifier(v.Vars, v.Body, bound, free)
	case Exists:
		walkQuantifier(v.Vars, v.Body, bound, free)
	}
}

func walkQuantifier(vars []Var, body Formula, bound map[string]int, free map[string]bool) {
	for _, v := range vars {
		bound[v.Name]++
	}
	walkFormula(body, bound, free)
	for _, v := range vars {
		bound[v.Name]--
	}
}

func walkTerm(t Term, bound map[string]int, free map[string]bool) {
	switch v := t.(type) {
	case Var:
		if bound[v.Name] == 0 {
			free[v.Name] = true
		}
	case App:
		for _, a := range v.Args {
			walkTerm(a, bound, free)
		}
	}
}
