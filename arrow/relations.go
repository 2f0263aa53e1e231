// Package arrow encodes Arrow's General Possibility Theorem as closed
// first-order sentences over agents, alternatives, and preference states.
//
// Agents, alternatives, and states are all opaque integers. Two relations
// and one transition function carry the whole theory:
//
//	p(x, a, b, s)   agent x strictly prefers a over b in state s
//	w(a, b, s)      society ranks a above b in state s
//	swap(x, a, b, s) the state reached from s when x inverts their (a,b) order
//
// States form an unbounded symbolic transition graph under swap; nothing is
// materialized, the solver reasons over the function symbol directly.
package arrow

import "github.com/rfielding/arrow-smt/fol"

// Decls is the shared declaration set. Every axiom builder takes the same
// Decls value so that all sentences speak about the same three symbols.
type Decls struct {
	P    fol.Rel
	W    fol.Rel
	Swap fol.Fn
}

func NewDecls() Decls {
	return Decls{
		P:    fol.Rel{Name: "p", Arity: 4},
		W:    fol.Rel{Name: "w", Arity: 3},
		Swap: fol.Fn{Name: "swap", Arity: 4},
	}
}

// List returns the declarations in the order they are submitted to the solver.
func (d Decls) List() []fol.Decl {
	return []fol.Decl{d.P, d.W, d.Swap}
}
