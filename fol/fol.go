package fol

// First-order sentences over an unbounded integer domain, rendered as
// SMT-LIB 2 s-expressions. Formulas are plain values, one struct per
// connective; you compose them directly and hand the result to a solver.
// Construction is pure: nothing here does I/O or holds shared state.

import (
	"fmt"
	"strconv"
	"strings"
)

// ----- Terms -----

// Term is an integer-valued expression: a bound variable, a literal,
// or an application of a declared function.
type Term interface {
	SMT() string
}

// Var is a named variable. Builders create their own Vars and close over
// them with Forall/Exists; a Var is only meaningful inside its binder.
type Var struct {
	Name string
}

func (v Var) SMT() string { return v.Name }

// Lit is an integer constant.
type Lit int64

func (l Lit) SMT() string {
	if l < 0 {
		return fmt.Sprintf("(- %d)", -int64(l))
	}
	return strconv.FormatInt(int64(l), 10)
}

// App applies a declared uninterpreted function to argument terms.
type App struct {
	Fn   Fn
	Args []Term
}

func (a App) SMT() string { return sexp(a.Fn.Name, terms(a.Args)) }

// ----- Formulas -----

// Formula is a boolean-valued sentence fragment.
type Formula interface {
	SMT() string
}

// Atom applies a declared uninterpreted relation to argument terms.
type Atom struct {
	Rel  Rel
	Args []Term
}

func (a Atom) SMT() string { return sexp(a.Rel.Name, terms(a.Args)) }

// Eq: (= l r)
type Eq struct {
	L, R Term
}

func (e Eq) SMT() string { return sexp("=", []string{e.L.SMT(), e.R.SMT()}) }

// Neq builds the negation of an equality.
func Neq(l, r Term) Formula { return Not{Eq{l, r}} }

// Not: ¬φ
type Not struct {
	F Formula
}

func (n Not) SMT() string { return sexp("not", []string{n.F.SMT()}) }

// And: n-ary conjunction. An empty And renders as true.
type And []Formula

func (a And) SMT() string {
	switch len(a) {
	case 0:
		return "true"
	case 1:
		return a[0].SMT()
	}
	return sexp("and", formulas(a))
}

// Or: n-ary disjunction. An empty Or renders as false.
type Or []Formula

func (o Or) SMT() string {
	switch len(o) {
	case 0:
		return "false"
	case 1:
		return o[0].SMT()
	}
	return sexp("or", formulas(o))
}

// Implies: (φ → ψ)
type Implies struct {
	If, Then Formula
}

func (i Implies) SMT() string { return sexp("=>", []string{i.If.SMT(), i.Then.SMT()}) }

// Iff: (φ ↔ ψ), rendered as boolean equality.
type Iff struct {
	L, R Formula
}

func (i Iff) SMT() string { return sexp("=", []string{i.L.SMT(), i.R.SMT()}) }

// Forall binds Vars universally over the body.
type Forall struct {
	Vars []Var
	Body Formula
}

func (f Forall) SMT() string { return quantifier("forall", f.Vars, f.Body) }

// Exists binds Vars existentially over the body.
type Exists struct {
	Vars []Var
	Body Formula
}

func (e Exists) SMT() string { return quantifier("exists", e.Vars, e.Body) }

// ----- Rendering helpers -----

func quantifier(kind string, vars []Var, body Formula) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(kind)
	sb.WriteString(" (")
	for i, v := range vars {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "(%s Int)", v.Name)
	}
	sb.WriteString(") ")
	sb.WriteString(body.SMT())
	sb.WriteString(")")
	return sb.String()
}

func sexp(head string, args []string) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(head)
	for _, a := range args {
		sb.WriteString(" ")
		sb.WriteString(a)
	}
	sb.WriteString(")")
	return sb.String()
}

func terms(ts []Term) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.SMT()
	}
	return out
}

func formulas(fs []Formula) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.SMT()
	}
	return out
}
