package fol

import (
	"fmt"
	"strings"
)

// Decl is anything that renders an SMT-LIB declaration line. Every sentence
// submitted alongside a declaration set must build its atoms from these same
// values; the encoding is only meaningful when all builders share one set.
type Decl interface {
	Decl() string
}

// Rel is an uninterpreted boolean-valued relation over the integer domain.
type Rel struct {
	Name  string
	Arity int
}

func (r Rel) Decl() string {
	return fmt.Sprintf("(declare-fun %s (%s) Bool)", r.Name, intSorts(r.Arity))
}

// At applies the relation to argument terms. The argument count must match
// the declared arity; a mismatch is a defect in the calling builder.
func (r Rel) At(args ...Term) Atom {
	if len(args) != r.Arity {
		panic(fmt.Sprintf("relation %s has arity %d, got %d arguments", r.Name, r.Arity, len(args)))
	}
	return Atom{Rel: r, Args: args}
}

// Fn is an uninterpreted integer-valued function over the integer domain.
type Fn struct {
	Name  string
	Arity int
}

func (f Fn) Decl() string {
	return fmt.Sprintf("(declare-fun %s (%s) Int)", f.Name, intSorts(f.Arity))
}

// At applies the function to argument terms.
func (f Fn) At(args ...Term) App {
	if len(args) != f.Arity {
		panic(fmt.Sprintf("function %s has arity %d, got %d arguments", f.Name, f.Arity, len(args)))
	}
	return App{Fn: f, Args: args}
}

func intSorts(n int) string {
	sorts := make([]string, n)
	for i := range sorts {
		sorts[i] = "Int"
	}
	return strings.Join(sorts, " ")
}
