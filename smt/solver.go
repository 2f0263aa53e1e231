// Package smt drives an external SMT solver (Z3) over SMT-LIB 2.
//
// The solver is a collaborator, not part of this module: we assemble a
// script from declarations and closed sentences, pipe it to the solver
// binary, and parse the three-valued verdict it prints. Callers bound the
// single blocking call with a context deadline; a deadline that fires is
// reported as Unknown, never as an error.
package smt

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rfielding/arrow-smt/fol"
)

// Verdict is the three-valued outcome of a satisfiability check.
type Verdict int

const (
	Unknown Verdict = iota
	Sat
	Unsat
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Result is a verdict plus the witnessing model text when satisfiable.
type Result struct {
	Verdict Verdict
	Model   string
}

// Solver runs a Z3 binary as a subprocess.
type Solver struct {
	Path string // solver binary, "z3" by default
}

func New() *Solver {
	return &Solver{Path: "z3"}
}

// Script assembles one SMT-LIB 2 script: declarations, one assert per
// sentence, then a single check-sat and model request.
func Script(decls []fol.Decl, sentences []fol.Formula) string {
	var sb strings.Builder
	sb.WriteString("(set-option :produce-models true)\n")
	for _, d := range decls {
		sb.WriteString(d.Decl())
		sb.WriteString("\n")
	}
	for _, f := range sentences {
		fmt.Fprintf(&sb, "(assert %s)\n", f.SMT())
	}
	sb.WriteString("(check-sat)\n")
	sb.WriteString("(get-model)\n")
	return sb.String()
}

// Check performs the single solver invocation for the given declarations
// and sentences. The context bounds the call; on deadline or cancellation
// the verdict is Unknown. Any other process failure propagates unmodified.
func (s *Solver) Check(ctx context.Context, decls []fol.Decl, sentences []fol.Formula) (Result, error) {
	cmd := exec.CommandContext(ctx, s.Path, "-in")
	cmd.Stdin = strings.NewReader(Script(decls, sentences))

	out, err := cmd.Output()
	if ctx.Err() != nil {
		return Result{Verdict: Unknown}, nil
	}
	if err != nil && len(out) == 0 {
		return Result{}, fmt.Errorf("running %s: %w", s.Path, err)
	}
	return Parse(string(out))
}

// Parse reads the solver's output: the first line carries the verdict and,
// when satisfiable, the remainder is the model. After an unsat verdict Z3
// emits an error for the trailing get-model; that line is discarded.
func Parse(out string) (Result, error) {
	verdict, rest, _ := strings.Cut(strings.TrimSpace(out), "\n")
	switch strings.TrimSpace(verdict) {
	case "sat":
		return Result{Verdict: Sat, Model: strings.TrimSpace(rest)}, nil
	case "unsat":
		return Result{Verdict: Unsat}, nil
	case "unknown", "timeout":
		return Result{Verdict: Unknown}, nil
	}
	return Result{}, fmt.Errorf("unexpected solver output %q", verdict)
}
