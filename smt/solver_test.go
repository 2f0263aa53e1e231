package smt

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rfielding/arrow-smt/fol"
)

func TestScript(t *testing.T) {
	p := fol.Rel{Name: "p", Arity: 2}
	swap := fol.Fn{Name: "swap", Arity: 1}
	x := fol.Var{Name: "x"}
	y := fol.Var{Name: "y"}

	sentence := fol.Forall{Vars: []fol.Var{x, y}, Body: p.At(x, y)}
	script := Script([]fol.Decl{p, swap}, []fol.Formula{sentence})

	for _, want := range []string{
		"(declare-fun p (Int Int) Bool)",
		"(declare-fun swap (Int) Int)",
		"(assert (forall ((x Int) (y Int)) (p x y)))",
		"(check-sat)",
		"(get-model)",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("Expected script to contain %s, got:\n%s", want, script)
		}
	}
}

func TestParseSat(t *testing.T) {
	res, err := Parse("sat\n(\n  (define-fun x () Int 3)\n)\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Verdict != Sat {
		t.Errorf("Expected sat, got %s", res.Verdict)
	}
	if !strings.Contains(res.Model, "define-fun x") {
		t.Errorf("Expected model text to survive, got %q", res.Model)
	}
}

func TestParseUnsat(t *testing.T) {
	// Z3 complains about get-model after unsat; the verdict still stands.
	res, err := Parse("unsat\n(error \"line 9 column 10: model is not available\")\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Verdict != Unsat {
		t.Errorf("Expected unsat, got %s", res.Verdict)
	}
	if res.Model != "" {
		t.Errorf("Expected no model for unsat, got %q", res.Model)
	}
}

func TestParseUnknownAndTimeout(t *testing.T) {
	for _, out := range []string{"unknown\n", "timeout\n"} {
		res, err := Parse(out)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", out, err)
		}
		if res.Verdict != Unknown {
			t.Errorf("Expected unknown for %q, got %s", out, res.Verdict)
		}
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("segmentation fault\n"); err == nil {
		t.Error("Expected an error for unrecognized solver output")
	}
}

func TestVerdictString(t *testing.T) {
	if Sat.String() != "sat" || Unsat.String() != "unsat" || Unknown.String() != "unknown" {
		t.Error("Unexpected verdict strings")
	}
}

// stubSolver writes a tiny shell script that ignores stdin and prints a
// fixed verdict, standing in for the real binary.
func stubSolver(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub solver script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fakez3")
	script := "#!/bin/sh\ncat > /dev/null\nprintf '" + output + "'\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckWithStub(t *testing.T) {
	s := &Solver{Path: stubSolver(t, "unsat\\n")}
	res, err := s.Check(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res.Verdict != Unsat {
		t.Errorf("Expected unsat from stub, got %s", res.Verdict)
	}
}

func TestCheckDeadlineIsUnknown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	s := &Solver{Path: stubSolver(t, "sat\\n")}
	res, err := s.Check(ctx, nil, nil)
	if err != nil {
		t.Fatalf("Expected deadline to surface as unknown, got error: %v", err)
	}
	if res.Verdict != Unknown {
		t.Errorf("Expected unknown after deadline, got %s", res.Verdict)
	}
}

func TestCheckMissingBinary(t *testing.T) {
	s := &Solver{Path: filepath.Join(t.TempDir(), "no-such-solver")}
	if _, err := s.Check(context.Background(), nil, nil); err == nil {
		t.Error("Expected an error when the solver binary is missing")
	}
}
