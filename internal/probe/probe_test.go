package probe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voicebox/internal/execx"
)

func TestScriptImportsAllPackages(t *testing.T) {
	script := Script([]string{"fastapi", "uvicorn", "numpy"})
	if !strings.Contains(script, "import fastapi, uvicorn, numpy") {
		t.Fatalf("expected combined import line, got:\n%s", script)
	}
	if !strings.Contains(script, "sys.exit(1)") {
		t.Fatalf("expected non-zero exit on import failure, got:\n%s", script)
	}
}

func TestRunOK(t *testing.T) {
	fake := &execx.FakeRunner{Responses: []execx.Response{{}}}

	report := Run(context.Background(), fake, "python", []string{"fastapi"})
	if report.Result != OK {
		t.Fatalf("expected OK, got %s", report.Result)
	}
	if len(fake.Calls) != 1 {
		t.Fatalf("expected one probe call, got %d", len(fake.Calls))
	}
	call := fake.Calls[0]
	if call.Command != "python" || len(call.Args) != 2 || call.Args[0] != "-c" {
		t.Fatalf("expected python -c <script>, got %s %v", call.Command, call.Args)
	}
}

func TestRunMissingOnNonZeroExit(t *testing.T) {
	fake := &execx.FakeRunner{Responses: []execx.Response{
		{Result: execx.RunResult{ExitCode: 1}},
	}}

	report := Run(context.Background(), fake, "python", []string{"fastapi"})
	if report.Result != Missing {
		t.Fatalf("expected Missing, got %s", report.Result)
	}
	if report.Err != nil {
		t.Fatalf("Missing must not carry a start error, got %v", report.Err)
	}
}

func TestRunIndeterminateWhenProbeCannotStart(t *testing.T) {
	startErr := errors.New("exec: \"python\": executable file not found in $PATH")
	fake := &execx.FakeRunner{Responses: []execx.Response{{Err: startErr}}}

	report := Run(context.Background(), fake, "python", []string{"fastapi"})
	if report.Result != Indeterminate {
		t.Fatalf("expected Indeterminate, got %s", report.Result)
	}
	if !errors.Is(report.Err, startErr) {
		t.Fatalf("expected start error preserved, got %v", report.Err)
	}
}

func TestRunNoPackages(t *testing.T) {
	fake := &execx.FakeRunner{}
	report := Run(context.Background(), fake, "python", nil)
	if report.Result != OK {
		t.Fatalf("expected OK for empty package list, got %s", report.Result)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("expected no probe calls, got %d", len(fake.Calls))
	}
}

func TestRunEachMixedResults(t *testing.T) {
	fake := &execx.FakeRunner{Responses: []execx.Response{
		{},
		{Result: execx.RunResult{ExitCode: 1}},
		{},
	}}

	statuses, overall := RunEach(context.Background(), fake, "python", []string{"fastapi", "uvicorn", "numpy"}, nil)
	if overall.Result != Missing {
		t.Fatalf("expected overall Missing, got %s", overall.Result)
	}
	want := []PackageStatus{
		{Package: "fastapi", Result: "ok"},
		{Package: "uvicorn", Result: "missing"},
		{Package: "numpy", Result: "ok"},
	}
	if len(statuses) != len(want) {
		t.Fatalf("expected %d statuses, got %d", len(want), len(statuses))
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Fatalf("status %d: expected %+v, got %+v", i, want[i], statuses[i])
		}
	}
}

func TestRunEachShortCircuitsOnStartFailure(t *testing.T) {
	fake := &execx.FakeRunner{Responses: []execx.Response{
		{},
		{Err: errors.New("interpreter vanished")},
	}}

	statuses, overall := RunEach(context.Background(), fake, "python", []string{"fastapi", "uvicorn", "numpy"}, nil)
	if overall.Result != Indeterminate {
		t.Fatalf("expected Indeterminate, got %s", overall.Result)
	}
	if len(fake.Calls) != 2 {
		t.Fatalf("expected probing to stop after start failure, got %d calls", len(fake.Calls))
	}
	if len(statuses) != 3 {
		t.Fatalf("expected every package reported, got %d", len(statuses))
	}
	if statuses[0].Result != "ok" || statuses[1].Result != "indeterminate" || statuses[2].Result != "indeterminate" {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
}

func TestRunEachObserverSeesEveryStatus(t *testing.T) {
	fake := &execx.FakeRunner{Responses: []execx.Response{
		{},
		{Result: execx.RunResult{ExitCode: 1}},
	}}

	var seen []PackageStatus
	statuses, _ := RunEach(context.Background(), fake, "python", []string{"fastapi", "uvicorn"}, func(st PackageStatus) {
		seen = append(seen, st)
	})
	if len(seen) != len(statuses) {
		t.Fatalf("expected observer to see %d statuses, saw %d", len(statuses), len(seen))
	}
	for i := range seen {
		if seen[i] != statuses[i] {
			t.Fatalf("observer status %d mismatch: %+v vs %+v", i, seen[i], statuses[i])
		}
	}
}

func TestInterpreterHintsNonEmpty(t *testing.T) {
	hints := InterpreterHints("python")
	if len(hints) == 0 {
		t.Fatal("expected at least one hint")
	}
}
