package main

import (
	"context"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/careerscout/internal/mockapi"
	"github.com/csheth/careerscout/internal/tuitest"
)

func TestDashboardAnalyzeEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary in a pty")
	}
	t.Parallel()

	backend := mockapi.New()
	backend.UseFixtures()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	binary := buildBinary(t, moduleDir(t))
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--env-file", "", "--probe-interval", "1h"},
		Env:     []string{"API_BASE=" + server.URL},
		Width:   100,
		Height:  40,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			tuitest.Type(0, "Computer Science"),
			tuitest.Press(200*time.Millisecond, tuitest.KeyEnter),
			tuitest.Press(1500*time.Millisecond, tuitest.KeyCtrlG),
			tuitest.Press(500*time.Millisecond, tuitest.KeyCtrlC),
		},
		Timeout:        8 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	for _, want := range []string{
		"F1 Dashboard",
		"Backend connected",
		"strong placement outcomes",
		"Quick Start",
	} {
		if !rec.Contains(want) {
			frame, _ := rec.FinalFrame()
			t.Fatalf("never rendered %q; final frame:\n%s", want, frame.Plain)
		}
	}

	call, ok := backend.LastCall("/analyze")
	if !ok {
		t.Fatal("dashboard never called /analyze")
	}
	if call.Body != `{"degree":"Computer Science","year":2025}` {
		t.Fatalf("request body = %s", call.Body)
	}
	if backend.Hits("/") == 0 {
		t.Fatal("startup probe missing")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "careerscout-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
