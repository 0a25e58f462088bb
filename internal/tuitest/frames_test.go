package tuitest

import "testing"

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mCareerScout\x1b[0m   \r\nF1 Dashboard\n\n\x1b[2J\x1b[HBackend connected\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2: %#v", len(frames), frames)
	}
	if frames[0].Plain != "CareerScout\nF1 Dashboard" {
		t.Fatalf("first frame = %q", frames[0].Plain)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	if last, ok := rec.FinalFrame(); !ok || last.Plain != "Backend connected" {
		t.Fatalf("final frame = %q", last.Plain)
	}
	if frame, ok := rec.FindFrame("Dashboard"); !ok || frame.Index != 0 {
		t.Fatalf("FindFrame = %+v, %v", frame, ok)
	}
	if rec.Contains("Compare") {
		t.Fatal("unexpected match")
	}
}

func TestParseFramesWithoutClear(t *testing.T) {
	frames := parseFrames([]byte("\x1b]11;?\x07plain output\n"))
	if len(frames) != 1 || frames[0].Plain != "plain output" {
		t.Fatalf("frames = %#v", frames)
	}
}

type captureWriter struct{ data []byte }

func (c *captureWriter) Write(p []byte) (int, error) {
	c.data = append(c.data, p...)
	return len(p), nil
}

func TestTerminalResponderAnswersQueries(t *testing.T) {
	w := &captureWriter{}
	responder := newTerminalResponder(w)
	responder.Process([]byte("abc\x1b[6"))
	responder.Process([]byte("n\x1b]11;?\x07"))
	want := "\x1b[1;1R\x1b]11;rgb:0000/0000/0000\x07"
	if string(w.data) != want {
		t.Fatalf("responses = %q, want %q", w.data, want)
	}
}
