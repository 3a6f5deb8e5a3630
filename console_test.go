package vgatext

import (
	"strings"
	"testing"
)

func TestDefaultIsSingleton(t *testing.T) {
	a := Default()
	b := Default()

	if a != b {
		t.Fatal("expected the same writer from every call")
	}

	a.Reset()
	Println("boot", 1)
	Printf("%s=%d\n", "x", 2)
	Print("tail")

	if got := b.String(); got != "boot 1\nx=2\ntail" {
		t.Errorf("unexpected default content %q", got)
	}
}

func TestReportPanicClearsScreen(t *testing.T) {
	w := newTestWriter()
	for i := 0; i < 10; i++ {
		w.WriteString("stale output\n")
	}

	reportPanic(w, "index out of range")

	if got := w.String(); got != "panicked: index out of range" {
		t.Errorf("expected only the diagnostic, got %q", got)
	}
	row, col := w.CursorPos()
	if row != HomeRow+1 || col != 0 {
		t.Errorf("expected cursor at (%d, 0), got (%d, %d)", HomeRow+1, row, col)
	}
}

func TestRecoverRepanics(t *testing.T) {
	var got any
	func() {
		defer func() {
			got = recover()
		}()
		func() {
			defer Recover()
			panic("boom")
		}()
	}()

	if got != "boom" {
		t.Fatalf("expected re-panic with original value, got %v", got)
	}
	if !strings.Contains(Default().String(), "panicked: boom") {
		t.Errorf("expected diagnostic on default screen, got %q", Default().String())
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	func() {
		defer Recover()
	}()
}
