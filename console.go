package vgatext

import (
	"fmt"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultWriter *Writer
)

// Default returns the process-wide writer bound to DefaultMemory.
// It is constructed on first call and lives for the rest of the process.
func Default() *Writer {
	defaultOnce.Do(func() {
		defaultWriter = New()
	})
	return defaultWriter
}

// Print formats with fmt.Fprint into the default writer.
func Print(a ...any) {
	fmt.Fprint(Default(), a...)
}

// Println formats with fmt.Fprintln into the default writer.
func Println(a ...any) {
	fmt.Fprintln(Default(), a...)
}

// Printf formats with fmt.Fprintf into the default writer.
func Printf(format string, a ...any) {
	fmt.Fprintf(Default(), format, a...)
}

// ReportPanic clears the default screen and shows v as the final diagnostic.
func ReportPanic(v any) {
	reportPanic(Default(), v)
}

func reportPanic(w *Writer, v any) {
	w.Reset()
	fmt.Fprintf(w, "panicked: %v\n", v)
}

// Recover is meant to be deferred at the top of a program. If the goroutine
// is panicking, it clears the screen, shows the panic value and panics again
// with the same value.
//
//	func main() {
//	    defer vgatext.Recover()
//	    ...
//	}
func Recover() {
	if v := recover(); v != nil {
		ReportPanic(v)
		panic(v)
	}
}
