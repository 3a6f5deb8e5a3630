//go:build tinygo

package vgatext

import "runtime/volatile"

// Register16 is TinyGo's volatile 16-bit register.
type Register16 = volatile.Register16
