//go:build !tinygo

package vgatext

// Register16 is a 16-bit memory cell whose loads and stores are always emitted,
// in program order, at the register's own address.
type Register16 struct {
	Reg uint16
}

// Get loads the register.
//
//go:noinline
func (r *Register16) Get() uint16 {
	return r.Reg
}

// Set stores v into the register.
//
//go:noinline
func (r *Register16) Set(v uint16) {
	r.Reg = v
}
