package config

import (
	"fmt"
	"strconv"
)

// coreFlag remembers whether the operator set it, so "not given" and "0" differ.
// The range, negatives included, is checked by ValidateCore once cores are counted.
type coreFlag struct {
	v   int
	set bool
}

func (f *coreFlag) String() string {
	if !f.set {
		return ""
	}
	return strconv.Itoa(f.v)
}

func (f *coreFlag) Set(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("core must be an integer: %q", s)
	}
	f.v, f.set = i, true
	return nil
}

func (f *coreFlag) Type() string { return "int" }
