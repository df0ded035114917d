package abi

import "fmt"

// ByName returns the Abi named by name ("sysv" or "win64"), used by the
// --abi CLI flag and its MINCC_ABI environment override.
func ByName(name string) (Abi, error) {
	switch name {
	case "sysv":
		return SysV{}, nil
	case "win64":
		return Win64{}, nil
	default:
		return nil, fmt.Errorf("unknown abi %q (want sysv or win64)", name)
	}
}
