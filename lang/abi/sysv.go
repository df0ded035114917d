package abi

// SysV implements the System V AMD64 calling convention (Linux, macOS, BSD).
type SysV struct{}

var sysvParams = []Reg{Rdi, Rsi, Rdx, Rcx, R8, R9}

func (SysV) IntArgRegs() []Reg        { return sysvParams }
func (SysV) RetReg() Reg              { return Rax }
func (SysV) StackAlign() uint32       { return 16 }
func (SysV) ShadowSpaceSize() uint32  { return 0 }
func (SysV) StackParamBase() uint32   { return 16 }

var _ Abi = SysV{}
