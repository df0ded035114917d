package abi

// Win64 implements the Microsoft x64 calling convention.
type Win64 struct{}

var win64Params = []Reg{Rcx, Rdx, R8, R9}

func (Win64) IntArgRegs() []Reg       { return win64Params }
func (Win64) RetReg() Reg             { return Rax }
func (Win64) StackAlign() uint32      { return 16 }
func (Win64) ShadowSpaceSize() uint32 { return 32 }
func (Win64) StackParamBase() uint32  { return 48 }

var _ Abi = Win64{}
