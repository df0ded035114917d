// Package abi abstracts over the System V AMD64 and Win64 calling
// conventions the code generator targets (spec.md §4.G).
package abi

// Reg is a general-purpose x86-64 register, named the way the emitted
// assembly spells it (Intel syntax, no '%' prefix).
type Reg int

const (
	Rax Reg = iota
	Rbx
	Rcx
	Rdx
	Rsi
	Rdi
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	Rbp
	Rsp
)

var regNames = [...]string{
	Rax: "rax", Rbx: "rbx", Rcx: "rcx", Rdx: "rdx",
	Rsi: "rsi", Rdi: "rdi", R8: "r8", R9: "r9",
	R10: "r10", R11: "r11", R12: "r12", R13: "r13",
	R14: "r14", R15: "r15", Rbp: "rbp", Rsp: "rsp",
}

// Asm renders r the way it appears in emitted assembly text.
func (r Reg) Asm() string { return regNames[r] }

// Abi is the capability set the code generator needs from a calling
// convention (spec.md §4.G and §9's "Polymorphism over ABI").
type Abi interface {
	// IntArgRegs returns the registers integer arguments are passed in, in
	// order.
	IntArgRegs() []Reg
	// RetReg is the register a function's return value is placed in.
	RetReg() Reg
	// StackAlign is the required rsp alignment, in bytes, at a call
	// instruction.
	StackAlign() uint32
	// ShadowSpaceSize is the number of bytes the caller must reserve for the
	// callee's use before a call, regardless of argument count.
	ShadowSpaceSize() uint32
	// StackParamBase is the positive rbp-relative offset of the first
	// stack-passed incoming argument, after the standard prologue.
	StackParamBase() uint32
}
