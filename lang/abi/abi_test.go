package abi_test

import (
	"testing"

	"github.com/mna/mincc/lang/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSysVTable(t *testing.T) {
	var a abi.Abi = abi.SysV{}
	assert.Equal(t, []abi.Reg{abi.Rdi, abi.Rsi, abi.Rdx, abi.Rcx, abi.R8, abi.R9}, a.IntArgRegs())
	assert.Equal(t, abi.Rax, a.RetReg())
	assert.EqualValues(t, 16, a.StackAlign())
	assert.EqualValues(t, 0, a.ShadowSpaceSize())
	assert.EqualValues(t, 16, a.StackParamBase())
}

func TestWin64Table(t *testing.T) {
	var a abi.Abi = abi.Win64{}
	assert.Equal(t, []abi.Reg{abi.Rcx, abi.Rdx, abi.R8, abi.R9}, a.IntArgRegs())
	assert.Equal(t, abi.Rax, a.RetReg())
	assert.EqualValues(t, 16, a.StackAlign())
	assert.EqualValues(t, 32, a.ShadowSpaceSize())
	assert.EqualValues(t, 48, a.StackParamBase())
}

func TestByName(t *testing.T) {
	a, err := abi.ByName("sysv")
	require.NoError(t, err)
	assert.IsType(t, abi.SysV{}, a)

	a, err = abi.ByName("win64")
	require.NoError(t, err)
	assert.IsType(t, abi.Win64{}, a)

	_, err = abi.ByName("arm")
	assert.Error(t, err)
}

func TestRegAsm(t *testing.T) {
	assert.Equal(t, "rax", abi.Rax.Asm())
	assert.Equal(t, "r9", abi.R9.Asm())
}
