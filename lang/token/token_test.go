package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "kind %d", k)
	}
}

func TestKindGoString(t *testing.T) {
	require.Equal(t, "'+'", PLUS.GoString())
	require.Equal(t, "identifier", IDENT.GoString())
	require.Equal(t, "return", RETURN.GoString())
}

func TestLookup(t *testing.T) {
	cases := map[string]Kind{
		"return": RETURN,
		"if":     IF,
		"else":   ELSE,
		"while":  WHILE,
		"for":    FOR,
		"int":    INT_KW,
		"x":      IDENT,
		"returning": IDENT,
	}
	for lit, want := range cases {
		require.Equal(t, want, Lookup(lit), "lookup %q", lit)
	}
}
