// Package grammar carries no runtime code: it exists so grammar.ebnf, the
// spec.md §4.D grammar transcribed into EBNF, can be self-checked by
// grammar_test.go the way the teacher's lang/grammar package self-checks
// its own grammar.ebnf/grammar_lua.ebnf files. The parser in lang/parser is
// hand-written and does not consult this file at run time; it exists as a
// drift check between this document and the recursive-descent code.
package grammar
