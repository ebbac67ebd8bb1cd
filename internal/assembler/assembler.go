// Package assembler defines the supported assemblers of the generated source.
package assembler

// Acme is the cross assembler whose syntax the source output follows.
const Acme = "acme"
