// Package asm implements a two pass assembler for the LC-3b instruction set.
//
// The first pass assigns a byte address to every label, and the second pass
// encodes each instruction and directive into 16-bit words using the
// finished symbol table. Both passes size statements with the same rules,
// so PC relative offsets always agree with the final layout.
//
// Supported directives are .ORIG, .FILL, .BLKW, .STRINGZ and .END.
// Immediates may be written as #decimal, xHEX, 0xHEX, bare decimal, or as a
// $(...) Starlark expression that can refer to labels by their upper case
// name, the current address as PC, and the source line as LINENO.
package asm
