// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package object

import (
	"fmt"
	"io"

	"github.com/ezrec/lc3b/asm"
)

func hex(value uint16) string {
	return fmt.Sprintf("0x%04X", value)
}

// WriteReport writes a summary of an assembled program.
func WriteReport(w io.Writer, prog *asm.Program) (err error) {
	lines := []string{
		f("Successfully assembled %v words", prog.Len()),
		f("Origin: %v", hex(prog.Origin)),
		f("Labels found: %v", prog.Symbols.Len()),
	}
	if prog.Symbols.Len() > 0 {
		lines = append(lines, f("Symbol table:"))
		for name, addr := range prog.Symbols.All() {
			lines = append(lines, fmt.Sprintf("  %-20s = %v", name, hex(addr)))
		}
	}

	for _, line := range lines {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	return
}
