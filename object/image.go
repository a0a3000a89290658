// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package object

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/lc3b/asm"
	"github.com/ezrec/lc3b/internal"
)

// Image is the content of an object file.
type Image struct {
	Origin uint16   // Byte address of the first word.
	Words  []uint16 // Words, in ascending address order.
}

// FromProgram returns the object image of an assembled program.
func FromProgram(prog *asm.Program) *Image {
	return &Image{Origin: prog.Origin, Words: prog.Binary()}
}

// Lines iterates over the origin followed by every word.
func (img *Image) Lines() iter.Seq[uint16] {
	return internal.IterSeqConcat(internal.IterSeqOf(img.Origin), slices.Values(img.Words))
}

// Write emits an object file.
func Write(w io.Writer, img *Image) (err error) {
	bw := bufio.NewWriter(w)
	for line := range internal.IterSeqMap(img.Lines(), formatWord) {
		_, err = bw.WriteString(line)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

func formatWord(word uint16) string {
	return fmt.Sprintf("0x%04X\n", word)
}

// Read parses an object file. Blank lines are ignored, and the '0x'
// prefix is optional.
func Read(r io.Reader) (img *Image, err error) {
	scanner := bufio.NewScanner(r)

	var words []uint16
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}

		digits := text
		if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
			digits = digits[2:]
		}

		word, perr := strconv.ParseUint(digits, 16, 16)
		if perr != nil {
			err = &ErrObjectWord{LineNo: lineno, Text: text}
			return
		}
		words = append(words, uint16(word))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(words) == 0 {
		err = ErrObjectEmpty
		return
	}

	img = &Image{Origin: words[0], Words: words[1:]}
	return
}
