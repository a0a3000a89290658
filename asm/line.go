// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode"
)

// SourceLine is a single line of assembly source.
type SourceLine struct {
	LineNo int    // Line number, starting at 1.
	Text   string // Raw text of the line.
}

// Statement is a normalized source line.
type Statement struct {
	SourceLine
	Label    string   // Upper case label, or empty.
	Mnemonic Mnemonic // MNEMONIC_NONE for a label-only line.
	Operands []string // Operand tokens, as written.
}

// ReadLines reads all of the input into numbered source lines.
func ReadLines(input io.Reader) (lines []SourceLine, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno++
		lines = append(lines, SourceLine{LineNo: lineno, Text: scanner.Text()})
	}

	err = scanner.Err()
	return
}

// Normalize converts source lines to statements, up to and including the
// first .END directive. Blank and comment-only lines are dropped.
//
// If implicit is set, a line whose first word is not a keyword but whose
// second word is has the first word taken as its label.
func Normalize(lines []SourceLine, implicit bool) (stmts []Statement, err error) {
	for _, line := range lines {
		stmt, ok, line_err := normalizeLine(line, implicit)
		if line_err != nil {
			err = &ErrAssembly{LineNo: line.LineNo, Line: line.Text, Err: line_err}
			return
		}
		if !ok {
			continue
		}
		stmts = append(stmts, stmt)
		if stmt.Mnemonic == DIR_END {
			break
		}
	}

	return
}

func normalizeLine(line SourceLine, implicit bool) (stmt Statement, ok bool, err error) {
	text := strings.TrimSpace(stripComment(line.Text))
	if len(text) == 0 {
		return
	}

	stmt.SourceLine = line

	label, rest, has_label := splitLabel(text)
	if has_label {
		stmt.Label, err = checkLabel(label)
		if err != nil {
			return
		}
		text = rest
	}

	words := tokenize(text)
	if len(words) == 0 {
		ok = true
		return
	}

	op, known := LookupMnemonic(words[0])
	if !known && implicit && !has_label && len(words) >= 2 {
		if _, next := LookupMnemonic(words[1]); next {
			stmt.Label, err = checkLabel(words[0])
			if err != nil {
				return
			}
			words = words[1:]
			op, known = LookupMnemonic(words[0])
		}
	}

	if !known {
		err = ErrInstructionUnknown(strings.ToUpper(words[0]))
		return
	}

	stmt.Mnemonic = op
	stmt.Operands = words[1:]
	ok = true

	return
}

// stripComment removes a ';' comment that is not inside a string.
func stripComment(text string) string {
	quoted := false
	escaped := false
	for n, c := range text {
		switch {
		case escaped:
			escaped = false
		case quoted && c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case !quoted && c == ';':
			return text[:n]
		}
	}

	return text
}

// splitLabel splits 'LABEL: rest' at a colon that precedes any string or
// expression.
func splitLabel(text string) (label string, rest string, ok bool) {
	for n, c := range text {
		switch c {
		case '"', '(':
			return
		case ':':
			label = strings.TrimSpace(text[:n])
			rest = strings.TrimSpace(text[n+1:])
			ok = true
			return
		}
	}

	return
}

// tokenize splits on commas and whitespace outside of strings and
// parenthesized expressions.
func tokenize(text string) (words []string) {
	var word strings.Builder
	quoted := false
	escaped := false
	depth := 0

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for _, c := range text {
		switch {
		case escaped:
			escaped = false
		case quoted:
			switch c {
			case '\\':
				escaped = true
			case '"':
				quoted = false
			}
		case c == '"':
			quoted = true
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (c == ',' || unicode.IsSpace(c)):
			flush()
			continue
		}
		word.WriteRune(c)
	}
	flush()

	return
}

var labelRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// checkLabel validates a label and returns its canonical name.
func checkLabel(label string) (name string, err error) {
	if !labelRegexp.MatchString(label) {
		err = ErrLabelInvalid(label)
		return
	}

	if _, is_keyword := LookupMnemonic(label); is_keyword {
		err = ErrLabelInvalid(label)
		return
	}

	if _, reg_err := parseRegister(label); reg_err == nil {
		err = ErrLabelInvalid(label)
		return
	}

	name = strings.ToUpper(label)
	return
}
