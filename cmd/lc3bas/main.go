// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/lc3b/asm"
	"github.com/ezrec/lc3b/object"
	"github.com/ezrec/lc3b/translate"
)

// define parses a NAME=ADDR symbol definition.
func define(assembler *asm.Assembler, text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%q: expected NAME=ADDR", text)
		return
	}

	value = strings.TrimPrefix(strings.TrimPrefix(value, "x"), "0x")
	addr, err := strconv.ParseUint(value, 16, 16)
	if err != nil {
		return
	}

	assembler.Predefine(name, uint16(addr))
	return
}

// objectName replaces an .asm suffix with .obj.
func objectName(input string) string {
	return strings.TrimSuffix(input, ".asm") + ".obj"
}

func main() {
	var output string
	var verbose bool
	var implicit bool
	var dump bool
	var lang string

	assembler := &asm.Assembler{}

	flag.StringVar(&output, "o", "", "Object file to write (default: input with .obj suffix)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&implicit, "implicit", false, "Allow labels without a trailing ':'")
	flag.BoolVar(&dump, "dump", false, "Dump the assembled program to stderr")
	flag.StringVar(&lang, "lang", "", "Message language tag")
	flag.Func("D", "Predefine a symbol as NAME=ADDR (hex address)", func(text string) error {
		return define(assembler, text)
	})

	flag.Parse()

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one input file, got: %v", os.Args[0], flag.Args())
	}

	input := flag.Arg(0)
	if len(output) == 0 {
		output = objectName(input)
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	assembler.Verbose = verbose
	assembler.Implicit = implicit

	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if dump {
		pp.Fprintln(os.Stderr, prog)
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	err = object.Write(ouf, object.FromProgram(prog))
	if err == nil {
		err = ouf.Close()
	} else {
		ouf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	err = object.WriteReport(os.Stdout, prog)
	if err != nil {
		log.Fatal(err)
	}
}
