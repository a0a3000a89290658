// Package object reads and writes LC-3b object files, and loads them into
// a simulator memory image.
//
// An object file is plain text: the origin address on the first line,
// followed by one word per line, each written as 0xHHHH.
package object
