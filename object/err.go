package object

import (
	"errors"

	"github.com/ezrec/lc3b/translate"
)

var f = translate.From

var (
	ErrObjectEmpty   = errors.New(f("object file is empty"))
	ErrObjectTooLong = errors.New(f("object file is too long to fit in memory"))
)

// ErrObjectWord is an object file line that is not a 16-bit hex word.
type ErrObjectWord struct {
	LineNo int
	Text   string
}

func (err *ErrObjectWord) Error() string {
	return f("line %d: '%v' is not a hex word", err.LineNo, err.Text)
}

func (err *ErrObjectWord) Is(target error) (ok bool) {
	_, ok = target.(*ErrObjectWord)
	return
}
