package internal

import (
	"iter"
)

// IterSeqOf is an iterator sequence over a fixed list of values.
func IterSeqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range values {
			if !yield(val) {
				return
			}
		}
	}
}

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqMap applies a conversion to every value of an iterator sequence.
func IterSeqMap[T any, U any](seq iter.Seq[T], convert func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for val := range seq {
			if !yield(convert(val)) {
				return
			}
		}
	}
}
