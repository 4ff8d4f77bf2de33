// Package internal has internal helper functions
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple iter.Seq2 sequences.
func IterSeq2Concat[K, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
