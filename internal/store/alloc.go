package store

import "strings"

type Allocator interface {
	Clone(s string) (string, error)
}

type heapAllocator struct{}

func (heapAllocator) Clone(s string) (string, error) {
	return strings.Clone(s), nil
}
