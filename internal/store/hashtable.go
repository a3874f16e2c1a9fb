package store

import (
	"errors"
	"fmt"
)

const (
	DefaultCapacity = 100000

	slotMultiplier = 37
)

var ErrAllocation = errors.New("allocation failed")

type Entry struct {
	key   string
	value string
	next  *Entry
}

func (e *Entry) Key() string {
	return e.key
}

func (e *Entry) Value() string {
	return e.value
}

type Bucket struct {
	Index   int
	Entries []*Entry
}

type HashTable struct {
	buckets []*Entry
	alloc   Allocator
	size    int
}

func NewHashTable(capacity int) *HashTable {
	return NewHashTableWithAllocator(capacity, nil)
}

func NewHashTableWithAllocator(capacity int, alloc Allocator) *HashTable {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if alloc == nil {
		alloc = heapAllocator{}
	}
	return &HashTable{
		buckets: make([]*Entry, capacity),
		alloc:   alloc,
	}
}

func (t *HashTable) Capacity() int {
	return len(t.buckets)
}

func (t *HashTable) Len() int {
	return t.size
}

// Slot folds the key's bytes into a 64-bit accumulator; overflow wraps the
// same way on every platform.
func (t *HashTable) Slot(key string) int {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*slotMultiplier + uint64(key[i])
	}
	return int(h % uint64(len(t.buckets)))
}

func (t *HashTable) Set(key, value string) (*Entry, error) {
	slot := t.Slot(key)

	entry := t.buckets[slot]
	if entry == nil {
		created, err := t.newEntry(key, value)
		if err != nil {
			return nil, err
		}
		t.buckets[slot] = created
		t.size++
		return created, nil
	}

	var prev *Entry
	for ; entry != nil; entry = entry.next {
		if entry.key == key {
			replacement, err := t.alloc.Clone(value)
			if err != nil {
				return nil, fmt.Errorf("%w: value copy for key %q", ErrAllocation, key)
			}
			entry.value = replacement
			return entry, nil
		}
		prev = entry
	}

	created, err := t.newEntry(key, value)
	if err != nil {
		return nil, err
	}
	prev.next = created
	t.size++
	return created, nil
}

// Callers link the returned entry only after both copies succeeded, so a
// failed Set leaves the table untouched.
func (t *HashTable) newEntry(key, value string) (*Entry, error) {
	keyCopy, err := t.alloc.Clone(key)
	if err != nil {
		return nil, fmt.Errorf("%w: key copy for key %q", ErrAllocation, key)
	}
	valueCopy, err := t.alloc.Clone(value)
	if err != nil {
		return nil, fmt.Errorf("%w: value copy for key %q", ErrAllocation, key)
	}
	return &Entry{key: keyCopy, value: valueCopy}, nil
}

func (t *HashTable) Get(key string) (string, bool) {
	for entry := t.buckets[t.Slot(key)]; entry != nil; entry = entry.next {
		if entry.key == key {
			return entry.value, true
		}
	}
	return "", false
}

func (t *HashTable) Buckets() []Bucket {
	result := make([]Bucket, 0)
	for i, head := range t.buckets {
		if head == nil {
			continue
		}

		entries := make([]*Entry, 0)
		for entry := head; entry != nil; entry = entry.next {
			entries = append(entries, entry)
		}
		result = append(result, Bucket{Index: i, Entries: entries})
	}
	return result
}
