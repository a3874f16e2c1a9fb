package dump

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/mikirosario/hashtable/internal/store"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func diff(want, got string) string {
	edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
	return fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits))
}

func TestPrintTable(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pairs    [][2]string
		expected string
	}{
		{
			name:     "groups collisions in chain order",
			capacity: 10,
			pairs: [][2]string{
				{"alpha", "a"},
				{"beta", "b"},
				{"gamma", "g"},
				{"delta", "d"},
				{"epsilon", "e"},
			},
			expected: "slot[   2]: beta=b epsilon=e \n" +
				"slot[   4]: alpha=a delta=d \n" +
				"slot[   5]: gamma=g \n",
		},
		{
			name:     "pads narrow indices to four columns",
			capacity: 10,
			pairs:    [][2]string{{"", "nothing"}},
			expected: "slot[   0]: =nothing \n",
		},
		{
			name:     "keeps wide indices unpadded",
			capacity: store.DefaultCapacity,
			pairs:    [][2]string{{"madrid", "madrid"}},
			expected: "slot[10281]: madrid=madrid \n",
		},
		{
			name:     "updated keys render once",
			capacity: 10,
			pairs: [][2]string{
				{"alpha", "a"},
				{"alpha", "aa"},
			},
			expected: "slot[   4]: alpha=aa \n",
		},
		{
			name:     "empty table renders nothing",
			capacity: 10,
			pairs:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := store.NewHashTable(tt.capacity)
			for _, pair := range tt.pairs {
				if _, err := table.Set(pair[0], pair[1]); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
			}

			var buf bytes.Buffer
			if err := Table(&buf, table); err != nil {
				t.Fatalf("Table failed: %v", err)
			}

			if got := buf.String(); got != tt.expected {
				t.Errorf("Unexpected table output:\n%s", diff(tt.expected, got))
			}
		})
	}
}

func TestPrinterReuse(t *testing.T) {
	first := store.NewHashTable(10)
	first.Set("alpha", "a")

	second := store.NewHashTable(10)
	second.Set("gamma", "g")

	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	if err := printer.PrintTable(first); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}
	if err := printer.PrintTable(second); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	expected := "slot[   4]: alpha=a \n" +
		"slot[   5]: gamma=g \n"
	if got := buf.String(); got != expected {
		t.Errorf("Unexpected combined output:\n%s", diff(expected, got))
	}
}

func TestPrintTableWriteError(t *testing.T) {
	table := store.NewHashTable(10)
	table.Set("alpha", "a")

	if err := Table(failingWriter{}, table); err == nil {
		t.Error("Expected write error")
	}
}
