package dump

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/mikirosario/hashtable/internal/store"
)

type Printer struct {
	writer io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{writer: w}
}

func (p *Printer) PrintTable(t *store.HashTable) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, bucket := range t.Buckets() {
		fmt.Fprintf(buf, "slot[%4d]: ", bucket.Index)
		for _, entry := range bucket.Entries {
			buf.WriteString(entry.Key())
			buf.WriteByte('=')
			buf.WriteString(entry.Value())
			buf.WriteByte(' ')
		}
		buf.WriteByte('\n')
	}

	_, err := buf.WriteTo(p.writer)
	return err
}

func Table(w io.Writer, t *store.HashTable) error {
	p := NewPrinter(w)
	return p.PrintTable(t)
}
