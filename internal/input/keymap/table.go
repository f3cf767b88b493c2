package keymap

import (
	"fmt"

	"github.com/dshills/ped/internal/input/key"
	"github.com/dshills/ped/internal/op"
)

// Table is a compiled, immutable binding table. It resolves pending key
// sequences for the dispatch loop.
type Table struct {
	bound    map[string]op.Fn
	prefixes map[string]bool
}

// Compile resolves a binding set against a registry. It fails on an
// unparseable key spec, an unknown operation name, or a duplicate
// binding for the same sequence. A sequence may be both bound and a
// prefix of a longer binding; the exact match wins at resolution time.
func Compile(bindings []Binding, reg *op.Registry) (*Table, error) {
	t := &Table{
		bound:    make(map[string]op.Fn, len(bindings)),
		prefixes: make(map[string]bool),
	}

	for _, b := range bindings {
		seq, err := key.ParseSequence(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		if seq.IsEmpty() {
			return nil, fmt.Errorf("binding for %q: empty key sequence", b.Op)
		}

		fn, ok := reg.Lookup(b.Op)
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown operation %q", b.Keys, b.Op)
		}

		k := sequenceKey(seq)
		if _, dup := t.bound[k]; dup {
			return nil, fmt.Errorf("binding %q: sequence already bound", b.Keys)
		}
		t.bound[k] = fn

		prefix := key.NewSequence()
		for _, ev := range seq.Events[:seq.Len()-1] {
			prefix.Add(ev)
			t.prefixes[sequenceKey(prefix)] = true
		}
	}
	return t, nil
}

// Find returns the operation bound to exactly this sequence.
func (t *Table) Find(seq *key.Sequence) (op.Fn, bool) {
	fn, ok := t.bound[sequenceKey(seq)]
	return fn, ok
}

// IsPrefix reports whether seq is a proper prefix of some binding
// without being bound itself. A bound sequence is never a prefix:
// exact matches win.
func (t *Table) IsPrefix(seq *key.Sequence) bool {
	k := sequenceKey(seq)
	if _, bound := t.bound[k]; bound {
		return false
	}
	return t.prefixes[k]
}

// Len returns the number of bound sequences.
func (t *Table) Len() int {
	return len(t.bound)
}
