package key

import "testing"

func TestSequenceAddClear(t *testing.T) {
	seq := NewSequence()
	if !seq.IsEmpty() {
		t.Error("new sequence should be empty")
	}

	seq.Add(Ctrl('x'))
	seq.Add(Ctrl('c'))
	if seq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", seq.Len())
	}

	seq.Clear()
	if !seq.IsEmpty() {
		t.Error("cleared sequence should be empty")
	}
}

func TestSequenceString(t *testing.T) {
	tests := []struct {
		name string
		seq  *Sequence
		want string
	}{
		{"empty", NewSequence(), ""},
		{"single", NewSequenceFrom(Ctrl('g')), "C-g"},
		{"chord pair", NewSequenceFrom(Ctrl('x'), Ctrl('c')), "C-x C-c"},
		{"prefix plus rune", NewSequenceFrom(Ctrl('w'), NewRuneEvent('n', ModNone)), "C-w n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSequenceEquals(t *testing.T) {
	a := NewSequenceFrom(Ctrl('x'), Ctrl('c'))
	b := MustParseSequence("C-x C-c")
	c := MustParseSequence("C-x C-f")

	if !a.Equals(b) {
		t.Errorf("%q should equal %q", a, b)
	}
	if a.Equals(c) {
		t.Errorf("%q should not equal %q", a, c)
	}
	if a.Equals(NewSequence()) {
		t.Error("non-empty sequence should not equal empty sequence")
	}
}

func TestSequenceHasPrefix(t *testing.T) {
	full := MustParseSequence("C-x C-c")

	tests := []struct {
		name   string
		prefix *Sequence
		want   bool
	}{
		{"empty prefix", NewSequence(), true},
		{"proper prefix", MustParseSequence("C-x"), true},
		{"full sequence", MustParseSequence("C-x C-c"), true},
		{"longer than target", MustParseSequence("C-x C-c d"), false},
		{"mismatch", MustParseSequence("C-w"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := full.HasPrefix(tt.prefix); got != tt.want {
				t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestSequenceClone(t *testing.T) {
	seq := MustParseSequence("C-w n")
	clone := seq.Clone()

	if !seq.Equals(clone) {
		t.Fatal("clone should equal original")
	}

	clone.Add(Ctrl('g'))
	if seq.Len() != 2 {
		t.Error("mutating clone changed original")
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("C-w \\")
	if err != nil {
		t.Fatalf("ParseSequence error = %v", err)
	}
	want := NewSequenceFrom(Ctrl('w'), NewRuneEvent('\\', ModNone))
	if !seq.Equals(want) {
		t.Errorf("ParseSequence = %q, want %q", seq, want)
	}

	if _, err := ParseSequence("C-x Bogus"); err == nil {
		t.Error("ParseSequence with invalid token should fail")
	}
}
