package command

// Syntax describes how option tokens are written.
type Syntax struct {
	Prefixes   []string // Option prefixes, e.g. "/" or "--". The longest matching prefix is used.
	Separators []string // Name/value separators, e.g. ":" or "=". The earliest occurrence is used.
}

// DefaultSyntax accepts /Name:Value and /Flag tokens.
var DefaultSyntax = Syntax{
	Prefixes:   []string{"/"},
	Separators: []string{":"},
}

// orDefault returns s, or DefaultSyntax when s has no prefixes.
func (s Syntax) orDefault() Syntax {
	if len(s.Prefixes) == 0 {
		return DefaultSyntax
	}
	if len(s.Separators) == 0 {
		s.Separators = DefaultSyntax.Separators
	}
	return s
}
