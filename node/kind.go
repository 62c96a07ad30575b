package node

import "fmt"

// Kind identifies which of the model's structures a node represents.
// It is fixed at construction: no operation changes a node's kind.
type Kind int

const (
	NullKind Kind = iota
	FlagKind
	NumericKind
	TextKind
	GroupKind
	KeyValueKind
	// SpecialKind marks nodes outside the six standard structures,
	// for example the Missing() sentinel. Consumers should pass
	// special nodes through untouched where possible.
	SpecialKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "Null",
		FlagKind:     "Flag",
		NumericKind:  "Numeric",
		TextKind:     "Text",
		GroupKind:    "Group",
		KeyValueKind: "KeyValue",
		SpecialKind:  "Special",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":     NullKind,
		"Flag":     FlagKind,
		"Numeric":  NumericKind,
		"Text":     TextKind,
		"Group":    GroupKind,
		"KeyValue": KeyValueKind,
		"Special":  SpecialKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		FlagKind,
		NumericKind,
		TextKind,
		GroupKind,
		KeyValueKind,
		SpecialKind,
	}
}

// IsScalar reports whether the kind encloses a single value. Null is
// not scalar: it stands for no value at all.
func (k Kind) IsScalar() bool {
	switch k {
	case FlagKind, NumericKind, TextKind:
		return true
	default:
		return false
	}
}

// IsContainer reports whether the kind encloses other nodes.
func (k Kind) IsContainer() bool {
	switch k {
	case GroupKind, KeyValueKind:
		return true
	default:
		return false
	}
}
