package issue

import (
	"fmt"
	"strings"
)

// Kind classifies an issue by the part of the document it concerns.
type Kind int

const (
	KindUndefined Kind = iota
	KindComponent
	KindConnection
	KindEncapsulation
	KindImport
	KindMathML
	KindModel
	KindReset
	KindUnits
	KindVariable
	KindWhen
	KindXML
)

var kindNames = map[Kind]string{
	KindUndefined:     "undefined",
	KindComponent:     "component",
	KindConnection:    "connection",
	KindEncapsulation: "encapsulation",
	KindImport:        "import",
	KindMathML:        "mathml",
	KindModel:         "model",
	KindReset:         "reset",
	KindUnits:         "units",
	KindVariable:      "variable",
	KindWhen:          "when",
	KindXML:           "xml",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown issue kind: %q", text)
	}
	*k = kind
	return nil
}

// ParseKind maps a kind name back to its Kind. Matching ignores case.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == s {
			return kind, true
		}
	}
	return KindUndefined, false
}
