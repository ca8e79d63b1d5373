// Package item contains the pure business logic shared by the two foldered
// item kinds (context documents and framework outputs).
package item

import "fmt"

// Kind identifies which underlying table a foldered item lives in.
type Kind string

const (
	// KindContextDoc is a context document.
	KindContextDoc Kind = "context_doc"
	// KindFrameworkOutput is a generated framework output.
	KindFrameworkOutput Kind = "framework_output"
)

// ParseKind validates a caller-supplied item kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindContextDoc, KindFrameworkOutput:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("invalid item kind '%s' (expected context_doc or framework_output)", s)
	}
}
