package packmsg

import (
	"fmt"
	"strings"
)

// FormatError renders a DecodeError tree as a human-readable diagnostic,
// e.g.:
//
//	at $.users[2].email: expected String, got Nil
//
// FormatError walks FieldError/IndexError wrappers to build a JSON-
// Pointer-like path rooted at "$", then renders the leaf error. Errors that
// are not part of the DecodeError tree are rendered via their plain Error()
// string with no path prefix.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	path, leaf := walkPath(err, "$")
	msg := formatLeaf(leaf)
	if path == "$" {
		return msg
	}
	return fmt.Sprintf("at %s: %s", path, msg)
}

func walkPath(err error, path string) (string, error) {
	switch e := err.(type) {
	case *FieldError:
		return walkPath(e.Inner, path+"."+e.Name)
	case *IndexError:
		return walkPath(e.Inner, fmt.Sprintf("%s[%d]", path, e.Index))
	default:
		return path, err
	}
}

func formatLeaf(err error) string {
	switch e := err.(type) {
	case ErrTypeMismatch:
		return e.Error()
	case ErrMissingField:
		return e.Error()
	case ErrExtensionTypeMismatch:
		return e.Error()
	case ErrOutOfRange:
		return e.Msg
	case ErrCustom:
		return e.Msg
	case *AllFailedError:
		parts := make([]string, len(e.Errors))
		for i, sub := range e.Errors {
			parts[i] = formatLeafOrPath(sub)
		}
		return fmt.Sprintf("all alternatives failed: [%s]", strings.Join(parts, ", "))
	default:
		return err.Error()
	}
}

// formatLeafOrPath formats one AllFailedError alternative, including any
// nested path it carries (each alternative may itself be a FieldError/
// IndexError chain from a differently-shaped sub-codec).
func formatLeafOrPath(err error) string {
	path, leaf := walkPath(err, "$")
	msg := formatLeaf(leaf)
	if path == "$" {
		return msg
	}
	return fmt.Sprintf("at %s: %s", path, msg)
}
