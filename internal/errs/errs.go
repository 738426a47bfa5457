package errs

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a failure so callers can branch on it without matching concrete error types
type Kind int

const (
	Unknown Kind = iota
	NotFound
	EmptyDocument
	Parse
	Permission
	Serialization
	ArchiveFormat
	Transport
	AttributeLookup
)

var kindNames = map[Kind]string{
	Unknown:         "unknown",
	NotFound:        "not found",
	EmptyDocument:   "empty document",
	Parse:           "parse error",
	Permission:      "permission denied",
	Serialization:   "serialization error",
	ArchiveFormat:   "archive format error",
	Transport:       "transport error",
	AttributeLookup: "attribute lookup error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error lets a Kind be used as an errors.Is target: errors.Is(err, errs.NotFound)
func (k Kind) Error() string {
	return k.String()
}

// Error carries the kind of a failure together with the operation and path that produced it
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

// E builds an *Error
func E(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the kind of the outermost *Error in err's chain, or Unknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// FromFS classifies a filesystem error as NotFound, Permission or Unknown
func FromFS(op, path string, err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return E(NotFound, op, path, err)
	case errors.Is(err, fs.ErrPermission):
		return E(Permission, op, path, err)
	default:
		return E(Unknown, op, path, err)
	}
}
