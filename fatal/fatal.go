// Package fatal classifies a top-level error into the process exit
// code spec.md §6 assigns it, and prints the user-facing message.
package fatal

import (
	"errors"
	"fmt"
	"os"

	"github.com/Ghazaleh-ans/cub3d/descriptor"
	"github.com/Ghazaleh-ans/cub3d/level"
	"github.com/Ghazaleh-ans/cub3d/texture"
)

// Exit codes, per spec.md §6.
const (
	CodeOK         = 0
	CodeUsage      = 1
	CodeBadFile    = 2
	CodeParse      = 4
	CodeValidation = 5
	CodeResource   = 6
)

// Kind names an exit-code class for logging.
type Kind string

const (
	KindUsage      Kind = "usage"
	KindBadFile    Kind = "bad file"
	KindParse      Kind = "parse"
	KindValidation Kind = "validation"
	KindResource   Kind = "resource"
)

// Code maps err to the exit code its class is assigned. Errors with no
// recognized class (i.e. produced outside descriptor/level/texture)
// are treated as resource-acquisition failures, the last stop before a
// truly unclassified bug.
func Code(err error) int {
	k, _ := Classify(err)
	switch k {
	case KindUsage:
		return CodeUsage
	case KindBadFile:
		return CodeBadFile
	case KindParse:
		return CodeParse
	case KindValidation:
		return CodeValidation
	default:
		return CodeResource
	}
}

// Classify reports the Kind of err and a human-readable message.
func Classify(err error) (Kind, string) {
	var parseErr *descriptor.ParseError
	if errors.As(err, &parseErr) {
		return KindParse, parseErr.Error()
	}
	var valErr *level.ValidationError
	if errors.As(err, &valErr) {
		return KindValidation, valErr.Error()
	}
	var decErr *texture.DecodeError
	if errors.As(err, &decErr) {
		return KindResource, decErr.Error()
	}
	return KindResource, err.Error()
}

// Exit prints a message classifying err and terminates the process
// with its assigned exit code. It never returns.
func Exit(err error) {
	kind, msg := Classify(err)
	fmt.Fprintf(os.Stderr, "Error\n%s: %s\n", kind, msg)
	os.Exit(Code(err))
}

// Usage prints a usage error and exits with CodeUsage.
func Usage(msg string) {
	fmt.Fprintf(os.Stderr, "Error\n%s\n", msg)
	os.Exit(CodeUsage)
}

// BadFile prints a bad-extension/unreadable-file error and exits with
// CodeBadFile.
func BadFile(msg string) {
	fmt.Fprintf(os.Stderr, "Error\n%s\n", msg)
	os.Exit(CodeBadFile)
}
