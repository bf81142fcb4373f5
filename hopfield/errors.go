// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hopfield

import (
	"errors"
	"fmt"
)

// ErrKinds tag the ways a Recognizer operation can fail.
// All of them are ordinary outcomes that callers are expected to handle.
type ErrKinds int32

// The error kinds
const (
	// InvalidConfiguration is a bad image size or attempt count
	InvalidConfiguration ErrKinds = iota

	// NullInput is a missing (nil) pattern
	NullInput

	// InvalidLength is a pattern whose length differs from the image size
	InvalidLength

	// IndexOutOfRange is a bad stored-pattern index
	IndexOutOfRange

	// ImageNotFound means recall used up its attempts without
	// settling on a stored pattern
	ImageNotFound

	ErrKindsN
)

func (ek ErrKinds) String() string {
	switch ek {
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case NullInput:
		return "NullInput"
	case InvalidLength:
		return "InvalidLength"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case ImageNotFound:
		return "ImageNotFound"
	}
	return fmt.Sprintf("ErrKinds(%d)", int32(ek))
}

// Error is the error type returned by all Recognizer operations.
type Error struct {
	Kind ErrKinds
	// Op is the operation that failed, e.g. "Learn"
	Op string
	// Msg is optional detail
	Msg string
}

func (er *Error) Error() string {
	s := er.Kind.String()
	if er.Op != "" {
		s = "hopfield." + er.Op + ": " + s
	}
	if er.Msg != "" {
		s += ": " + er.Msg
	}
	return s
}

// Is matches any *Error of the same Kind, so that
// errors.Is(err, ErrImageNotFound) works regardless of Op and Msg.
func (er *Error) Is(target error) bool {
	var te *Error
	if !errors.As(target, &te) {
		return false
	}
	return te.Kind == er.Kind
}

// Sentinel errors, one per kind, for use with errors.Is
var (
	ErrInvalidConfiguration = &Error{Kind: InvalidConfiguration}
	ErrNullInput            = &Error{Kind: NullInput}
	ErrInvalidLength        = &Error{Kind: InvalidLength}
	ErrIndexOutOfRange      = &Error{Kind: IndexOutOfRange}
	ErrImageNotFound        = &Error{Kind: ImageNotFound, Msg: "image not found"}
)

// KindOf returns the kind of a hopfield error anywhere in the chain of err.
func KindOf(err error) (ErrKinds, bool) {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind, true
	}
	return ErrKindsN, false
}

func newError(kind ErrKinds, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
