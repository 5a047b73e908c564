// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package generator

import (
	"fmt"
)

// Error is a fatal generation failure. Generation has no partial output: the
// first error aborts the whole run, identifying the offending schema
// element by fully-qualified name.
type Error struct {
	code    uint32
	message string
	element string
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err.element == "" {
		return fmt.Sprintf("E%d: %s", err.code, err.message)
	}
	return fmt.Sprintf("E%d: %s: %s", err.code, err.element, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

// Element is the fully-qualified name of the schema element the error
// refers to, or "" for file-scoped failures.
func (err *Error) Element() string {
	return err.element
}

func errNilSchema() error {
	return &Error{
		code:    3000,
		message: "no schema file to generate from",
	}
}

func errInvalidGoPackage(goPackage string, element string) error {
	return &Error{
		code:    3001,
		message: fmt.Sprintf("Invalid go_package option %q", goPackage),
		element: element,
	}
}

func errFieldTypeUnresolved(element string) error {
	return &Error{
		code:    3002,
		message: "Field type not present in the resolved scope",
		element: element,
	}
}

func errMapEntryShape(element string) error {
	return &Error{
		code:    3003,
		message: "Synthetic map entry does not have exactly a key field and a value field",
		element: element,
	}
}

func errUnsupportedKind(kind string, element string) error {
	return &Error{
		code:    3004,
		message: fmt.Sprintf("Field kind %q is not part of the wire-format primitive set", kind),
		element: element,
	}
}

func errEmitFailed(cause error) error {
	return &Error{
		code:    3005,
		message: fmt.Sprintf("Write to output failed: %v", cause),
	}
}
