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

type Warning struct {
	code    uint32
	message string
	element string
}

func (w *Warning) String() string {
	if w.element == "" {
		return fmt.Sprintf("W%d: %s", w.code, w.message)
	}
	return fmt.Sprintf("W%d: %s: %s", w.code, w.element, w.message)
}

func (w *Warning) Code() uint32 {
	return w.code
}

func (w *Warning) Message() string {
	return w.message
}

func (w *Warning) Element() string {
	return w.element
}

func warnUnknownOption(num int32, element string) *Warning {
	return &Warning{
		code:    4000,
		message: fmt.Sprintf("Extension option %d is in the pbgen range but not recognized", num),
		element: element,
	}
}

func warnDeprecatedGroup(element string) *Warning {
	return &Warning{
		code:    4001,
		message: "Group fields are a legacy wire-format feature; consider a nested message",
		element: element,
	}
}
