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

package pbrt

import (
	"fmt"
	"strings"
)

// Printer builds the compact debug rendering returned by a generated
// message's String method: fields in declaration order, separated by one
// space, nested messages in braces.
type Printer struct {
	buf strings.Builder
}

func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) Field(name string, v any) {
	p.sep()
	switch v := v.(type) {
	case Message:
		p.buf.WriteString(name)
		p.buf.WriteString(" {")
		p.buf.WriteString(v.String())
		p.buf.WriteString("}")
	case string:
		fmt.Fprintf(&p.buf, "%s: %q", name, v)
	case []byte:
		fmt.Fprintf(&p.buf, "%s: %q", name, v)
	case Bytes:
		fmt.Fprintf(&p.buf, "%s: %q", name, v.View())
	default:
		fmt.Fprintf(&p.buf, "%s: %v", name, v)
	}
}

func (p *Printer) String() string {
	return p.buf.String()
}

func (p *Printer) sep() {
	if p.buf.Len() > 0 {
		p.buf.WriteString(" ")
	}
}
