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
	"strings"
	"unicode"
	"unicode/utf8"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

// goCamelCase converts a schema identifier ("shoe_size") to an exported Go
// identifier ("ShoeSize"). A digit after an underscore keeps the
// underscore so distinct schema names stay distinct.
func goCamelCase(name string) string {
	var b strings.Builder
	upperNext := true
	for ii := 0; ii < len(name); ii++ {
		c := name[ii]
		if c == '_' {
			if ii+1 < len(name) && name[ii+1] >= '0' && name[ii+1] <= '9' {
				b.WriteByte('_')
			}
			upperNext = true
			continue
		}
		if upperNext && 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
		upperNext = false
	}
	return b.String()
}

// unexported lowercases the leading rune and dodges keyword collisions, for
// struct field names hidden from the public surface.
func unexported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	out := string(unicode.ToLower(r)) + name[size:]
	if _, bad := goKeywords[out]; bad {
		out += "_"
	}
	return out
}

// messageGoName is the Go type name for a message: the names of the
// message and its ancestors, camel-cased and joined with underscores.
func messageGoName(md protoreflect.MessageDescriptor) string {
	name := goCamelCase(string(md.Name()))
	for parent, ok := md.Parent().(protoreflect.MessageDescriptor); ok; parent, ok = parent.Parent().(protoreflect.MessageDescriptor) {
		name = goCamelCase(string(parent.Name())) + "_" + name
	}
	return name
}

// enumGoName follows the same nesting rule as messageGoName.
func enumGoName(ed protoreflect.EnumDescriptor) string {
	name := goCamelCase(string(ed.Name()))
	for parent, ok := ed.Parent().(protoreflect.MessageDescriptor); ok; parent, ok = parent.Parent().(protoreflect.MessageDescriptor) {
		name = goCamelCase(string(parent.Name())) + "_" + name
	}
	return name
}

// goPackageOf splits a go_package option into import path and package
// name. Accepts "example.com/foo/bar", "example.com/foo/bar;baz", and a
// bare package name. An empty option falls back to the schema package with
// dots flattened to underscores.
func goPackageOf(fd protoreflect.FileDescriptor) (importPath, pkgName string) {
	goPackage := ""
	if opts := fileOptions(fd); opts != nil {
		goPackage = opts.GetGoPackage()
	}
	if goPackage == "" {
		pkgName = strings.ReplaceAll(string(fd.Package()), ".", "_")
		if pkgName == "" {
			pkgName = baseName(fd.Path())
		}
		return "", pkgName
	}
	if semi := strings.LastIndexByte(goPackage, ';'); semi != -1 {
		return goPackage[:semi], goPackage[semi+1:]
	}
	if strings.ContainsRune(goPackage, '/') {
		return goPackage, goPackage[strings.LastIndexByte(goPackage, '/')+1:]
	}
	return "", goPackage
}

func baseName(path string) string {
	base := path
	if slash := strings.LastIndexByte(base, '/'); slash != -1 {
		base = base[slash+1:]
	}
	if dot := strings.IndexByte(base, '.'); dot != -1 {
		base = base[:dot]
	}
	return strings.ReplaceAll(base, "-", "_")
}
