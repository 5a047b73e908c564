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

// Package generator compiles resolved schema files into Go source.
//
// The input is a protoreflect.FileDescriptor, so any loader that can
// produce one (a serialized FileDescriptorSet, a plugin request, an
// in-memory descriptor) can drive generation. The output is one Go file
// per schema file, plus one extra file per configured serialization
// format guard.
package generator

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/gengliqi/pbgen"
	"github.com/gengliqi/pbgen/customize"
	"github.com/gengliqi/pbgen/emit"
)

const (
	pbrtImportPath      = "github.com/gengliqi/pbgen/pbrt"
	protowireImportPath = "google.golang.org/protobuf/encoding/protowire"
)

// GenerateOption configures a generation run.
type GenerateOption interface {
	applyGenerateOption(*generateOptions)
}

type generateOption func(*generateOptions)

func (o generateOption) applyGenerateOption(opts *generateOptions) {
	o(opts)
}

type generateOptions struct {
	defaults customize.Customization
}

// WithDefaults replaces the compiled-in base customization layer. File,
// message, and field options still override it in that order.
func WithDefaults(c customize.Customization) GenerateOption {
	return generateOption(func(opts *generateOptions) {
		opts.defaults = c
	})
}

// OutputFile is one generated source file.
type OutputFile struct {
	Path    string
	Content []byte
}

// GenerateResult is the output of a successful run. Warnings are
// advisory; a run that returns an error produces no files at all.
type GenerateResult struct {
	Files    []OutputFile
	Warnings []*Warning
}

// fileUnit accumulates the body and import set of one output file.
type fileUnit struct {
	buf     bytes.Buffer
	w       *emit.Writer
	imports map[string]string // import path -> qualifier
}

func newFileUnit() *fileUnit {
	u := &fileUnit{imports: make(map[string]string)}
	u.w = emit.NewWriter(&u.buf)
	return u
}

type generator struct {
	file     protoreflect.FileDescriptor
	fileOpts customize.Customization
	pkgName  string

	main       *fileUnit
	guards     map[string]*fileUnit
	guardOrder []string

	// unit and body track the file currently being written to; external
	// format emission redirects them to a guard unit.
	unit *fileUnit
	body *emit.Writer

	warnings []*Warning
}

// GenerateFile compiles one resolved schema file. Dependencies of the
// file must already be resolved into the descriptor; generation never
// reads other files.
func GenerateFile(fd protoreflect.FileDescriptor, options ...GenerateOption) (*GenerateResult, error) {
	if fd == nil {
		return nil, errNilSchema()
	}
	opts := generateOptions{defaults: customize.Defaults()}
	for _, o := range options {
		o.applyGenerateOption(&opts)
	}

	g := &generator{
		file:   fd,
		main:   newFileUnit(),
		guards: make(map[string]*fileUnit),
	}
	g.unit = g.main
	g.body = g.main.w

	fileOpts, unknown := customize.ForFile(fileOptions(fd), opts.defaults)
	for _, num := range unknown {
		g.warn(warnUnknownOption(num, fd.Path()))
	}
	g.fileOpts = fileOpts

	_, pkgName := goPackageOf(fd)
	if !validGoIdent(pkgName) {
		goPackage := ""
		if o := fileOptions(fd); o != nil {
			goPackage = o.GetGoPackage()
		}
		return nil, errInvalidGoPackage(goPackage, fd.Path())
	}
	g.pkgName = pkgName

	enums := fd.Enums()
	for ii := 0; ii < enums.Len(); ii++ {
		if ii > 0 {
			g.body.Blank()
		}
		g.emitEnum(enums.Get(ii))
	}
	messages := fd.Messages()
	for ii := 0; ii < messages.Len(); ii++ {
		if ii > 0 || enums.Len() > 0 {
			g.body.Blank()
		}
		if err := g.compileMessage(messages.Get(ii), fileOpts); err != nil {
			return nil, err
		}
	}

	result := &GenerateResult{Warnings: g.warnings}
	base := baseName(fd.Path())
	content, err := g.render(g.main, "")
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, OutputFile{
		Path:    base + pbgen.GeneratedFileSuffix,
		Content: content,
	})
	for _, guard := range g.guardOrder {
		content, err := g.render(g.guards[guard], guard)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, OutputFile{
			Path:    base + "_" + sanitizeGuard(guard) + pbgen.GeneratedFileSuffix,
			Content: content,
		})
	}
	return result, nil
}

// render assembles one output file: the generated-code marker, the
// optional build constraint, the package clause, the import block, and
// the accumulated body.
func (g *generator) render(unit *fileUnit, guard string) ([]byte, error) {
	if err := unit.w.Err(); err != nil {
		return nil, errEmitFailed(err)
	}
	var out bytes.Buffer
	h := emit.NewWriter(&out)
	h.Comment("Code generated by pbgen. DO NOT EDIT.")
	h.Commentf("source: %s", g.file.Path())
	h.Blank()
	if guard != "" {
		h.Linef("//go:build %s", guard)
		h.Blank()
	}
	h.Linef("package %s", g.pkgName)

	if len(unit.imports) > 0 {
		h.Blank()
		var std, ext []string
		for path := range unit.imports {
			if strings.ContainsRune(strings.SplitN(path, "/", 2)[0], '.') {
				ext = append(ext, path)
			} else {
				std = append(std, path)
			}
		}
		sort.Strings(std)
		sort.Strings(ext)
		h.BlockEnd("import (", ")", func() {
			for _, path := range std {
				h.Linef("%q", path)
			}
			if len(std) > 0 && len(ext) > 0 {
				h.Blank()
			}
			for _, path := range ext {
				qual := unit.imports[path]
				if qual == lastPathElem(path) {
					h.Linef("%q", path)
				} else {
					h.Linef("%s %q", qual, path)
				}
			}
		})
	}
	h.Blank()
	if err := h.Err(); err != nil {
		return nil, errEmitFailed(err)
	}
	out.Write(unit.buf.Bytes())
	return out.Bytes(), nil
}

// use records an import in the current output file and returns the
// qualifier to reference it by.
func (g *generator) use(path string) string {
	if qual, ok := g.unit.imports[path]; ok {
		return qual
	}
	qual := defaultQualifier(path)
	taken := func(q string) bool {
		for _, have := range g.unit.imports {
			if have == q {
				return true
			}
		}
		return false
	}
	if taken(qual) {
		for n := 2; ; n++ {
			alt := qual + strconv.Itoa(n)
			if !taken(alt) {
				qual = alt
				break
			}
		}
	}
	g.unit.imports[path] = qual
	return qual
}

func (g *generator) pbrt() string {
	return g.use(pbrtImportPath)
}

func (g *generator) protowire() string {
	return g.use(protowireImportPath)
}

// guardWriter redirects emission into the output file for one build
// guard, creating it on first use.
func (g *generator) guardWriter(guard string) *emit.Writer {
	unit, ok := g.guards[guard]
	if !ok {
		unit = newFileUnit()
		g.guards[guard] = unit
		g.guardOrder = append(g.guardOrder, guard)
	}
	g.unit = unit
	return unit.w
}

// mainWriter restores emission into the primary output file.
func (g *generator) mainWriter() *emit.Writer {
	g.unit = g.main
	return g.main.w
}

func (g *generator) warn(w *Warning) {
	g.warnings = append(g.warnings, w)
}

// messageRef is the Go type name of a message, qualified with an import
// when the message lives in another schema file's package.
func (g *generator) messageRef(md protoreflect.MessageDescriptor) string {
	return g.crossFileRef(md.ParentFile(), messageGoName(md))
}

func (g *generator) enumRef(ed protoreflect.EnumDescriptor) string {
	return g.crossFileRef(ed.ParentFile(), enumGoName(ed))
}

func (g *generator) crossFileRef(file protoreflect.FileDescriptor, goName string) string {
	if file == nil || file.Path() == g.file.Path() {
		return goName
	}
	importPath, _ := goPackageOf(file)
	if importPath == "" {
		// No import path declared; assume same-package generation.
		return goName
	}
	return g.use(importPath) + "." + goName
}

func fileOptions(fd protoreflect.FileDescriptor) *descriptorpb.FileOptions {
	opts, _ := fd.Options().(*descriptorpb.FileOptions)
	return opts
}

func lastPathElem(path string) string {
	if ii := strings.LastIndexByte(path, '/'); ii != -1 {
		return path[ii+1:]
	}
	return path
}

// defaultQualifier guesses the package identifier of an import path:
// the last element with version suffixes and repository prefixes
// stripped, non-identifier characters flattened.
func defaultQualifier(path string) string {
	elem := lastPathElem(path)
	if strings.HasPrefix(elem, "v") && !strings.ContainsAny(elem[1:], "abcdefghijklmnopqrstuvwxyz") {
		// Major-version path element ("v3"); use the one before it.
		trimmed := path[:len(path)-len(elem)-1]
		elem = lastPathElem(trimmed)
	}
	elem = strings.TrimPrefix(elem, "go-")
	elem = strings.TrimSuffix(elem, "-go")
	var b strings.Builder
	for _, c := range elem {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "pkg" + out
	}
	return out
}

func validGoIdent(s string) bool {
	if s == "" {
		return false
	}
	for ii, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if ii == 0 {
				return false
			}
		default:
			return false
		}
	}
	_, keyword := goKeywords[s]
	return !keyword
}

func sanitizeGuard(guard string) string {
	var b strings.Builder
	for _, c := range guard {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
