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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/gengliqi/pbgen/emit"
)

// cmdDescribe renders a resolved descriptor set as an indented outline,
// for inspecting what the code generator will see.
type cmdDescribe struct{}

func (*cmdDescribe) help() *commandHelp {
	return &commandHelp{
		usage:   "describe DESCRIPTOR_SET...",
		summary: "Print the resolved schema structure of descriptor sets",
	}
}

func (*cmdDescribe) flags(flags *pflag.FlagSet) {}

func (cmd *cmdDescribe) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "No descriptor set specified")
		return 1
	}

	set := &descriptorpb.FileDescriptorSet{}
	for _, path := range argv {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		part := &descriptorpb.FileDescriptorSet{}
		if err := proto.Unmarshal(raw, part); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return 1
		}
		set.File = append(set.File, part.File...)
	}
	files, err := protodesc.NewFiles(set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	w := emit.NewWriter(os.Stdout)
	files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		w.Blockf(func() {
			enums := fd.Enums()
			for ii := 0; ii < enums.Len(); ii++ {
				describeEnum(w, enums.Get(ii))
			}
			messages := fd.Messages()
			for ii := 0; ii < messages.Len(); ii++ {
				describeMessage(w, messages.Get(ii))
			}
		}, "file %s (package %s) {", fd.Path(), fd.Package())
		w.Blank()
		return true
	})
	if err := w.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func describeMessage(w *emit.Writer, md protoreflect.MessageDescriptor) {
	if md.IsMapEntry() {
		return
	}
	w.Blockf(func() {
		fields := md.Fields()
		for ii := 0; ii < fields.Len(); ii++ {
			fd := fields.Get(ii)
			switch {
			case fd.IsMap():
				w.Linef("map<%s, %s> %s = %d", fd.MapKey().Kind(), fd.MapValue().Kind(), fd.Name(), fd.Number())
			case fd.ContainingOneof() != nil && !fd.ContainingOneof().IsSynthetic():
				w.Linef("%s %s %s = %d (oneof %s)", fd.Cardinality(), fd.Kind(), fd.Name(), fd.Number(), fd.ContainingOneof().Name())
			default:
				w.Linef("%s %s %s = %d", fd.Cardinality(), fd.Kind(), fd.Name(), fd.Number())
			}
		}
		enums := md.Enums()
		for ii := 0; ii < enums.Len(); ii++ {
			describeEnum(w, enums.Get(ii))
		}
		nested := md.Messages()
		for ii := 0; ii < nested.Len(); ii++ {
			describeMessage(w, nested.Get(ii))
		}
	}, "message %s {", md.Name())
}

func describeEnum(w *emit.Writer, ed protoreflect.EnumDescriptor) {
	w.Blockf(func() {
		values := ed.Values()
		for ii := 0; ii < values.Len(); ii++ {
			vd := values.Get(ii)
			w.Linef("%s = %d", vd.Name(), vd.Number())
		}
	}, "enum %s {", ed.Name())
}
