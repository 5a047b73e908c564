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
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/gengliqi/pbgen/generator"
)

type cmdCodegen struct {
	outDir     string
	configPath string
	only       []string
}

func (*cmdCodegen) help() *commandHelp {
	return &commandHelp{
		usage:   "codegen DESCRIPTOR_SET...",
		summary: "Generate Go codecs from compiled schema descriptor sets",
	}
}

func (cmd *cmdCodegen) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outDir, "output", "o", "", "Directory to write generated files into")
	flags.StringVar(&cmd.configPath, "config", "", "YAML file of default generation options")
	flags.StringArrayVar(&cmd.only, "file", nil, "Generate only the named schema file (repeatable)")
}

func (cmd *cmdCodegen) run(ctx context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "No descriptor set specified (compile schemas with protoc -o first)")
		return 1
	}
	if cmd.outDir == "" {
		fmt.Fprintln(os.Stderr, "No output directory specified (set --output=)")
		return 1
	}

	defaults, err := loadConfig(cmd.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
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

	var targets []protoreflect.FileDescriptor
	if len(cmd.only) > 0 {
		for _, name := range cmd.only {
			fd, err := files.FindFileByPath(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				return 1
			}
			targets = append(targets, fd)
		}
	} else {
		files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
			targets = append(targets, fd)
			return true
		})
	}

	if err := os.MkdirAll(cmd.outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, fd := range targets {
		result, err := generator.GenerateFile(fd, generator.WithDefaults(defaults))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fd.Path(), err)
			return 1
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", fd.Path(), w)
		}
		for _, file := range result.Files {
			outPath, err := cmd.outPath(file.Path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			if err := os.WriteFile(outPath, file.Content, 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
	}
	return 0
}

func (cmd *cmdCodegen) outPath(path string) (string, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return "", fmt.Errorf("Invalid output path %q: empty", path)
	}
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("Invalid output path %q: bad path component %q", path, part)
		}
		if filepath.IsAbs(part) || strings.HasPrefix(part, "/") {
			return "", fmt.Errorf("Invalid output path %q: absolute path component %q", path, part)
		}
	}
	return filepath.Join(append([]string{cmd.outDir}, parts...)...), nil
}
