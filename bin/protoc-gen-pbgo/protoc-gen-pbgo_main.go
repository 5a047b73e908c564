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

// protoc-gen-pbgo is a protoc plugin wrapping the pbgen generator: it
// reads a CodeGeneratorRequest from stdin and writes the generated Go
// sources back as a CodeGeneratorResponse.
package main

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/gengliqi/pbgen/generator"
)

func main() {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	request := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(raw, request); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	response := generate(request)
	out, err := proto.Marshal(response)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(request *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	response := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	fail := func(err error) *pluginpb.CodeGeneratorResponse {
		response.Error = proto.String(err.Error())
		response.File = nil
		return response
	}

	files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{
		File: request.GetProtoFile(),
	})
	if err != nil {
		return fail(err)
	}
	for _, name := range request.GetFileToGenerate() {
		fd, err := files.FindFileByPath(name)
		if err != nil {
			return fail(err)
		}
		result, err := generator.GenerateFile(fd)
		if err != nil {
			return fail(err)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", name, w)
		}
		for _, file := range result.Files {
			response.File = append(response.File, &pluginpb.CodeGeneratorResponse_File{
				Name:    proto.String(file.Path),
				Content: proto.String(string(file.Content)),
			})
		}
	}
	return response
}
