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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gengliqi/pbgen/customize"
)

// configFile mirrors the customization options as a YAML document. Keys
// left out of the document keep their compiled-in defaults; schema-level
// options still override the configured values.
type configFile struct {
	ExposeOneof                 *bool   `yaml:"expose_oneof"`
	ExposeFields                *bool   `yaml:"expose_fields"`
	GenerateAccessors           *bool   `yaml:"generate_accessors"`
	LiteRuntime                 *bool   `yaml:"lite_runtime"`
	BytesAsCustomBuffer         *bool   `yaml:"bytes_as_custom_buffer"`
	StringAsCustomBuffer        *bool   `yaml:"string_as_custom_buffer"`
	SerializeWithExternalFormat *bool   `yaml:"serialize_with_external_format"`
	SerializeFormatGuard        *string `yaml:"serialize_format_guard"`
}

// loadConfig reads a YAML options file and folds it over the compiled-in
// defaults. An empty path returns the defaults unchanged.
func loadConfig(path string) (customize.Customization, error) {
	base := customize.Defaults()
	if path == "" {
		return base, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return base.Apply(customize.Layer{
		ExposeOneof:                 cfg.ExposeOneof,
		ExposeFields:                cfg.ExposeFields,
		GenerateAccessors:           cfg.GenerateAccessors,
		LiteRuntime:                 cfg.LiteRuntime,
		BytesAsCustomBuffer:         cfg.BytesAsCustomBuffer,
		StringAsCustomBuffer:        cfg.StringAsCustomBuffer,
		SerializeWithExternalFormat: cfg.SerializeWithExternalFormat,
		SerializeFormatGuard:        cfg.SerializeFormatGuard,
	}), nil
}
