package spec

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/willbeason/snowflake/pkg/errors"
)

// Format is an on-disk encoding of a Branch tree.
type Format string

const (
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
)

// FormatFor picks the format matching path's extension.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported spec file extension %q (want .toml, .hcl or .json)", ext)
	}
}

// Load reads and decodes the spec file at path. The result is not validated.
func Load(path string) (Branch, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Branch{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Branch{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return Branch{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read spec file %s", path)
	}

	return Decode(data, path, format)
}

// Decode parses data in the given format. name is used in diagnostics only.
func Decode(data []byte, name string, format Format) (Branch, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data, name)
	case FormatHCL:
		return decodeHCL(data, name)
	case FormatJSON:
		return decodeJSON(bytes.NewReader(data), name)
	default:
		return Branch{}, errors.New(errors.ErrCodeInvalidFormat, "unknown spec format %q", format)
	}
}

func decodeTOML(data []byte, name string) (Branch, error) {
	var b Branch
	md, err := toml.Decode(string(data), &b)
	if err != nil {
		return Branch{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", name)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Branch{}, errors.New(errors.ErrCodeInvalidFormat, "decode %s: unknown key %q", name, undecoded[0].String())
	}

	return b, nil
}

// hclBranch mirrors Branch with nested "branch" blocks for children.
type hclBranch struct {
	Spread   float64      `hcl:"spread,optional"`
	Length   float64      `hcl:"length"`
	Width    float64      `hcl:"width"`
	Children []*hclBranch `hcl:"branch,block"`
}

func (h *hclBranch) branch() Branch {
	result := Branch{
		Spread: h.Spread,
		Length: h.Length,
		Width:  h.Width,
	}
	for _, child := range h.Children {
		result.Children = append(result.Children, child.branch())
	}
	return result
}

func decodeHCL(data []byte, name string) (Branch, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return Branch{}, errors.Wrap(errors.ErrCodeInvalidFormat, diags, "parse %s", name)
	}

	var h hclBranch
	diags = gohcl.DecodeBody(file.Body, nil, &h)
	if diags.HasErrors() {
		return Branch{}, errors.Wrap(errors.ErrCodeInvalidFormat, diags, "decode %s", name)
	}

	return h.branch(), nil
}

func decodeJSON(r io.Reader, name string) (Branch, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var b Branch
	if err := dec.Decode(&b); err != nil {
		return Branch{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", name)
	}

	return b, nil
}
