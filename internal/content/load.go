package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaswanthreddy/portfolio/internal/schemas"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

// Format is the encoding of a content file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the content format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &LoadError{Message: fmt.Sprintf("unsupported content file extension %q", filepath.Ext(path))}
	}
}

// Load reads a portfolio from a JSON or YAML file and validates it against
// the portfolio schema.
func Load(path string) (*types.Portfolio, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Decode(data, format)
}

// Decode parses and validates portfolio content already in memory.
func Decode(data []byte, format Format) (*types.Portfolio, error) {
	doc, err := ToJSON(data, format)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidatePortfolio(doc); err != nil {
		return nil, err
	}

	var portfolio types.Portfolio
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&portfolio); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal portfolio",
			Cause:   err,
		}
	}

	return &portfolio, nil
}

// ToJSON normalises content to JSON so one schema covers both formats.
func ToJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, &LoadError{Message: "failed to unmarshal JSON: invalid syntax"}
		}
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &LoadError{
				Message: "failed to unmarshal YAML",
				Cause:   err,
			}
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, &LoadError{
				Message: "YAML content cannot be represented as JSON",
				Cause:   err,
			}
		}
		return out, nil
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unknown content format %q", format)}
	}
}

// Encode writes p in the given format. Output decodes back to an equal portfolio.
func Encode(p *types.Portfolio, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown content format %q", format)
	}
}
