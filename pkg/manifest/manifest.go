package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"squarely/pkg/errors"
	"squarely/pkg/observability"
)

// Document is the decoded form of a layout manifest: a view hierarchy and
// the rules constraining it.
type Document struct {
	Views []ViewDecl `toml:"view" yaml:"views" json:"views"`
	Rules []Rule     `toml:"rule" yaml:"rules" json:"rules"`
}

// ViewDecl declares one view. A view without a container is the root.
type ViewDecl struct {
	ID        string `toml:"id" yaml:"id" json:"id"`
	Container string `toml:"container" yaml:"container" json:"container,omitempty"`
}

// Rule declares one layout rule. The numeric fields are pointers so that an
// explicit zero can be told apart from an omitted field: a rule with
// constant = 0.0 pins its attributes to zero, a rule without a constant
// does not.
type Rule struct {
	Target     string   `toml:"target" yaml:"target" json:"target"`
	Apply      string   `toml:"apply" yaml:"apply" json:"apply"`
	To         string   `toml:"to" yaml:"to" json:"to,omitempty"`
	ToAttr     string   `toml:"toAttr" yaml:"toAttr" json:"toAttr,omitempty"`
	Relation   string   `toml:"relation" yaml:"relation" json:"relation,omitempty"`
	Constant   *float64 `toml:"constant" yaml:"constant" json:"constant,omitempty"`
	Multiplier *float64 `toml:"multiplier" yaml:"multiplier" json:"multiplier,omitempty"`
	Priority   *float64 `toml:"priority" yaml:"priority" json:"priority,omitempty"`
}

// Format identifies a manifest encoding.
type Format string

// Supported manifest encodings.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat determines the manifest format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format: %s", filepath.Base(path))
}

// Decode parses manifest data in the given format and validates the result.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format: %q", string(format))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to decode %s manifest", format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads, decodes and validates the manifest at path. The format is
// detected from the file extension.
func Load(path string) (*Document, error) {
	start := time.Now()
	observability.Manifest().OnLoadStart(path)

	doc, err := load(path)

	var views, rules int
	if doc != nil {
		views, rules = len(doc.Views), len(doc.Rules)
	}
	observability.Manifest().OnLoadComplete(path, views, rules, time.Since(start), err)
	return doc, err
}

func load(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to read %s", path)
	}
	return Decode(data, format)
}
