package filter

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the strings and switches of the rewrite. The zero value is
// not useful; start from DefaultConfig.
type Config struct {
	// WarningMarker is the raw markdown block appended to warning quotes.
	WarningMarker string
	// LineIndent is the raw html prefixed to the first line of quoted line
	// blocks.
	LineIndent string
	// LineBreak is the raw html replacing soft breaks.
	LineBreak string
	// UnwrapQuotes splices the content of block quotes into their parent.
	UnwrapQuotes bool
	// FieldListsInAPIOnly restricts field list conversion to API function
	// containers.
	FieldListsInAPIOnly bool
	// Languages maps code block classes to the highlighter name used in
	// their place.
	Languages map[string]string
	// Containers maps additional div classes to the class of a registered
	// container op.
	Containers map[string]string
	Sections   Sections
}

type Sections struct {
	Arguments   string `yaml:"arguments"`
	Returns     string `yaml:"returns"`
	ReturnTypes string `yaml:"returnTypes"`
}

func DefaultConfig() *Config {
	return &Config{
		WarningMarker: "{.is-warning}",
		LineIndent:    strings.Repeat("&nbsp;", 8),
		LineBreak:     "<br/>\n",
		UnwrapQuotes:  true,
		Languages:     map[string]string{"objective-c": "objc"},
		Containers:    map[string]string{},
		Sections: Sections{
			Arguments:   "Arguments",
			Returns:     "Returns",
			ReturnTypes: "Return Types",
		},
	}
}

type configFile struct {
	WarningMarker       *string           `yaml:"warningMarker"`
	LineIndent          *string           `yaml:"lineIndent"`
	LineBreak           *string           `yaml:"lineBreak"`
	UnwrapQuotes        *bool             `yaml:"unwrapQuotes"`
	FieldListsInAPIOnly *bool             `yaml:"fieldListsInAPIOnly"`
	Languages           map[string]string `yaml:"languages"`
	Containers          map[string]string `yaml:"containers"`
	Sections            *Sections         `yaml:"sections"`
}

// ParseConfig decodes YAML config data over the defaults. Keys absent from
// data keep their default; languages and containers are merged.
func ParseConfig(data []byte) (*Config, error) {
	cf := &configFile{}
	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := DefaultConfig()
	if cf.WarningMarker != nil {
		cfg.WarningMarker = *cf.WarningMarker
	}
	if cf.LineIndent != nil {
		cfg.LineIndent = *cf.LineIndent
	}
	if cf.LineBreak != nil {
		cfg.LineBreak = *cf.LineBreak
	}
	if cf.UnwrapQuotes != nil {
		cfg.UnwrapQuotes = *cf.UnwrapQuotes
	}
	if cf.FieldListsInAPIOnly != nil {
		cfg.FieldListsInAPIOnly = *cf.FieldListsInAPIOnly
	}
	maps.Copy(cfg.Languages, cf.Languages)
	maps.Copy(cfg.Containers, cf.Containers)
	if s := cf.Sections; s != nil {
		if s.Arguments != "" {
			cfg.Sections.Arguments = s.Arguments
		}
		if s.Returns != "" {
			cfg.Sections.Returns = s.Returns
		}
		if s.ReturnTypes != "" {
			cfg.Sections.ReturnTypes = s.ReturnTypes
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	cfg, err := ParseConfig(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every container alias names a registered op.
func (c *Config) Validate() error {
	for alias, target := range c.Containers {
		if LookupContainer(target) == nil {
			return fmt.Errorf("%w: container alias %q: no op for class %q", ErrConfig, alias, target)
		}
	}
	return nil
}
