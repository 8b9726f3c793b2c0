package quad

import (
	"bytes"
	"io"
	"io/ioutil"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// DefaultPreset is used when a configuration file does not name one.
const DefaultPreset = "triangles"

// Config describes what the renderer draws.
type Config struct {
	Geometry   Geometry      `yaml:"geometry"`
	Attributes Attributes    `yaml:"attributes"`
	Shaders    ShaderSources `yaml:"shaders,omitempty"`

	// Strict makes shader compile and link failures fatal.
	Strict bool `yaml:"strict,omitempty"`
}

// Validate checks cfg without filling defaults.
func (cfg Config) Validate() error {
	return cfg.Geometry.Validate()
}

// withDefaults returns a copy of cfg with attribute names, shader sources
// and texture coordinates populated.
func (cfg Config) withDefaults() Config {
	cfg.Attributes = cfg.Attributes.withDefaults()
	cfg.Shaders = cfg.Shaders.withDefaults(cfg.Attributes)
	cfg.Geometry = cfg.Geometry.withTexCoords()
	return cfg
}

// fileConfig is the on-disk layout. Every field is optional and overrides
// the selected preset.
type fileConfig struct {
	Preset     string         `yaml:"preset"`
	Geometry   *Geometry      `yaml:"geometry"`
	Attributes *Attributes    `yaml:"attributes"`
	Shaders    *ShaderSources `yaml:"shaders"`
	Strict     *bool          `yaml:"strict"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, xerrors.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML configuration. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !xerrors.Is(err, io.EOF) {
		return Config{}, xerrors.Errorf("decode config: %w", err)
	}

	name := fc.Preset
	if name == "" {
		name = DefaultPreset
	}
	cfg, err := Preset(name)
	if err != nil {
		return Config{}, err
	}

	if fc.Geometry != nil {
		cfg.Geometry = *fc.Geometry
	}
	if fc.Attributes != nil {
		if fc.Attributes.Position != "" {
			cfg.Attributes.Position = fc.Attributes.Position
		}
		if fc.Attributes.TexCoord != "" {
			cfg.Attributes.TexCoord = fc.Attributes.TexCoord
		}
	}
	if fc.Shaders != nil {
		if fc.Shaders.Vertex != "" {
			cfg.Shaders.Vertex = fc.Shaders.Vertex
		}
		if fc.Shaders.Fragment != "" {
			cfg.Shaders.Fragment = fc.Shaders.Fragment
		}
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, xerrors.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
