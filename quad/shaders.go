package quad

import "fmt"

// Attributes names the two vertex inputs the renderer looks up by name.
type Attributes struct {
	Position string `yaml:"position,omitempty"`
	TexCoord string `yaml:"texcoord,omitempty"`
}

const (
	DefaultPositionAttribute = "position"
	DefaultTexCoordAttribute = "texCoord"

	// Attribute slots pinned before linking.
	positionIndex = 0
	texCoordIndex = 1
)

// ShaderSources holds the GLSL ES 1.00 source of both stages.
type ShaderSources struct {
	Vertex   string `yaml:"vertex,omitempty"`
	Fragment string `yaml:"fragment,omitempty"`
}

const vertexShaderTemplate = `
attribute vec2 %[1]s;
attribute vec2 %[2]s;
varying vec2 v_texCoord;

void main() {
	v_texCoord = %[2]s;
	gl_Position = vec4(%[1]s, 0.0, 1.0);
}
`

const fragmentShaderCode = `
precision mediump float;
varying vec2 v_texCoord;
uniform sampler2D u_image;

void main(void) {
	gl_FragColor = texture2D(u_image, v_texCoord);
}
`

// DefaultShaders returns the pass-through vertex stage for attrs and the
// single-sampler fragment stage.
func DefaultShaders(attrs Attributes) ShaderSources {
	attrs = attrs.withDefaults()
	return ShaderSources{
		Vertex:   fmt.Sprintf(vertexShaderTemplate, attrs.Position, attrs.TexCoord),
		Fragment: fragmentShaderCode,
	}
}

func (a Attributes) withDefaults() Attributes {
	if a.Position == "" {
		a.Position = DefaultPositionAttribute
	}
	if a.TexCoord == "" {
		a.TexCoord = DefaultTexCoordAttribute
	}
	return a
}

func (s ShaderSources) withDefaults(attrs Attributes) ShaderSources {
	def := DefaultShaders(attrs)
	if s.Vertex == "" {
		s.Vertex = def.Vertex
	}
	if s.Fragment == "" {
		s.Fragment = def.Fragment
	}
	return s
}
