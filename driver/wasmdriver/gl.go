// +build js,wasm

package wasmdriver

import (
	"image"

	"github.com/2Kronos/Texture-v1/quad"
	"github.com/nuberu/webgl"
	"github.com/nuberu/webgl/types"
	"golang.org/x/mobile/gl"
)

// glContext drives a WebGL 1 rendering context through quad.GL. GL enum
// values are shared between GL ES 2 and WebGL so they are passed through
// unchanged.
type glContext struct {
	gl *webgl.RenderingContext

	buffers  handleTable
	textures handleTable
	shaders  handleTable
	programs handleTable

	boundTexture uint32
	level0       map[uint32]*image.NRGBA
}

func newGLContext(ctx *webgl.RenderingContext) *glContext {
	return &glContext{
		gl:     ctx,
		level0: make(map[uint32]*image.NRGBA),
	}
}

var _ quad.GL = (*glContext)(nil)

func (c *glContext) buffer(b gl.Buffer) *types.Buffer {
	buf, _ := c.buffers.get(b.Value).(*types.Buffer)
	return buf
}

func (c *glContext) texture(t gl.Texture) *types.Texture {
	tex, _ := c.textures.get(t.Value).(*types.Texture)
	return tex
}

func (c *glContext) shader(s gl.Shader) *types.Shader {
	sh, _ := c.shaders.get(s.Value).(*types.Shader)
	return sh
}

func (c *glContext) program(p gl.Program) *types.Program {
	prog, _ := c.programs.get(p.Value).(*types.Program)
	return prog
}

// Buffers

func (c *glContext) CreateBuffer() gl.Buffer {
	return gl.Buffer{Value: c.buffers.add(c.gl.CreateBuffer())}
}

func (c *glContext) BindBuffer(target gl.Enum, b gl.Buffer) {
	c.gl.BindBuffer(types.GLEnum(target), c.buffer(b))
}

func (c *glContext) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	c.gl.BufferData(types.GLEnum(target), float32s(src), types.GLEnum(usage))
}

// Textures

func (c *glContext) CreateTexture() gl.Texture {
	return gl.Texture{Value: c.textures.add(c.gl.CreateTexture())}
}

func (c *glContext) BindTexture(target gl.Enum, t gl.Texture) {
	c.boundTexture = t.Value
	c.gl.BindTexture(types.GLEnum(target), c.texture(t))
}

func (c *glContext) TexParameteri(target, pname gl.Enum, param int) {
	switch pname {
	case gl.TEXTURE_WRAP_S:
		c.gl.TexParameterWrapS(types.GLEnum(target), types.GLEnum(param))
	case gl.TEXTURE_WRAP_T:
		c.gl.TexParameterWrapT(types.GLEnum(target), types.GLEnum(param))
	case gl.TEXTURE_MIN_FILTER:
		c.gl.TexParameterMinFilter(types.GLEnum(target), types.GLEnum(param))
	case gl.TEXTURE_MAG_FILTER:
		c.gl.TexParameterMagFilter(types.GLEnum(target), types.GLEnum(param))
	default:
		logger.Warningf("ignoring texture parameter %#x", uint32(pname))
	}
}

func (c *glContext) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte) {
	c.texImage(types.GLEnum(target), level, types.GLEnum(format), types.GLEnum(ty), width, height, data)
	if level == 0 {
		c.level0[c.boundTexture] = &image.NRGBA{
			Pix:    data,
			Stride: 4 * width,
			Rect:   image.Rect(0, 0, width, height),
		}
	}
}

// texImage allocates the level and fills it with data.
func (c *glContext) texImage(target types.GLEnum, level int, format, ty types.GLEnum, width, height int, data []byte) {
	c.gl.TexImage2Db(target, level, format, width, height, 0, format, nil)
	if len(data) == 0 {
		return
	}
	c.gl.TexSubImage2D(target, level, 0, 0, width, height, format, ty, webgl.TypedArrayOf(data))
}

// GenerateMipmap uploads a CPU built chain from the last level 0 image
// uploaded to the bound texture.
func (c *glContext) GenerateMipmap(target gl.Enum) {
	level0, ok := c.level0[c.boundTexture]
	if !ok {
		logger.Warning("no level 0 image to build mipmaps from")
		return
	}
	for level, img := range quad.MipChain(level0)[1:] {
		b := img.Bounds()
		c.texImage(types.GLEnum(target), level+1, webgl.RGBA, webgl.UNSIGNED_BYTE, b.Dx(), b.Dy(), img.Pix)
	}
}

// Shaders and programs

func (c *glContext) CreateShader(ty gl.Enum) gl.Shader {
	var sh *types.Shader
	if ty == gl.VERTEX_SHADER {
		sh = c.gl.CreateVertexShader()
	} else {
		sh = c.gl.CreateFragmentShader()
	}
	return gl.Shader{Value: c.shaders.add(sh)}
}

func (c *glContext) ShaderSource(s gl.Shader, src string) {
	c.gl.ShaderSource(c.shader(s), src)
}

func (c *glContext) CompileShader(s gl.Shader) {
	c.gl.CompileShader(c.shader(s))
}

func (c *glContext) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname != gl.COMPILE_STATUS {
		logger.Warningf("unsupported shader parameter %#x", uint32(pname))
		return 0
	}
	return boolToInt(c.gl.GetShaderParameterCompileStatus(c.shader(s)))
}

func (c *glContext) GetShaderInfoLog(s gl.Shader) string {
	return c.gl.GetShaderInfoLog(c.shader(s))
}

func (c *glContext) CreateProgram() gl.Program {
	return gl.Program{Init: true, Value: c.programs.add(c.gl.CreateProgram())}
}

func (c *glContext) AttachShader(p gl.Program, s gl.Shader) {
	c.gl.AttachShader(c.program(p), c.shader(s))
}

func (c *glContext) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	c.gl.BindAttribLocation(c.program(p), int(a.Value), name)
}

func (c *glContext) LinkProgram(p gl.Program) {
	c.gl.LinkProgram(c.program(p))
}

func (c *glContext) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname != gl.LINK_STATUS {
		logger.Warningf("unsupported program parameter %#x", uint32(pname))
		return 0
	}
	return boolToInt(c.gl.GetProgramParameterLinkStatus(c.program(p)))
}

func (c *glContext) GetProgramInfoLog(p gl.Program) string {
	return c.gl.GetProgramInfoLog(c.program(p))
}

func (c *glContext) UseProgram(p gl.Program) {
	c.gl.UseProgram(c.program(p))
}

// Vertex attributes

// GetAttribLocation asks the linked program for the slot of name. Attributes
// the program does not declare resolve to -1 as in GL.
func (c *glContext) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	return attribAt(c.gl.GetAttribLocation(c.program(p), name))
}

func (c *glContext) EnableVertexAttribArray(a gl.Attrib) {
	c.gl.EnableVertexAttribArray(int(a.Value))
}

func (c *glContext) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	c.gl.VertexAttribPointer(int(dst.Value), size, types.GLEnum(ty), normalized, stride, offset)
}

// Drawing

func (c *glContext) ClearColor(red, green, blue, alpha float32) {
	c.gl.ClearColor(red, green, blue, alpha)
}

func (c *glContext) Clear(mask gl.Enum) {
	c.gl.Clear(uint32(mask))
}

func (c *glContext) DrawArrays(mode gl.Enum, first, count int) {
	c.gl.DrawArrays(types.GLEnum(mode), first, count)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
