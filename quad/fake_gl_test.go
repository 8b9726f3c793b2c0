package quad

import (
	"fmt"
	"strings"

	"golang.org/x/mobile/gl"
)

// recordingGL records every call made through the GL interface.
type recordingGL struct {
	calls []string

	failVertex   bool
	failFragment bool
	failLink     bool

	// attribute names the linked program does not declare
	missing map[string]bool

	nextID   uint32
	shaders  map[gl.Shader]gl.Enum
	attribs  map[string]gl.Attrib
	texImage []byte
	draws    []DrawCall
	buffers  map[gl.Buffer][]byte
	bound    gl.Buffer
}

func newRecordingGL() *recordingGL {
	return &recordingGL{
		shaders: make(map[gl.Shader]gl.Enum),
		attribs: make(map[string]gl.Attrib),
		missing: make(map[string]bool),
		buffers: make(map[gl.Buffer][]byte),
	}
}

func (f *recordingGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *recordingGL) id() uint32 {
	f.nextID++
	return f.nextID
}

// count returns the number of recorded calls starting with prefix.
func (f *recordingGL) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// index returns the position of the first call starting with prefix.
func (f *recordingGL) index(prefix string) int {
	for i, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

func (f *recordingGL) CreateBuffer() gl.Buffer {
	b := gl.Buffer{Value: f.id()}
	f.record("CreateBuffer")
	return b
}

func (f *recordingGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer %d", b.Value)
	f.bound = b
}

func (f *recordingGL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.record("BufferData %d %#x", len(src), uint32(usage))
	f.buffers[f.bound] = src
}

func (f *recordingGL) CreateTexture() gl.Texture {
	f.record("CreateTexture")
	return gl.Texture{Value: f.id()}
}

func (f *recordingGL) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture")
}

func (f *recordingGL) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri %#x %#x", uint32(pname), param)
}

func (f *recordingGL) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte) {
	f.record("TexImage2D %d %dx%d", level, width, height)
	f.texImage = data
}

func (f *recordingGL) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap")
}

func (f *recordingGL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: f.id()}
	f.shaders[s] = ty
	f.record("CreateShader %#x", uint32(ty))
	return s
}

func (f *recordingGL) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource")
}

func (f *recordingGL) CompileShader(s gl.Shader) {
	f.record("CompileShader")
}

func (f *recordingGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if f.shaders[s] == gl.VERTEX_SHADER && f.failVertex {
		return 0
	}
	if f.shaders[s] == gl.FRAGMENT_SHADER && f.failFragment {
		return 0
	}
	return 1
}

func (f *recordingGL) GetShaderInfoLog(s gl.Shader) string {
	return "ERROR: 0:3: syntax error\n"
}

func (f *recordingGL) CreateProgram() gl.Program {
	f.record("CreateProgram")
	return gl.Program{Init: true, Value: f.id()}
}

func (f *recordingGL) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader")
}

func (f *recordingGL) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.record("BindAttribLocation %d %s", a.Value, name)
	f.attribs[name] = a
}

func (f *recordingGL) LinkProgram(p gl.Program) {
	f.record("LinkProgram")
}

func (f *recordingGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if f.failLink || f.failVertex || f.failFragment {
		return 0
	}
	return 1
}

func (f *recordingGL) GetProgramInfoLog(p gl.Program) string {
	return "link failed"
}

func (f *recordingGL) UseProgram(p gl.Program) {
	f.record("UseProgram")
}

func (f *recordingGL) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	f.record("GetAttribLocation %s", name)
	if f.missing[name] {
		return gl.Attrib{Value: ^uint(0)}
	}
	return f.attribs[name]
}

func (f *recordingGL) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray %d", a.Value)
}

func (f *recordingGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer %d %d %v %d %d", dst.Value, size, normalized, stride, offset)
}

func (f *recordingGL) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor %v %v %v %v", red, green, blue, alpha)
}

func (f *recordingGL) Clear(mask gl.Enum) {
	f.record("Clear %#x", uint32(mask))
}

func (f *recordingGL) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays %#x %d %d", uint32(mode), first, count)
	f.draws = append(f.draws, DrawCall{Mode: mode, First: first, Count: count})
}

var _ GL = (*recordingGL)(nil)
