package quad

import (
	"image"
	"strings"

	"github.com/2Kronos/Texture-v1/log"
	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

// GL is the part of a GL ES 2 / WebGL 1 context the renderer drives.
// golang.org/x/mobile/gl.Context satisfies it.
type GL interface {
	CreateBuffer() gl.Buffer
	BindBuffer(target gl.Enum, b gl.Buffer)
	BufferData(target gl.Enum, src []byte, usage gl.Enum)

	CreateTexture() gl.Texture
	BindTexture(target gl.Enum, t gl.Texture)
	TexParameteri(target, pname gl.Enum, param int)
	TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte)
	GenerateMipmap(target gl.Enum)

	CreateShader(ty gl.Enum) gl.Shader
	ShaderSource(s gl.Shader, src string)
	CompileShader(s gl.Shader)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string

	CreateProgram() gl.Program
	AttachShader(p gl.Program, s gl.Shader)
	BindAttribLocation(p gl.Program, a gl.Attrib, name string)
	LinkProgram(p gl.Program)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	UseProgram(p gl.Program)

	GetAttribLocation(p gl.Program, name string) gl.Attrib
	EnableVertexAttribArray(a gl.Attrib)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)

	ClearColor(red, green, blue, alpha float32)
	Clear(mask gl.Enum)
	DrawArrays(mode gl.Enum, first, count int)
}

// Surface is a drawable region able to produce a rendering context.
type Surface interface {
	Context() (GL, error)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func() (GL, error)

func (f SurfaceFunc) Context() (GL, error) {
	return f()
}

// ContextSurface returns a Surface for a context that is already current.
func ContextSurface(ctx GL) Surface {
	return SurfaceFunc(func() (GL, error) {
		return ctx, nil
	})
}

// Stage identifies where a shader diagnostic comes from.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	}
	return "unknown"
}

// Diagnostic is a non-fatal shader compile or program link failure.
type Diagnostic struct {
	Stage Stage
	Log   string
}

func (d Diagnostic) String() string {
	return d.Stage.String() + ": " + strings.TrimSpace(d.Log)
}

// Diagnostics collects the failures of one Render call.
type Diagnostics []Diagnostic

func (d Diagnostics) err() error {
	if len(d) == 0 {
		return nil
	}
	msgs := make([]string, len(d))
	sentinel := ErrProgramLink
	for i, diag := range d {
		msgs[i] = diag.String()
		if diag.Stage != StageLink {
			sentinel = ErrShaderCompile
		}
	}
	return xerrors.Errorf("%s: %w", strings.Join(msgs, "; "), sentinel)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger replaces the default "quad" logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithStrict overrides Config.Strict.
func WithStrict(strict bool) Option {
	return func(r *Renderer) {
		r.strict = strict
	}
}

// Renderer draws one textured quad per Render call.
type Renderer struct {
	cfg    Config
	logger log.Logger
	strict bool
}

// New validates cfg and returns a renderer for it.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{
		cfg:    cfg.withDefaults(),
		logger: log.New("quad"),
		strict: cfg.Strict,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Config returns the effective configuration, defaults included.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render acquires a context from surface and draws the configured geometry
// textured with img. A missing context is fatal and happens before any GL
// call. Compile and link failures are returned as Diagnostics and the draw is
// still issued, unless the renderer is strict.
func (r *Renderer) Render(surface Surface, img image.Image) (Diagnostics, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if surface == nil {
		return nil, xerrors.Errorf("nil surface: %w", ErrNoContext)
	}
	ctx, err := surface.Context()
	if err != nil {
		return nil, &ContextError{Err: err}
	}
	if ctx == nil {
		return nil, ErrNoContext
	}

	geom := r.cfg.Geometry
	positionBuf := uploadArray(ctx, geom.Positions)
	texCoordBuf := uploadArray(ctx, geom.TexCoords)

	policy := r.createTexture(ctx, img)
	r.logger.Debugf("texture %dx%d uploaded with %s policy", img.Bounds().Dx(), img.Bounds().Dy(), policy)

	var diags Diagnostics
	program := r.buildProgram(ctx, &diags)
	if r.strict && len(diags) > 0 {
		return diags, diags.err()
	}

	r.bindAttribute(ctx, program, r.cfg.Attributes.Position, positionBuf)
	r.bindAttribute(ctx, program, r.cfg.Attributes.TexCoord, texCoordBuf)

	ctx.ClearColor(0, 0, 0, 0)
	ctx.Clear(gl.COLOR_BUFFER_BIT)
	ctx.UseProgram(program)

	for _, dc := range DrawCalls(geom.Topology, geom.VertexCount()) {
		ctx.DrawArrays(dc.Mode, dc.First, dc.Count)
	}
	r.logger.Infof("drew %d vertices as %s", geom.VertexCount(), geom.Topology)

	return diags, nil
}

func uploadArray(ctx GL, data []float32) gl.Buffer {
	buf := ctx.CreateBuffer()
	ctx.BindBuffer(gl.ARRAY_BUFFER, buf)
	ctx.BufferData(gl.ARRAY_BUFFER, float32Bytes(data), gl.STATIC_DRAW)
	return buf
}

func (r *Renderer) createTexture(ctx GL, img image.Image) TexturePolicy {
	// Rows are uploaded bottom-up so the image's top row lands at t=1.
	pix := FlipRows(ToNRGBA(img))
	w, h := pix.Bounds().Dx(), pix.Bounds().Dy()

	tex := ctx.CreateTexture()
	ctx.BindTexture(gl.TEXTURE_2D, tex)

	policy := TexturePolicyFor(w, h)
	if policy == PolicyClamp {
		ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}

	ctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, gl.RGBA, gl.UNSIGNED_BYTE, pix.Pix)

	// Mipmaps are built from level 0, so this has to follow the upload.
	if policy == PolicyMipmap {
		ctx.GenerateMipmap(gl.TEXTURE_2D)
	}
	return policy
}

func (r *Renderer) buildProgram(ctx GL, diags *Diagnostics) gl.Program {
	vertShader := r.compileShader(ctx, StageVertex, gl.VERTEX_SHADER, r.cfg.Shaders.Vertex, diags)
	fragShader := r.compileShader(ctx, StageFragment, gl.FRAGMENT_SHADER, r.cfg.Shaders.Fragment, diags)

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vertShader)
	ctx.AttachShader(program, fragShader)
	ctx.BindAttribLocation(program, gl.Attrib{Value: positionIndex}, r.cfg.Attributes.Position)
	ctx.BindAttribLocation(program, gl.Attrib{Value: texCoordIndex}, r.cfg.Attributes.TexCoord)
	ctx.LinkProgram(program)

	if ctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		d := Diagnostic{Stage: StageLink, Log: ctx.GetProgramInfoLog(program)}
		r.logger.Errorf("shader program linking error: %s", strings.TrimSpace(d.Log))
		*diags = append(*diags, d)
	}
	return program
}

func (r *Renderer) compileShader(ctx GL, stage Stage, ty gl.Enum, src string, diags *Diagnostics) gl.Shader {
	shader := ctx.CreateShader(ty)
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)

	if ctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		d := Diagnostic{Stage: stage, Log: ctx.GetShaderInfoLog(shader)}
		r.logger.Errorf("%s shader compilation error: %s", stage, strings.TrimSpace(d.Log))
		*diags = append(*diags, d)
	}
	return shader
}

// missingAttrib is the location GL reports for a name the program does not
// declare.
const missingAttrib = ^uint(0)

func (r *Renderer) bindAttribute(ctx GL, program gl.Program, name string, buf gl.Buffer) {
	loc := ctx.GetAttribLocation(program, name)
	if loc.Value == missingAttrib {
		r.logger.Warningf("attribute %q is not active in the program", name)
		return
	}
	ctx.BindBuffer(gl.ARRAY_BUFFER, buf)
	ctx.EnableVertexAttribArray(loc)
	ctx.VertexAttribPointer(loc, coordsPerVertex, gl.FLOAT, false, 0, 0)
}
