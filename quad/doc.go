// Package quad draws a single textured quadrilateral in one setup-and-draw
// pass.
//
// A Renderer is built from a Config describing the geometry (positions,
// optional texture coordinates and topology), the attribute names and the
// shader pair. Render acquires a GL context from a Surface, uploads both
// vertex buffers and the image texture, builds the program, binds the
// attributes and issues the draw call(s). Nothing is released afterwards and
// the GL binding state set by Render outlives the call; any later draw on the
// same context must re-bind what it needs.
//
// Shader compile and link failures are reported as Diagnostics and do not
// stop the pass unless the renderer is strict.
package quad
