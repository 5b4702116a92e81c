// Command pgaview walks the scene catalogue in a window. Drag to orbit,
// scroll to zoom, left/right arrows to change scene, escape to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/math/f32"

	"dasa.cc/pga"
	"dasa.cc/pga/scene"
)

func init() { runtime.LockOSThread() }

var (
	flagWidth  = flag.Int("width", 1024, "window width")
	flagHeight = flag.Int("height", 768, "window height")
	flagScene  = flag.Int("scene", 0, "index of the scene to open with")
)

const vsrc = `#version 410
uniform mat4 mvp;
in vec3 vert;

void main() {
	gl_Position = mvp * vec4(vert, 1.0);
	gl_PointSize = 10.0;
}` + "\x00"

const fsrc = `#version 410
uniform vec4 color;
out vec4 frag;

void main() {
	frag = color;
}` + "\x00"

var (
	colorInput    = f32.Vec4{1, 0.9, 0.2, 1}
	colorComputed = f32.Vec4{0.2, 1, 0.4, 1}
	colorPlane    = f32.Vec4{0.3, 0.5, 1, 0.25}
	colorGrid     = f32.Vec4{0.3, 0.3, 0.3, 1}
)

// draw is one glDrawArrays range of the batched vertex buffer.
type draw struct {
	mode  uint32
	first int32
	count int32
	color f32.Vec4
}

// batch accumulates line and triangle vertices for a scene.
type batch struct {
	verts []float32
	draws []draw
}

func (b *batch) add(mode uint32, color f32.Vec4, pts ...f32.Vec3) {
	first := int32(len(b.verts) / 3)
	for _, p := range pts {
		b.verts = append(b.verts, p[0], p[1], p[2])
	}
	b.draws = append(b.draws, draw{mode, first, int32(len(pts)), color})
}

func entityColor(i, inputs int) f32.Vec4 {
	if i < inputs {
		return colorInput
	}
	return colorComputed
}

func (b *batch) grid() {
	for i := -5; i <= 5; i++ {
		f := float32(i)
		b.add(gl.LINES, colorGrid, f32.Vec3{f, 0, -5}, f32.Vec3{f, 0, 5})
		b.add(gl.LINES, colorGrid, f32.Vec3{-5, 0, f}, f32.Vec3{5, 0, f})
	}
	b.add(gl.LINES, f32.Vec4{1, 0.2, 0.2, 1}, f32.Vec3{}, f32.Vec3{1, 0, 0})
	b.add(gl.LINES, f32.Vec4{0.2, 1, 0.2, 1}, f32.Vec3{}, f32.Vec3{0, 1, 0})
	b.add(gl.LINES, f32.Vec4{0.2, 0.2, 1, 1}, f32.Vec3{}, f32.Vec3{0, 0, 1})
}

func (b *batch) point(p pga.Point, color f32.Vec4) {
	if !p.IsValid() {
		return
	}
	b.add(gl.POINTS, color, p.Vec3())
}

func (b *batch) line(l pga.Line, color f32.Vec4) {
	if !l.IsValid() {
		return
	}
	u := l.Unitized()
	a := u.Anchor()
	d := u.Weight().Vec3()
	b.add(gl.LINES, color, sub3fv(a, scale3fv(d, 10)), add3fv(a, scale3fv(d, 10)))
}

func (b *batch) direction(d pga.Direction, color f32.Vec4) {
	if !d.IsValid() {
		return
	}
	b.add(gl.LINES, color, f32.Vec3{}, d.Vec3())
}

func (b *batch) plane(a pga.Plane, color f32.Vec4) {
	if !a.IsValid() {
		return
	}
	u := a.Unitized()
	anchor := u.Anchor()
	n := u.Weight().Vec3()
	t := cross3fv(n, f32.Vec3{0, 1, 0})
	if dot3fv(t, t) < 1e-4 {
		t = cross3fv(n, f32.Vec3{1, 0, 0})
	}
	t = normalize3fv(t)
	s := cross3fv(n, t)
	const ext = 2.5
	c0 := add3fv(anchor, scale3fv(add3fv(t, s), ext))
	c1 := add3fv(anchor, scale3fv(sub3fv(s, t), ext))
	c2 := add3fv(anchor, scale3fv(add3fv(t, s), -ext))
	c3 := add3fv(anchor, scale3fv(sub3fv(t, s), ext))
	fill := color
	fill[3] = colorPlane[3]
	b.add(gl.TRIANGLES, fill, c0, c1, c2, c2, c3, c0)
	b.add(gl.LINE_LOOP, color, c0, c1, c2, c3)
	// Normal poking out of the anchor.
	b.add(gl.LINES, color, anchor, add3fv(anchor, n))
}

func buildScene(s scene.Scene) *batch {
	b := &batch{}
	b.grid()
	for i, p := range s.Points {
		b.point(p, entityColor(i, s.InputPoints))
	}
	for _, l := range s.Lines {
		b.line(l, colorComputed)
	}
	for i, a := range s.Planes {
		b.plane(a, entityColor(i, s.InputPlanes))
	}
	for i, d := range s.Directions {
		b.direction(d, entityColor(i, s.InputDirections))
	}
	return b
}

// orbit is the camera state: spherical angles about the target.
type orbit struct {
	yaw, pitch float32
	radius     float32

	dragging   bool
	lastX      float64
	lastY      float64
}

func (o *orbit) eye() f32.Vec3 {
	cy, sy := cosf(o.yaw), sinf(o.yaw)
	cp, sp := cosf(o.pitch), sinf(o.pitch)
	return f32.Vec3{o.radius * cp * sy, o.radius * sp, o.radius * cp * cy}
}

func compile(kind uint32, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		info := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(info))
		return 0, fmt.Errorf("compile shader: %s", info)
	}
	return shader, nil
}

func buildProgram() (uint32, error) {
	vs, err := compile(gl.VERTEX_SHADER, vsrc)
	if err != nil {
		return 0, err
	}
	fs, err := compile(gl.FRAGMENT_SHADER, fsrc)
	if err != nil {
		return 0, err
	}
	prg := gl.CreateProgram()
	gl.AttachShader(prg, vs)
	gl.AttachShader(prg, fs)
	gl.LinkProgram(prg)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prg, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prg, gl.INFO_LOG_LENGTH, &n)
		info := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prg, n, nil, gl.Str(info))
		return 0, fmt.Errorf("link program: %s", info)
	}
	return prg, nil
}

func main() {
	flag.Parse()

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*flagWidth, *flagHeight, "pgaview", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	prg, err := buildProgram()
	if err != nil {
		log.Fatal(err)
	}
	gl.UseProgram(prg)
	mvpLoc := gl.GetUniformLocation(prg, gl.Str("mvp\x00"))
	colorLoc := gl.GetUniformLocation(prg, gl.Str("color\x00"))
	vertLoc := uint32(gl.GetAttribLocation(prg, gl.Str("vert\x00")))

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.EnableVertexAttribArray(vertLoc)
	gl.VertexAttribPointer(vertLoc, 3, gl.FLOAT, false, 0, nil)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.08, 0.08, 0.1, 1)

	scenes := scene.Catalogue()
	index := *flagScene
	if index < 0 || index >= len(scenes) {
		index = 0
	}

	var b *batch
	load := func() {
		b = buildScene(scenes[index])
		gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*4, gl.Ptr(b.verts), gl.DYNAMIC_DRAW)
		window.SetTitle(fmt.Sprintf("pgaview %d/%d: %s", index+1, len(scenes), scenes[index].Name))
		log.Printf("scene %d: %s", index, scenes[index].Name)
	}
	load()

	cam := &orbit{yaw: 0.6, pitch: 0.5, radius: 8}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyRight:
			index = (index + 1) % len(scenes)
			load()
		case glfw.KeyLeft:
			index = (index + len(scenes) - 1) % len(scenes)
			load()
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		cam.dragging = action == glfw.Press
		cam.lastX, cam.lastY = w.GetCursorPos()
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !cam.dragging {
			return
		}
		cam.yaw -= float32(x-cam.lastX) * 0.01
		cam.pitch += float32(y-cam.lastY) * 0.01
		if cam.pitch > 1.5 {
			cam.pitch = 1.5
		}
		if cam.pitch < -1.5 {
			cam.pitch = -1.5
		}
		cam.lastX, cam.lastY = x, y
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		cam.radius -= float32(dy) * 0.5
		if cam.radius < 2 {
			cam.radius = 2
		}
		if cam.radius > 40 {
			cam.radius = 40
		}
	})

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		ar := float32(fw) / float32(fh)
		proj := perspective16fv(0.8, ar, 0.1, 100)
		view := lookat16fv(cam.eye(), f32.Vec3{}, f32.Vec3{0, 1, 0})
		mvp := mul16fv(view, proj)
		gl.UniformMatrix4fv(mvpLoc, 1, false, &mvp[0])

		for _, d := range b.draws {
			gl.Uniform4f(colorLoc, d.color[0], d.color[1], d.color[2], d.color[3])
			gl.DrawArrays(d.mode, d.first, d.count)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
