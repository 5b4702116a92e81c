package main

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Column-major matrix helpers for the camera.

func mul16fv(a, b f32.Mat4) f32.Mat4 {
	// +0 +1 +2 +3
	// +4 +5 +6 +7
	// +8 +9 10 11
	// 12 13 14 15
	return f32.Mat4{
		a[+0]*b[+0] + a[+1]*b[+4] + a[+2]*b[+8] + a[+3]*b[12],
		a[+0]*b[+1] + a[+1]*b[+5] + a[+2]*b[+9] + a[+3]*b[13],
		a[+0]*b[+2] + a[+1]*b[+6] + a[+2]*b[10] + a[+3]*b[14],
		a[+0]*b[+3] + a[+1]*b[+7] + a[+2]*b[11] + a[+3]*b[15],

		a[+4]*b[+0] + a[+5]*b[+4] + a[+6]*b[+8] + a[+7]*b[12],
		a[+4]*b[+1] + a[+5]*b[+5] + a[+6]*b[+9] + a[+7]*b[13],
		a[+4]*b[+2] + a[+5]*b[+6] + a[+6]*b[10] + a[+7]*b[14],
		a[+4]*b[+3] + a[+5]*b[+7] + a[+6]*b[11] + a[+7]*b[15],

		a[+8]*b[+0] + a[+9]*b[+4] + a[10]*b[+8] + a[11]*b[12],
		a[+8]*b[+1] + a[+9]*b[+5] + a[10]*b[+9] + a[11]*b[13],
		a[+8]*b[+2] + a[+9]*b[+6] + a[10]*b[10] + a[11]*b[14],
		a[+8]*b[+3] + a[+9]*b[+7] + a[10]*b[11] + a[11]*b[15],

		a[12]*b[+0] + a[13]*b[+4] + a[14]*b[+8] + a[15]*b[12],
		a[12]*b[+1] + a[13]*b[+5] + a[14]*b[+9] + a[15]*b[13],
		a[12]*b[+2] + a[13]*b[+6] + a[14]*b[10] + a[15]*b[14],
		a[12]*b[+3] + a[13]*b[+7] + a[14]*b[11] + a[15]*b[15],
	}
}

func perspective16fv(fovy, aspect, near, far float32) f32.Mat4 {
	f := float32(1 / math.Tan(float64(fovy)/2))
	d := near - far
	return f32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / d, -1,
		0, 0, 2 * far * near / d, 0,
	}
}

func lookat16fv(eye, center, up f32.Vec3) f32.Mat4 {
	f := normalize3fv(sub3fv(center, eye))
	s := normalize3fv(cross3fv(f, up))
	u := cross3fv(s, f)
	return f32.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-dot3fv(s, eye), -dot3fv(u, eye), dot3fv(f, eye), 1,
	}
}

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }

func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }

func sub3fv(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add3fv(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale3fv(a f32.Vec3, s float32) f32.Vec3 {
	return f32.Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func dot3fv(a, b f32.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3fv(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3fv(a f32.Vec3) f32.Vec3 {
	n := float32(math.Sqrt(float64(dot3fv(a, a))))
	if n == 0 {
		return f32.Vec3{}
	}
	return scale3fv(a, 1/n)
}
