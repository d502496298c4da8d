// Package terrain is the CPU form of the terrain vertex stage: classic 3D
// Perlin noise and the mountain height rule that displaces the plane.
package terrain

import "math"

type vec3 [3]float64
type vec4 [4]float64

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// mod follows GLSL: x - y*floor(x/y), so results are never negative
func mod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// step follows GLSL: 0 below edge, 1 otherwise
func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

func permute(v vec4) vec4 {
	for i := range v {
		v[i] = mod((v[i]*34+1)*v[i], 289)
	}
	return v
}

func taylorInvSqrt(r float64) float64 {
	return 1.79284291400159 - 0.85373472095314*r
}

func (a vec4) add(b vec4) vec4 {
	return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func splat(x float64) vec4 { return vec4{x, x, x, x} }

func dot(a, b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func scale(a vec3, s float64) vec3 {
	return vec3{a[0] * s, a[1] * s, a[2] * s}
}

// gradients turns four lattice hashes into four unit-ish gradient vectors
func gradients(ixy vec4) (gx, gy, gz vec4) {
	for i := range ixy {
		x := ixy[i] / 7
		y := fract(math.Floor(x)/7) - 0.5
		x = fract(x)
		z := 0.5 - math.Abs(x) - math.Abs(y)
		s := step(z, 0)
		x -= s * (step(0, x) - 0.5)
		y -= s * (step(0, y) - 0.5)
		gx[i], gy[i], gz[i] = x, y, z
	}
	return gx, gy, gz
}

// CNoise is Stefan Gustavson's classic 3D Perlin noise, scaled to roughly
// [-1, 1]. It is zero on every integer lattice point.
func CNoise(x, y, z float64) float64 {
	pi0 := vec3{math.Floor(x), math.Floor(y), math.Floor(z)}
	pi1 := vec3{pi0[0] + 1, pi0[1] + 1, pi0[2] + 1}
	for i := range pi0 {
		pi0[i] = mod(pi0[i], 289)
		pi1[i] = mod(pi1[i], 289)
	}
	pf0 := vec3{fract(x), fract(y), fract(z)}
	pf1 := vec3{pf0[0] - 1, pf0[1] - 1, pf0[2] - 1}

	ix := vec4{pi0[0], pi1[0], pi0[0], pi1[0]}
	iy := vec4{pi0[1], pi0[1], pi1[1], pi1[1]}

	ixy := permute(permute(ix).add(iy))
	ixy0 := permute(ixy.add(splat(pi0[2])))
	ixy1 := permute(ixy.add(splat(pi1[2])))

	gx0, gy0, gz0 := gradients(ixy0)
	gx1, gy1, gz1 := gradients(ixy1)

	g000 := vec3{gx0[0], gy0[0], gz0[0]}
	g100 := vec3{gx0[1], gy0[1], gz0[1]}
	g010 := vec3{gx0[2], gy0[2], gz0[2]}
	g110 := vec3{gx0[3], gy0[3], gz0[3]}
	g001 := vec3{gx1[0], gy1[0], gz1[0]}
	g101 := vec3{gx1[1], gy1[1], gz1[1]}
	g011 := vec3{gx1[2], gy1[2], gz1[2]}
	g111 := vec3{gx1[3], gy1[3], gz1[3]}

	g000 = scale(g000, taylorInvSqrt(dot(g000, g000)))
	g010 = scale(g010, taylorInvSqrt(dot(g010, g010)))
	g100 = scale(g100, taylorInvSqrt(dot(g100, g100)))
	g110 = scale(g110, taylorInvSqrt(dot(g110, g110)))
	g001 = scale(g001, taylorInvSqrt(dot(g001, g001)))
	g011 = scale(g011, taylorInvSqrt(dot(g011, g011)))
	g101 = scale(g101, taylorInvSqrt(dot(g101, g101)))
	g111 = scale(g111, taylorInvSqrt(dot(g111, g111)))

	n000 := dot(g000, pf0)
	n100 := dot(g100, vec3{pf1[0], pf0[1], pf0[2]})
	n010 := dot(g010, vec3{pf0[0], pf1[1], pf0[2]})
	n110 := dot(g110, vec3{pf1[0], pf1[1], pf0[2]})
	n001 := dot(g001, vec3{pf0[0], pf0[1], pf1[2]})
	n101 := dot(g101, vec3{pf1[0], pf0[1], pf1[2]})
	n011 := dot(g011, vec3{pf0[0], pf1[1], pf1[2]})
	n111 := dot(g111, pf1)

	fx, fy, fz := fade(pf0[0]), fade(pf0[1]), fade(pf0[2])
	nz0 := lerp(n000, n001, fz)
	nz1 := lerp(n100, n101, fz)
	nz2 := lerp(n010, n011, fz)
	nz3 := lerp(n110, n111, fz)
	ny0 := lerp(nz0, nz2, fy)
	ny1 := lerp(nz1, nz3, fy)
	return 2.2 * lerp(ny0, ny1, fx)
}
