// Package effects holds the GL-free parameters of the post-processing passes:
// bloom kernels and mip chain layout, and the glitch scheduler.
package effects

import "math"

// BloomMips is the number of blur levels in the bloom chain
const BloomMips = 5

// BloomKernelRadii are the separable blur radii, one per mip
var BloomKernelRadii = [BloomMips]int{3, 5, 7, 9, 11}

// BloomFactors weight each mip in the composite step
var BloomFactors = [BloomMips]float32{1.0, 0.8, 0.6, 0.4, 0.2}

// HighPassSmoothWidth is the soft knee above the luminosity threshold
const HighPassSmoothWidth = 0.01

// GaussianCoefficients returns the one-sided normal distribution weights for
// a blur of the given radius, sigma = radius.
func GaussianCoefficients(kernelRadius int) []float32 {
	sigma := float64(kernelRadius)
	out := make([]float32, kernelRadius)
	for i := range out {
		x := float64(i)
		out[i] = float32(0.39894 * math.Exp(-0.5*x*x/(sigma*sigma)) / sigma)
	}
	return out
}

// MipSize returns the target size of bloom mip i for a full-resolution surface.
// Level 0 is half resolution; sizes never drop below one pixel.
func MipSize(width, height, i int) (int, int) {
	w := int(math.Round(float64(width) / 2))
	h := int(math.Round(float64(height) / 2))
	for j := 0; j < i; j++ {
		w = int(math.Round(float64(w) / 2))
		h = int(math.Round(float64(h) / 2))
	}
	return max(w, 1), max(h, 1)
}

// lerpBloomFactor pulls a mip weight toward its mirror (1.2 - f) as radius grows
func lerpBloomFactor(factor, radius float32) float32 {
	mirror := 1.2 - factor
	return factor*(1-radius) + mirror*radius
}

// CompositeWeights returns the effective per-mip multipliers of the composite
// shader for a strength and radius.
func CompositeWeights(strength, radius float32) [BloomMips]float32 {
	var w [BloomMips]float32
	for i, f := range BloomFactors {
		w[i] = strength * lerpBloomFactor(f, radius)
	}
	return w
}
