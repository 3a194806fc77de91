package kernel

import "math"

// KaiserBessel is the Kaiser-Bessel interpolation kernel. The shape
// parameter passed to Evaluate is beta.
//
// The returned weight is the unnormalized modified Bessel function
// I0(beta*sqrt(1-u^2)) with u = 2x/width. Unlike the Kaiser window used for
// spectral analysis, the weight is not divided by I0(beta); the apodization
// correction assumes the unnormalized form.
type KaiserBessel struct{}

func (KaiserBessel) Evaluate(x, width, beta float64) float64 {
	u := 2 * x / width
	if u < -1 || u > 1 {
		return 0
	}

	return besselI0(beta * math.Sqrt(1-u*u))
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
