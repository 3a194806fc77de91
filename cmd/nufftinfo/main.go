// Command nufftinfo prints grid geometry and kernel parameters for
// non-uniform FFT plans.
//
// Usage:
//
//	nufftinfo [flags]
//
// For a given grid shape and parameter set it reports the derived
// Kaiser-Bessel shape parameter, the oversampled axis lengths, and the
// per-axis coordinate mapping and apodization range. With -check it also
// runs a randomized forward/adjoint consistency probe.
//
// Examples:
//
//	nufftinfo -shape 256x256
//	nufftinfo -shape 128x128x64 -oversamp 1.5 -width 6
//	nufftinfo -shape 64x64 -check
//	nufftinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-nufft/internal/testutil"
	"github.com/cwbudde/algo-nufft/kernel"
	"github.com/cwbudde/algo-nufft/narray"
	"github.com/cwbudde/algo-nufft/nufft"
)

type kernelEntry struct {
	name string
	make func() (kernel.Kernel, error)
}

var registry = []kernelEntry{
	{"kaiser-bessel", func() (kernel.Kernel, error) { return kernel.KaiserBessel{}, nil }},
	{"spline0", func() (kernel.Kernel, error) { return kernel.NewSpline(0) }},
	{"spline1", func() (kernel.Kernel, error) { return kernel.NewSpline(1) }},
	{"spline2", func() (kernel.Kernel, error) { return kernel.NewSpline(2) }},
}

func main() {
	shapeFlag := flag.String("shape", "256x256", "grid shape, axis lengths separated by 'x'")
	oversamp := flag.Float64("oversamp", nufft.DefaultOversampling, "grid oversampling factor (>= 1)")
	width := flag.Float64("width", nufft.DefaultWidth, "kernel full width in oversampled-grid units")
	kernelName := flag.String("kernel", "kaiser-bessel", "interpolation kernel (use -list to see available)")
	check := flag.Bool("check", false, "run a randomized forward/adjoint consistency probe")
	points := flag.Int("points", 1024, "number of sample coordinates for -check")
	list := flag.Bool("list", false, "list available interpolation kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nufftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints grid geometry and kernel parameters for non-uniform FFT plans.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nufftinfo -shape 256x256\n")
		fmt.Fprintf(os.Stderr, "  nufftinfo -shape 128x128x64 -oversamp 1.5 -width 6\n")
		fmt.Fprintf(os.Stderr, "  nufftinfo -shape 64x64 -check\n")
		fmt.Fprintf(os.Stderr, "  nufftinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	shape, err := parseShape(*shapeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	k, err := resolveKernel(*kernelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tr, err := nufft.New(
		nufft.WithOversampling(*oversamp),
		nufft.WithWidth(*width),
		nufft.WithKernel(k),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printGeometry(tr, shape, *kernelName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *check {
		if err := runCheck(tr, shape, *points); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveKernel(name string) (kernel.Kernel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e.make()
		}
	}
	return nil, fmt.Errorf("unknown kernel %q (use -list to see available)", name)
}

func parseShape(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	shape := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid shape %q: axis lengths must be positive integers separated by 'x'", s)
		}
		shape = append(shape, n)
	}
	return shape, nil
}

func printGeometry(tr *nufft.Transform, shape []int, kernelName string) error {
	d := len(shape)
	osShape, err := nufft.OversampledShape(shape, d, tr.Oversampling())
	if err != nil {
		return err
	}

	taps := int(tr.Width()) + 1
	perPoint := 1
	for i := 0; i < d; i++ {
		perPoint *= taps
	}

	fmt.Printf("Oversampling: %g\n", tr.Oversampling())
	fmt.Printf("Kernel:       %s, width %g (%d taps per axis, %d per point)\n",
		kernelName, tr.Width(), taps, perPoint)
	fmt.Printf("Beta:         %.4f\n\n", tr.Beta())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Axis\tN\tOversampled\tScale\tShift\tApod Min\tApod Max\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t-\t-----------\t-----\t-----\t--------\t--------\n"); err != nil {
		return err
	}

	for i, n := range shape {
		osn := osShape[i]

		win, err := nufft.ApodizationWindow(n, osn, tr.Width(), tr.Beta())
		if err != nil {
			return err
		}
		lo, hi := win[0], win[0]
		for _, w := range win[1:] {
			lo = math.Min(lo, w)
			hi = math.Max(hi, w)
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%d\t%.6f\t%.6f\n",
			i, n, osn, float64(osn)/float64(n), osn/2, lo, hi); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func runCheck(tr *nufft.Transform, shape []int, points int) error {
	size := 1
	for _, n := range shape {
		size *= n
	}

	x, err := narray.FromSlice(testutil.RandomComplex(1, size), shape...)
	if err != nil {
		return err
	}
	coord, err := narray.FromSlice(testutil.RandomCoords(2, points, shape), points, len(shape))
	if err != nil {
		return err
	}
	y, err := narray.FromSlice(testutil.RandomComplex(3, points), points)
	if err != nil {
		return err
	}

	fx, err := tr.Forward(x, coord)
	if err != nil {
		return err
	}
	ay, err := tr.Adjoint(y, coord, shape)
	if err != nil {
		return err
	}

	lhs, err := testutil.Dot(fx.Data(), y.Data())
	if err != nil {
		return err
	}
	rhs, err := testutil.Dot(x.Data(), ay.Data())
	if err != nil {
		return err
	}

	fmt.Printf("\nConsistency check (%d random points):\n", points)
	fmt.Printf("  |<Fx,y> - <x,F'y>| / |<Fx,y>| = %.3g\n", cmplx.Abs(lhs-rhs)/cmplx.Abs(lhs))

	// Forward on the full integer grid against the unitary centered FFT.
	ref, err := nufft.FFT(x, nufft.WithNorm(nufft.NormOrtho))
	if err != nil {
		return err
	}
	grid, err := narray.FromSlice(testutil.GridCoords(shape), size, len(shape))
	if err != nil {
		return err
	}
	onGrid, err := tr.Forward(x, grid)
	if err != nil {
		return err
	}

	diff := onGrid.Clone()
	for i, v := range ref.Data() {
		diff.Data()[i] -= v
	}

	maxDiff := sliceMax(narray.Magnitude(diff).Data())
	maxRef := sliceMax(narray.Magnitude(ref).Data())
	fmt.Printf("  max grid error vs centered FFT = %.3g (relative)\n", maxDiff/maxRef)

	return nil
}

func sliceMax(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, x)
	}
	return m
}
