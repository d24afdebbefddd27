// Command moebiusgrid renders a Möbius-transformed grid pattern of the
// complex plane to a PNG file.
//
// Each pixel is mapped to a point of the complex plane (the imaginary axis
// points up, so pixel rows are flipped), pushed through the transform, and
// classified against the grid predicates. Vertical bands render red,
// horizontal bands blue, their overlap purple, concentric circles green,
// angular rays yellow, and everything else is transparent.
//
// The transform coefficients are given in Go complex syntax, e.g.
//
//	moebiusgrid -a 1 -b -1 -c 1 -d 1+0.5i -o grid.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strconv"
	"sync"

	"honnef.co/go/moebius"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("moebiusgrid: ")

	var (
		a = flag.String("a", "1", "coefficient a")
		b = flag.String("b", "-1", "coefficient b")
		c = flag.String("c", "1", "coefficient c")
		d = flag.String("d", "1", "coefficient d")

		width  = flag.Int("width", 800, "image width in pixels")
		height = flag.Int("height", 800, "image height in pixels")
		xmin   = flag.Float64("xmin", -2, "left edge of the sampled plane")
		xmax   = flag.Float64("xmax", 2, "right edge of the sampled plane")
		ymin   = flag.Float64("ymin", -2, "bottom edge of the sampled plane")
		ymax   = flag.Float64("ymax", 2, "top edge of the sampled plane")

		period    = flag.Float64("period", 0.2, "spacing between grid features")
		thickness = flag.Float64("thickness", 0.01, "half-width of a grid band")

		out = flag.String("o", "grid.png", "output file")
	)
	flag.Parse()

	tr, err := parseTransform(*a, *b, *c, *d)
	if err != nil {
		log.Fatal(err)
	}

	img := render(tr, *width, *height, *xmin, *xmax, *ymin, *ymax, *period, *thickness)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func parseTransform(a, b, c, d string) (moebius.Transform, error) {
	var coeffs [4]complex128
	for i, s := range []string{a, b, c, d} {
		v, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return moebius.Transform{}, fmt.Errorf("bad coefficient %q: %v", s, err)
		}
		coeffs[i] = v
	}
	return moebius.New(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
}

// render samples a width×height grid over the given rectangle of the
// complex plane and colors every point by where its image under tr falls in
// the grid pattern. Rows are independent and rendered concurrently.
func render(tr moebius.Transform, width, height int, xmin, xmax, ymin, ymax, period, thickness float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var wg sync.WaitGroup
	for py := 0; py < height; py++ {
		py := py
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Screen rows grow downward while the imaginary axis grows
			// upward; row 0 is the top edge of the rectangle.
			y := ymax - float64(py)/float64(height)*(ymax-ymin)
			row := make([]complex128, width)
			for px := range row {
				x := xmin + float64(px)/float64(width)*(xmax-xmin)
				row[px] = complex(x, y)
			}
			for px, w := range tr.ApplyBatch(row) {
				img.SetRGBA(px, py, pixelColor(w, period, thickness))
			}
		}()
	}
	wg.Wait()

	return img
}

// pixelColor layers the grid predicates into a color. The layering order is
// a rendering policy of this tool, not a property of the predicates.
func pixelColor(z complex128, period, thickness float64) color.RGBA {
	vertical := moebius.VerticalGrid(z, period, thickness)
	horizontal := moebius.HorizontalGrid(z, period, thickness)

	switch {
	case vertical && horizontal:
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	case vertical:
		return color.RGBA{R: 0xff, A: 0xff}
	case horizontal:
		return color.RGBA{B: 0xff, A: 0xff}
	case moebius.RadialGrid(z, period, thickness):
		return color.RGBA{G: 0xa0, A: 0xff}
	case moebius.AngularGrid(z, period, thickness):
		return color.RGBA{R: 0xf0, G: 0xc8, A: 0xff}
	}
	return color.RGBA{}
}
