// Command softras-demo renders a textured backdrop and a wireframe cube with
// the softras core and writes the frame to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/softras"
	"github.com/gogpu/softras/framebuffer"
	"github.com/gogpu/softras/math3d"
	"github.com/gogpu/softras/shader"
	"github.com/gogpu/softras/texture"
)

func main() {
	var (
		width   = flag.Int("width", 320, "frame width")
		height  = flag.Int("height", 240, "frame height")
		output  = flag.String("output", "softras.png", "output file")
		fov     = flag.Float64("fov", 60, "vertical field of view in degrees")
		scale   = flag.Int("scale", 1, "nearest-neighbour upscale factor")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		softras.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	checker, err := newChecker(8, 8)
	if err != nil {
		log.Fatalf("Failed to create texture: %v", err)
	}

	fb, err := newFrame(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create framebuffer: %v", err)
	}
	fb.Clear(framebuffer.NewPass(framebuffer.WithClearColor(0.05, 0.05, 0.1, 1)))

	ctx := shader.New()
	if err := drawBackdrop(fb, checker, ctx); err != nil {
		log.Fatalf("Failed to draw backdrop: %v", err)
	}
	ctx.Clear()

	aspect := float32(*width) / float32(*height)
	mvp := math3d.Perspective(math3d.Radians(float32(*fov)), aspect, 0.1, 100).
		Mul(math3d.LookAt(math3d.V3(2.5, 2, 3.5), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))).
		Mul(math3d.RotateAbout(math3d.Radians(30), math3d.V3(1, 1, 0)))
	if err := drawCube(fb, ctx, mvp); err != nil {
		log.Fatalf("Failed to draw cube: %v", err)
	}

	var img image.Image = fb.Image()
	if *scale > 1 {
		b := img.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()**scale, b.Dy()**scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Frame saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

// newChecker builds an sRGB checkerboard.
func newChecker(w, h int) (*texture.Texture, error) {
	tex, err := texture.New(texture.SRGB8A8, w, h)
	if err != nil {
		return nil, err
	}
	light := math3d.V4(0.8, 0.8, 0.75, 1)
	dark := math3d.V4(0.2, 0.25, 0.35, 1)
	for y := range h {
		for x := range w {
			c := dark
			if (x+y)%2 == 0 {
				c = light
			}
			tex.SetTexel(x, y, c)
		}
	}
	return tex, nil
}

func newFrame(w, h int) (*framebuffer.FrameBuffer, error) {
	color, err := texture.New(texture.RGBA8, w, h)
	if err != nil {
		return nil, err
	}
	depth, err := texture.New(texture.DepthFloat, w, h)
	if err != nil {
		return nil, err
	}
	fb := framebuffer.New()
	if _, err := fb.Attach(framebuffer.Color, color); err != nil {
		return nil, err
	}
	if _, err := fb.Attach(framebuffer.Depth, depth); err != nil {
		return nil, err
	}
	return fb, nil
}

// drawBackdrop covers the lower half of the frame with the texture, passing
// the UV coordinate and a fade factor through the shader context the way a
// rasterizer hands varyings to the fragment stage.
func drawBackdrop(fb *framebuffer.FrameBuffer, tex *texture.Texture, ctx *shader.Context) error {
	uv, err := ctx.Alloc(shader.KindVec2)
	if err != nil {
		return err
	}
	defer ctx.Release(shader.KindVec2, uv) //nolint:errcheck // slot allocated above
	fade, err := ctx.Alloc(shader.KindScalar)
	if err != nil {
		return err
	}
	defer ctx.Release(shader.KindScalar, fade) //nolint:errcheck // slot allocated above

	w, h := fb.Size()
	top := h / 2
	for y := top; y < h; y++ {
		for x := range w {
			// Vertex stage: interpolate varyings.
			t := float32(y-top) / float32(h-top)
			*ctx.Vec2(uv) = math3d.V2(float32(x)/float32(w), t)
			*ctx.Scalar(fade) = math3d.Lerp(0.3, 1, t)

			// Fragment stage: read them back.
			st := *ctx.Vec2(uv)
			c := tex.Sample(st.X, st.Y)
			rgb := c.Vec3().MulScalar(*ctx.Scalar(fade))
			fb.WriteColor(x, y, rgb.Vec4(1))
		}
	}
	return nil
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// drawCube projects the corners of a unit cube and plots its edges with a
// depth test.
func drawCube(fb *framebuffer.FrameBuffer, ctx *shader.Context, mvp math3d.Mat4) error {
	a, err := ctx.Alloc(shader.KindVec4)
	if err != nil {
		return err
	}
	defer ctx.Release(shader.KindVec4, a) //nolint:errcheck // slot allocated above
	b, err := ctx.Alloc(shader.KindVec4)
	if err != nil {
		return err
	}
	defer ctx.Release(shader.KindVec4, b) //nolint:errcheck // slot allocated above

	var corners [8]math3d.Vec4
	var colors [8]math3d.Vec4
	for i := range corners {
		x, y, z := float32(i&1), float32(i>>1&1), float32(i>>2&1)
		corners[i] = mvp.MulVec(math3d.V4(x-0.5, y-0.5, z-0.5, 1))
		colors[i] = math3d.V4(x, y, z, 1)
	}

	w, h := fb.Size()
	for _, e := range cubeEdges {
		*ctx.Vec4(a) = corners[e[0]]
		*ctx.Vec4(b) = corners[e[1]]
		pa := toScreen(ctx.Vec4(a).PerspectiveDivide(), w, h)
		pb := toScreen(ctx.Vec4(b).PerspectiveDivide(), w, h)

		steps := int(max(abs(pb.X-pa.X), abs(pb.Y-pa.Y))) + 1
		for s := range steps + 1 {
			t := float32(s) / float32(steps)
			p := pa.Lerp(pb, t)
			x, y := pixelOf(p)
			if fb.DepthTest(x, y, p.Z) {
				fb.WriteColor(x, y, colors[e[0]].Lerp(colors[e[1]], t))
			}
		}
	}
	return nil
}

// toScreen maps normalized device coordinates to pixel space with depth in
// [0,1] and y pointing down.
func toScreen(ndc math3d.Vec3, w, h int) math3d.Vec3 {
	return math3d.V3(
		(ndc.X*0.5+0.5)*float32(w),
		(0.5-ndc.Y*0.5)*float32(h),
		ndc.Z*0.5+0.5,
	)
}

// pixelOf returns the pixel containing screen point p. Points left of or
// above the frame map to negative indices.
func pixelOf(p math3d.Vec3) (int, int) {
	return int(math.Floor(float64(p.X))), int(math.Floor(float64(p.Y)))
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
