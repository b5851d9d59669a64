// Package softras is the data and math foundation of a software 3D rasterizer.
//
// # Overview
//
// softras supplies the pieces a scan-conversion stage builds on: linear
// algebra, color space conversion, format-aware textures, framebuffers with
// color and depth attachments, and a scratch register file for carrying
// interpolated attributes between pipeline stages.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/softras/framebuffer"
//		"github.com/gogpu/softras/math3d"
//		"github.com/gogpu/softras/texture"
//	)
//
//	color, _ := texture.New(texture.RGBA8, 640, 480)
//	depth, _ := texture.New(texture.DepthFloat, 640, 480)
//
//	fb := framebuffer.New()
//	_, _ = fb.Attach(framebuffer.Color, color)
//	_, _ = fb.Attach(framebuffer.Depth, depth)
//
//	pass := framebuffer.NewPass(framebuffer.WithClearColor(0.1, 0.1, 0.1, 1))
//	fb.Clear(pass)
//
//	proj := math3d.Perspective(math3d.Pi/2, 640.0/480.0, 0.1, 100)
//	view := math3d.LookAt(math3d.V3(0, 0, 3), math3d.Vec3{}, math3d.V3(0, 1, 0))
//	clip := proj.Mul(view).MulVec(math3d.V4(0, 0, 0, 1))
//
// # Architecture
//
// The library is organized into:
//   - math3d: Vec2/Vec3/Vec4, Mat3/Mat4, camera and projection builders
//   - colorspace: byte/unit and linear/sRGB scalar conversions
//   - texture: pixel formats, pixel buffers, sampling
//   - framebuffer: render targets and per-pass clear state
//   - shader: fixed-capacity varying slots
//
// # Coordinate System
//
// Right-handed world space. Cameras look down -Z; projection matrices map
// view-space depth into clip space with w carrying the perspective divisor.
// Texture coordinates put (0,0) at the first byte of the pixel buffer.
package softras

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
