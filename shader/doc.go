// Package shader provides the scratch register file that carries varyings
// between pipeline stages.
//
// A Context holds four fixed-capacity pools, one per value kind. Slots can be
// addressed directly by index, like a register bank:
//
//	ctx := shader.New()
//	*ctx.Vec2(0) = math3d.V2(u, v)
//	uv := *ctx.Vec2(0)
//
// or handed out by the allocator, which tracks free slots per kind:
//
//	i, err := ctx.Alloc(shader.KindVec3)
//	if err != nil {
//		return err
//	}
//	defer ctx.Release(shader.KindVec3, i)
//	*ctx.Vec3(i) = normal
//
// A Context is not safe for concurrent use. Create one per shading
// invocation, or reuse one after Clear.
package shader
