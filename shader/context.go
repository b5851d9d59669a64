package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/softras/math3d"
)

// DefaultSlots is the per-kind capacity used when no option overrides it.
const DefaultSlots = 2

// Allocator errors.
var (
	ErrNoFreeSlot       = errors.New("shader: no free slot")
	ErrSlotOutOfRange   = errors.New("shader: slot index out of range")
	ErrSlotNotAllocated = errors.New("shader: slot not allocated")
	ErrUnknownKind      = errors.New("shader: unknown slot kind")
)

// Kind selects one of the four slot pools.
type Kind uint8

const (
	KindScalar Kind = iota
	KindVec2
	KindVec3
	KindVec4
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindVec2:
		return "Vec2"
	case KindVec3:
		return "Vec3"
	case KindVec4:
		return "Vec4"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Option configures a Context during creation.
type Option func(*options)

type options struct {
	slots [4]int
}

// WithScalarSlots sets the number of scalar slots. Negative values are
// treated as zero.
func WithScalarSlots(n int) Option {
	return func(o *options) { o.slots[KindScalar] = max(n, 0) }
}

// WithVec2Slots sets the number of Vec2 slots.
func WithVec2Slots(n int) Option {
	return func(o *options) { o.slots[KindVec2] = max(n, 0) }
}

// WithVec3Slots sets the number of Vec3 slots.
func WithVec3Slots(n int) Option {
	return func(o *options) { o.slots[KindVec3] = max(n, 0) }
}

// WithVec4Slots sets the number of Vec4 slots.
func WithVec4Slots(n int) Option {
	return func(o *options) { o.slots[KindVec4] = max(n, 0) }
}

// Context is a register file of scalar and vector slots.
type Context struct {
	scalars pool[float32]
	vec2s   pool[math3d.Vec2]
	vec3s   pool[math3d.Vec3]
	vec4s   pool[math3d.Vec4]
}

// New creates a Context with DefaultSlots slots of each kind unless options
// say otherwise. All values start at zero and all slots start free.
func New(opts ...Option) *Context {
	o := options{slots: [4]int{DefaultSlots, DefaultSlots, DefaultSlots, DefaultSlots}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		scalars: newPool[float32](o.slots[KindScalar]),
		vec2s:   newPool[math3d.Vec2](o.slots[KindVec2]),
		vec3s:   newPool[math3d.Vec3](o.slots[KindVec3]),
		vec4s:   newPool[math3d.Vec4](o.slots[KindVec4]),
	}
}

// Scalar returns a pointer to scalar slot i. Access does not consult the
// allocator. It panics if i is out of range.
func (c *Context) Scalar(i int) *float32 {
	return &c.scalars.values[i]
}

// Vec2 returns a pointer to Vec2 slot i. It panics if i is out of range.
func (c *Context) Vec2(i int) *math3d.Vec2 {
	return &c.vec2s.values[i]
}

// Vec3 returns a pointer to Vec3 slot i. It panics if i is out of range.
func (c *Context) Vec3(i int) *math3d.Vec3 {
	return &c.vec3s.values[i]
}

// Vec4 returns a pointer to Vec4 slot i. It panics if i is out of range.
func (c *Context) Vec4(i int) *math3d.Vec4 {
	return &c.vec4s.values[i]
}

// Alloc reserves a free slot of kind k and returns its index. The lowest
// free index is handed out first on a fresh or cleared Context; afterwards
// the most recently released slot is reused first. The slot's stored value
// is whatever was last written to it.
func (c *Context) Alloc(k Kind) (int, error) {
	var (
		i  int
		ok bool
	)
	switch k {
	case KindScalar:
		i, ok = c.scalars.alloc()
	case KindVec2:
		i, ok = c.vec2s.alloc()
	case KindVec3:
		i, ok = c.vec3s.alloc()
	case KindVec4:
		i, ok = c.vec4s.alloc()
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s capacity %d", ErrNoFreeSlot, k, c.Capacity(k))
	}
	return i, nil
}

// Release returns slot i of kind k to the free list.
func (c *Context) Release(k Kind, i int) error {
	var err error
	switch k {
	case KindScalar:
		err = c.scalars.release(i)
	case KindVec2:
		err = c.vec2s.release(i)
	case KindVec3:
		err = c.vec3s.release(i)
	case KindVec4:
		err = c.vec4s.release(i)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	if err != nil {
		return fmt.Errorf("%w: %s slot %d", err, k, i)
	}
	return nil
}

// InUse reports whether slot i of kind k is currently allocated.
func (c *Context) InUse(k Kind, i int) bool {
	switch k {
	case KindScalar:
		return c.scalars.allocated(i)
	case KindVec2:
		return c.vec2s.allocated(i)
	case KindVec3:
		return c.vec3s.allocated(i)
	case KindVec4:
		return c.vec4s.allocated(i)
	default:
		return false
	}
}

// Used returns the number of allocated slots of kind k.
func (c *Context) Used(k Kind) int {
	switch k {
	case KindScalar:
		return c.scalars.used
	case KindVec2:
		return c.vec2s.used
	case KindVec3:
		return c.vec3s.used
	case KindVec4:
		return c.vec4s.used
	default:
		return 0
	}
}

// Capacity returns the number of slots of kind k.
func (c *Context) Capacity(k Kind) int {
	switch k {
	case KindScalar:
		return len(c.scalars.values)
	case KindVec2:
		return len(c.vec2s.values)
	case KindVec3:
		return len(c.vec3s.values)
	case KindVec4:
		return len(c.vec4s.values)
	default:
		return 0
	}
}

// Clear frees every slot and zeroes the used counters. Stored values are
// left in place and can be read again until overwritten.
func (c *Context) Clear() {
	c.scalars.reset()
	c.vec2s.reset()
	c.vec3s.reset()
	c.vec4s.reset()
}
