package shader

// pool is a fixed-capacity slot array with a free-index stack.
type pool[T any] struct {
	values []T
	inUse  []bool
	free   []int
	used   int
}

func newPool[T any](n int) pool[T] {
	p := pool[T]{
		values: make([]T, n),
		inUse:  make([]bool, n),
		free:   make([]int, 0, n),
	}
	p.reset()
	return p
}

// reset marks every slot free. Values are kept.
func (p *pool[T]) reset() {
	clear(p.inUse)
	p.used = 0
	// Pushed in reverse so the lowest index pops first.
	p.free = p.free[:0]
	for i := len(p.values) - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
}

func (p *pool[T]) alloc() (int, bool) {
	n := len(p.free)
	if n == 0 {
		return 0, false
	}
	i := p.free[n-1]
	p.free = p.free[:n-1]
	p.inUse[i] = true
	p.used++
	return i, true
}

func (p *pool[T]) release(i int) error {
	if i < 0 || i >= len(p.values) {
		return ErrSlotOutOfRange
	}
	if !p.inUse[i] {
		return ErrSlotNotAllocated
	}
	p.inUse[i] = false
	p.used--
	p.free = append(p.free, i)
	return nil
}

func (p *pool[T]) allocated(i int) bool {
	return i >= 0 && i < len(p.inUse) && p.inUse[i]
}
