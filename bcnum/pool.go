package bcnum

// pool is the intrusive free list that backs New's handle recycling. The
// library is single-threaded by design (see spec §5); pool performs no
// synchronization.
type pool struct {
	free *numInner
}

func (p *pool) get() *numInner {
	if p.free != nil {
		inner := p.free
		p.free = inner.next
		inner.next = nil
		inner.value.SetInt64(0)
		inner.refs = 1
		inner.singleton = false
		return inner
	}
	return &numInner{refs: 1}
}

func (p *pool) put(inner *numInner) {
	inner.next = p.free
	p.free = inner
}

var defaultPool = &pool{}
