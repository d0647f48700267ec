package vm

import "fmt"

// Memory is the segmented memory manager. Segments live in a slice
// indexed by identifier rather than a hash map (spec.md section 9):
// the identifier a segment was allocated with is also its index into
// segments/mapped, so lookup never hashes. Identifier 0 permanently
// occupies slot 0 and is never pushed onto the pool.
type Memory struct {
	segments [][]uint32
	mapped   []bool
	pool     []uint32 // free-list of reusable identifiers, LIFO
	nextID   uint32   // pre-incremented on fresh allocation
}

// NewMemory returns a Memory with an empty segment zero. Callers
// normally follow it with Install, which loads the program.
func NewMemory() *Memory {
	m := &Memory{}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.segments = [][]uint32{nil}
	m.mapped = []bool{true}
	m.pool = nil
	m.nextID = 0
}

// Install replaces segment zero with program and clears every other
// segment, the pool, and the identifier counter. It is the engine's
// entry point for loading a program before execution begins.
func (m *Memory) Install(program []uint32) {
	m.reset()
	m.segments[0] = append([]uint32(nil), program...)
}

func (m *Memory) boundsCheck(id uint32) error {
	if int(id) >= len(m.mapped) || !m.mapped[id] {
		return fmt.Errorf("%w: %d", ErrUnmappedSegment, id)
	}
	return nil
}

// Read returns the word at offset within segment id.
func (m *Memory) Read(id, offset uint32) (uint32, error) {
	if err := m.boundsCheck(id); err != nil {
		return 0, err
	}
	seg := m.segments[id]
	if int(offset) >= len(seg) {
		return 0, fmt.Errorf("%w: segment %d offset %d (len %d)", ErrOutOfBounds, id, offset, len(seg))
	}
	return seg[offset], nil
}

// Write stores value at offset within segment id.
func (m *Memory) Write(id, offset, value uint32) error {
	if err := m.boundsCheck(id); err != nil {
		return err
	}
	seg := m.segments[id]
	if int(offset) >= len(seg) {
		return fmt.Errorf("%w: segment %d offset %d (len %d)", ErrOutOfBounds, id, offset, len(seg))
	}
	seg[offset] = value
	return nil
}

// Map allocates a new, zero-filled segment of size words and returns
// its identifier. If the pool is non-empty, the most recently unmapped
// identifier is reused (LIFO); otherwise a fresh identifier is minted
// by pre-incrementing the counter, so the first minted identifier is
// 1 and never collides with one still mapped.
//
// Reusing a pooled identifier always installs a fresh zero-filled
// segment under it, rather than relying on whatever storage the slot
// held before it was unmapped.
func (m *Memory) Map(size uint32) uint32 {
	fresh := make([]uint32, size)

	var id uint32
	if n := len(m.pool); n > 0 {
		id = m.pool[n-1]
		m.pool = m.pool[:n-1]
	} else {
		m.nextID++
		id = m.nextID
	}

	for int(id) >= len(m.segments) {
		m.segments = append(m.segments, nil)
		m.mapped = append(m.mapped, false)
	}
	m.segments[id] = fresh
	m.mapped[id] = true
	return id
}

// Unmap removes id from the live mapping and pushes it onto the pool
// for future reuse. id must not be 0 and must currently be mapped.
//
// The segment's slot is cleared here (not merely marked stale) so a
// segment is always either mapped or unmapped, never both, per the
// invariant in spec.md section 3 -- this is where the open question in
// spec.md section 9 about the source's unmap not removing the entry is
// resolved.
func (m *Memory) Unmap(id uint32) error {
	if id == 0 {
		return ErrUnmapZero
	}
	if err := m.boundsCheck(id); err != nil {
		return err
	}
	m.segments[id] = nil
	m.mapped[id] = false
	m.pool = append(m.pool, id)
	return nil
}

// DuplicateIntoZero replaces segment 0 with a deep copy of segment id.
// Segment id itself remains mapped. If id is 0 this is a no-op on
// contents.
func (m *Memory) DuplicateIntoZero(id uint32) error {
	if id == 0 {
		return nil
	}
	if err := m.boundsCheck(id); err != nil {
		return err
	}
	m.segments[0] = append([]uint32(nil), m.segments[id]...)
	return nil
}
