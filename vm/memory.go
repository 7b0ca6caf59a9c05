package vm

// Segment is a fixed-length, ordered sequence of words allocated as a unit.
type Segment []uint32

// SegmentedMemory is a mapping from segment ids to live segments, plus a
// pool of recycled ids awaiting reuse and a high-water mark for ids never
// issued. It is the dense Vec<Segment>-style backing store the design
// notes call out: segments live in a slice indexed directly by id, and
// dead slots are nilled out rather than compacted, so ids near zero stay
// cheap to reach on the SegLoad/SegStore hot path.
type SegmentedMemory struct {
	segments []Segment
	recycled []uint32
}

// NewSegmentedMemory seats progWords as segment 0 and returns the manager.
// Segment 0 is live from construction and is never unmapped.
func NewSegmentedMemory(progWords []uint32) *SegmentedMemory {
	seg0 := make(Segment, len(progWords))
	copy(seg0, progWords)
	return &SegmentedMemory{
		segments: []Segment{seg0},
	}
}

func (m *SegmentedMemory) isLive(id uint32) bool {
	return id < uint32(len(m.segments)) && m.segments[id] != nil
}

// Allocate returns a fresh live id whose segment is length zero-initialized
// words. Recycled ids are reused in LIFO order ahead of ever issuing a new
// high-water-mark id.
func (m *SegmentedMemory) Allocate(length uint32) uint32 {
	seg := make(Segment, length)

	if n := len(m.recycled); n > 0 {
		id := m.recycled[n-1]
		m.recycled = m.recycled[:n-1]
		m.segments[id] = seg
		return id
	}

	id := uint32(len(m.segments))
	m.segments = append(m.segments, seg)
	return id
}

// Free removes the segment named by id and pushes id onto the recycled
// pool. Segment 0 may never be freed.
func (m *SegmentedMemory) Free(pc, id uint32) *Fault {
	if id == 0 || !m.isLive(id) {
		return faultUnknownSegment(pc, id)
	}
	m.segments[id] = nil
	m.recycled = append(m.recycled, id)
	return nil
}

// Read returns the word at offset in segment id.
func (m *SegmentedMemory) Read(pc, id, offset uint32) (uint32, *Fault) {
	if !m.isLive(id) {
		return 0, faultUnknownSegment(pc, id)
	}
	seg := m.segments[id]
	if offset >= uint32(len(seg)) {
		return 0, faultOutOfRange(pc, id, offset, uint32(len(seg)))
	}
	return seg[offset], nil
}

// Write stores word at offset in segment id.
func (m *SegmentedMemory) Write(pc, id, offset, word uint32) *Fault {
	if !m.isLive(id) {
		return faultUnknownSegment(pc, id)
	}
	seg := m.segments[id]
	if offset >= uint32(len(seg)) {
		return faultOutOfRange(pc, id, offset, uint32(len(seg)))
	}
	seg[offset] = word
	return nil
}

// Fetch is Read(0, offset) specialized for the fetch-decode-execute hot
// path: no id-liveness check, since segment 0 is always live.
func (m *SegmentedMemory) Fetch(offset uint32) (uint32, *Fault) {
	seg := m.segments[0]
	if offset >= uint32(len(seg)) {
		return 0, faultOutOfRange(offset, 0, offset, uint32(len(seg)))
	}
	return seg[offset], nil
}

// SegZeroLen reports the current length of segment 0. Fetch performs its
// own bounds check, so the execution core does not call this.
func (m *SegmentedMemory) SegZeroLen() uint32 {
	return uint32(len(m.segments[0]))
}

// LoadProgram atomically replaces segment 0 with a deep copy of segment
// srcID. If srcID is 0 this is a no-op: spec-observationally identical to
// copying segment 0 over itself, but without the wasted allocation.
// Segment 0's id never changes, only its contents; further writes to
// srcID must not retroactively affect the copy, which is why this always
// clones rather than aliasing the backing slice.
func (m *SegmentedMemory) LoadProgram(pc, srcID uint32) *Fault {
	if srcID == 0 {
		if !m.isLive(0) {
			return faultUnknownSegment(pc, 0)
		}
		return nil
	}
	if !m.isLive(srcID) {
		return faultUnknownSegment(pc, srcID)
	}

	src := m.segments[srcID]
	clone := make(Segment, len(src))
	copy(clone, src)
	m.segments[0] = clone
	return nil
}
