package label

import "math"

// LabelSet is a bounded, append-only container of Labels indexed by
// insertion order. Construction takes a distance ceiling in meters; any
// Label whose accumulated Distance exceeds the ceiling is rejected by Add
// and never stored.
//
// During an expansion the expander treats the indices returned by Add as
// a min-priority frontier (see package expand); once expansion completes,
// LabelSet is simply an append-only log shared by every right-column
// State that references one of its labels.
type LabelSet struct {
	ceiling float64
	labels  []Label
}

// NewLabelSet constructs a LabelSet with the given distance ceiling. The
// backing slice is preallocated to max(ceil(ceiling), 1) entries: the "+1"
// floor guards the degenerate case where two measurements coincide (a
// zero-length search), which would otherwise preallocate a zero-capacity
// slice and, more importantly, must still accept at least the
// zero-distance origin label.
func NewLabelSet(ceiling float64) *LabelSet {
	cap := int(math.Ceil(ceiling))
	if cap < 1 {
		cap = 1
	}
	return &LabelSet{
		ceiling: ceiling,
		labels:  make([]Label, 0, cap),
	}
}

// Ceiling returns the distance ceiling this LabelSet was constructed with.
func (ls *LabelSet) Ceiling() float64 {
	return ls.ceiling
}

// Add appends l if its Distance does not exceed the ceiling, returning the
// index it was stored at. If l.Distance exceeds the ceiling, Add rejects
// it and returns ok=false without storing anything.
func (ls *LabelSet) Add(l Label) (idx int, ok bool) {
	if l.Distance > ls.ceiling {
		return -1, false
	}
	ls.labels = append(ls.labels, l)
	return len(ls.labels) - 1, true
}

// Get returns the label at idx, or false if idx is out of range.
func (ls *LabelSet) Get(idx int) (Label, bool) {
	if idx < 0 || idx >= len(ls.labels) {
		return Label{}, false
	}
	return ls.labels[idx], true
}

// Len returns the number of labels currently stored.
func (ls *LabelSet) Len() int {
	return len(ls.labels)
}
