package layout

// CrossSize returns a child's length on the secondary axis of a container
// whose secondary length is length. Siblings do not share this axis, so each
// child is sized on its own. tooSmall reports that the policy could not be
// honored inside length.
func CrossSize(p Policy, length int) (size int, tooSmall bool) {
	length = max(0, length)

	switch p.kind {
	case KindFixed:
		if p.hint > length {
			return length, true
		}
		return p.hint, false
	case KindMinimum, KindMinimumExpanding:
		size = min(max(length, p.hint), p.max)
	case KindMaximum:
		size = max(min(length, p.hint), p.min)
	default:
		size = clamp(length, p.min, p.max)
	}
	return size, size > length
}
