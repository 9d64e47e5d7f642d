package domutil

// IndexOf returns the position of the first element of seq equal to x, or -1.
// For node slices equality is pointer identity.
func IndexOf[T comparable](seq []T, x T) int {
	for i, v := range seq {
		if v == x {
			return i
		}
	}
	return -1
}

// NextIndex returns the index after x in seq, or -1 when x is absent.
func NextIndex[T comparable](seq []T, x T) int {
	i := IndexOf(seq, x)
	if i == -1 {
		return -1
	}
	return i + 1
}

// PrevIndex returns the index before x in seq, or -1 when x is absent.
// Note that a first element also yields -1.
func PrevIndex[T comparable](seq []T, x T) int {
	i := IndexOf(seq, x)
	if i == -1 {
		return -1
	}
	return i - 1
}
