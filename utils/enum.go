package utils

// GetNextEnum cycles forward through a 0..max int enum.
func GetNextEnum[T ~int](current T, max T) T {
	next := current + 1
	if next > max {
		return 0
	}
	return next
}

// GetPrevEnum cycles backward through a 0..max int enum.
func GetPrevEnum[T ~int](current T, max T) T {
	prev := current - 1
	if prev < 0 {
		return max
	}
	return prev
}
