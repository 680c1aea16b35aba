package pool

import "sync"

// float64Pool holds scratch slices used by order statistics (median,
// quartiles) so a sorted working copy does not cost an allocation per call.
var float64Pool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a slice of exactly size elements from the pool.
//
// Contents are unspecified. The caller must invoke the returned release
// function once it no longer uses the slice, typically with defer:
//
//	scratch, release := pool.GetFloat64Slice(n)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64Pool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64Pool.Put(ptr) }
}

// CopyFloat64s returns a pooled copy of src together with its release
// function. Writes to the copy never reach src.
func CopyFloat64s(src []float64) ([]float64, func()) {
	dst, release := GetFloat64Slice(len(src))
	copy(dst, src)

	return dst, release
}
