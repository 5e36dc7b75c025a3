package xorlist

import "cmp"

// Sort sorts l in ascending order. See SortFunc.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// Merge merges the ascending list other into the ascending list l. See
// MergeFunc.
func Merge[T cmp.Ordered](l, other *List[T]) error {
	return l.MergeFunc(other, cmp.Compare[T])
}

// Unique removes consecutive duplicates and returns how many were removed.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Remove removes every element equal to v and returns how many were removed.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveFunc(func(x T) bool { return x == v })
}

// Erase is Remove, provided under the name of the generic container erase.
func Erase[T comparable](l *List[T], v T) int {
	return Remove(l, v)
}

// EraseIf removes every element for which pred returns true and returns how
// many were removed.
func EraseIf[T any](l *List[T], pred func(T) bool) int {
	return l.RemoveFunc(pred)
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	it, jt := a.Begin(), b.Begin()
	for ; !it.Equal(a.End()); it, jt = it.Next(), jt.Next() {
		if !eq(it.Value(), jt.Value()) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically, with results as for
// cmp.Compare. A list that is a prefix of the other orders first.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

func CompareFunc[T any](a, b *List[T], compare func(x, y T) int) int {
	it, jt := a.Begin(), b.Begin()
	for {
		aDone, bDone := it.Equal(a.End()), jt.Equal(b.End())
		switch {
		case aDone && bDone:
			return 0
		case aDone:
			return -1
		case bDone:
			return +1
		}
		if c := compare(it.Value(), jt.Value()); c != 0 {
			return c
		}
		it, jt = it.Next(), jt.Next()
	}
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
