package v16

import "fmt"

// ListBuilder accumulates the elements of a slice built with BuildList.
type ListBuilder[T any] struct {
	items []T
}

// Add appends v.
func (b *ListBuilder[T]) Add(v T) {
	b.items = append(b.items, v)
}

// AddAll appends every element of vs.
func (b *ListBuilder[T]) AddAll(vs ...T) {
	b.items = append(b.items, vs...)
}

// Set replaces the element at index i.
func (b *ListBuilder[T]) Set(i int, v T) {
	b.checkIndex(i, len(b.items)-1)
	b.items[i] = v
}

// Insert places v at index i, shifting later elements to the right. i may
// equal Len() to append.
func (b *ListBuilder[T]) Insert(i int, v T) {
	b.checkIndex(i, len(b.items))
	var zero T
	b.items = append(b.items, zero)
	copy(b.items[i+1:], b.items[i:])
	b.items[i] = v
}

// Reverse reverses the elements in place.
func (b *ListBuilder[T]) Reverse() {
	for i, j := 0, len(b.items)-1; i < j; i, j = i+1, j-1 {
		b.items[i], b.items[j] = b.items[j], b.items[i]
	}
}

// Len returns the number of elements added so far.
func (b *ListBuilder[T]) Len() int {
	return len(b.items)
}

func (b *ListBuilder[T]) checkIndex(i, max int) {
	if i < 0 || i > max {
		panic(fmt.Sprintf("index %d out of bounds for length %d", i, len(b.items)))
	}
}

// BuildList invokes fn with an empty builder and returns the elements it
// accumulated.
func BuildList[T any](fn func(b *ListBuilder[T])) []T {
	b := &ListBuilder[T]{items: []T{}}
	fn(b)
	return b.items
}
