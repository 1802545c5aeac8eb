// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package list

import (
	"github.com/bitmark-inc/recordindex/fault"
)

type element[T any] struct {
	next  *element[T]
	value T
}

// List - circular sequence; the last element links back to head
type List[T any] struct {
	head    *element[T]
	current *element[T]
	size    int
}

// New - create an initially empty list
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice - create a list holding the values in order, cursor on
// the last one
func FromSlice[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Insert(v)
	}
	return l
}

// IsEmpty - true if the list has no elements
func (l *List[T]) IsEmpty() bool {
	return nil == l.head
}

// Size - number of elements
func (l *List[T]) Size() int {
	return l.size
}

// Insert - link a new element after the cursor and move the cursor to it
func (l *List[T]) Insert(value T) {
	e := &element[T]{value: value}
	if nil == l.head {
		e.next = e
		l.head = e
	} else {
		e.next = l.current.next
		l.current.next = e
	}
	l.current = e
	l.size += 1
}

// Remove - unlink the element at the cursor
//
// the cursor moves to the following element, wrapping round to head
// when the last element was removed
func (l *List[T]) Remove() {
	if nil == l.head {
		return
	}
	if 1 == l.size {
		l.head = nil
		l.current = nil
		l.size = 0
		return
	}

	prev := l.current
	for prev.next != l.current {
		prev = prev.next
	}
	wasLast := l.current.next == l.head
	prev.next = l.current.next
	if l.current == l.head {
		l.head = l.current.next
	}
	if wasLast {
		l.current = l.head
	} else {
		l.current = prev.next
	}
	l.size -= 1
}

// IsLast - true if the cursor is on the last element
func (l *List[T]) IsLast() bool {
	l.mustHaveElements()
	return l.current.next == l.head
}

// FindFirst - move the cursor to head
func (l *List[T]) FindFirst() {
	l.mustHaveElements()
	l.current = l.head
}

// FindNext - advance the cursor, wrapping from the last element to head
func (l *List[T]) FindNext() {
	l.mustHaveElements()
	l.current = l.current.next
}

// Retrieve - value at the cursor
func (l *List[T]) Retrieve() T {
	l.mustHaveElements()
	return l.current.value
}

// Update - overwrite the value at the cursor
func (l *List[T]) Update(value T) {
	l.mustHaveElements()
	l.current.value = value
}

// Each - visit values from head in order until f returns false
//
// the cursor is left on the last element visited
func (l *List[T]) Each(f func(T) bool) {
	if l.IsEmpty() {
		return
	}
	l.FindFirst()
	for {
		if !f(l.Retrieve()) || l.IsLast() {
			return
		}
		l.FindNext()
	}
}

// Slice - copy of the values from head in order
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	l.Each(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (l *List[T]) mustHaveElements() {
	if nil == l.head {
		fault.Misuse(fault.ErrEmptyList)
	}
}
