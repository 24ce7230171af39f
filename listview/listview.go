/*
 * listview.go, part of grotop
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package listview provides live, filtered views over a slice owned by someone else.
// Reads go through the predicate every time, appends always go to the end of the
// backing slice.
package listview

import "regexp"

// View is a filtered window over a backing slice. It holds a pointer to the slice,
// so changes made by the owner are seen by the view and vice versa.
type View[T any] struct {
	backing *[]T
	keep    func(T) bool
}

// New returns a view over backing that selects the elements for which keep returns true.
func New[T any](backing *[]T, keep func(T) bool) *View[T] {
	if backing == nil || keep == nil {
		panic("listview.New: Given nil data")
	}
	return &View[T]{backing: backing, keep: keep}
}

// NewRegexp returns a view over a slice of strings selecting those that match re.
func NewRegexp(backing *[]string, re *regexp.Regexp) *View[string] {
	if re == nil {
		panic("listview.NewRegexp: Given nil regexp")
	}
	return New(backing, re.MatchString)
}

// Each calls f for every selected element, in backing order. i is the index
// of v in the backing slice. Iteration stops if f returns false.
func (V *View[T]) Each(f func(i int, v T) bool) {
	for i, v := range *V.backing {
		if !V.keep(v) {
			continue
		}
		if !f(i, v) {
			return
		}
	}
}

// All returns a new slice with the selected elements.
func (V *View[T]) All() []T {
	ret := make([]T, 0, 4)
	V.Each(func(_ int, v T) bool {
		ret = append(ret, v)
		return true
	})
	return ret
}

// Len returns the number of selected elements.
func (V *View[T]) Len() int {
	n := 0
	V.Each(func(int, T) bool {
		n++
		return true
	})
	return n
}

// Append adds v to the end of the backing slice, not next to the
// last selected element. Elements are not checked against the predicate.
func (V *View[T]) Append(v ...T) {
	*V.backing = append(*V.backing, v...)
}

// ContainsFunc returns true if any selected element satisfies eq.
func (V *View[T]) ContainsFunc(eq func(T) bool) bool {
	found := false
	V.Each(func(_ int, v T) bool {
		found = eq(v)
		return !found
	})
	return found
}

// Contains reports whether v is among the selected elements of V.
func Contains[T comparable](V *View[T], v T) bool {
	return V.ContainsFunc(func(e T) bool { return e == v })
}
