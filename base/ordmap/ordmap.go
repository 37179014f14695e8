// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order of
// items added to a slice, while also providing fast key-based lookup,
// using the Go generics system.
//
// The slice holds the key-value pairs in insertion order; the map
// holds the index of each key into the slice. Adding and access are
// fast, while deleting and inserting are relatively slow.
package ordmap

import "fmt"

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map.
type Map[K comparable, V any] struct {

	// Order is an ordered list of values and associated keys,
	// in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

// Make constructs a new ordered map with the given key-value pairs.
func Make[K comparable, V any](vals []KeyValue[K, V]) *Map[K, V] {
	om := &Map[K, V]{
		Order: vals,
		Map:   make(map[K]int, len(vals)),
	}
	for i, v := range om.Order {
		om.Map[v.Key] = i
	}
	return om
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add adds a new value for the given key. If the key already exists,
// its value is updated in place.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if i, ok := om.Map[key]; ok {
		om.Order[i].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKey returns the value for the given key, with a zero value
// and false if the key is not present.
func (om *Map[K, V]) ValueByKey(key K) (V, bool) {
	i, ok := om.Map[key]
	if ok {
		return om.Order[i].Value, true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with -1 and false if
// the key is not present.
func (om *Map[K, V]) IndexByKey(key K) (int, bool) {
	i, ok := om.Map[key]
	if !ok {
		return -1, false
	}
	return i, true
}

// ValueByIndex returns the value at the given index in the ordered slice.
func (om *Map[K, V]) ValueByIndex(i int) V {
	return om.Order[i].Value
}

// KeyByIndex returns the key at the given index in the ordered slice.
func (om *Map[K, V]) KeyByIndex(i int) K {
	return om.Order[i].Key
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey deletes the item with the given key, returning false if
// it was not found.
func (om *Map[K, V]) DeleteKey(key K) bool {
	i, ok := om.Map[key]
	if !ok {
		return false
	}
	om.Order = append(om.Order[:i], om.Order[i+1:]...)
	for j := i; j < len(om.Order); j++ {
		om.Map[om.Order[j].Key] = j
	}
	delete(om.Map, key)
	return true
}

// String returns a string representation of the map in insertion order.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
