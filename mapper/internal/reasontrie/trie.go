/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package reasontrie implements a segment-aware prefix index over
// dot-separated reason strings.
//
// Each node is one segment; "*" is a single-segment wildcard. Lookup does
// longest-prefix-match on whole segments, so "auth.j" never matches an
// "auth.jwt" rule, and an exact segment wins over "*" at equal depth.
package reasontrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned by Insert for prefixes that are empty, have a
// malformed segment, or consist of wildcards only.
var ErrInvalidPrefix = errors.New("reasontrie: invalid prefix")

// Trie is the index. Build it with Insert, then treat it as immutable; a
// frozen Trie is safe for concurrent Lookup calls.
type Trie[T any] struct {
	children map[string]*Trie[T]

	// leaf marks that some inserted prefix ends at this node. val and
	// pattern are only meaningful when leaf is true; pattern is the rule as
	// inserted (wildcards included), stored for diagnostics so Lookup never
	// builds strings.
	leaf    bool
	val     T
	pattern string
}

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix, e.g. "storage.pg" or
// "auth.*.verify". A prefix of only wildcards is rejected: it would shadow
// every rule while naming nothing.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}

	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		if s != "*" {
			concrete = true
		}
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	node := t
	for _, s := range segs {
		child, ok := node.children[s]
		if !ok {
			child = New[T]()
			node.children[s] = child
		}
		node = child
	}
	node.leaf = true
	node.val = val
	if node.pattern == "" {
		node.pattern = prefix
	}
	return nil
}

// Lookup finds the deepest rule whose prefix matches key on segment
// boundaries, exploring both exact and wildcard branches. It returns the
// rule's value and stored pattern. ok is false when key is malformed or no
// rule matches.
func (t *Trie[T]) Lookup(key string) (val T, pattern string, ok bool) {
	if t == nil {
		return val, "", false
	}

	best := -1
	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.leaf && depth > best {
			best = depth
			val = n.val
			pattern = n.pattern
		}
		if off >= len(key) {
			return
		}
		seg, next, valid := scanSegment(key, off)
		if !valid {
			return
		}
		if child, found := n.children[seg]; found {
			walk(child, next, depth+1)
		}
		if child, found := n.children["*"]; found {
			walk(child, next, depth+1)
		}
	}
	walk(t, 0, 0)

	if best < 0 {
		var zero T
		return zero, "", false
	}
	return val, pattern, true
}

// scanSegment parses the segment of key starting at off, validating the
// [a-z][a-z0-9_]* shape as it goes. next points past the segment's trailing
// dot (if any) so the caller can continue from there. No allocation: the
// segment is a substring of key.
func scanSegment(key string, off int) (seg string, next int, ok bool) {
	i := off
	c := key[i]
	if c < 'a' || c > 'z' {
		return "", 0, false
	}
	i++
	for i < len(key) {
		c = key[i]
		if c == '.' {
			break
		}
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return "", 0, false
		}
		i++
	}
	next = i
	if next < len(key) && key[next] == '.' {
		next++
	}
	return key[off:i], next, true
}

// validSegment reports whether seg can be stored in the trie: the wildcard
// "*", or a [a-z][a-z0-9_]* identifier.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
