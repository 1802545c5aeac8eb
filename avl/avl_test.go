// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/bitmark-inc/recordindex/avl"
)

func TestListShort(t *testing.T) {
	addList := []int{4201, 1254, 8608, 1639, 8950, 6740}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247, 1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133, 2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433, 1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582, 1720, 506, 8382, 6774, 1042,
		1042, 1042, 1042, 1042, 1042, 1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042, 3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179, 5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774, 3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982, 3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797, 3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934, 8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066, 7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531, 8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672, 5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271, 4786, 4145, 1066, 4366, 6716,
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

func TestAscendingAndDescending(t *testing.T) {
	up := make([]int, 0, 200)
	down := make([]int, 0, 200)
	for i := 0; i < 200; i += 1 {
		up = append(up, i)
		down = append(down, 200-i)
	}
	doList(t, up)
	doList(t, down)
}

// insert everything then delete a growing prefix, checking structure
// after every step
func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avl.New[string]()
		for _, key := range addList {
			tree.Insert(key, fmt.Sprintf("data:%d", key))
			if err := tree.Check(); nil != err {
				dumpTree(t, tree)
				t.Fatalf("add: %d: inconsistent tree: %s", key, err)
			}
		}

		expected := uniqueCount(addList)
		if tree.Size() != expected {
			t.Fatalf("add: count: %d  expected: %d", tree.Size(), expected)
		}

		for j, key := range addList[:i] {
			_, seen := alreadyDeleted[key]
			deleted := tree.Delete(key)
			if deleted == seen {
				t.Fatalf("delete: %d: returned: %v  already deleted: %v", key, deleted, seen)
			}
			alreadyDeleted[key] = struct{}{}

			if err := tree.Check(); nil != err {
				dumpTree(t, tree)
				t.Fatalf("delete[%d]: %d: inconsistent tree: %s", j, key, err)
			}
			if tree.Root() != tree.Current() {
				t.Fatalf("delete: %d: cursor not reset to root", key)
			}
		}

		if tree.Size() != expected-len(alreadyDeleted) {
			t.Errorf("remaining count: %d  expected: %d", tree.Size(), expected-len(alreadyDeleted))
		}
		if i == len(addList) && !tree.IsEmpty() {
			dumpTree(t, tree)
			t.Fatalf("tree not empty after all deletes, count: %d", tree.Size())
		}
	}
}

// check in-order iteration both ways
func doTraverse(t *testing.T, addList []int) {
	tree := avl.New[string]()
	for _, key := range addList {
		tree.Insert(key, fmt.Sprintf("data:%d", key))
	}

	keys := uniqueSorted(addList)

	n := 0
	for p := tree.First(); nil != p; p = p.Next() {
		if p.Key() != keys[n] {
			t.Errorf("next: %d: key: %d  expected: %d", n, p.Key(), keys[n])
		}
		n += 1
	}
	if n != len(keys) {
		t.Errorf("next: visited: %d  expected: %d", n, len(keys))
	}

	for p := tree.Last(); nil != p; p = p.Prev() {
		n -= 1
		if p.Key() != keys[n] {
			t.Errorf("prev: %d: key: %d  expected: %d", n, p.Key(), keys[n])
		}
	}
	if 0 != n {
		t.Errorf("prev: remaining: %d", n)
	}

	sorted := tree.SortedKeys().Slice()
	if len(sorted) != len(keys) {
		t.Fatalf("sorted keys: length: %d  expected: %d", len(sorted), len(keys))
	}
	for i, k := range sorted {
		if k != keys[i] {
			t.Errorf("sorted keys: %d: %d  expected: %d", i, k, keys[i])
		}
	}
}

// every key is found with its data and the cursor sits on it
func doSearch(t *testing.T, addList []int) {
	tree := avl.New[string]()
	for _, key := range addList {
		tree.Insert(key, fmt.Sprintf("data:%d", key))
	}
	for _, key := range addList {
		value, found := tree.Search(key)
		if !found {
			t.Fatalf("search: %d: not found", key)
		}
		if value != fmt.Sprintf("data:%d", key) {
			t.Errorf("search: %d: value: %q", key, value)
		}
		if tree.Current().Key() != key {
			t.Errorf("search: %d: cursor on: %d", key, tree.Current().Key())
		}
	}
}

func uniqueSorted(keys []int) []int {
	seen := make(map[int]struct{})
	result := make([]int, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			result = append(result, k)
		}
	}
	sort.Ints(result)
	return result
}

func uniqueCount(keys []int) int {
	return len(uniqueSorted(keys))
}

func dumpTree[V any](t *testing.T, tree *avl.Tree[V]) {
	var buffer bytes.Buffer
	depth := tree.Print(&buffer, true)
	t.Logf("depth: %d\n%s", depth, buffer.String())
}
