// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package amp

import (
	"golang.org/x/exp/slices"

	"github.com/db47h/intcode/vm"
)

// Permutations calls fn for each permutation of the values in domain, until fn
// returns false. For a domain of n distinct values, fn is called at most n!
// times and never sees the same permutation twice.
//
// The slice passed to fn is reused between calls; fn must copy it if it needs
// to keep it. domain is not modified.
func Permutations(domain []vm.Cell, fn func(p []vm.Cell) bool) {
	// Heap's algorithm, iterative form.
	p := slices.Clone(domain)
	c := make([]int, len(p))
	if !fn(p) {
		return
	}
	for k := 1; k < len(p); {
		if c[k] < k {
			if k&1 == 0 {
				p[0], p[k] = p[k], p[0]
			} else {
				p[c[k]], p[k] = p[k], p[c[k]]
			}
			if !fn(p) {
				return
			}
			c[k]++
			k = 1
		} else {
			c[k] = 0
			k++
		}
	}
}
