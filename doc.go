/*
Package tree24 implements an order-4 multiway search tree, commonly called
a 2-4 tree, together with a diagnostic layer for inspecting its structure.

2-4 Trees

A 2-4 tree is a balanced multiway search tree where every node holds between
1 and 3 ordered keys and, unless it is a leaf, between 2 and 4 child
subtrees. All leaves sit at the same depth, which keeps search, insertion
and deletion logarithmic in the number of keys. 2-4 trees are the multiway
cousins of red-black trees: every red-black tree is an encoding of a 2-4
tree, which makes them a convenient vehicle for studying balanced-tree
restructuring in its undisguised form.

The package offers the usual container surface (Insert, Delete, Find,
in-order traversal and an iterator), but its emphasis lies on two read-only
diagnostic facilities:

A structural validator walks the whole tree breadth-first and reports every
violation of the structural invariants (parent back-references, strict key
order, child counts and key boundaries between separators and subtrees). It
never stops at the first defect; the point is to surface all of them in one
pass.

A layout engine renders the tree as an aligned, level-by-level text diagram,
with parents centered over the span of their children, for visual inspection
in a terminal or a test log:

	   [4]
	  [2]      [6, 8]
	[1] [3] [5] [7] [9, 10]

Both facilities are strictly read-only and synchronous. The tree is not
internally synchronized; callers must not mutate it concurrently with any
call into this package.

Diagnostics are traced to the global core tracer of the schuko tracing
framework. Test code typically redirects it through
schuko/tracing/gotestingadapter.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package tree24

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
