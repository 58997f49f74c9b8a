// Package category derives the storefront navigation hierarchy from the flat,
// slash-delimited category strings embedded in feed products, and resolves
// URL category paths back to feed entries.
package category

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/miskazdrowia/shop-backend/internal/feed"
)

// Node is one entry of the navigation tree. It carries no state beyond its
// path: the href is rebuilt purely from the chain of ancestor labels. The
// whole tree is derived again on every catalog fetch.
type Node struct {
	Label    string  `json:"label"`
	Href     string  `json:"href"`
	Children []*Node `json:"children,omitempty"`
}

// pathIndex accumulates every prefix path seen during the feed scan. Paths
// are identified case-insensitively because the same logical category appears
// with inconsistent casing across products; the first-seen casing is kept for
// display.
type pathIndex struct {
	segs map[string][]string // lowercase joined path -> display segments
	kids map[string][]string // lowercase joined path -> child paths, insertion order
}

// BuildTree constructs the navigation tree for one top-level group (an animal
// type such as "psy"). Roots are exactly the depth-2 paths under the group.
// Siblings are sorted alphabetically by label, so the menu layout does not
// depend on feed iteration order.
func BuildTree(products []feed.Product, topLevel string) []*Node {
	idx := &pathIndex{
		segs: map[string][]string{},
		kids: map[string][]string{},
	}
	var roots []string

	for _, p := range products {
		for _, cat := range p.Categories {
			segs := splitPath(cat)
			if len(segs) < 2 || !strings.EqualFold(segs[0], topLevel) {
				continue
			}
			for depth := 2; depth <= len(segs); depth++ {
				key := lowerJoin(segs[:depth])
				if _, seen := idx.segs[key]; seen {
					continue
				}
				idx.segs[key] = append([]string(nil), segs[:depth]...)
				if depth == 2 {
					roots = append(roots, key)
				} else {
					parent := lowerJoin(segs[:depth-1])
					idx.kids[parent] = append(idx.kids[parent], key)
				}
			}
		}
	}

	nodes := lo.Map(roots, func(key string, _ int) *Node { return idx.node(key) })
	sortNodes(nodes)
	return nodes
}

// node materializes one tree node and its subtree. A node with no children is
// a leaf linking straight to a filtered listing.
func (idx *pathIndex) node(key string) *Node {
	segs := idx.segs[key]
	slugs := lo.Map(segs, func(s string, _ int) string { return Slugify(s) })

	n := &Node{
		Label: segs[len(segs)-1],
		Href:  "/" + strings.Join(slugs, "/"),
	}
	for _, child := range idx.kids[key] {
		n.Children = append(n.Children, idx.node(child))
	}
	sortNodes(n.Children)
	return n
}

func sortNodes(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return strings.ToLower(nodes[i].Label) < strings.ToLower(nodes[j].Label)
	})
}

// splitPath breaks a feed category string into trimmed segments. The feed's
// separator is nominally " / " but the surrounding whitespace is inconsistent.
func splitPath(path string) []string {
	var segs []string
	for _, seg := range strings.Split(path, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func lowerJoin(segs []string) string {
	return strings.ToLower(strings.Join(segs, " / "))
}
