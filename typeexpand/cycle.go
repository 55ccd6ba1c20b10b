package typeexpand

import (
	"github.com/CognitoIQ/soapspec/schema"
)

// DefaultMaxDepth and DefaultMaxCycles are the configurable limits'
// defaults from §3.1's ResolutionContext.
const (
	DefaultMaxDepth  = 8
	DefaultMaxCycles = 5
)

// A ResolutionContext is the transient state threaded through one
// recursive expansion: a path-keyed visit set, a depth counter, and a
// cumulative circular-reference counter. A ResolutionContext is an
// explicit value: callers inspect its return values instead of
// recovering from a panic, so cycles and depth limits are expected
// conditions rather than exceptional ones.
type ResolutionContext struct {
	pathVisited        map[string]bool
	inheritanceVisited *map[string]bool
	cycleCount         *int
	depth              int
	maxDepth           int
	maxCycles          int
}

// NewResolutionContext returns a root context with empty visit sets.
// maxDepth and maxCycles less than or equal to zero fall back to their
// package defaults.
func NewResolutionContext(maxDepth, maxCycles int) *ResolutionContext {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	inh := make(map[string]bool)
	count := 0
	return &ResolutionContext{
		pathVisited:        make(map[string]bool),
		inheritanceVisited: &inh,
		cycleCount:         &count,
		maxDepth:           maxDepth,
		maxCycles:          maxCycles,
	}
}

// pathKey builds the "parent_path:target_qname" key form specified by
// §4.5.
func pathKey(parentPath string, qn schema.QualifiedName) string {
	return parentPath + ":" + qn.String()
}

// enterResult describes the outcome of attempting to recurse into a type.
type enterResult int

const (
	enterOK enterResult = iota
	enterCycle
	enterMaxDepth
	enterMaxCycles
)

// enter attempts to recurse into qn at parentPath. It returns enterOK if
// the caller should proceed, or one of enterCycle/enterMaxDepth/
// enterMaxCycles describing why it was denied. A named qn that is already
// being expanded further up the current chain (under any path key still
// in the visit set) counts as a cycle. On enterOK, the caller
// must call leave with the same parentPath/qn once it is done recursing,
// so that the same type at a different sibling position can still be
// visited (§4.5's "why path-keyed, not type-keyed").
func (c *ResolutionContext) enter(parentPath string, qn schema.QualifiedName) enterResult {
	if c.depth >= c.maxDepth {
		return enterMaxDepth
	}
	key := pathKey(parentPath, qn)
	onChain := c.pathVisited[key]
	if !onChain && !qn.IsZero() {
		suffix := pathKey("", qn)
		for k := range c.pathVisited {
			if len(k) >= len(suffix) && k[len(k)-len(suffix):] == suffix {
				onChain = true
				break
			}
		}
	}
	if onChain {
		if *c.cycleCount >= c.maxCycles {
			return enterMaxCycles
		}
		*c.cycleCount++
		return enterCycle
	}
	c.pathVisited[key] = true
	c.depth++
	return enterOK
}

func (c *ResolutionContext) leave(parentPath string, qn schema.QualifiedName) {
	delete(c.pathVisited, pathKey(parentPath, qn))
	c.depth--
}

// enterInheritance checks and registers the "derived_qname → base_qname"
// inheritance edge key in the shared inheritance visit set (shared across
// every ResolutionContext descended from the same root via
// freshForInheritance, since an inheritance cycle must be caught no
// matter how many fresh path-cycle views were created along the way).
func (c *ResolutionContext) enterInheritance(derived, base schema.QualifiedName) bool {
	key := derived.String() + " → " + base.String()
	m := *c.inheritanceVisited
	if m[key] {
		return false
	}
	m[key] = true
	return true
}

// freshForInheritance returns a new ResolutionContext for expanding a
// base type reached via xsd:extension: its path-keyed visit set and
// depth counter start over, so that the base type's own internal
// composition does not exhaust the derived type's depth budget or
// collide with the derived type's sibling path keys (§4.6 step 2). The
// inheritance-edge visit set and cumulative cycle counter are shared with
// the parent context, since those must catch cycles regardless of how
// many fresh views were created along the chain.
func (c *ResolutionContext) freshForInheritance() *ResolutionContext {
	return &ResolutionContext{
		pathVisited:        make(map[string]bool),
		inheritanceVisited: c.inheritanceVisited,
		cycleCount:         c.cycleCount,
		maxDepth:           c.maxDepth,
		maxCycles:          c.maxCycles,
	}
}
