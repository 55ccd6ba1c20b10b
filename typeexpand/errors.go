package typeexpand

import (
	"fmt"

	"github.com/CognitoIQ/soapspec/schema"
)

// An UnresolvedReferenceEvent records a qname the Reference Resolver
// could not find. Per §7, this is a warning, not a fatal error: the
// caller emits an opaque attribute in its place and continues.
type UnresolvedReferenceEvent struct {
	QualifiedName schema.QualifiedName
	ParentPath    string
}

func (e UnresolvedReferenceEvent) String() string {
	return fmt.Sprintf("unresolved reference %s at %s", e.QualifiedName, e.ParentPath)
}

// A MalformedSchemaEvent records a schema element the expander could not
// interpret (e.g. an xsd:element with no @name). Per §7, the offending
// element is skipped and the run continues.
type MalformedSchemaEvent struct {
	Reason string
	Path   string
}

func (e MalformedSchemaEvent) String() string {
	return fmt.Sprintf("malformed schema at %s: %s", e.Path, e.Reason)
}

// A CircularReferenceEvent records a cycle the detector denied entry to.
// Logged at info severity per §7.
type CircularReferenceEvent struct {
	Path string
}

func (e CircularReferenceEvent) String() string {
	return fmt.Sprintf("circular reference detected at %s", e.Path)
}

// A MaxDepthEvent records a subtree stubbed out because it would have
// exceeded the configured depth limit.
type MaxDepthEvent struct {
	Path string
}

func (e MaxDepthEvent) String() string {
	return fmt.Sprintf("max depth exceeded at %s", e.Path)
}

// A CrossNamespaceInheritanceEvent records an xsd:extension whose base
// type lives in a different target namespace than the type extending
// it. Logged at info severity; it is not an error, just a condition
// worth surfacing since it is easy to get wrong by hand.
type CrossNamespaceInheritanceEvent struct {
	Derived schema.QualifiedName
	Base    schema.QualifiedName
}

func (e CrossNamespaceInheritanceEvent) String() string {
	return fmt.Sprintf("cross-namespace inheritance: %s -> %s", e.Derived, e.Base)
}

// Events accumulates the non-fatal conditions observed during one
// expansion. The engine logs every kind; only Unresolved events are
// copied into processing_metadata (as warnings), the other kinds do not
// appear there.
type Events struct {
	Unresolved     []UnresolvedReferenceEvent
	Circular       []CircularReferenceEvent
	MaxDepth       []MaxDepthEvent
	Malformed      []MalformedSchemaEvent
	CrossNamespace []CrossNamespaceInheritanceEvent
}
