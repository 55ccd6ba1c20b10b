// Package schema loads WSDL and XSD documents into a read-only registry
// of qualified names, and resolves references across the documents that
// make up one conversion run.
//
// The package respects XML name spaces: a Scope is threaded through the
// document tree so that prefixed names (tns:Foo) can be turned into a
// canonical, namespace-qualified form wherever they are found, not just
// at the point a document was loaded.
package schema

import "fmt"

// QualifiedName is a namespace URI paired with a local name. It is the
// unit of identity for every type, element and message this package
// indexes.
type QualifiedName struct {
	NamespaceURI string
	LocalName    string
}

// String renders q in "namespace#local" form, matching the wire format
// used in processing_metadata and error messages.
func (q QualifiedName) String() string {
	return fmt.Sprintf("%s#%s", q.NamespaceURI, q.LocalName)
}

// IsZero reports whether q is the zero QualifiedName.
func (q QualifiedName) IsZero() bool {
	return q.NamespaceURI == "" && q.LocalName == ""
}
