package schema

import (
	"strings"

	"github.com/CognitoIQ/soapspec/xmltree"
)

// ResolveQName turns a possibly-prefixed name string ("tns:Foo", "Foo")
// into a QualifiedName, given the element it was found on and the
// document that element belongs to. It follows the four resolution rules
// of §4.2, in order:
//
//  1. If name has a prefix, search the element's namespace scope for it.
//  2. If the prefix is "tns" and no xmlns:tns declaration is in scope,
//     fall back to the document's targetNamespace.
//  3. If name is unprefixed, use the document's targetNamespace.
//  4. Otherwise, use the empty namespace.
//
// ResolveQName is pure: the same (name, el, doc) always yields the same
// result. It keeps no memo table of its own and recomputes on every call;
// the ResolutionCache used by Resolver caches registry lookups keyed on
// the QualifiedName this function returns, not this name resolution.
func ResolveQName(name string, el *xmltree.Element, doc *LoadedDocument) QualifiedName {
	prefix, local, hasPrefix := cutPrefix(name)
	if !hasPrefix {
		return QualifiedName{NamespaceURI: doc.TargetNamespace, LocalName: local}
	}
	if resolved, ok := el.ResolveNS(name); ok {
		return QualifiedName{NamespaceURI: resolved.Space, LocalName: resolved.Local}
	}
	if prefix == "tns" {
		return QualifiedName{NamespaceURI: doc.TargetNamespace, LocalName: local}
	}
	return QualifiedName{NamespaceURI: "", LocalName: local}
}

func cutPrefix(name string) (prefix, local string, ok bool) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:], true
	}
	return "", name, false
}
