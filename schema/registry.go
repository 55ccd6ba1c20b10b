package schema

import (
	"fmt"
	"sort"

	"github.com/CognitoIQ/soapspec/xmltree"
)

const xsdNS = "http://www.w3.org/2001/XMLSchema"

// EntryKind distinguishes the three kinds of global XSD declaration the
// registrar indexes.
type EntryKind int

const (
	ComplexType EntryKind = iota
	SimpleType
	ElementDecl
)

func (k EntryKind) String() string {
	switch k {
	case ComplexType:
		return "complexType"
	case SimpleType:
		return "simpleType"
	case ElementDecl:
		return "element"
	}
	return "unknown"
}

// A RegistryEntry records where one global declaration lives: the element
// itself, the document that declared it, the source file (for
// diagnostics) and what kind of declaration it is.
type RegistryEntry struct {
	Element  *xmltree.Element
	Document *LoadedDocument
	Kind     EntryKind
}

// A DuplicateDefinition is logged, not returned, when the same qualified
// name is registered twice: per §4.3, the first-loaded definition wins.
type DuplicateDefinition struct {
	Name      QualifiedName
	FirstFile string
	DupeFile  string
}

func (d DuplicateDefinition) String() string {
	return fmt.Sprintf("duplicate definition of %s: keeping %s, ignoring %s", d.Name, d.FirstFile, d.DupeFile)
}

// A Registry indexes every global xsd:complexType, xsd:simpleType and
// xsd:element declared across a set of LoadedDocuments. It is built once
// and read many times over the life of a conversion run (§5).
type Registry struct {
	entries     map[QualifiedName]RegistryEntry
	order       []QualifiedName
	Duplicates  []DuplicateDefinition
}

// BuildRegistry walks docs in the order given -- which must be the order
// the documents were loaded, per §4.3's determinism requirement -- and
// indexes every global type and element declaration found in each
// xsd:schema element they contain.
func BuildRegistry(docs []*LoadedDocument) *Registry {
	r := &Registry{entries: make(map[QualifiedName]RegistryEntry)}
	for _, doc := range docs {
		for _, sch := range doc.Root.Search(xsdNS, "schema") {
			r.indexSchema(doc, sch)
		}
		// The root element of an XSD file *is* the <xsd:schema> element.
		if doc.Root.Name.Space == xsdNS && doc.Root.Name.Local == "schema" {
			r.indexSchema(doc, doc.Root)
		}
	}
	return r
}

func (r *Registry) indexSchema(doc *LoadedDocument, sch *xmltree.Element) {
	tns := sch.Attr("", "targetNamespace")
	if tns == "" {
		tns = doc.TargetNamespace
	}
	for i := range sch.Children {
		child := &sch.Children[i]
		if child.Name.Space != xsdNS {
			continue
		}
		var kind EntryKind
		switch child.Name.Local {
		case "complexType":
			kind = ComplexType
		case "simpleType":
			kind = SimpleType
		case "element":
			kind = ElementDecl
		default:
			continue
		}
		name := child.Attr("", "name")
		if name == "" {
			// Anonymous top-level declarations are malformed; skip per §7.
			continue
		}
		qn := QualifiedName{NamespaceURI: tns, LocalName: name}
		r.register(qn, RegistryEntry{Element: child, Document: doc, Kind: kind})
	}
}

func (r *Registry) register(qn QualifiedName, entry RegistryEntry) {
	if existing, ok := r.entries[qn]; ok {
		r.Duplicates = append(r.Duplicates, DuplicateDefinition{
			Name:      qn,
			FirstFile: existing.Document.Path,
			DupeFile:  entry.Document.Path,
		})
		return
	}
	r.entries[qn] = entry
	r.order = append(r.order, qn)
}

// Lookup returns the entry registered for qn, if any.
func (r *Registry) Lookup(qn QualifiedName) (RegistryEntry, bool) {
	e, ok := r.entries[qn]
	return e, ok
}

// Len returns the number of distinct qualified names registered; used for
// processing_metadata.registry_size.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns every registered qualified name, sorted lexicographically
// (by namespace URI, then local name) so that callers building
// deterministic output -- the emitter's data_types array in particular --
// never depend on map iteration order.
func (r *Registry) Names() []QualifiedName {
	names := make([]QualifiedName, len(r.order))
	copy(names, r.order)
	sort.Slice(names, func(i, j int) bool {
		if names[i].NamespaceURI != names[j].NamespaceURI {
			return names[i].NamespaceURI < names[j].NamespaceURI
		}
		return names[i].LocalName < names[j].LocalName
	})
	return names
}
