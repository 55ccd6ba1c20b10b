package typeexpand

import (
	"strconv"
	"strings"

	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/xmltree"
)

const xsdNS = "http://www.w3.org/2001/XMLSchema"

// An Expander walks complexType definitions into TypeExpansions. It
// threads an explicit (element, document) pair through every step
// instead of a bare *xmltree.Element, and reports unresolved
// references, cycles and depth limits as values instead of panicking.
type Expander struct {
	resolver *schema.Resolver
	Events   *Events
}

// NewExpander returns an Expander that resolves references through
// resolver, recording non-fatal conditions into events.
func NewExpander(resolver *schema.Resolver, events *Events) *Expander {
	if events == nil {
		events = &Events{}
	}
	return &Expander{resolver: resolver, Events: events}
}

// ExpandQName resolves qn through the Expander's Resolver and expands it.
// If qn cannot be resolved, it returns an opaque TypeExpansion carrying no
// attributes, and records an UnresolvedReferenceEvent.
func (x *Expander) ExpandQName(qn schema.QualifiedName, name, parentPath string, ctx *ResolutionContext) *TypeExpansion {
	entry, ok := x.resolver.Resolve(qn)
	if !ok {
		x.Events.Unresolved = append(x.Events.Unresolved, UnresolvedReferenceEvent{QualifiedName: qn, ParentPath: parentPath})
		te := &TypeExpansion{Name: name}
		te.setQualifiedName(qn)
		return te
	}
	return x.Expand(entry, qn, name, parentPath, ctx)
}

// Expand implements §4.6's algorithm for one complexType registry entry.
// A global xsd:element (entry.Kind == schema.ElementDecl) -- the shape a
// message part's element="..." attribute most often names -- is resolved
// through its inline complexType or its type="..." reference down to the
// complex type it actually describes before walking begins.
func (x *Expander) Expand(entry schema.RegistryEntry, qn schema.QualifiedName, name, parentPath string, ctx *ResolutionContext) *TypeExpansion {
	te := &TypeExpansion{Name: name}
	te.setQualifiedName(qn)

	el := entry.Element
	doc := entry.Document

	if entry.Kind == schema.ElementDecl {
		resolved, ok := x.resolveElementDecl(el, doc, parentPath)
		if !ok {
			return te
		}
		el, doc = resolved.Element, resolved.Document
	} else if entry.Kind != schema.ComplexType {
		// Simple types contribute no structure to expand; the caller
		// treats them as leaves.
		return te
	}

	switch ctx.enter(parentPath, qn) {
	case enterCycle, enterMaxCycles:
		te.CircularReference = true
		te.CircularPath = pathKey(parentPath, qn)
		x.Events.Circular = append(x.Events.Circular, CircularReferenceEvent{Path: te.CircularPath})
		return te
	case enterMaxDepth:
		te.MaxDepthReached = true
		x.Events.MaxDepth = append(x.Events.MaxDepth, MaxDepthEvent{Path: pathKey(parentPath, qn)})
		return te
	}
	defer ctx.leave(parentPath, qn)

	// Step 2: inheritance merge.
	x.mergeInheritance(el, doc, qn, ctx, te)

	// Step 3: compositor walk (also covers the restriction/extension's
	// own compositor, when content is wrapped in complexContent).
	content := el
	if ext := firstChild(el, xsdNS, "complexContent"); ext != nil {
		if e := firstChild(ext, xsdNS, "extension"); e != nil {
			content = e
		} else if r := firstChild(ext, xsdNS, "restriction"); r != nil {
			content = r
		}
	} else if sc := firstChild(el, xsdNS, "simpleContent"); sc != nil {
		if e := firstChild(sc, xsdNS, "extension"); e != nil {
			content = e
		} else if r := firstChild(sc, xsdNS, "restriction"); r != nil {
			content = r
		} else {
			content = sc
		}
	}

	elements := collectCompositorElements(content, false, false)
	for _, ce := range elements {
		desc, skip := x.elementDescriptor(ce.el, doc, parentPath)
		if skip {
			continue
		}
		desc.ChoiceGroup = ce.choiceGroup
		desc.AllGroup = ce.allGroup
		te.Attributes = append(te.Attributes, desc)
	}
	for _, ae := range collectAttributes(content) {
		desc, skip := x.attributeDescriptor(ae, doc)
		if skip {
			continue
		}
		te.Attributes = append(te.Attributes, desc)
	}

	// Preserve each top-level xsd:sequence's own grouping, per §4.6 step 3.
	for i := range content.Children {
		child := &content.Children[i]
		if child.Name.Space == xsdNS && child.Name.Local == "sequence" {
			var seq []AttributeDescriptor
			for _, ce := range collectCompositorElements(child, false, false) {
				desc, skip := x.elementDescriptor(ce.el, doc, parentPath)
				if skip {
					continue
				}
				seq = append(seq, desc)
			}
			te.Sequences = append(te.Sequences, seq)
		}
	}

	// Step 4: nested expansion. An element whose type resolves to another
	// complex type contributes its flattening to te.NestedAttributes
	// instead of standing as an opaque entry in te.Attributes (§3.2.3); mark
	// its Attributes entry IsNested so downstream consumers (e.g. a
	// MessageShape's flattened attribute list) can drop the duplicate.
	nested := make(map[string]bool, len(elements))
	for _, ce := range elements {
		if x.expandNested(ce.el, doc, qn, name, parentPath, ctx, te) {
			nested[ce.el.Attr("", "name")] = true
		}
	}
	for i := range te.Attributes {
		if nested[te.Attributes[i].Name] {
			te.Attributes[i].IsNested = true
		}
	}

	return te
}

// resolveElementDecl finds the complex type backing a global xsd:element
// declaration: its own inline complexType child, or the complex type its
// type="..." attribute names. It reports false for an element with no
// structure to walk (a simple or built-in type, or an unresolved
// reference, which is recorded as an UnresolvedReferenceEvent).
func (x *Expander) resolveElementDecl(el *xmltree.Element, doc *schema.LoadedDocument, parentPath string) (schema.RegistryEntry, bool) {
	if inline := firstChild(el, xsdNS, "complexType"); inline != nil {
		return schema.RegistryEntry{Element: inline, Document: doc, Kind: schema.ComplexType}, true
	}
	typeAttr := el.Attr("", "type")
	if typeAttr == "" {
		return schema.RegistryEntry{}, false
	}
	typeQN := schema.ResolveQName(typeAttr, el, doc)
	if schema.IsBuiltin(typeQN) {
		return schema.RegistryEntry{}, false
	}
	resolved, ok := x.resolver.Resolve(typeQN)
	if !ok {
		x.Events.Unresolved = append(x.Events.Unresolved, UnresolvedReferenceEvent{QualifiedName: typeQN, ParentPath: parentPath})
		return schema.RegistryEntry{}, false
	}
	if resolved.Kind != schema.ComplexType {
		return schema.RegistryEntry{}, false
	}
	return resolved, true
}

func (x *Expander) mergeInheritance(el *xmltree.Element, doc *schema.LoadedDocument, derivedQN schema.QualifiedName, ctx *ResolutionContext, te *TypeExpansion) {
	cc := firstChild(el, xsdNS, "complexContent")
	if cc == nil {
		return
	}
	ext := firstChild(cc, xsdNS, "extension")
	if ext == nil {
		return
	}
	baseAttr := ext.Attr("", "base")
	if baseAttr == "" {
		return
	}
	baseQN := schema.ResolveQName(baseAttr, ext, doc)
	if derivedQN.NamespaceURI != "" && baseQN.NamespaceURI != "" && derivedQN.NamespaceURI != baseQN.NamespaceURI {
		x.Events.CrossNamespace = append(x.Events.CrossNamespace, CrossNamespaceInheritanceEvent{Derived: derivedQN, Base: baseQN})
	}
	if !ctx.enterInheritance(derivedQN, baseQN) {
		x.Events.Circular = append(x.Events.Circular, CircularReferenceEvent{Path: derivedQN.String() + " → " + baseQN.String()})
		return
	}
	entry, ok := x.resolver.Resolve(baseQN)
	if !ok {
		x.Events.Unresolved = append(x.Events.Unresolved, UnresolvedReferenceEvent{QualifiedName: baseQN, ParentPath: derivedQN.String()})
		return
	}
	if entry.Kind != schema.ComplexType {
		return
	}
	base := x.Expand(entry, baseQN, baseQN.LocalName, "", ctx.freshForInheritance())
	te.InheritedAttributes = append(te.InheritedAttributes, base.Attributes...)
	// Inherited entries come before locally declared ones (§4.6 step 5).
	te.Attributes = append(append([]AttributeDescriptor{}, base.Attributes...), te.Attributes...)
	te.NestedAttributes = append(te.NestedAttributes, base.NestedAttributes...)
}

// expandNested expands el's element declaration if its type is itself a
// complex type, flattening the result into te.NestedAttributes. It
// reports whether it did so, so the caller can suppress the matching
// opaque entry in te.Attributes.
func (x *Expander) expandNested(el *xmltree.Element, doc *schema.LoadedDocument, ownerQN schema.QualifiedName, ownerName, parentPath string, ctx *ResolutionContext, te *TypeExpansion) bool {
	name := el.Attr("", "name")
	if name == "" {
		return false
	}
	childPath := parentPath
	if childPath == "" {
		childPath = ownerName
	}
	childPath = childPath + "." + name

	if inline := firstChild(el, xsdNS, "complexType"); inline != nil {
		entry := schema.RegistryEntry{Element: inline, Document: doc, Kind: schema.ComplexType}
		child := x.Expand(entry, schema.QualifiedName{}, name, childPath, ctx)
		x.flattenNested(child, childPath, te)
		return true
	}

	typeAttr := el.Attr("", "type")
	if typeAttr == "" {
		return false
	}
	typeQN := schema.ResolveQName(typeAttr, el, doc)
	if schema.IsBuiltin(typeQN) {
		return false
	}
	entry, ok := x.resolver.Resolve(typeQN)
	if !ok {
		// Already recorded as an opaque attribute by elementDescriptor;
		// nothing further to nest.
		return false
	}
	if entry.Kind != schema.ComplexType {
		return false
	}
	child := x.Expand(entry, typeQN, name, childPath, ctx)
	x.flattenNested(child, childPath, te)
	return true
}

// flattenNested appends every leaf attribute of child (its own direct
// attributes, plus anything it already flattened into its own
// nested_attributes) into te.NestedAttributes, reparenting each to hang
// off childPath, per §4.6 step 4 and invariant §3.2.3.
func (x *Expander) flattenNested(child *TypeExpansion, childPath string, te *TypeExpansion) {
	if child.CircularReference {
		te.NestedAttributes = append(te.NestedAttributes, AttributeDescriptor{
			Name:       child.Name,
			Type:       child.QualifiedNameString,
			ParentPath: childPath,
			IsNested:   true,
		})
		return
	}
	for _, a := range child.Attributes {
		te.NestedAttributes = append(te.NestedAttributes, AttributeDescriptor{
			Name:        a.Name,
			Type:        a.Type,
			MinOccurs:   a.MinOccurs,
			MaxOccurs:   a.MaxOccurs,
			Nillable:    a.Nillable,
			Description: a.Description,
			ParentPath:  childPath,
			IsNested:    true,
			Wildcard:    a.Wildcard,
		})
	}
	// child's own NestedAttributes were already computed with parentPath
	// threaded from this type's root (childPath was passed as child's
	// parentPath when it was expanded), so they carry the correct
	// fully-qualified dotted path already and need no reparenting.
	te.NestedAttributes = append(te.NestedAttributes, child.NestedAttributes...)
}

func (x *Expander) elementDescriptor(el *xmltree.Element, doc *schema.LoadedDocument, parentPath string) (AttributeDescriptor, bool) {
	name := el.Attr("", "name")
	wildcard := false
	if name == "" {
		if el.Name.Local == "any" {
			wildcard = true
			name = "any"
		} else {
			x.Events.Malformed = append(x.Events.Malformed, MalformedSchemaEvent{Reason: "element without @name", Path: parentPath})
			return AttributeDescriptor{}, true
		}
	}
	typeStr := el.Attr("", "type")
	var typeName string
	if typeStr != "" {
		typeName = schema.ResolveQName(typeStr, el, doc).String()
	} else if inline := firstChild(el, xsdNS, "complexType"); inline != nil {
		typeName = "anonymous"
	} else {
		typeName = schema.QualifiedName{NamespaceURI: schema.SchemaNS, LocalName: "anyType"}.String()
	}
	min, max := occurs(el)
	return AttributeDescriptor{
		Name:        name,
		Type:        typeName,
		MinOccurs:   min,
		MaxOccurs:   max,
		Nillable:    el.Attr("", "nillable") == "true",
		Description: docString(el),
		Wildcard:    wildcard,
	}, false
}

func (x *Expander) attributeDescriptor(el *xmltree.Element, doc *schema.LoadedDocument) (AttributeDescriptor, bool) {
	name := el.Attr("", "name")
	if name == "" {
		return AttributeDescriptor{}, true
	}
	typeStr := el.Attr("", "type")
	typeName := schema.QualifiedName{NamespaceURI: schema.SchemaNS, LocalName: "anySimpleType"}.String()
	if typeStr != "" {
		typeName = schema.ResolveQName(typeStr, el, doc).String()
	}
	optional := el.Attr("", "use") != "required"
	min := 1
	if optional {
		min = 0
	}
	return AttributeDescriptor{
		Name:        name,
		Type:        typeName,
		MinOccurs:   min,
		MaxOccurs:   1,
		Description: docString(el),
	}, false
}

func occurs(el *xmltree.Element) (min, max int) {
	min, max = 1, 1
	if v := el.Attr("", "minOccurs"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			min = n
		}
	}
	if v := el.Attr("", "maxOccurs"); v != "" {
		if v == "unbounded" {
			max = -1
		} else if n, err := strconv.Atoi(v); err == nil {
			max = n
		}
	}
	return
}

func docString(el *xmltree.Element) string {
	ann := firstChild(el, xsdNS, "annotation")
	if ann == nil {
		return ""
	}
	doc := firstChild(ann, xsdNS, "documentation")
	if doc == nil {
		return ""
	}
	return strings.TrimSpace(string(doc.Content))
}

func firstChild(el *xmltree.Element, space, local string) *xmltree.Element {
	for i := range el.Children {
		c := &el.Children[i]
		if c.Name.Space == space && c.Name.Local == local {
			return c
		}
	}
	return nil
}

func collectAttributes(el *xmltree.Element) []*xmltree.Element {
	var out []*xmltree.Element
	for i := range el.Children {
		c := &el.Children[i]
		if c.Name.Space == xsdNS && c.Name.Local == "attribute" {
			out = append(out, c)
		}
	}
	return out
}

type compositorElement struct {
	el                   *xmltree.Element
	choiceGroup, allGroup bool
}

// collectCompositorElements walks container's immediate xsd:sequence,
// xsd:choice and xsd:all children (recursing into nested compositors,
// which flatten into the same list), collecting every xsd:element or
// xsd:any leaf. It does not descend into an element's own inline
// complexType: that substructure belongs to the nested-expansion step,
// not the current type's direct attribute list.
func collectCompositorElements(container *xmltree.Element, inChoice, inAll bool) []compositorElement {
	var out []compositorElement
	for i := range container.Children {
		c := &container.Children[i]
		if c.Name.Space != xsdNS {
			continue
		}
		switch c.Name.Local {
		case "element", "any":
			out = append(out, compositorElement{el: c, choiceGroup: inChoice, allGroup: inAll})
		case "sequence":
			out = append(out, collectCompositorElements(c, inChoice, inAll)...)
		case "choice":
			out = append(out, collectCompositorElements(c, true, inAll)...)
		case "all":
			out = append(out, collectCompositorElements(c, inChoice, true)...)
		}
	}
	return out
}
