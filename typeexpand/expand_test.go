package typeexpand

import (
	"testing"

	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/xmltree"
)

const testNS = "http://example.com/"

func mustSchema(t *testing.T, data string) *schema.LoadedDocument {
	t.Helper()
	root, err := xmltree.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &schema.LoadedDocument{Root: root, Path: "test.xsd", TargetNamespace: root.Attr("", "targetNamespace")}
}

func newExpander(doc *schema.LoadedDocument) *Expander {
	reg := schema.BuildRegistry([]*schema.LoadedDocument{doc})
	resolver := schema.NewResolver(reg, schema.NewResolutionCache(10))
	return NewExpander(resolver, &Events{})
}

func TestExpandSimpleAttributes(t *testing.T) {
	doc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+testNS+`">
		<xs:complexType name="Widget">
			<xs:sequence>
				<xs:element name="id" type="xs:int"/>
				<xs:element name="label" type="xs:string" minOccurs="0"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)
	x := newExpander(doc)
	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "Widget"}
	entry, _ := x.resolver.Resolve(qn)
	te := x.Expand(entry, qn, "Widget", "", NewResolutionContext(0, 0))

	if len(te.Attributes) != 2 {
		t.Fatalf("Attributes = %v, want 2 entries", te.Attributes)
	}
	if te.Attributes[0].Name != "id" || te.Attributes[0].MinOccurs != 1 {
		t.Errorf("Attributes[0] = %+v", te.Attributes[0])
	}
	if te.Attributes[1].Name != "label" || te.Attributes[1].MinOccurs != 0 {
		t.Errorf("Attributes[1] = %+v", te.Attributes[1])
	}
	if len(te.Sequences) != 1 || len(te.Sequences[0]) != 2 {
		t.Errorf("Sequences = %v, want one group of 2", te.Sequences)
	}
}

func TestExpandNestedDottedParentPath(t *testing.T) {
	doc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+testNS+`">
		<xs:complexType name="Address">
			<xs:sequence>
				<xs:element name="city" type="xs:string"/>
			</xs:sequence>
		</xs:complexType>
		<xs:complexType name="Person">
			<xs:sequence>
				<xs:element name="name" type="xs:string"/>
				<xs:element name="home" type="tns:Address"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)
	x := newExpander(doc)
	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "Person"}
	entry, _ := x.resolver.Resolve(qn)
	te := x.Expand(entry, qn, "Person", "", NewResolutionContext(0, 0))

	if len(te.NestedAttributes) != 1 {
		t.Fatalf("NestedAttributes = %v, want 1", te.NestedAttributes)
	}
	nested := te.NestedAttributes[0]
	if nested.Name != "city" || nested.ParentPath != "Person.home" {
		t.Errorf("NestedAttributes[0] = %+v, want city at Person.home", nested)
	}
}

func TestExpandInheritanceOrdersBaseBeforeDerived(t *testing.T) {
	doc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+testNS+`">
		<xs:complexType name="Base">
			<xs:sequence>
				<xs:element name="id" type="xs:int"/>
			</xs:sequence>
		</xs:complexType>
		<xs:complexType name="Derived">
			<xs:complexContent>
				<xs:extension base="tns:Base">
					<xs:sequence>
						<xs:element name="extra" type="xs:string"/>
					</xs:sequence>
				</xs:extension>
			</xs:complexContent>
		</xs:complexType>
	</xs:schema>`)
	x := newExpander(doc)
	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "Derived"}
	entry, _ := x.resolver.Resolve(qn)
	te := x.Expand(entry, qn, "Derived", "", NewResolutionContext(0, 0))

	if len(te.InheritedAttributes) != 1 || te.InheritedAttributes[0].Name != "id" {
		t.Fatalf("InheritedAttributes = %v, want [id]", te.InheritedAttributes)
	}
	if len(te.Attributes) != 2 || te.Attributes[0].Name != "id" || te.Attributes[1].Name != "extra" {
		t.Fatalf("Attributes = %v, want [id extra]", te.Attributes)
	}
}

func TestExpandInheritanceAcrossNamespacesLogsEvent(t *testing.T) {
	const baseNS = "http://example.com/base"
	baseDoc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+baseNS+`">
		<xs:complexType name="Base">
			<xs:sequence>
				<xs:element name="id" type="xs:int"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)
	derivedDoc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:base="`+baseNS+`" targetNamespace="`+testNS+`">
		<xs:complexType name="Derived">
			<xs:complexContent>
				<xs:extension base="base:Base">
					<xs:sequence>
						<xs:element name="extra" type="xs:string"/>
					</xs:sequence>
				</xs:extension>
			</xs:complexContent>
		</xs:complexType>
	</xs:schema>`)
	reg := schema.BuildRegistry([]*schema.LoadedDocument{baseDoc, derivedDoc})
	resolver := schema.NewResolver(reg, schema.NewResolutionCache(10))
	x := NewExpander(resolver, &Events{})

	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "Derived"}
	entry, _ := x.resolver.Resolve(qn)
	te := x.Expand(entry, qn, "Derived", "", NewResolutionContext(0, 0))

	if len(te.InheritedAttributes) != 1 || te.InheritedAttributes[0].Name != "id" {
		t.Fatalf("InheritedAttributes = %v, want [id]", te.InheritedAttributes)
	}
	if len(x.Events.CrossNamespace) != 1 {
		t.Fatalf("CrossNamespace events = %v, want 1", x.Events.CrossNamespace)
	}
	ev := x.Events.CrossNamespace[0]
	if ev.Derived.NamespaceURI != testNS || ev.Base.NamespaceURI != baseNS {
		t.Errorf("CrossNamespace event = %+v, want derived=%s base=%s", ev, testNS, baseNS)
	}
}

func TestExpandCircularReferenceStub(t *testing.T) {
	doc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+testNS+`">
		<xs:complexType name="Node">
			<xs:sequence>
				<xs:element name="child" type="tns:Node" minOccurs="0"/>
			</xs:sequence>
		</xs:complexType>
	</xs:schema>`)
	x := newExpander(doc)
	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "Node"}
	entry, _ := x.resolver.Resolve(qn)
	te := x.Expand(entry, qn, "Node", "", NewResolutionContext(0, 0))

	if len(te.NestedAttributes) != 1 {
		t.Fatalf("NestedAttributes = %v, want 1 (circular stub)", te.NestedAttributes)
	}
	if !te.NestedAttributes[0].IsNested {
		t.Errorf("expected circular stub to be marked nested")
	}
	if len(x.Events.Circular) == 0 {
		t.Error("expected a CircularReferenceEvent to be recorded")
	}
}

func TestExpandUnresolvedReference(t *testing.T) {
	doc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+testNS+`"/>`)
	x := newExpander(doc)
	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "Missing"}
	te := x.ExpandQName(qn, "Missing", "", NewResolutionContext(0, 0))

	if te.Attributes != nil {
		t.Errorf("Attributes = %v, want nil for unresolved reference", te.Attributes)
	}
	if len(x.Events.Unresolved) != 1 {
		t.Fatalf("Unresolved events = %v, want 1", x.Events.Unresolved)
	}
}

func TestMaxDepthStopsRecursion(t *testing.T) {
	doc := mustSchema(t, `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="`+testNS+`">
		<xs:complexType name="A">
			<xs:sequence><xs:element name="b" type="tns:B"/></xs:sequence>
		</xs:complexType>
		<xs:complexType name="B">
			<xs:sequence><xs:element name="c" type="tns:C"/></xs:sequence>
		</xs:complexType>
		<xs:complexType name="C">
			<xs:sequence><xs:element name="leaf" type="xs:string"/></xs:sequence>
		</xs:complexType>
	</xs:schema>`)
	x := newExpander(doc)
	qn := schema.QualifiedName{NamespaceURI: testNS, LocalName: "A"}
	entry, _ := x.resolver.Resolve(qn)
	te := x.Expand(entry, qn, "A", "", NewResolutionContext(1, 0))

	if len(x.Events.MaxDepth) == 0 {
		t.Error("expected a MaxDepthEvent with maxDepth=1")
	}
	_ = te
}
