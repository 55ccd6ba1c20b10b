// Package typeexpand walks XSD complexType definitions -- including
// complexContent/extension base types, sequence/choice/all compositors,
// and nested element references -- into a flattened TypeExpansion,
// guaranteeing termination on cyclic and mutually-recursive types.
package typeexpand

import "github.com/CognitoIQ/soapspec/schema"

// An AttributeDescriptor describes one field of an expanded type: an
// element or attribute declaration, flattened to the shape a downstream
// indexer or code generator wants to consume.
type AttributeDescriptor struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // qualified name string, "ns#local"
	MinOccurs   int    `json:"min_occurs"`
	MaxOccurs   int    `json:"max_occurs"` // -1 means unbounded
	Nillable    bool   `json:"nillable"`
	Description string `json:"description,omitempty"`
	ParentPath  string `json:"parent_path,omitempty"`
	IsNested    bool   `json:"is_nested"`
	ChoiceGroup bool   `json:"choice_group,omitempty"`
	AllGroup    bool   `json:"all_group,omitempty"`
	Wildcard    bool   `json:"wildcard,omitempty"`
}

// A TypeExpansion is the output of expanding one complex type, per §3.1.
type TypeExpansion struct {
	Name                string                   `json:"name"`
	QualifiedName       schema.QualifiedName     `json:"-"`
	QualifiedNameString string                   `json:"qualified_name"`
	Attributes          []AttributeDescriptor    `json:"attributes"`
	InheritedAttributes []AttributeDescriptor    `json:"inherited_attributes"`
	NestedAttributes    []AttributeDescriptor    `json:"nested_attributes"`
	Sequences           [][]AttributeDescriptor  `json:"sequences"`
	CircularReference   bool                     `json:"circular_reference,omitempty"`
	MaxDepthReached     bool                     `json:"max_depth_reached,omitempty"`
	CircularPath        string                   `json:"circular_path,omitempty"`
}

func (t *TypeExpansion) setQualifiedName(qn schema.QualifiedName) {
	t.QualifiedName = qn
	t.QualifiedNameString = qn.String()
}
