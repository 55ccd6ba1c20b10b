// Package wsdl parses WSDL 1.1 service descriptions: messages, port
// types, bindings and services. It resolves message parts against the
// type registry built by package schema, but leaves the heavy lifting of
// flattening a part's shape to package typeexpand.
package wsdl

import (
	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/xmltree"
)

const (
	wsdlNS   = "http://schemas.xmlsoap.org/wsdl/"
	soap11NS = "http://schemas.xmlsoap.org/wsdl/soap/"
	soap12NS = "http://schemas.xmlsoap.org/wsdl/soap12/"
)

// A Part is one named piece of a Message, referring to either a global
// element or a type.
type Part struct {
	Name    string
	Element *schema.QualifiedName
	Type    *schema.QualifiedName
}

// A Message groups named Parts under one qualified name.
type Message struct {
	Name  schema.QualifiedName
	Parts []Part
}

// A FaultRef names a fault message an Operation may return.
type FaultRef struct {
	Name    string
	Message string // unqualified message name, as written in the WSDL
}

// An Operation is one RPC exposed by a PortType.
type Operation struct {
	Name          string
	InputMessage  string // unqualified message name
	OutputMessage string
	Faults        []FaultRef
}

// A PortType groups Operations under one qualified name.
type PortType struct {
	Name       schema.QualifiedName
	Operations []Operation
}

// A BindingOperation carries the transport-level details of one
// PortType's Operation: its SOAP action. Which SOAP version supplied the
// action is not recorded, and parseBinding never sets
// SOAPActionSynthetic; a synthesized action is flagged on
// commonapispec.Endpoint instead.
type BindingOperation struct {
	Name                string
	SOAPAction          string
	SOAPActionSynthetic bool
}

// A Binding attaches transport details (SOAP action) to a PortType.
type Binding struct {
	Name       schema.QualifiedName
	Type       schema.QualifiedName
	Operations []BindingOperation
}

// A Port exposes one Binding at a network address.
type Port struct {
	Name     string
	Binding  string // unqualified binding name
	Location string
}

// A Service groups Ports under a name.
type Service struct {
	Name  string
	Ports []Port
}

// A Definition is the parsed form of one WSDL document's service
// structure -- everything the Operation Extractor and Emitter need that
// isn't a type definition (those live in the schema.Registry built
// separately over the same and imported documents).
type Definition struct {
	TargetNamespace string
	Messages        []Message
	PortTypes       []PortType
	Bindings        []Binding
	Services        []Service
}

// Parse reads the WSDL-specific elements (message, portType, binding,
// service) from the main document. It does not follow imports: message,
// binding and port-type references are kept as unqualified names and
// matched against this document's own declarations. A part's element or
// type reference is resolved to a QualifiedName, which the Expander later
// looks up in the registry spanning every loaded document.
func Parse(doc *schema.LoadedDocument) *Definition {
	def := &Definition{TargetNamespace: doc.TargetNamespace}
	for _, el := range doc.Root.Search(wsdlNS, "message") {
		def.Messages = append(def.Messages, parseMessage(el, doc))
	}
	for _, el := range doc.Root.Search(wsdlNS, "portType") {
		def.PortTypes = append(def.PortTypes, parsePortType(el, doc))
	}
	for _, el := range doc.Root.Search(wsdlNS, "binding") {
		def.Bindings = append(def.Bindings, parseBinding(el, doc))
	}
	for _, el := range doc.Root.Search(wsdlNS, "service") {
		def.Services = append(def.Services, parseService(el))
	}
	return def
}

func parseMessage(el *xmltree.Element, doc *schema.LoadedDocument) Message {
	msg := Message{Name: schema.QualifiedName{NamespaceURI: doc.TargetNamespace, LocalName: el.Attr("", "name")}}
	for _, p := range el.Search(wsdlNS, "part") {
		part := Part{Name: p.Attr("", "name")}
		if v := p.Attr("", "element"); v != "" {
			qn := schema.ResolveQName(v, p, doc)
			part.Element = &qn
		}
		if v := p.Attr("", "type"); v != "" {
			qn := schema.ResolveQName(v, p, doc)
			part.Type = &qn
		}
		msg.Parts = append(msg.Parts, part)
	}
	return msg
}

func parsePortType(el *xmltree.Element, doc *schema.LoadedDocument) PortType {
	pt := PortType{Name: schema.QualifiedName{NamespaceURI: doc.TargetNamespace, LocalName: el.Attr("", "name")}}
	for _, op := range el.Search(wsdlNS, "operation") {
		operation := Operation{Name: op.Attr("", "name")}
		if in := firstChild(op, wsdlNS, "input"); in != nil {
			operation.InputMessage = localName(in.Attr("", "message"))
		}
		if out := firstChild(op, wsdlNS, "output"); out != nil {
			operation.OutputMessage = localName(out.Attr("", "message"))
		}
		for _, f := range op.Search(wsdlNS, "fault") {
			operation.Faults = append(operation.Faults, FaultRef{
				Name:    f.Attr("", "name"),
				Message: localName(f.Attr("", "message")),
			})
		}
		pt.Operations = append(pt.Operations, operation)
	}
	return pt
}

func parseBinding(el *xmltree.Element, doc *schema.LoadedDocument) Binding {
	b := Binding{Name: schema.QualifiedName{NamespaceURI: doc.TargetNamespace, LocalName: el.Attr("", "name")}}
	if t := el.Attr("", "type"); t != "" {
		b.Type = schema.ResolveQName(t, el, doc)
	}
	for _, op := range el.Search(wsdlNS, "operation") {
		bo := BindingOperation{Name: op.Attr("", "name")}
		// SOAP 1.1 is tried first and wins ties, per §4.7.
		if soapOp := firstChild(op, soap11NS, "operation"); soapOp != nil {
			bo.SOAPAction = soapOp.Attr("", "soapAction")
		} else if soapOp := firstChild(op, soap12NS, "operation"); soapOp != nil {
			bo.SOAPAction = soapOp.Attr("", "soapAction")
		}
		b.Operations = append(b.Operations, bo)
	}
	return b
}

func parseService(el *xmltree.Element) Service {
	svc := Service{Name: el.Attr("", "name")}
	for _, p := range el.Search(wsdlNS, "port") {
		port := Port{Name: p.Attr("", "name"), Binding: localName(p.Attr("", "binding"))}
		if addr := firstChild(p, soap11NS, "address"); addr != nil {
			port.Location = addr.Attr("", "location")
		} else if addr := firstChild(p, soap12NS, "address"); addr != nil {
			port.Location = addr.Attr("", "location")
		}
		svc.Ports = append(svc.Ports, port)
	}
	return svc
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

// localName strips a namespace prefix from a WSDL-internal reference
// (message="tns:GetWeatherRequest" -> "GetWeatherRequest"), since
// operation/binding correlation in this WSDL dialect is always by
// unqualified name within a single document (§4.7).
func localName(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return s[i+1:]
		}
	}
	return s
}

// BindingOperationFor finds the BindingOperation for operation name
// across every Binding in def, in document order, returning the first one
// with a non-empty SOAP action. SOAP 1.1 wins over SOAP 1.2 only inside
// one binding operation (see parseBinding); across separate SOAP 1.1 and
// SOAP 1.2 bindings, whichever binding is declared first wins.
func (def *Definition) BindingOperationFor(operationName string) (BindingOperation, bool) {
	for _, b := range def.Bindings {
		for _, op := range b.Operations {
			if op.Name == operationName && op.SOAPAction != "" {
				return op, true
			}
		}
	}
	return BindingOperation{}, false
}

// MessageByName looks up a Message by its unqualified local name.
func (def *Definition) MessageByName(name string) (Message, bool) {
	for _, m := range def.Messages {
		if m.Name.LocalName == name {
			return m, true
		}
	}
	return Message{}, false
}
