// Package commonapispec defines the CommonAPISpec document this module
// emits, and sorts and encodes it as JSON. The document itself is
// assembled by the engine package from a parsed wsdl.Definition and the
// TypeExpansions of the registered types.
package commonapispec

import "github.com/CognitoIQ/soapspec/typeexpand"

// A MessageShape is a request or response flattened into one attribute
// list, for search indexing (§3.1).
type MessageShape struct {
	MessageName   string                          `json:"message_name"`
	AllAttributes []typeexpand.AttributeDescriptor `json:"all_attributes"`
}

// An Endpoint is one normalized SOAP operation (§3.1).
type Endpoint struct {
	Path                string       `json:"path"`
	Method              string       `json:"method"`
	OperationName       string       `json:"operation_name"`
	SOAPAction          string       `json:"soap_action"`
	SOAPActionSynthetic bool         `json:"soap_action_synthetic,omitempty"`
	Summary             string       `json:"summary,omitempty"`
	Description         string       `json:"description,omitempty"`
	Request             MessageShape `json:"request"`
	Response            MessageShape `json:"response"`
	Faults              []string     `json:"faults"`
}

// ProcessingMetadata records what happened during a conversion run,
// surfaced instead of throwing errors across the API boundary (§7).
type ProcessingMetadata struct {
	SourceFile     string   `json:"source_file"`
	ProcessedAt    string   `json:"processed_at"`
	ParserVersion  string   `json:"parser_version"`
	FilesLoaded    []string `json:"files_loaded"`
	RegistrySize   int      `json:"registry_size"`
	CacheHits      int      `json:"cache_hits"`
	CacheMisses    int      `json:"cache_misses"`
	Warnings       []string `json:"warnings,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

// A DataType is one registered type's expansion, serialized into the
// data_types array.
type DataType = typeexpand.TypeExpansion

// CommonAPISpec is the root document this module emits (§6.2).
type CommonAPISpec struct {
	ID               int64               `json:"id"`
	APIName          string              `json:"api_name"`
	Version          string              `json:"version"`
	Description      string              `json:"description"`
	BaseURL          string              `json:"base_url"`
	APIType          string              `json:"api_type"`
	TargetNamespace  string              `json:"target_namespace"`
	Services         []ServiceInfo       `json:"services"`
	PortTypes        []PortTypeInfo      `json:"port_types"`
	Bindings         []BindingInfo       `json:"bindings"`
	Messages         []MessageInfo       `json:"messages"`
	Endpoints        []Endpoint          `json:"endpoints"`
	DataTypes        []DataType          `json:"data_types"`
	ProcessingMeta   ProcessingMetadata  `json:"processing_metadata"`
}

// ServiceInfo, PortInfo, PortTypeInfo, BindingInfo, MessageInfo are a
// direct passthrough of the WSDL service structure (§6.2: "services ...
// passthrough of WSDL service structure").
type PortInfo struct {
	Name     string `json:"name"`
	Binding  string `json:"binding"`
	Location string `json:"location,omitempty"`
}

type ServiceInfo struct {
	Name  string     `json:"name"`
	Ports []PortInfo `json:"ports"`
}

type PortTypeInfo struct {
	Name       string   `json:"name"`
	Operations []string `json:"operations"`
}

type BindingOperationInfo struct {
	Name       string `json:"name"`
	SOAPAction string `json:"soap_action,omitempty"`
}

type BindingInfo struct {
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Operations []BindingOperationInfo `json:"operations"`
}

type PartInfo struct {
	Name    string `json:"name"`
	Element string `json:"element,omitempty"`
	Type    string `json:"type,omitempty"`
}

type MessageInfo struct {
	Name  string     `json:"name"`
	Parts []PartInfo `json:"parts"`
}
