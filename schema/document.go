package schema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CognitoIQ/soapspec/internal/dependency"
	"github.com/CognitoIQ/soapspec/xmltree"
)

const wsdlNS = "http://schemas.xmlsoap.org/wsdl/"

// A LoadedDocument is an XML element tree plus the source file path that
// produced it and the targetNamespace declared at its root. Documents are
// immutable after Load returns; a Loader owns them for the duration of one
// conversion run.
type LoadedDocument struct {
	Root            *xmltree.Element
	Path            string
	TargetNamespace string
}

// A ParseError reports malformed XML encountered while loading path. It
// implements error so it composes with the standard library, but callers
// that want the processing policy described in the ingestion engine's
// error handling table should type-assert for it rather than matching on
// message text.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// An IOError reports a file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// A Loader reads WSDL and XSD files from disk, resolving xsd:import and
// xsd:include schemaLocation references transitively. Each absolute file
// path is loaded at most once per Loader, mirroring §4.1's "load
// recursively; register loaded documents by absolute path" contract.
type Loader struct {
	docs    map[string]*LoadedDocument
	order   []string
	deps    dependency.Graph
	Skipped []error // non-fatal load failures for auxiliary files
}

// NewLoader returns a Loader pre-populated with the bundled standard
// schemas (WSDL's own namespace, SOAP encoding, xml:lang) so that imports
// of those well-known namespaces never fail for want of a file.
func NewLoader() *Loader {
	l := &Loader{docs: make(map[string]*LoadedDocument)}
	for i, b := range StandardSchemaDocuments() {
		path := fmt.Sprintf("<standard-schema-%d>", i)
		if doc, err := parseBytes(path, b); err == nil {
			l.docs[path] = doc
			l.order = append(l.order, path)
		}
	}
	return l
}

func parseBytes(path string, data []byte) (*LoadedDocument, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &LoadedDocument{
		Root:            root,
		Path:            path,
		TargetNamespace: root.Attr("", "targetNamespace"),
	}, nil
}

// LoadMain reads the primary WSDL document at path, then recursively loads
// every xsd:import/xsd:include schemaLocation it (or any schema it pulls
// in) references, resolved relative to path's directory. A failure reading
// or parsing the main document is fatal and returned as err; failures
// loading an auxiliary, transitively-discovered file are recorded in
// l.Skipped and otherwise ignored, per §4.1 and the IOError policy table.
func (l *Loader) LoadMain(path string) (*LoadedDocument, error) {
	doc, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}
	l.loadImports(doc)
	return doc, nil
}

// LoadAuxiliary loads an explicitly provided XSD file (the -xsd CLI flag,
// §6.3), recursively following any imports it declares. A failure here is
// recorded in l.Skipped, not returned, so one bad auxiliary file does not
// abort the whole run.
func (l *Loader) LoadAuxiliary(path string) {
	doc, err := l.loadFile(path)
	if err != nil {
		l.Skipped = append(l.Skipped, err)
		return
	}
	l.loadImports(doc)
}

func (l *Loader) loadFile(path string) (*LoadedDocument, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if doc, ok := l.docs[abs]; ok {
		return doc, nil
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	doc, err := parseBytes(abs, bytes.TrimSpace(data))
	if err != nil {
		return nil, err
	}
	l.docs[abs] = doc
	l.order = append(l.order, abs)
	return doc, nil
}

// loadImports scans doc (and anything doc transitively imports) for
// xsd:import and xsd:include elements, loading each schemaLocation
// relative to doc's own directory.
func (l *Loader) loadImports(doc *LoadedDocument) {
	dir := filepath.Dir(doc.Path)
	for _, tag := range []string{"import", "include"} {
		for _, el := range doc.Root.Search("", tag) {
			if el.Name.Space != "http://www.w3.org/2001/XMLSchema" && el.Name.Space != wsdlNS {
				continue
			}
			loc := el.Attr("", "schemaLocation")
			if loc == "" {
				continue
			}
			full := loc
			if !filepath.IsAbs(loc) {
				full = filepath.Join(dir, loc)
			}
			l.deps.Add(doc.Path, full)
			imported, err := l.loadFile(full)
			if err != nil {
				l.Skipped = append(l.Skipped, err)
				continue
			}
			l.loadImports(imported)
		}
	}
}

// Documents returns every successfully loaded document, in the
// deterministic order they were first loaded (standard schemas first,
// then the main WSDL, then its transitive imports in discovery order).
func (l *Loader) Documents() []*LoadedDocument {
	docs := make([]*LoadedDocument, 0, len(l.order))
	for _, path := range l.order {
		docs = append(docs, l.docs[path])
	}
	return docs
}

// Paths returns the absolute paths of every loaded document, in load
// order.
func (l *Loader) Paths() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// DependencyOrder returns every loaded document's path in schema
// dependency order: a file that another file imports or includes is
// listed before the file that references it, matching
// dependency.Graph.Flatten's leaves-before-roots walk over the
// xsd:import/xsd:include edges recorded while loading. A document that
// was never named by, and never itself named, an import (the main
// WSDL when it declares no imports, a standard schema, a standalone
// -xsd file) is not part of that graph; it is appended afterward in
// load order. This is the order reported in
// processing_metadata.files_loaded.
func (l *Loader) DependencyOrder() []string {
	seen := make(map[string]bool, len(l.order))
	out := make([]string, 0, len(l.order))
	l.deps.Flatten(func(path string) {
		if _, ok := l.docs[path]; ok && !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	})
	for _, path := range l.order {
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}
	return out
}
