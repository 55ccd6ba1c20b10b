package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoaderPreloadsStandardSchemas(t *testing.T) {
	l := NewLoader()
	if len(l.Documents()) != len(StandardSchemaDocuments()) {
		t.Fatalf("NewLoader() preloaded %d documents, want %d", len(l.Documents()), len(StandardSchemaDocuments()))
	}
}

func TestLoadMainFollowsImports(t *testing.T) {
	dir := t.TempDir()
	xsdPath := filepath.Join(dir, "types.xsd")
	xsd := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com/">
		<xs:complexType name="Widget"><xs:sequence/></xs:complexType>
	</xs:schema>`
	if err := os.WriteFile(xsdPath, []byte(xsd), 0644); err != nil {
		t.Fatal(err)
	}

	wsdlPath := filepath.Join(dir, "service.wsdl")
	wsdl := `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"
		xmlns:xs="http://www.w3.org/2001/XMLSchema"
		targetNamespace="http://example.com/">
		<types>
			<xs:schema>
				<xs:import schemaLocation="types.xsd"/>
			</xs:schema>
		</types>
	</definitions>`
	if err := os.WriteFile(wsdlPath, []byte(wsdl), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	preloaded := len(l.Documents())
	main, err := l.LoadMain(wsdlPath)
	if err != nil {
		t.Fatalf("LoadMain: %v", err)
	}
	if main.TargetNamespace != "http://example.com/" {
		t.Errorf("main.TargetNamespace = %q", main.TargetNamespace)
	}
	if len(l.Documents()) != preloaded+2 {
		t.Fatalf("Documents() len = %d, want %d (main + types.xsd)", len(l.Documents()), preloaded+2)
	}
	if len(l.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", l.Skipped)
	}
}

func TestDependencyOrderPutsImportedSchemaBeforeImporter(t *testing.T) {
	dir := t.TempDir()
	xsdPath := filepath.Join(dir, "types.xsd")
	xsd := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://example.com/">
		<xs:complexType name="Widget"><xs:sequence/></xs:complexType>
	</xs:schema>`
	if err := os.WriteFile(xsdPath, []byte(xsd), 0644); err != nil {
		t.Fatal(err)
	}

	wsdlPath := filepath.Join(dir, "service.wsdl")
	wsdl := `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"
		xmlns:xs="http://www.w3.org/2001/XMLSchema"
		targetNamespace="http://example.com/">
		<types>
			<xs:schema>
				<xs:import schemaLocation="types.xsd"/>
			</xs:schema>
		</types>
	</definitions>`
	if err := os.WriteFile(wsdlPath, []byte(wsdl), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	if _, err := l.LoadMain(wsdlPath); err != nil {
		t.Fatalf("LoadMain: %v", err)
	}

	order := l.DependencyOrder()
	wsdlIdx, xsdIdx := -1, -1
	for i, p := range order {
		if p == wsdlPath {
			wsdlIdx = i
		}
		if p == xsdPath {
			xsdIdx = i
		}
	}
	if wsdlIdx == -1 || xsdIdx == -1 {
		t.Fatalf("DependencyOrder() = %v, want both %s and %s present", order, wsdlPath, xsdPath)
	}
	if xsdIdx >= wsdlIdx {
		t.Errorf("types.xsd at %d, service.wsdl at %d; want the imported schema listed first", xsdIdx, wsdlIdx)
	}
	if len(order) != len(l.Documents()) {
		t.Errorf("DependencyOrder() len = %d, want %d (every loaded document exactly once)", len(order), len(l.Documents()))
	}
}

func TestLoadAuxiliaryRecordsFailureNonFatally(t *testing.T) {
	l := NewLoader()
	l.LoadAuxiliary("/nonexistent/path/to/nowhere.xsd")
	if len(l.Skipped) != 1 {
		t.Fatalf("Skipped = %v, want exactly one entry", l.Skipped)
	}
}
