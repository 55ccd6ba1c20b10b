package schema

import "testing"

func TestResolverCacheHitsAndMisses(t *testing.T) {
	doc := mustDoc(t, "a.xsd", `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
		targetNamespace="http://example.com/">
		<xs:complexType name="Widget"><xs:sequence/></xs:complexType>
	</xs:schema>`)
	reg := BuildRegistry([]*LoadedDocument{doc})
	cache := NewResolutionCache(10)
	resolver := NewResolver(reg, cache)

	qn := QualifiedName{"http://example.com/", "Widget"}
	if _, ok := resolver.Resolve(qn); !ok {
		t.Fatal("expected Widget to resolve")
	}
	if _, ok := resolver.Resolve(qn); !ok {
		t.Fatal("expected second Resolve to still succeed from cache")
	}
	hits, misses := resolver.CacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("CacheStats() = (%d, %d), want (1, 1)", hits, misses)
	}

	if _, ok := resolver.Resolve(QualifiedName{"http://example.com/", "Missing"}); ok {
		t.Error("expected Missing to be unresolved")
	}
}

func TestResolverWithoutCache(t *testing.T) {
	reg := &Registry{entries: make(map[QualifiedName]RegistryEntry)}
	resolver := NewResolver(reg, nil)
	if _, ok := resolver.Resolve(QualifiedName{"ns", "X"}); ok {
		t.Error("expected unresolved lookup against empty registry")
	}
	hits, misses := resolver.CacheStats()
	if hits != 0 || misses != 0 {
		t.Errorf("CacheStats() with nil cache = (%d, %d), want (0, 0)", hits, misses)
	}
}
