package schema

// A Resolver looks up qualified names in a Registry, memoizing results in
// a ResolutionCache. It implements §4.4's contract: resolve(qname) →
// (element, document) | Unresolved.
type Resolver struct {
	registry *Registry
	cache    *ResolutionCache
}

// NewResolver returns a Resolver backed by registry, caching lookups in
// cache. Passing a nil cache disables memoization (every call goes
// straight to the registry); NewConversionRun never does this, but tests
// that don't care about cache statistics may.
func NewResolver(registry *Registry, cache *ResolutionCache) *Resolver {
	return &Resolver{registry: registry, cache: cache}
}

// Resolve looks up qn, returning its registry entry and true on success.
// On failure it returns the zero RegistryEntry and false: callers must
// treat this as an Unresolved reference and emit a minimal descriptor
// rather than panicking or erroring out the whole run (§4.4, §7).
func (r *Resolver) Resolve(qn QualifiedName) (RegistryEntry, bool) {
	if r.cache == nil {
		e, ok := r.registry.Lookup(qn)
		return e, ok
	}
	if cached, ok := r.cache.get(qn); ok {
		return cached.entry, cached.found
	}
	e, ok := r.registry.Lookup(qn)
	r.cache.put(qn, cacheEntry{entry: e, found: ok})
	return e, ok
}

// CacheStats returns the hit/miss counters for observability, or (0, 0)
// if caching is disabled.
func (r *Resolver) CacheStats() (hits, misses int) {
	if r.cache == nil {
		return 0, 0
	}
	return r.cache.Hits, r.cache.Misses
}
