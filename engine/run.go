package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/CognitoIQ/soapspec/commonapispec"
	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/typeexpand"
	"github.com/CognitoIQ/soapspec/wsdl"
)

// ParserVersion is reported in every run's processing_metadata.
const ParserVersion = "1.0.0"

// A ConversionRun converts one WSDL plus its transitive XSD dependencies
// into a CommonAPISpec. Per §3.3 and §5, a run owns a disjoint registry,
// resolution cache and cycle-detector configuration; nothing it touches
// is shared with any other concurrently-executing run.
type ConversionRun struct {
	cfg    *Config
	loader *schema.Loader
}

// NewConversionRun creates a run configured by opts.
func NewConversionRun(opts ...Option) *ConversionRun {
	return &ConversionRun{cfg: NewConfig(opts...), loader: schema.NewLoader()}
}

// Convert loads mainWSDL and every file in auxiliaryXSDs, builds the
// registry, extracts every operation's endpoint, and assembles a
// CommonAPISpec. It checks ctx for cancellation between the main
// lifecycle stages and before each port-type operation, per §5; a
// cancelled run returns ctx.Err() and no partial output.
func (run *ConversionRun) Convert(ctx context.Context, mainWSDL string, auxiliaryXSDs []string) (*commonapispec.CommonAPISpec, error) {
	mainDoc, err := run.loader.LoadMain(mainWSDL)
	if err != nil {
		return nil, fmt.Errorf("loading main wsdl: %w", err)
	}
	for _, aux := range auxiliaryXSDs {
		run.loader.LoadAuxiliary(aux)
	}
	if run.cfg.StrictImports && len(run.loader.Skipped) > 0 {
		return nil, fmt.Errorf("strict-imports: %w", run.loader.Skipped[0])
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registry := schema.BuildRegistry(run.loader.Documents())
	for _, dup := range registry.Duplicates {
		run.cfg.Logger.Printf("warning: %s", dup)
	}

	cache := schema.NewResolutionCache(run.cfg.CacheCapacity)
	resolver := schema.NewResolver(registry, cache)
	events := &typeexpand.Events{}
	expander := typeexpand.NewExpander(resolver, events)

	def := wsdl.Parse(mainDoc)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	endpoints, err := def.ExtractEndpoints(ctx, expander, run.cfg.MaxDepth, run.cfg.MaxCycles)
	if err != nil {
		return nil, err
	}

	dataTypes := make([]commonapispec.DataType, 0, registry.Len())
	for _, name := range registry.Names() {
		entry, _ := registry.Lookup(name)
		if entry.Kind != schema.ComplexType {
			continue
		}
		te := expander.Expand(entry, name, name.LocalName, "", typeexpand.NewResolutionContext(run.cfg.MaxDepth, run.cfg.MaxCycles))
		dataTypes = append(dataTypes, *te)
	}

	for _, ev := range events.Circular {
		run.cfg.Logger.Printf("info: %s", ev)
	}
	for _, ev := range events.CrossNamespace {
		run.cfg.Logger.Printf("info: %s", ev)
	}
	for _, ev := range events.MaxDepth {
		run.cfg.Logger.Printf("warning: %s", ev)
	}
	for _, ev := range events.Unresolved {
		run.cfg.Logger.Printf("warning: %s", ev)
	}
	for _, ev := range events.Malformed {
		run.cfg.Logger.Printf("warning: %s", ev)
	}

	hits, misses := resolver.CacheStats()
	meta := commonapispec.ProcessingMetadata{
		SourceFile:    mainWSDL,
		ProcessedAt:   time.Now().UTC().Format(time.RFC3339),
		ParserVersion: ParserVersion,
		FilesLoaded:   run.loader.DependencyOrder(),
		RegistrySize:  registry.Len(),
		CacheHits:     hits,
		CacheMisses:   misses,
	}
	for _, ev := range events.Unresolved {
		meta.Warnings = append(meta.Warnings, ev.String())
	}
	for _, ev := range run.loader.Skipped {
		meta.Errors = append(meta.Errors, ev.Error())
	}

	spec := &commonapispec.CommonAPISpec{
		ID:              commonapispec.HashPath(mainWSDL),
		APIName:         firstServiceName(def),
		Version:         "1.0.0",
		Description:     "",
		BaseURL:         firstPortLocation(def),
		APIType:         "SOAP",
		TargetNamespace: mainDoc.TargetNamespace,
		Services:        passthroughServices(def),
		PortTypes:       passthroughPortTypes(def),
		Bindings:        passthroughBindings(def),
		Messages:        passthroughMessages(def),
		Endpoints:       endpoints,
		DataTypes:       dataTypes,
		ProcessingMeta:  meta,
	}
	return spec, nil
}
