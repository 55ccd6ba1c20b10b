// Command wsdl2spec converts a WSDL 1.1 service description, together
// with its XSD schema dependencies, into a CommonAPISpec JSON document.
//
// Usage:
//
//	wsdl2spec -out spec.json service.wsdl
//	wsdl2spec -xsd types.xsd -xsd extra.xsd -out spec.json service.wsdl
//
// It takes one positional argument, repeatable -xsd flags collected
// with the Strings flag.Value type, and exits 1 on failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/CognitoIQ/soapspec/commonapispec"
	"github.com/CognitoIQ/soapspec/engine"
	"github.com/CognitoIQ/soapspec/internal/commandline"
)

func main() {
	var (
		xsdFiles      commandline.Strings
		out           = flag.String("out", "", "output path for the CommonAPISpec JSON document (default: stdout)")
		maxDepth      = flag.Int("max-depth", 0, "maximum type-expansion recursion depth (default 8)")
		maxCycles     = flag.Int("max-cycles", 0, "maximum cumulative cycle count before a subtree is stubbed (default 5)")
		cacheCapacity = flag.Int("cache-capacity", 0, "resolution cache LRU capacity (default 1000)")
		strict        = flag.Bool("strict-imports", false, "treat a missing xsd:import/schemaLocation as fatal")
	)
	flag.Var(&xsdFiles, "xsd", "auxiliary XSD file to load; may be repeated")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wsdl2spec [options] service.wsdl")
		flag.PrintDefaults()
		os.Exit(1)
	}

	run := engine.NewConversionRun(
		engine.MaxDepth(*maxDepth),
		engine.MaxCycles(*maxCycles),
		engine.CacheCapacity(*cacheCapacity),
		engine.StrictImports(*strict),
	)

	spec, err := run.Convert(context.Background(), flag.Arg(0), []string(xsdFiles))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wsdl2spec: %v\n", err)
		os.Exit(1)
	}

	data, err := commonapispec.Encode(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wsdl2spec: encoding output: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		fmt.Println()
		return
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "wsdl2spec: %v\n", err)
		os.Exit(1)
	}
}
