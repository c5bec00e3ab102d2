// Command gen emits a seeded synthetic catalog as JSON. With a fixed seed
// the output is fully deterministic, which makes it useful for generating
// test fixtures and demo datasets.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"descu/internal/domain/entity"
	"descu/internal/infra/generator"
)

func main() {
	var (
		seed   = flag.Int64("seed", 1, "random seed")
		count  = flag.Int("count", 400, "number of listings to generate")
		locale = flag.String("locale", "es", "locale for titles and descriptions (es, en, zh)")
		lat    = flag.Float64("lat", 19.4326, "viewer latitude")
		lng    = flag.Float64("lng", -99.1332, "viewer longitude")
		out    = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	gen := generator.NewSeeded(*seed)
	listings, err := gen.Generate(*count, entity.Coordinate{
		Latitude:  *lat,
		Longitude: *lng,
	}, entity.Locale(*locale))
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	output := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(listings); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
