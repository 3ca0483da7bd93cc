// readiness-score runs one assessment from the command line: an input JSON
// document in, the scored result JSON out. Useful for catalog tuning and
// for piping assessments through scripts without a running server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lumenmetrics/readiness-engine/internal/config"
	"github.com/lumenmetrics/readiness-engine/internal/engine"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to catalog YAML, empty uses the built-in catalog")
	inputPath := flag.String("input", "-", "path to assessment input JSON, '-' reads stdin")
	pretty := flag.Bool("pretty", false, "indent the output JSON")
	flag.Parse()

	var (
		cat *config.Catalog
		err error
	)
	if *catalogPath == "" {
		cat, err = config.Default()
	} else {
		cat, err = config.Load(*catalogPath)
	}
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	blob, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	var in engine.Input
	if err := json.Unmarshal(blob, &in); err != nil {
		log.Fatalf("decode input: %v", err)
	}

	eng, err := engine.New(cat)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	result := eng.Evaluate(context.Background(), in)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Fprintf(os.Stderr, "overall=%.1f category=%s recommendations=%d\n",
		result.OverallScore, result.ReadinessCategory, len(result.Recommendations))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
