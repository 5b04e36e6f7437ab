// Command roomcrawl generates a room-graph-to-tile-map level from a
// YAML configuration file and exports it as JSON and/or SVG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deanfra/erebos-level-generator/pkg/crawler"
	"github.com/deanfra/erebos-level-generator/pkg/genrng"
	"github.com/deanfra/erebos-level-generator/pkg/graphgen"
	"github.com/deanfra/erebos-level-generator/pkg/levelconfig"
	"github.com/deanfra/erebos-level-generator/pkg/mapexport"
	"github.com/deanfra/erebos-level-generator/pkg/mapstate"
	"github.com/deanfra/erebos-level-generator/pkg/roomgraph"
	"github.com/deanfra/erebos-level-generator/pkg/roomtemplate"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	graphFlag  = flag.String("graph", "", "Override graph.kind from config: linear, complete, or gnp_random")
	nodesFlag  = flag.Int("nodes", 0, "Override graph.nodes from config (0 = use config value)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("roomcrawl version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if *graphFlag != "" {
		validGraphKinds := map[string]bool{"linear": true, "complete": true, "gnp_random": true}
		if !validGraphKinds[*graphFlag] {
			fmt.Fprintf(os.Stderr, "Error: invalid graph %q, must be one of: linear, complete, gnp_random\n", *graphFlag)
			os.Exit(1)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cfg, err := levelconfig.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if *graphFlag != "" {
		if *verbose {
			fmt.Printf("Overriding graph.kind from %s to %s\n", cfg.Graph.Kind, *graphFlag)
		}
		cfg.Graph.Kind = levelconfig.GraphKind(*graphFlag)
	}

	if *nodesFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding graph.nodes from %d to %d\n", cfg.Graph.Nodes, *nodesFlag)
		}
		cfg.Graph.Nodes = *nodesFlag
	}

	if *graphFlag != "" || *nodesFlag != 0 {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config invalid after CLI overrides: %w", err)
		}
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Map size: %dx%d\n", cfg.MapWidth, cfg.MapHeight)
		fmt.Printf("Graph: %s (%d nodes)\n", cfg.Graph.Kind, cfg.Graph.Nodes)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, err := buildGraph(cfg)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	lib := roomtemplate.NewLibrary()
	rng := genrng.New(cfg.Seed, "placement", cfg.Hash())

	start := time.Now()
	if *verbose {
		fmt.Println("Crawling...")
	}

	m, err := crawler.Run(g, lib, cfg.MapWidth, cfg.MapHeight, rng)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Crawl completed in %v\n", elapsed)
		printStats(m)
	}

	baseName := fmt.Sprintf("level_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(m, baseName); err != nil {
			return err
		}
	}

	if *format == "svg" || *format == "all" {
		if err := exportSVG(m, baseName, cfg.Seed); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated level (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

// buildGraph dispatches to the reference generator named by the
// config's graph.kind field.
func buildGraph(cfg *levelconfig.GeneratorConfig) (roomgraph.InputGraph, error) {
	switch cfg.Graph.Kind {
	case levelconfig.GraphLinear:
		return graphgen.Linear(cfg.Graph.Nodes), nil
	case levelconfig.GraphComplete:
		return graphgen.Complete(cfg.Graph.Nodes), nil
	case levelconfig.GraphGNP:
		rng := genrng.New(cfg.Seed, "graph", cfg.Hash())
		return graphgen.GNPRandom(cfg.Graph.Nodes, cfg.Graph.Probability, rng), nil
	default:
		return nil, fmt.Errorf("unsupported graph kind %q", cfg.Graph.Kind)
	}
}

func exportJSON(m *mapstate.Map, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := mapexport.SaveJSONToFile(m, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func exportSVG(m *mapstate.Map, baseName string, seed uint64) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := mapexport.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Level (seed=%d)", seed)
	if err := mapexport.SaveSVGToFile(m, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: roomcrawl -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'roomcrawl -help' for detailed help")
}

func printHelp() {
	fmt.Printf("roomcrawl version %s\n\n", version)
	fmt.Println("A command-line tool for generating room-graph tile maps.")
	fmt.Println("\nUsage:")
	fmt.Println("  roomcrawl -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed) (default: 0)")
	fmt.Println("  -graph string")
	fmt.Println("        Override graph.kind from config: linear, complete, or gnp_random")
	fmt.Println("  -nodes int")
	fmt.Println("        Override graph.nodes from config (0 = use config value) (default: 0)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate level with default JSON export")
	fmt.Println("  roomcrawl -config level.yaml")
	fmt.Println("\n  # Generate with custom seed and both export formats")
	fmt.Println("  roomcrawl -config level.yaml -seed 12345 -format all -output ./out")
	fmt.Println("\n  # Override the graph generator and node count from the CLI")
	fmt.Println("  roomcrawl -config level.yaml -graph complete -nodes 12")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies generator parameters including:")
	fmt.Println("  - seed (for deterministic generation)")
	fmt.Println("  - mapWidth / mapHeight (10-500)")
	fmt.Println("  - graph.kind (linear, complete, gnp_random), graph.nodes, graph.probability")
}

func printStats(m *mapstate.Map) {
	fmt.Println("\nLevel Statistics:")
	fmt.Printf("  Tile Map: %dx%d tiles\n", m.W, m.H)
	fmt.Printf("  Rooms placed: %d\n", len(m.Rooms))

	doors := 0
	for _, room := range m.Rooms {
		doors += len(room.Doors)
	}
	fmt.Printf("  Door connections: %d\n", doors/2)
}
