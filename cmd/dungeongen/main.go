package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opd-ai/dlrg/pkg/dungeon"
	"github.com/opd-ai/dlrg/pkg/export"
	"github.com/opd-ai/dlrg/pkg/level"
	"github.com/opd-ai/dlrg/pkg/validation"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML level catalog file (required)")
	levelFlag  = flag.Int("level", 1, "Level index to generate")
	seedFlag   = flag.Int64("seed", 0, "Seed for deterministic generation")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: text, json, tmj, svg, or all")
	validate   = flag.Bool("validate", false, "Run the post-generation validator and print its report")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeongen version %s\n", version)
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

	validFormats := map[string]bool{"text": true, "json": true, "tmj": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: text, json, tmj, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading level catalog from %s\n", *configPath)
	}
	cat, err := level.LoadCatalog(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load level catalog: %w", err)
	}

	if *verbose {
		fmt.Printf("Generating level %d with seed %d\n", *levelFlag, *seedFlag)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	d, err := dungeon.Generate(cat, *levelFlag, *seedFlag)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		fmt.Printf("Rooms: %d  Down stairs: %v  Up stairs: %v\n", len(d.Grid.Rooms), d.Grid.DownStairs, d.Grid.UpStairs)
	}

	if *validate {
		report := validation.Validate(d)
		fmt.Println(validation.Summary(report))
		if !report.Passed {
			return fmt.Errorf("validation failed with %d error(s)", len(report.Errors))
		}
	}

	baseName := fmt.Sprintf("dungeon_level%d_seed%d", *levelFlag, *seedFlag)

	if *format == "text" || *format == "all" {
		if err := writeText(d, baseName); err != nil {
			return err
		}
	}
	if *format == "json" || *format == "all" {
		if err := writeJSON(d, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := writeTMJ(d, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := writeSVG(d, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated level %d (seed=%d) in %v\n", *levelFlag, *seedFlag, elapsed)
	return nil
}

func writeText(d *dungeon.Dungeon, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".txt")
	if *verbose {
		fmt.Printf("Writing text to %s\n", filename)
	}
	return os.WriteFile(filename, []byte(export.RenderText(d)), 0644)
}

func writeJSON(d *dungeon.Dungeon, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Writing JSON to %s\n", filename)
	}
	return export.SaveJSONToFile(d, filename)
}

func writeTMJ(d *dungeon.Dungeon, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		fmt.Printf("Writing TMJ to %s\n", filename)
	}
	tm, err := export.ExportTMJ(d, true)
	if err != nil {
		return fmt.Errorf("failed to export TMJ: %w", err)
	}
	return export.SaveTMJToFile(tm, filename)
}

func writeSVG(d *dungeon.Dungeon, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Writing SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Level %d (seed=%d)", *levelFlag, *seedFlag)
	return export.SaveSVGToFile(d, filename, opts)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: dungeongen -config <catalog.yaml> -level <n> -seed <n> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'dungeongen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("dungeongen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural dungeons.")
	fmt.Println("\nUsage:")
	fmt.Println("  dungeongen -config <catalog.yaml> -level <n> -seed <n> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML level catalog file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -level int")
	fmt.Println("        Level index to generate (default: 1)")
	fmt.Println("  -seed int")
	fmt.Println("        Seed for deterministic generation (default: 0)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: text, json, tmj, svg, or all (default: json)")
	fmt.Println("  -validate")
	fmt.Println("        Run the post-generation validator and print its report")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate level 3 with default JSON export")
	fmt.Println("  dungeongen -config levels.yaml -level 3 -seed 12345")
	fmt.Println("\n  # Generate with all export formats and a validation pass")
	fmt.Println("  dungeongen -config levels.yaml -level 3 -seed 12345 -format all -validate -output ./out")
}
