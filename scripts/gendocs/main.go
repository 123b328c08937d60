// Package main generates the markdown documentation of Biome from the command
// tree, the rule catalog and the configuration schema.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=lint -outdir=docs/linting
//	go run ./scripts/gendocs -gen=config -outdir=docs/reference
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, lint, config, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

func main() {
	flag.Parse()

	generators := map[string]struct {
		dir string
		fn  func(string) error
	}{
		"cli":    {"cli", generateCLIDocs},
		"lint":   {"linting", generateLintDocs},
		"config": {"reference", generateConfigDocs},
	}

	var selected []string
	switch *genFlag {
	case "all":
		selected = []string{"cli", "lint", "config"}
	case "cli", "lint", "config":
		selected = []string{*genFlag}
	default:
		log.Fatalf("unknown -gen value: %s (use: cli, lint, config, all)", *genFlag)
	}
	if *outDirFlag != "" && len(selected) > 1 {
		log.Fatalf("-outdir needs a single -gen value")
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	for _, name := range selected {
		g := generators[name]
		outDir := *outDirFlag
		if outDir == "" {
			outDir = filepath.Join(projectRoot, "docs", g.dir)
		}
		if err := g.fn(outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", name, err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
