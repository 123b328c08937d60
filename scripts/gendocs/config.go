package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/leapstack-labs/biome/internal/cli/config"
)

// schemaNode is the subset of JSON Schema the configuration reference reads.
type schemaNode struct {
	Ref         string                 `json:"$ref"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Enum        []any                  `json:"enum"`
	Minimum     *float64               `json:"minimum"`
	Items       *schemaNode            `json:"items"`
	Properties  map[string]*schemaNode `json:"properties"`
	Defs        map[string]*schemaNode `json:"$defs"`
}

// configKeyDoc is one row of the configuration reference.
type configKeyDoc struct {
	Key         string
	Type        string
	Description string
}

// generateConfigDocs writes the biome.json reference from the embedded schema.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	page, err := renderConfigReference(config.Schema())
	if err != nil {
		return err
	}
	return writePages(outDir, map[string][]byte{"configuration.md": page})
}

func renderConfigReference(schema []byte) ([]byte, error) {
	keys, err := configKeys(schema)
	if err != nil {
		return nil, err
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "Reference of the biome.json configuration file")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("Biome reads `biome.json` or `biome.jsonc`, searching upward from the working directory. " +
		"Unknown keys are errors. Comments and trailing commas are allowed in both files.")

	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{InlineCode(k.Key), k.Type, k.Description}
	}
	w.Table([]string{"Key", "Type", "Description"}, rows)

	w.Paragraph("See the [linting reference](/linting/) for the shape of " + InlineCode("linter.rules") + ".")
	return w.Bytes(), nil
}

// configKeys flattens the schema into dotted keys, parents before children.
func configKeys(schema []byte) ([]configKeyDoc, error) {
	var root schemaNode
	if err := json.Unmarshal(schema, &root); err != nil {
		return nil, fmt.Errorf("failed to decode configuration schema: %w", err)
	}
	var out []configKeyDoc
	collectKeys(&root, &root, "", &out)
	return out, nil
}

func collectKeys(root, node *schemaNode, prefix string, out *[]configKeyDoc) {
	names := make([]string, 0, len(node.Properties))
	for name := range node.Properties {
		if !strings.HasPrefix(name, "$") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		prop := node.Properties[name]
		key := prefix + name
		*out = append(*out, configKeyDoc{
			Key:         key,
			Type:        schemaType(root, prop),
			Description: prop.Description,
		})
		if len(prop.Properties) > 0 {
			collectKeys(root, prop, key+".", out)
		}
	}
}

// schemaType renders the type of a property, following local $refs.
func schemaType(root, n *schemaNode) string {
	if name, ok := strings.CutPrefix(n.Ref, "#/$defs/"); ok {
		if def, ok := root.Defs[name]; ok {
			n = def
		}
	}
	switch {
	case len(n.Enum) > 0:
		values := make([]string, len(n.Enum))
		for i, v := range n.Enum {
			values[i] = InlineCode(fmt.Sprintf("%q", v))
		}
		return strings.Join(values, ", ")
	case n.Type == "array" && n.Items != nil:
		return schemaType(root, n.Items) + "[]"
	case n.Type == "integer" && n.Minimum != nil:
		return fmt.Sprintf("integer ≥ %g", *n.Minimum)
	case n.Type != "":
		return n.Type
	default:
		return "any"
	}
}
