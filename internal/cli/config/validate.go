package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leapstack-labs/biome/internal/vcs"
	"github.com/leapstack-labs/biome/pkg/lint"
)

// ErrNegativeMaxSize is returned when files.maxSize is below zero.
var ErrNegativeMaxSize = errors.New("files.maxSize must not be negative")

//go:embed schema.json
var schemaJSON string

var fileSchema *jsonschema.Schema

// Schema returns the JSON Schema configuration files are validated against.
func Schema() []byte {
	return []byte(schemaJSON)
}

func init() {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("biome.schema.json", doc); err != nil {
		panic(err)
	}
	fileSchema = c.MustCompile("biome.schema.json")
}

var printer = message.NewPrinter(language.English)

// validateFile checks configuration file content, already stripped of
// comments, against the embedded schema. Every violation becomes an error
// diagnostic on path.
func validateFile(path string, content []byte) []lint.Diagnostic {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return []lint.Diagnostic{configError(path, fmt.Sprintf("Failed to parse the configuration file: %v", err))}
	}
	if err := fileSchema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return []lint.Diagnostic{configError(path, err.Error())}
		}
		var diags []lint.Diagnostic
		for _, cause := range rootCauses(verr) {
			location := "/" + strings.Join(cause.InstanceLocation, "/")
			diags = append(diags, configError(path, fmt.Sprintf("Invalid configuration at %s: %s", location, cause.ErrorKind.LocalizedString(printer))))
		}
		sort.SliceStable(diags, func(i, j int) bool { return diags[i].Message < diags[j].Message })
		return diags
	}
	return nil
}

func rootCauses(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var causes []*jsonschema.ValidationError
	for _, c := range err.Causes {
		causes = append(causes, rootCauses(c)...)
	}
	return causes
}

func configError(path, msg string) lint.Diagnostic {
	return lint.Diagnostic{
		Category: lint.CategoryConfiguration,
		Severity: lint.SeverityError,
		Message:  msg,
		Path:     path,
	}
}

// Validate checks values that may also come from flags or the environment.
func (c *Config) Validate() error {
	if c.Files.MaxSize != nil && *c.Files.MaxSize < 0 {
		return ErrNegativeMaxSize
	}
	if c.VCS.ClientKind != "" && vcs.ClientKind(c.VCS.ClientKind) != vcs.ClientGit {
		return fmt.Errorf("%w: %q", vcs.ErrUnsupportedClient, c.VCS.ClientKind)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
