package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

const schemaURL = "config.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is a single schema violation of a configuration file.
type Issue struct {
	Path    string
	Keyword string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err = c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if compiledSchema, err = c.Compile(schemaURL); err != nil {
			compileErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return compiledSchema, compileErr
}

// ValidateFile checks the YAML content of a configuration file against the
// embedded schema. Violations are returned as an ErrInvalidConfig error
// listing every issue; other errors come from reading the document.
func ValidateFile(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := make([]string, 0)
	for _, issue := range collectIssues(validationErr, nil) {
		issues = append(issues, issue.String())
	}
	if len(issues) == 0 {
		issues = append(issues, validationErr.Error())
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(issues, "; "))
}

// collectIssues walks the error tree down to the leaves, which name the
// failing property.
func collectIssues(ve *jsonschema.ValidationError, issues []Issue) []Issue {
	if len(ve.Causes) != 0 {
		for _, cause := range ve.Causes {
			issues = collectIssues(cause, issues)
		}
		return issues
	}

	if ve.ErrorKind == nil {
		return issues
	}

	var keyword string
	if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
		keyword = kwPath[len(kwPath)-1]
	}

	var path string
	if len(ve.InstanceLocation) != 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	return append(issues, Issue{
		Path:    path,
		Keyword: keyword,
		Message: ve.ErrorKind.LocalizedString(printer),
	})
}
