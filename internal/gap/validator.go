// Package gap validates proposal directories against the repository's
// structural conventions: naming, README presence, and a metadata record
// that satisfies the GAP metadata schema plus a few semantic rules.
package gap

import (
	"os"
	"path/filepath"

	"github.com/gapwg/gaplint/pkg/logger"
	"github.com/gapwg/gaplint/pkg/safeio"
	"github.com/gapwg/gaplint/pkg/schema"
	"gopkg.in/yaml.v3"
)

const (
	readmeFile   = "README.md"
	metadataFile = "metadata.yml"
)

// Validator checks one proposal directory at a time. The schema validator is
// compiled once at startup and read-only afterwards.
type Validator struct {
	schema *schema.Validator
}

// NewValidator wraps a compiled metadata schema validator.
func NewValidator(sv *schema.Validator) *Validator {
	return &Validator{schema: sv}
}

// ValidateDir runs the full validation pipeline for one directory. Steps run
// in strict order and the first failure is returned as a *Error; nothing
// below the entry point terminates the process.
func (v *Validator) ValidateDir(dirPath string) error {
	name := BaseName(dirPath)

	logger.Debug("checking naming convention", logger.String("dir", name))
	if err := CheckName(name); err != nil {
		return newError(name, StageNaming, "%v", err)
	}

	logger.Debug("checking README presence", logger.String("dir", name))
	if _, err := os.Stat(filepath.Join(dirPath, readmeFile)); err != nil {
		return newError(name, StageReadme, "No README.md file found")
	}

	logger.Debug("checking metadata presence", logger.String("dir", name))
	if _, err := os.Stat(filepath.Join(dirPath, metadataFile)); err != nil {
		return newError(name, StageMetadata, "No metadata.yml file found")
	}

	data, err := safeio.ReadFileContained(dirPath, filepath.Join(dirPath, metadataFile))
	if err != nil {
		return newError(name, StageMetadata, "failed to read metadata.yml: %v", err)
	}

	logger.Debug("parsing metadata", logger.String("dir", name))
	var parsed interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return newError(name, StageParse, "invalid metadata.yml: %v", err)
	}
	doc, ok := parsed.(map[string]interface{})
	if !ok {
		return newError(name, StageParse, "metadata.yml must contain a YAML mapping")
	}

	logger.Debug("validating metadata against schema", logger.String("dir", name))
	res, err := v.schema.Validate(doc)
	if err != nil {
		return newError(name, StageSchema, "schema validation failed: %v", err)
	}
	if !res.Valid {
		return newError(name, StageSchema, "%s", res.ErrorLines())
	}

	logger.Debug("running semantic checks", logger.String("dir", name))
	if err := checkSemantics(doc); err != nil {
		return newError(name, StageSemantic, "%v", err)
	}

	return nil
}
