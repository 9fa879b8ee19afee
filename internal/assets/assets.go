// Package assets embeds the fixed schema documents the tool ships with.
package assets

import "embed"

//go:embed embedded_schemas
var schemaFS embed.FS

// MetadataSchemaPath is the embedded path of the current GAP metadata schema.
const MetadataSchemaPath = "embedded_schemas/gap-metadata-v1.0.0.json"

// MetadataSchema returns the embedded GAP metadata schema bytes.
func MetadataSchema() []byte {
	data, err := schemaFS.ReadFile(MetadataSchemaPath)
	if err != nil {
		// The schema is compiled into the binary; a read failure means a broken build.
		panic("embedded metadata schema missing: " + err.Error())
	}
	return data
}

// GetSchema returns embedded schema bytes by relative path.
func GetSchema(relPath string) ([]byte, bool) {
	data, err := schemaFS.ReadFile(relPath)
	return data, err == nil
}
