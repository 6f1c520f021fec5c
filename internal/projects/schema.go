package projects

import (
	_ "embed"

	"github.com/nuwa-protocol/nuwa-web/internal/validation"
)

//go:embed schema/project.json
var descriptorSchemaJSON []byte

// DescriptorSchema returns the compiled JSON schema for metadata.json.
func DescriptorSchema() *validation.Schema {
	return validation.MustCompile("project.json", descriptorSchemaJSON)
}
