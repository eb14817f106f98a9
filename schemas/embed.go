// Package schemas embeds the JSON Schemas that describe the service's documents.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// ResumeRecord is the file name of the parsed resume record schema.
const ResumeRecord = "resume_record.schema.json"
