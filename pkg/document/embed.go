package document

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can ship a
// customised copy through WithTemplatesFS.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
