// Package builder aggregates content blocks (text, markdown, tables, chart
// figures) into one document session and renders them through the document
// assembler. Builders are fluent: every Add method returns the receiver, and
// the first structural error aborts its append and is surfaced by Err and by
// the render methods. Builders are not safe for concurrent use; each caller
// owns its own instance.
package builder
