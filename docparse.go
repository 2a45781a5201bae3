// Package docparse turns already-extracted plain text into a
// structured, AI-consumable document: an ordered sequence of typed
// content blocks (heading, paragraph, code, list, quote, table),
// cleaned, reclassified where warranted, deduplicated, and annotated
// with structural context, plus aggregate metadata, key topics, and a
// synopsis.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// trafilatura/) or the concern they orchestrate (parse/, normalize/,
// batch/).
package docparse
