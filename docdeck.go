// Package docdeck provides a terminal client for a remote document search
// and retrieval-augmented-generation (RAG) backend. It renders search
// results, a chat interface, and document previews, and issues HTTP
// requests for search, semantic search, question answering, document
// indexing, and snippet retrieval.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, cache/).
package docdeck
