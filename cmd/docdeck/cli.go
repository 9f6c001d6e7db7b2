package main

import (
	"context"
	"io"

	"github.com/mkowalczyk/docdeck"
	"github.com/mkowalczyk/docdeck/cache"
	"github.com/mkowalczyk/docdeck/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config      *config.Config
	Documents   docdeck.DocumentService
	Searches    docdeck.SearchService
	RAG         docdeck.RAGService
	Snippets    docdeck.SnippetService
	Healths     docdeck.HealthService
	History     docdeck.HistoryService
	Credentials docdeck.CredentialStore
	Store       *cache.Store
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search   SearchCmd   `cmd:"" help:"Search indexed documents"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about indexed documents"`
	Chat     ChatCmd     `cmd:"" help:"Start an interactive chat session"`
	Docs     DocsCmd     `cmd:"" help:"List documents and folders"`
	Upload   UploadCmd   `cmd:"" help:"Upload documents"`
	Index    IndexCmd    `cmd:"" help:"Index documents for search and RAG"`
	Deindex  DeindexCmd  `cmd:"" help:"Remove documents from the search index"`
	Snippets SnippetsCmd `cmd:"" help:"List or search document snippets"`
	History  HistoryCmd  `cmd:"" help:"Show recent searches"`
	Login    LoginCmd    `cmd:"" help:"Store the backend bearer token"`
	Logout   LogoutCmd   `cmd:"" help:"Clear the stored bearer token"`
	Status   StatusCmd   `cmd:"" help:"Show backend health and corpus stats"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search query"`
	Semantic bool   `short:"s" help:"Use vector-similarity ranking"`
	Folder   string `short:"f" help:"Restrict to a folder"`
	Document string `short:"d" help:"Restrict to a document"`
	Limit    int    `short:"n" default:"10" help:"Results per page"`
	All      bool   `short:"a" help:"Follow pagination to the last page"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question  string `arg:"" help:"Question to ask"`
	MultiStep bool   `short:"m" help:"Decompose into retrieval steps"`
	Folder    string `short:"f" help:"Restrict retrieval to a folder"`
	Document  string `short:"d" help:"Restrict retrieval to a document"`
	TopK      int    `short:"k" help:"Number of snippets to retrieve"`
	Sources   bool   `help:"Print cited sources"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Folder   string `short:"f" help:"Restrict retrieval to a folder"`
	Document string `short:"d" help:"Restrict retrieval to a document"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Folder  string `short:"f" help:"Restrict to a folder"`
	Indexed bool   `help:"Show indexed documents only"`
	Folders bool   `help:"List folders instead of documents"`
}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	Paths       []string `arg:"" type:"existingfile" help:"Files to upload"`
	Folder      string   `short:"f" help:"Destination folder"`
	Index       bool     `short:"i" help:"Index after upload"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent upload limit"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	IDs []string `arg:"" help:"Document IDs to index"`
}

// DeindexCmd is the "deindex" subcommand.
type DeindexCmd struct {
	IDs []string `arg:"" help:"Document IDs to deindex"`
}

// SnippetsCmd is the "snippets" subcommand.
type SnippetsCmd struct {
	Document string `short:"d" help:"List snippets of a document"`
	Query    string `short:"q" help:"Search at snippet granularity"`
	Limit    int    `short:"n" default:"20" help:"Maximum snippets"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int  `short:"n" default:"10" help:"Entries to show"`
	Clear bool `help:"Clear the history"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Token string `arg:"" help:"Bearer token issued by the backend"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
