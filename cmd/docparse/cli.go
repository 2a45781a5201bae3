package main

import (
	"context"
	"io"

	"github.com/fwojciec/docparse"
	"github.com/fwojciec/docparse/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Parser      docparse.Parser
	Conversions docparse.ConversionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert documents to structured JSON"`
	List    ListCmd    `cmd:"" help:"List stored conversions"`
	Show    ShowCmd    `cmd:"" help:"Show a stored conversion as JSON"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored conversion"`
	Serve   ServeCmd   `cmd:"" help:"Run the conversion HTTP API"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Paths       []string `arg:"" help:"Files to convert (.txt, .md, .html)"`
	Out         string   `short:"o" help:"Also write result JSON files to this directory"`
	Language    string   `short:"l" default:"auto" help:"Content language for topic extraction"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent conversion limit"`
	Verbose     bool     `short:"v" help:"Log each conversion step"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	SourcePath string `help:"Filter by source path"`
	Limit      int    `default:"50" help:"Maximum number of results"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Conversion ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Conversion ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Bind address for the HTTP server"`
}
