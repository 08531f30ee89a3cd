package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2docx "github.com/conorwade/go-md2docx"
	"github.com/conorwade/go-md2docx/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoSource           = errors.New("no markdown source specified")
	ErrNoTemplate         = errors.New("no letterhead template specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrReadTemplate       = errors.New("failed to read template file")
	ErrWriteDocument      = errors.New("failed to write document")
	ErrWritePreview       = errors.New("failed to write HTML preview")
	ErrInvalidExtension   = errors.New("source must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// MaxWorkers bounds batch fan-out.
const MaxWorkers = 32

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input md2docx.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Generator = (*md2docx.Service)(nil)

// run parses flags, assembles configuration, and generates one document or a
// batch.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return nil
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Resolve "auto" date once, shared by every document in a batch
	date := flags.document.date
	if date == "" {
		date = cfg.Document.Date
	}
	if date == "" {
		date = config.DefaultDate
	}
	resolvedDate, err := md2docx.ResolveDate(date, env.Now())
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}

	sourcePath, err := resolveSourcePath(flags, positional)
	if err != nil {
		return err
	}
	if err := validateMarkdownExtension(sourcePath); err != nil {
		return err
	}

	templatePath := flags.template
	if templatePath == "" {
		templatePath = cfg.Template.Path
	}
	if templatePath == "" {
		return ErrNoTemplate
	}

	markdown, err := os.ReadFile(sourcePath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	template, err := os.ReadFile(templatePath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}

	svc := md2docx.New(md2docx.WithBrand(buildBrand(cfg)))
	ctx := context.Background()

	base := md2docx.Input{
		Markdown: string(markdown),
		Template: template,
		Title:    flags.document.title,
		Date:     resolvedDate,
	}

	if flags.html {
		if err := writePreview(ctx, string(markdown), previewPath(flags, sourcePath), env, flags.common.quiet); err != nil {
			return err
		}
	}

	if flags.recipients != "" {
		return runBatch(ctx, svc, flags, cfg, base, sourcePath, env)
	}

	base.Recipient = buildRecipient(flags.recipient, cfg)

	out, err := svc.Generate(ctx, base)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(flags.output, sourcePath, cfg)
	if err := writeDocument(outputPath, out); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// resolveSourcePath picks the markdown source from --source or the first
// positional argument.
func resolveSourcePath(flags *generateFlags, positional []string) (string, error) {
	if flags.source != "" {
		return flags.source, nil
	}
	if len(positional) > 0 {
		return positional[0], nil
	}
	return "", ErrNoSource
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// buildBrand merges config brand settings over the library defaults.
func buildBrand(cfg *config.Config) md2docx.Brand {
	brand := md2docx.DefaultBrand()
	if cfg.Brand.Font != "" {
		brand.FontName = cfg.Brand.Font
	}
	if cfg.Brand.BodySize > 0 {
		brand.BodySize = cfg.Brand.BodySize
	}
	if cfg.Brand.QualificationsSize > 0 {
		brand.QualificationsSize = cfg.Brand.QualificationsSize
	}
	if cfg.Brand.Heading2Size > 0 {
		brand.Heading2Size = cfg.Brand.Heading2Size
	}
	if cfg.Brand.Heading3Size > 0 {
		brand.Heading3Size = cfg.Brand.Heading3Size
	}
	if cfg.Brand.LineSpacing > 0 {
		brand.LineSpacing = cfg.Brand.LineSpacing
	}
	brand.SignOff = md2docx.SignOff{
		Name:           cfg.SignOff.Name,
		Qualifications: cfg.SignOff.Qualifications,
		Title:          cfg.SignOff.Title,
	}
	return brand
}

// buildRecipient merges recipient flags with config defaults.
func buildRecipient(f recipientFlags, cfg *config.Config) md2docx.Recipient {
	country := f.country
	if country == "" {
		country = cfg.Recipient.DefaultCountry
	}
	return md2docx.Recipient{
		Name:         f.name,
		Title:        f.title,
		Organization: f.org,
		Address:      f.address,
		City:         f.city,
		Country:      country,
	}
}

// resolveOutputPath determines the .docx output path for a source file.
func resolveOutputPath(flagOutput, sourcePath string, cfg *config.Config) string {
	if flagOutput != "" && strings.HasSuffix(flagOutput, ".docx") {
		return flagOutput
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	outputDir := flagOutput
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}
	if outputDir == "" {
		outputDir = filepath.Dir(sourcePath)
	}
	return filepath.Join(outputDir, base+".docx")
}

// writeDocument creates the output directory and writes the finished bytes.
func writeDocument(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}

// previewPath derives the HTML preview path from the source file name.
func previewPath(flags *generateFlags, sourcePath string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	dir := flags.output
	if strings.HasSuffix(dir, ".docx") {
		dir = filepath.Dir(dir)
	}
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	return filepath.Join(dir, base+".html")
}

// writePreview renders the markdown source to a standalone HTML page.
func writePreview(ctx context.Context, markdown, path string, env *Environment, quiet bool) error {
	html, err := md2docx.NewHTMLPreviewer().ToHTML(ctx, markdown)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	// #nosec G306 -- previews are meant to be readable
	if err := os.WriteFile(path, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	return nil
}
