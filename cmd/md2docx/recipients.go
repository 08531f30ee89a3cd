package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2docx "github.com/conorwade/go-md2docx"
	"github.com/conorwade/go-md2docx/internal/config"
	"github.com/conorwade/go-md2docx/internal/yamlutil"
)

// Sentinel errors for batch generation.
var (
	ErrReadRecipients  = errors.New("failed to read recipients file")
	ErrParseRecipients = errors.New("failed to parse recipients file")
	ErrNoRecipients    = errors.New("recipients file contains no entries")
	ErrRecipientName   = errors.New("recipient entry is missing a name")
)

// recipientEntry is one addressee in a batch run. Output overrides the
// derived file name.
type recipientEntry struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Org     string `yaml:"org"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
	Output  string `yaml:"output"`
}

// recipientList is the top-level shape of a recipients YAML file.
type recipientList struct {
	Recipients []recipientEntry `yaml:"recipients"`
}

// batchResult holds the outcome of one generated document.
type batchResult struct {
	Name       string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// loadRecipients reads and validates a recipients YAML file.
func loadRecipients(path string) ([]recipientEntry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadRecipients, err)
	}

	var list recipientList
	if err := yamlutil.UnmarshalStrict(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseRecipients, err)
	}
	if len(list.Recipients) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRecipients, path)
	}
	for i, entry := range list.Recipients {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrRecipientName, i+1)
		}
	}
	return list.Recipients, nil
}

// runBatch generates one document per recipient entry, fanning out across
// workers. The markdown, template, title and date are shared; only the
// recipient block and output path vary per document.
func runBatch(ctx context.Context, svc Generator, flags *generateFlags, cfg *config.Config, base md2docx.Input, sourcePath string, env *Environment) error {
	entries, err := loadRecipients(flags.recipients)
	if err != nil {
		return err
	}

	workers, err := resolveWorkers(flags.workers, len(entries))
	if err != nil {
		return err
	}

	outputDir := batchOutputDir(flags.output, sourcePath, cfg)

	results := make([]batchResult, len(entries))
	jobs := make(chan int, len(entries))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = batchResult{Name: entries[idx].Name, Err: ctx.Err()}
					continue
				}
				results[idx] = generateFor(ctx, svc, base, entries[idx], outputDir, cfg)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := printBatchResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d document(s) failed", failed)
	}
	return nil
}

// resolveWorkers validates and defaults the batch worker count.
func resolveWorkers(n, jobs int) (int, error) {
	if n < 0 || n > MaxWorkers {
		return 0, fmt.Errorf("%w: %d (must be 0-%d, 0 means auto)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
		if n > MaxWorkers {
			n = MaxWorkers
		}
	}
	if n > jobs {
		n = jobs
	}
	return n, nil
}

// batchOutputDir picks the directory batch documents land in.
func batchOutputDir(flagOutput, sourcePath string, cfg *config.Config) string {
	dir := flagOutput
	if strings.HasSuffix(dir, ".docx") {
		dir = filepath.Dir(dir)
	}
	if dir == "" {
		dir = cfg.Output.DefaultDir
	}
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}
	return dir
}

// generateFor produces one document for one recipient entry.
func generateFor(ctx context.Context, svc Generator, base md2docx.Input, entry recipientEntry, outputDir string, cfg *config.Config) batchResult {
	start := time.Now()
	result := batchResult{Name: entry.Name}

	country := entry.Country
	if country == "" {
		country = cfg.Recipient.DefaultCountry
	}

	input := base
	input.Recipient = md2docx.Recipient{
		Name:         entry.Name,
		Title:        entry.Title,
		Organization: entry.Org,
		Address:      entry.Address,
		City:         entry.City,
		Country:      country,
	}

	result.OutputPath = entryOutputPath(entry, outputDir)

	out, err := svc.Generate(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := writeDocument(result.OutputPath, out); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// entryOutputPath derives the file name for one entry: an explicit output
// field wins, otherwise the slugified recipient name.
func entryOutputPath(entry recipientEntry, outputDir string) string {
	name := entry.Output
	if name == "" {
		name = slugify(entry.Name) + ".docx"
	}
	return filepath.Join(outputDir, name)
}

// slugify reduces a recipient name to a safe lowercase file stem.
func slugify(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// printBatchResults reports per-document outcomes and returns the failure count.
func printBatchResults(results []batchResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Name, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Name, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
