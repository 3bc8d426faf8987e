// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// read → extract → normalize → render → write.
//
// It handles flag validation, renderer selection and config overrides.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/editmark/core"
	"github.com/gaurav-prasanna/editmark/core/extract"
	"github.com/gaurav-prasanna/editmark/core/normalize"
	"github.com/gaurav-prasanna/editmark/core/output"
	"github.com/gaurav-prasanna/editmark/core/parse"
	"github.com/gaurav-prasanna/editmark/core/render"
	"github.com/gaurav-prasanna/editmark/internal/config"
	"github.com/gaurav-prasanna/editmark/internal/logger"
)

type convertOptions struct {
	markdown  bool
	html      bool
	json      bool
	pdf       bool
	engine    string
	selector  string
	outputDir string
	stdout    bool
}

func newConvertCmd(global *globalOptions) *cobra.Command {
	opts := &convertOptions{}

	convertCmd := &cobra.Command{
		Use:   "convert <file|->",
		Short: "Convert editor HTML to the specified output format",
		Long: `Convert reads the HTML of a rich-text editing surface (a file, or stdin with "-"),
isolates the editable region, serializes it to Markdown and renders the chosen
output format (Markdown, HTML, JSON, or PDF).

Examples:
  editmark convert draft.html --markdown
  editmark convert draft.html --html --selector "#editor" --output_dir ./out
  cat draft.html | editmark convert - --markdown --stdout
  editmark convert page.html --json --engine commonmark`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, global, opts, args[0])
		},
	}

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&opts.html, "html", false, "Output sanitized HTML")
	convertCmd.Flags().BoolVar(&opts.json, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&opts.pdf, "pdf", false, "Output PDF")

	convertCmd.Flags().StringVar(&opts.engine, "engine", "", "Conversion engine: editor or commonmark (overrides config)")
	convertCmd.Flags().StringVar(&opts.selector, "selector", "", "CSS selector of the editable region (overrides config)")
	convertCmd.Flags().StringVar(&opts.outputDir, "output_dir", "", "Output directory (default: config or current directory)")
	convertCmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write the result to stdout instead of a file")

	return convertCmd
}

func runConvert(cmd *cobra.Command, global *globalOptions, opts *convertOptions, source string) error {
	cfg, log, err := global.load(cmd)
	if err != nil {
		return err
	}

	if err := opts.apply(cfg); err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.Format)
	if err != nil {
		return err
	}

	normalizer, err := normalize.ForEngine(cfg.Engine, "")
	if err != nil {
		return err
	}

	var writer *output.Writer
	if opts.stdout {
		writer = output.NewStream(cmd.OutOrStdout())
	} else {
		writer, err = output.New(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	raw, err := readSource(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	log.ConversionStarted(source, cfg.Engine, cfg.Format)
	start := time.Now()

	p := pipeline{
		extractor:  extract.New(cfg.Selector),
		normalizer: normalizer,
		renderer:   renderer,
		selector:   cfg.Selector,
		log:        log,
	}
	data, err := p.process(source, raw, cfg.Engine)
	if err != nil {
		return err
	}

	dest, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	log.Written(source, dest, len(data), time.Since(start))

	if !opts.stdout {
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓ Written: "+dest))
	}
	return nil
}

// apply validates the format flags and layers flag values over cfg.
func (o *convertOptions) apply(cfg *config.Config) error {
	formats := map[string]bool{
		"markdown": o.markdown,
		"html":     o.html,
		"json":     o.json,
		"pdf":      o.pdf,
	}

	var chosen []string
	for name, set := range formats {
		if set {
			chosen = append(chosen, name)
		}
	}
	if len(chosen) > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", len(chosen))
	}
	if len(chosen) == 1 {
		cfg.Format = chosen[0]
	}

	if o.engine != "" {
		cfg.Engine = strings.ToLower(o.engine)
	}
	if o.selector != "" {
		cfg.Selector = o.selector
	}
	if o.outputDir != "" {
		dir, err := config.ExpandPath(o.outputDir)
		if err != nil {
			return fmt.Errorf("expanding --output_dir: %w", err)
		}
		cfg.OutputDir = dir
	}

	return cfg.Validate()
}

// pipeline wires the stages for a single document.
type pipeline struct {
	extractor  core.Extractor
	normalizer core.Normalizer
	renderer   core.Renderer
	selector   string
	log        *logger.Logger
}

// process runs a single document through the full pipeline.
func (p pipeline) process(source, raw, engine string) ([]byte, error) {
	// 1. Extract the editable region
	fragment, err := p.extractor.Extract(raw)
	if err != nil {
		p.log.ConversionError(source, "extract", err)
		return nil, fmt.Errorf("extract: %w", err)
	}

	if region, err := parse.New("").Parse(fragment); err == nil && region.IsBlank() {
		p.log.EmptyRegion(source, p.selector)
	}

	// 2. Normalize to Markdown
	markdown, err := p.normalizer.Normalize(fragment)
	if err != nil {
		p.log.ConversionError(source, "normalize", err)
		return nil, fmt.Errorf("normalize: %w", err)
	}

	meta := buildMetadata(source, raw, engine)

	// 3. Render to output format
	data, err := p.renderer.Render(markdown, meta)
	if err != nil {
		p.log.ConversionError(source, "render", err)
		return nil, fmt.Errorf("render: %w", err)
	}

	return data, nil
}

func readSource(stdin io.Reader, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(data), nil
}

// buildMetadata constructs DocumentMetadata from the source and raw HTML.
func buildMetadata(source, raw, engine string) core.DocumentMetadata {
	meta := core.DocumentMetadata{
		Source:      source,
		Language:    "en",
		Engine:      engine,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if source == "-" {
		meta.Source = "stdin"
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return meta
	}
	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if lang, ok := doc.Find("html").Attr("lang"); ok && lang != "" {
		meta.Language = lang
	}
	return meta
}

// selectRenderer creates the Renderer for a format name.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "html":
		return render.NewHTMLRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
