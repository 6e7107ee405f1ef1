package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	apicatalog "github.com/goliatone/go-apicatalog"
	"github.com/goliatone/go-apicatalog/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-apicatalog/pkg/openapi"
	"github.com/goliatone/go-apicatalog/pkg/render"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path or URL")
	format := flag.String("format", "json", "output format: json, yaml, or markdown")
	output := flag.String("output", "", "output file (stdout if empty)")
	inspect := flag.Bool("inspect", false, "pick one endpoint interactively and print it")
	sanitize := flag.Bool("sanitize", false, "strip HTML from summaries and descriptions")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *source == "" {
		log.Fatal("missing required -source flag")
	}

	ctx := context.Background()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	loader := apicatalog.NewLoader(pkgopenapi.WithHTTPFallback(30 * time.Second))
	doc, err := loader.Load(ctx, parseSource(*source))
	if err != nil {
		log.Fatalf("Failed to load contract: %v", err)
	}

	options := []catalog.ExtractorOption{catalog.WithLogger(logger)}
	if *sanitize {
		options = append(options, catalog.WithSanitizedText())
	}

	result := apicatalog.ExtractFromDocument(ctx, doc, options...)
	if result.Degraded() {
		fmt.Fprintf(os.Stderr, "warning: catalogue is partial: %v\n", result.Err)
	}

	if *inspect {
		if err := inspectEndpoint(result); err != nil {
			log.Fatalf("Inspect failed: %v", err)
		}
		return
	}

	payload, err := encode(result, *format)
	if err != nil {
		log.Fatalf("Failed to encode catalogue: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Catalogue written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}

func encode(result catalog.Result, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(result.Endpoints, "", "  ")
	case "yaml":
		return yaml.Marshal(result.Endpoints)
	case "markdown":
		doc, err := render.Markdown(result)
		if err != nil {
			return nil, err
		}
		return []byte(doc), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// inspectEndpoint prompts for a single endpoint and prints its record.
func inspectEndpoint(result catalog.Result) error {
	if len(result.Endpoints) == 0 {
		return errors.New("no endpoints extracted")
	}

	labels := make([]string, 0, len(result.Endpoints))
	for _, endpoint := range result.Endpoints {
		labels = append(labels, endpoint.Method+" "+endpoint.Path)
	}

	var choice string
	prompt := &survey.Select{
		Message:  "Endpoint:",
		Options:  labels,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	for i, label := range labels {
		if label == choice {
			payload, err := json.MarshalIndent(result.Endpoints[i], "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(payload))
			return nil
		}
	}
	return fmt.Errorf("endpoint %q not found", choice)
}
