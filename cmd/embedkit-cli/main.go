package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-embedkit/pkg/builder"
	"github.com/goliatone/go-embedkit/pkg/model"
)

func main() {
	input := flag.String("input", "", "content file (stdin if empty)")
	markdown := flag.Bool("markdown", false, "treat input as markdown")
	kind := flag.String("kind", "general", "content kind: question, option, general")
	title := flag.String("title", "", "document title")
	configPath := flag.String("config", "", "YAML document config path")
	format := flag.String("format", "html", "output format: html, json, compressed")
	compact := flag.Bool("compact", false, "strip insignificant whitespace")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for title and content")
	flag.Parse()

	options := []builder.Option{}
	if *configPath != "" {
		cfg, err := model.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		options = append(options, builder.WithConfig(cfg))
	}
	if *title != "" {
		options = append(options, builder.WithTitle(*title))
	}

	b, err := builder.New(options...)
	if err != nil {
		log.Fatalf("Failed to configure builder: %v", err)
	}

	content, blockKind, err := readContent(*input, *kind, *interactive)
	if err != nil {
		log.Fatalf("Failed to read content: %v", err)
	}

	if *markdown {
		b.AddMarkdown(content, blockKind)
	} else {
		b.AddContent(content, blockKind)
	}
	if err := b.Err(); err != nil {
		log.Fatalf("Failed to add content: %v", err)
	}

	rendered, err := render(b, *format, *compact)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}

func readContent(path, kind string, interactive bool) (string, model.BlockKind, error) {
	if interactive {
		return promptContent()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return string(data), model.ParseKind(kind), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), model.ParseKind(kind), nil
}

func promptContent() (string, model.BlockKind, error) {
	var answers struct {
		Kind    string
		Content string
	}

	questions := []*survey.Question{
		{
			Name: "kind",
			Prompt: &survey.Select{
				Message: "Content kind:",
				Options: []string{"question", "option", "general"},
				Default: "general",
			},
		},
		{
			Name:     "content",
			Prompt:   &survey.Multiline{Message: "Content (HTML):"},
			Validate: survey.Required,
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return "", "", err
	}
	return answers.Content, model.ParseKind(answers.Kind), nil
}

func render(b *builder.Builder, format string, compact bool) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html", "":
		return b.Render(compact)
	case "json":
		return b.RenderAsJSON(compact)
	case "compressed":
		return b.RenderAsCompressedJSON()
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
