// Command export generates a static site project from a content model
// JSON file and writes the packaged archive next to it. Useful for
// inspecting generator output without a running server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"portfolio-builder/internal/model"
	"portfolio-builder/internal/usecase"
)

func main() {
	in := flag.String("in", "content.json", "content model JSON file")
	out := flag.String("out", "", "output archive path (defaults to <project-name>.zip)")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read content: %v\n", err)
		os.Exit(2)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	if err := model.ValidateMap(raw); err != nil {
		fmt.Fprintf(os.Stderr, "invalid content: %v\n", err)
		os.Exit(2)
	}

	var m model.ContentModel
	if err := json.Unmarshal(b, &m); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	m = model.Normalize(m)

	exporter := usecase.NewExporter(nil)
	res, err := exporter.Export(context.Background(), m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}

	dest := *out
	if dest == "" {
		dest = res.Filename
	}
	if err := os.WriteFile(dest, res.Archive, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write archive: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", dest, len(res.Archive))
}
