package main

import (
	"encoding/json"
	"fmt"
	"os"

	"portfolio-builder/internal/model"
	"portfolio-builder/pkg/renderer"
)

func main() {
	in := "content.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read content: %v\n", err)
		os.Exit(2)
	}
	var m model.ContentModel
	if err := json.Unmarshal(b, &m); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	page, err := renderer.Page(m, renderer.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	outFile := "preview.html"
	if err := os.WriteFile(outFile, []byte(page), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
