// Package main generates JSON payload fixtures of the standard sizes
// used by the load-test plan.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/loadlens/loadlens/internal/infra/payload"
)

func main() {
	size := flag.Int("size", 0, "payload size in bytes (0 = generate all standard sizes)")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *size > 0 {
		if err := writePayload(*out, fmt.Sprintf("payload_%dB.json", *size), *size); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, std := range payload.StandardSizes {
		if err := writePayload(*out, fmt.Sprintf("payload_%s.json", std.Label), std.Bytes); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// writePayload generates one fixture file.
func writePayload(dir, name string, size int) error {
	content, err := payload.Generate(size)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("payload written", "file", path, "bytes", len(content))
	return nil
}
