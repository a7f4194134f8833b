// Command extract runs the heuristic extraction path over an OCR text file
// or a card image (transcribed via tesseract) and prints the resulting
// contact card as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cardscan/internal/augment"
	"cardscan/internal/config"
	"cardscan/internal/extract"
	"cardscan/internal/heuristic"
	"cardscan/internal/llm"
	"cardscan/internal/ocr"
	"cardscan/internal/port"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	textPath := flag.String("text", "", "path to a file containing OCR text ('-' for stdin)")
	imagePath := flag.String("image", "", "path to a card image to transcribe and extract")
	flag.Parse()

	if (*textPath == "") == (*imagePath == "") {
		return fmt.Errorf("exactly one of -text or -image is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var completer port.TextCompleter
	if cfg.Fallback.Configured() {
		completer = llm.NewClient(&cfg.Fallback)
	}
	var augmenter *augment.Augmenter
	if completer != nil {
		augmenter = augment.NewAugmenter(completer)
	}

	svc := extract.NewService(heuristic.NewExtractor(nil), augmenter, ocr.NewExtractor(&cfg.OCR))

	ctx := context.Background()
	card, err := extractCard(ctx, svc, *textPath, *imagePath)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func extractCard(ctx context.Context, svc *extract.Service, textPath, imagePath string) (interface{}, error) {
	if imagePath != "" {
		return svc.ExtractFile(ctx, imagePath)
	}
	var raw []byte
	var err error
	if textPath == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(textPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return svc.ExtractText(ctx, string(raw))
}
