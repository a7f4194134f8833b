// Command visionscan runs the vision extraction path: the card image goes
// straight to a vision-capable model and the structured result prints as
// JSON.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cardscan/internal/config"
	"cardscan/internal/domain"
	"cardscan/internal/port"
	"cardscan/internal/vision"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	imagePath := flag.String("image", "", "path to the card image (jpg, png or webp)")
	mimeType := flag.String("mime", "", "image MIME type; inferred from the extension when empty")
	flag.Parse()

	if *imagePath == "" {
		return fmt.Errorf("-image is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Vision.Configured() {
		return fmt.Errorf("vision provider is not configured: set CARDSCAN_VISION_API_KEY")
	}

	mt := *mimeType
	if mt == "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(*imagePath)), ".")
		mt = domain.AllowedImageExtensions[ext]
	}
	if mt == "" {
		return fmt.Errorf("%w: cannot infer MIME type for %s", domain.ErrUnsupportedImageType, *imagePath)
	}

	data, err := os.ReadFile(*imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	extractor := vision.NewExtractor(&cfg.Vision)
	card, err := extractor.ExtractImage(context.Background(), port.ImageInput{
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    mt,
	})
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
