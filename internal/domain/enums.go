package domain

// ImageType represents the image formats accepted by the vision path.
type ImageType string

const (
	ImageTypeJPG  ImageType = "jpg"
	ImageTypePNG  ImageType = "png"
	ImageTypeWEBP ImageType = "webp"
)

// AllowedImageContentTypes maps MIME content types to their ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
	"image/webp": ImageTypeWEBP,
}

// AllowedImageExtensions maps file extensions (without dot) to MIME types,
// used by the CLI entry points to infer a content type from a path.
var AllowedImageExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}
