package ports

import "context"

// TextGenerator abstracts the external generative-language model. One prompt
// in, one textual completion out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextExtractor converts an uploaded document on disk into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// ResultCache stores validated analysis artifacts keyed by pipeline kind and
// report digest. A miss is (nil, nil); implementations must never make cache
// trouble fatal to the caller.
type ResultCache interface {
	Get(ctx context.Context, kind, digest string) ([]byte, error)
	Set(ctx context.Context, kind, digest string, payload []byte) error
}
