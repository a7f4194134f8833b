package port

import "context"

// TextCompleter abstracts a text-completion model endpoint. Implementations
// must request a JSON-only response mode when the provider supports one.
type TextCompleter interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}
