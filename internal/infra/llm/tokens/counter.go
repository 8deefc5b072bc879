package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yanqian/cosmic-blueprint/internal/infra/llm/chatgpt"
	"github.com/yanqian/cosmic-blueprint/pkg/metrics"
)

const (
	fallbackEncoding = "cl100k_base"
	// Chat framing adds a few tokens per message and primes the reply.
	perMessageOverhead = 4
	replyPriming       = 3
)

// Counter estimates token usage when the provider does not report it.
type Counter struct {
	encode func(string) int
}

// NewCounter loads the BPE ranks for model, falling back to cl100k_base for
// models tiktoken does not know. Loading may fetch the rank file once.
func NewCounter(model string) (*Counter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("load tokenizer: %w", err)
		}
	}
	return &Counter{
		encode: func(s string) int { return len(enc.Encode(s, nil, nil)) },
	}, nil
}

// Count returns the token length of text.
func (c *Counter) Count(text string) int {
	if text == "" {
		return 0
	}
	return c.encode(text)
}

// Estimate approximates usage for a chat exchange.
func (c *Counter) Estimate(prompt []chatgpt.Message, completion string) metrics.TokenUsage {
	promptTokens := replyPriming
	for _, m := range prompt {
		promptTokens += perMessageOverhead + c.Count(m.Role) + c.Count(m.Content)
	}
	completionTokens := c.Count(completion)
	return metrics.TokenUsage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Estimated:        true,
	}
}
