package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are a civic information editor. Your job is to rewrite official legislative bill summaries in plain language for ordinary readers.

Rules:
1. Use everyday words; replace legal terms (e.g. "notwithstanding", "promulgate") with plain equivalents
2. Keep sentences short, active voice
3. Say concretely what the bill would do and who it affects
4. Keep all facts: names, numbers, dates, dollar amounts
5. Do not add opinions, predictions, or advocacy
6. Target an 8th-grade reading level
7. Three to five sentences total

Output as JSON only, no other text:
{
  "plain_summary": "the rewritten summary"
}`

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Rewrite(input RewriteInput) (*RewriteResult, error) {
	userPrompt := fmt.Sprintf("Bill title: %s\nOfficial summary: %s", input.Title, input.Summary)

	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var parsed struct {
		PlainSummary string `json:"plain_summary"`
	}

	err = json.Unmarshal([]byte(content), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	return &RewriteResult{
		PlainSummary: parsed.PlainSummary,
		ModelUsed:    c.modelName,
	}, nil
}
