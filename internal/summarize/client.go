package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nattapongd/classmate/internal/logging"
)

// FailureMarker prefixes every summary string returned in place of a
// real summary when a call fails. The workflow prints the string as-is,
// so a failed AI call never aborts the menu loop.
const FailureMarker = "❌"

const (
	textMaxTokens   = 1000
	visionMaxTokens = 2000
	temperature     = 0.3
)

// Config defines the summarization endpoint and model.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client calls an OpenAI-compatible chat-completion API for text and
// vision summarization. Both operations return a displayable string:
// either the model output or a failure-marker message.
type Client struct {
	client *openai.Client
	cfg    Config
	logger *slog.Logger
}

// New builds a summarization client from the given configuration.
func New(cfg Config, logger *slog.Logger) *Client {
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(cc),
		cfg:    cfg,
		logger: logging.WithService(logger, "summarize"),
	}
}

// SummarizeText summarizes assignment text into the four-section
// structure described by the system prompt.
func (c *Client) SummarizeText(ctx context.Context, text string) string {
	req := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: temperature,
		MaxTokens:   textMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: textSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	}

	return c.complete(ctx, "summarize_text", req)
}

// SummarizeFile summarizes a single encoded file (image or PDF) through
// the vision message shape: a text part naming the file plus an inline
// base64 data URL. The caller is responsible for only passing supported
// MIME types.
func (c *Client) SummarizeFile(ctx context.Context, encoded, mimeType, fileName string) string {
	req := openai.ChatCompletionRequest{
		Model:     c.cfg.Model,
		MaxTokens: visionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: visionSystemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: fmt.Sprintf("ช่วยสรุปเนื้อหาของไฟล์ %q ให้หน่อย", fileName),
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:" + mimeType + ";base64," + encoded,
						},
					},
				},
			},
		},
	}

	return c.complete(ctx, "summarize_file", req)
}

// complete issues the request and folds every failure into a
// failure-marker string.
func (c *Client) complete(ctx context.Context, op string, req openai.ChatCompletionRequest) string {
	if c.cfg.APIKey == "" {
		return FailureMarker + " ยังไม่ได้ตั้งค่า API key สำหรับบริการสรุป"
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Warn("summarization call failed", logging.Operation(op), slog.String(logging.KeyModel, c.cfg.Model), logging.Err(err))
		return fmt.Sprintf("%s สรุปไม่สำเร็จ: %v", FailureMarker, err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("summarization returned no choices", logging.Operation(op), slog.String(logging.KeyModel, c.cfg.Model))
		return FailureMarker + " สรุปไม่สำเร็จ: ไม่ได้รับคำตอบจากโมเดล"
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
