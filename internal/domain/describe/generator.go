package describe

import (
	"context"
	"strings"

	"github.com/bytedance/sonic"
	openai "github.com/sashabaranov/go-openai"

	"visionvoice-server-go/internal/domain/vision"
	"visionvoice-server-go/internal/platform/config"
	"visionvoice-server-go/internal/platform/logging"
)

// completionClient is the slice of the OpenAI client the generator needs;
// tests substitute it to exercise failure paths.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces one description string per analysis. It never fails:
// when the endpoint is unreachable or no API key is configured it falls
// back to a deterministic templated sentence.
type Generator struct {
	cfg        config.DescribeConfig
	thresholds Thresholds
	client     completionClient
	logger     *logging.Logger
}

func NewGenerator(cfg config.DescribeConfig, thresholds Thresholds, logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.DefaultLogger
	}

	g := &Generator{
		cfg:        cfg,
		thresholds: thresholds,
		logger:     logger,
	}

	if cfg.APIKey == "" {
		logger.WarnTag("LLM", "GROQ_API_KEY not configured, descriptions will use the deterministic fallback")
		return g
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	g.client = openai.NewClientWithConfig(clientConfig)
	return g
}

// Enabled reports whether a generation credential is configured.
func (g *Generator) Enabled() bool {
	return g.client != nil
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.cfg.Model
}

// Describe generates the accessibility description for one analysis.
func (g *Generator) Describe(ctx context.Context, analysis *vision.Analysis) string {
	if g.client == nil {
		return FallbackDescription(analysis)
	}

	faces := ShapeFaces(analysis.Faces.Items, g.thresholds)
	labels := ShapeLabels(analysis.Labels, g.thresholds)
	celebrities := ShapeCelebrities(analysis.Celebrities.Items, g.thresholds)
	subject := ClassifySubject(faces, labels)

	if payload, err := sonic.MarshalString(map[string]interface{}{
		"faces":       faces,
		"labels":      labels,
		"celebrities": celebrities,
		"subject":     subject,
	}); err == nil {
		g.logger.DebugTag("LLM", "shaped analysis: %s", payload)
	}

	prompt := BuildPrompt(faces, celebrities, labels, subject)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: g.cfg.Temperature,
		TopP:        g.cfg.TopP,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		g.logger.ErrorTag("LLM", "description generation failed: %v", err)
		return FallbackDescription(analysis)
	}

	if len(resp.Choices) == 0 {
		return DefaultDescription
	}
	description := strings.TrimSpace(resp.Choices[0].Message.Content)
	if description == "" {
		return DefaultDescription
	}

	g.logger.InfoTag("LLM", "description generated: %s", description)
	if resp.Usage.TotalTokens > 0 {
		g.logger.DebugTag("LLM", "tokens used: %d", resp.Usage.TotalTokens)
	}
	return description
}
