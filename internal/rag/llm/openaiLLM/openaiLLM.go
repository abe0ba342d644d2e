package openaiLLM

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var openaiClient *Client

type Client struct {
	api       openai.Client
	modelName string
}

func GetClient(ctx context.Context, modelName string, apikey string) *Client {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		api := openai.NewClient(option.WithAPIKey(apikey))
		openaiClient = &Client{api: api, modelName: modelName}
		logger.Debug("OpenAI " + modelName + " client created")
		logger.Info("OpenAI client created")
	})

	return openaiClient
}

func (c *Client) Name() string { return "openai" }

func (c *Client) Generate(ctx context.Context, userQuery string, matches []string) (string, error) {
	log := logger.With("traceId", ctx.Value("traceId"))

	userPrompt := userQuery
	if len(matches) > 0 {
		userPrompt = fmt.Sprintf("Context:\n%s\n\nQuestion: %s\nAnswer:", strings.Join(matches, "\n\n"), userQuery)
	}

	result, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(config.ModelContext),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		log.Error("OpenAI generation failed", "error", err)
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("empty response from OpenAI")
	}
	return result.Choices[0].Message.Content, nil
}
