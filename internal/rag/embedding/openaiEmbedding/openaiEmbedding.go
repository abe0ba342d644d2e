package openaiEmbedding

import (
	"errors"
	"sync"

	"context"

	"github.com/akolanti/docgenius/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *Client

type Client struct {
	api   openai.Client
	model string
}

func GetClient(ctx context.Context, modelName string, apikey string) *Client {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		api := openai.NewClient(option.WithAPIKey(apikey))
		embeddingClient = &Client{api: api, model: modelName}
		logger.Debug("OpenAI Embedding model name: " + modelName)
		logger.Info("OpenAI Embedding client created")
	})

	return embeddingClient
}

func (c *Client) Name() string { return "openai" }

func (c *Client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	log := logger.With("traceId", ctx.Value("traceId"))
	res, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(query)},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		log.Error("Error getting Embedding from OpenAI", "error", err.Error())
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, errors.New("no embedding returned")
	}
	return toFloat32(res.Data[0].Embedding), nil
}

func (c *Client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	log := logger.With("traceId", ctx.Value("traceId"))
	res, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: chunks},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		log.Error("Error getting batch Embeddings from OpenAI", "error", err.Error())
		return nil, err
	}
	if len(res.Data) != len(chunks) {
		return nil, errors.New("embedding count does not match input count")
	}

	//the API is allowed to return results out of order, Index restores it
	vectors := make([][]float32, len(chunks))
	for _, d := range res.Data {
		if d.Index < 0 || int(d.Index) >= len(vectors) {
			return nil, errors.New("embedding index out of range")
		}
		vectors[d.Index] = toFloat32(d.Embedding)
	}
	return vectors, nil
}

func toFloat32(values []float64) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
