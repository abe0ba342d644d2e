package localEmbedding

import (
	"context"
)

// Client is a zero-vector stand-in used when no embedding provider is
// configured. It keeps the pipeline exercisable without live credentials;
// every vector is identical so retrieval order degrades to insertion order.
type Client struct {
	dimension int
}

func New(dimension int) *Client {
	return &Client{dimension: dimension}
}

func (c *Client) Name() string { return "local" }

func (c *Client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	return make([]float32, c.dimension), nil
}

func (c *Client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))
	for i := range vectors {
		vectors[i] = make([]float32, c.dimension)
	}
	return vectors, nil
}
