package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taylored-ai/brand-dna-service/internal/fetch"
	"github.com/taylored-ai/brand-dna-service/pkg/anthropic"
	"github.com/taylored-ai/brand-dna-service/pkg/perplexity"
)

// --- Anthropic Mock ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

// textResponse wraps text in a single-block message response.
func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ResponseBlock{{Type: "text", Text: text}},
	}
}

// --- Perplexity Mock ---

type mockSearchClient struct {
	mock.Mock
}

func (m *mockSearchClient) Search(ctx context.Context, req perplexity.SearchRequest) (*perplexity.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*perplexity.SearchResponse), args.Error(1)
}

// --- Fetcher Mock ---

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*fetch.Page, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fetch.Page), args.Error(1)
}

func (m *mockFetcher) Name() string { return "mock" }
