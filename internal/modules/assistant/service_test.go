package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

type stubCatalog struct {
	destinations []domain.Destination
	packages     []domain.Package
	lastFilter   repository.PackageFilter
}

func (s *stubCatalog) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations, nil
}

func (s *stubCatalog) ListPackages(ctx context.Context, destinationID int64) ([]domain.Package, error) {
	return s.packages, nil
}

func (s *stubCatalog) Search(ctx context.Context, f repository.PackageFilter) ([]domain.Package, error) {
	s.lastFilter = f
	return s.packages, nil
}

// groqStub serves canned chat-completion responses and records requests.
func groqStub(t *testing.T, respond func(req ChatRequest) ChatResponse) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(respond(req)))
	}))
}

func textResponse(content string) ChatResponse {
	var resp ChatResponse
	resp.Choices = append(resp.Choices, struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	}{Message: Message{Role: "assistant", Content: content}, FinishReason: "stop"})
	return resp
}

func TestService_Chat(t *testing.T) {
	var captured ChatRequest
	server := groqStub(t, func(req ChatRequest) ChatResponse {
		captured = req
		return textResponse("Paris is lovely in spring! Check out the Paris Romance Tour.")
	})
	defer server.Close()

	catalog := &stubCatalog{
		destinations: []domain.Destination{{Name: "Paris", Country: "France"}},
		packages:     []domain.Package{{Name: "Paris Romance Tour", DurationDays: 5, PriceTable: domain.PriceTable{AdultPrice: decimal.RequireFromString("1200")}}},
	}
	service := NewService(NewGroqClient(server.URL, "test-key", "llama-3.3-70b-versatile"), catalog)

	result := service.Chat(context.Background(), ChatRequestBody{Message: "Tell me about Paris"})

	assert.False(t, result.Degraded)
	assert.Contains(t, result.Reply, "Paris Romance Tour")
	assert.NotEmpty(t, result.QuickReplies)

	// system prompt grounds the model in the live catalog
	require.NotEmpty(t, captured.Messages)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Paris Romance Tour")
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
}

func TestService_Chat_NotConfigured(t *testing.T) {
	service := NewService(NewGroqClient("http://example.invalid", "", ""), &stubCatalog{})

	result := service.Chat(context.Background(), ChatRequestBody{Message: "hello"})

	assert.True(t, result.Degraded)
	assert.Equal(t, unavailableMessage, result.Reply)
}

func TestService_Chat_FallbackOnProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := NewService(NewGroqClient(server.URL, "test-key", "llama-3.3-70b-versatile"), &stubCatalog{})

	result := service.Chat(context.Background(), ChatRequestBody{Message: "how much does a trip cost?"})

	assert.True(t, result.Degraded)
	assert.Contains(t, result.Reply, "$900 to $2500")
}

func TestService_ExtractBookingIntent(t *testing.T) {
	server := groqStub(t, func(req ChatRequest) ChatResponse {
		require.Len(t, req.Tools, 1)
		assert.Equal(t, extractToolName, req.Tools[0].Function.Name)

		var resp ChatResponse
		msg := Message{Role: "assistant"}
		tc := ToolCall{ID: "call_1", Type: "function"}
		tc.Function.Name = extractToolName
		tc.Function.Arguments = `{"destination_type":"Beach","destination_name":"Bali","duration_days":7,"adults":2,"children":1,"max_budget":2000}`
		msg.ToolCalls = []ToolCall{tc}
		resp.Choices = append(resp.Choices, struct {
			Message      Message `json:"message"`
			FinishReason string  `json:"finish_reason"`
		}{Message: msg, FinishReason: "tool_calls"})
		return resp
	})
	defer server.Close()

	service := NewService(NewGroqClient(server.URL, "test-key", "llama-3.3-70b-versatile"), &stubCatalog{})

	intent, err := service.ExtractBookingIntent(context.Background(), "beach holiday in Bali for a week, 2 adults and a kid, under $2000")
	require.NoError(t, err)

	assert.Equal(t, "Beach", intent.DestinationType)
	assert.Equal(t, "Bali", intent.DestinationName)
	require.NotNil(t, intent.DurationDays)
	assert.Equal(t, 7, *intent.DurationDays)
	assert.Equal(t, 2, intent.Adults)
	assert.Equal(t, 1, intent.Children)

	f := intent.Filter()
	assert.Equal(t, "Bali", f.DestinationKeyword)
	assert.Equal(t, 6, f.MinDuration)
	assert.Equal(t, 8, f.MaxDuration)
	assert.Equal(t, 3, f.MaxTravelers)
	require.NotNil(t, f.MaxPrice)
	assert.True(t, f.MaxPrice.Equal(decimal.NewFromInt(2000)))
}

func TestService_Search_FallbackToKeyword(t *testing.T) {
	// provider down: search still returns catalog results
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	catalog := &stubCatalog{packages: []domain.Package{{Name: "Bali Beach Week"}}}
	service := NewService(NewGroqClient(server.URL, "test-key", "llama-3.3-70b-versatile"), catalog)

	result, err := service.Search(context.Background(), "Bali")
	require.NoError(t, err)

	assert.Equal(t, "I found 1 packages matching your request!", result.Summary)
	assert.Len(t, result.Packages, 1)
	assert.Equal(t, "Bali", catalog.lastFilter.DestinationKeyword)
}

func TestService_Recommend(t *testing.T) {
	var captured ChatRequest
	server := groqStub(t, func(req ChatRequest) ChatResponse {
		captured = req
		return textResponse(`{"recommendations":[{"package_id":2,"match_score":92,"reasoning":"The Bali Beach Week pairs your snorkeling interest with a budget-friendly price. Seven days on the water is exactly the trip length you asked for."},{"package_id":1,"match_score":61,"reasoning":"Paris works as a backup if the beach falls through."}]}`)
	})
	defer server.Close()

	duration := 7
	budget := 1500.0
	catalog := &stubCatalog{packages: []domain.Package{
		{ID: 1, Name: "Paris Romance Tour", DurationDays: 5, Description: "Five days in the city of light", PriceTable: domain.PriceTable{AdultPrice: decimal.RequireFromString("1200")}},
		{ID: 2, Name: "Bali Beach Week", DurationDays: 7, Description: "Snorkeling and surf", PriceTable: domain.PriceTable{AdultPrice: decimal.RequireFromString("950")}},
	}}
	service := NewService(NewGroqClient(server.URL, "test-key", "llama-3.3-70b-versatile"), catalog)

	recs, err := service.Recommend(context.Background(), RecommendRequest{
		MaxBudget: &budget,
		Interests: []string{"snorkeling", "beaches"},
		Duration:  &duration,
		Travelers: 2,
	})
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, int64(2), recs[0].PackageID)
	assert.Equal(t, 92, recs[0].MatchScore)
	assert.Contains(t, recs[0].Reasoning, "snorkeling")

	// JSON mode with the full preference and catalog context
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	assert.InDelta(t, 0.3, captured.Temperature, 0.001)
	assert.Equal(t, 800, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Contains(t, captured.Messages[1].Content, "Budget Range: $0 - $1500")
	assert.Contains(t, captured.Messages[1].Content, "Interests: snorkeling, beaches")
	assert.Contains(t, captured.Messages[1].Content, "ID: 2 | Name: Bali Beach Week")
}

func TestService_Recommend_EmptyCatalog(t *testing.T) {
	service := NewService(NewGroqClient("http://example.invalid", "", ""), &stubCatalog{})

	_, err := service.Recommend(context.Background(), RecommendRequest{})
	assert.ErrorIs(t, err, ErrNoPackages)
}

func TestService_Recommend_HeuristicFallback(t *testing.T) {
	// provider down: ranking falls back to budget and group-size fit
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	budget := 1000.0
	catalog := &stubCatalog{packages: []domain.Package{
		{ID: 1, Name: "Alpine Trek", DurationDays: 10, PriceTable: domain.PriceTable{AdultPrice: decimal.RequireFromString("2400")}},
		{ID: 2, Name: "Bali Beach Week", DurationDays: 7, PriceTable: domain.PriceTable{AdultPrice: decimal.RequireFromString("950")}},
		{ID: 3, Name: "Private Yacht Day", DurationDays: 1, MaxTravelers: 2, PriceTable: domain.PriceTable{AdultPrice: decimal.RequireFromString("800")}},
	}}
	service := NewService(NewGroqClient(server.URL, "test-key", "llama-3.3-70b-versatile"), catalog)

	recs, err := service.Recommend(context.Background(), RecommendRequest{MaxBudget: &budget, Travelers: 4})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// within budget and big enough for the party beats over-budget and capped options
	assert.Equal(t, int64(2), recs[0].PackageID)
	assert.Greater(t, recs[0].MatchScore, recs[1].MatchScore)
	for _, r := range recs {
		assert.NotEmpty(t, r.Reasoning)
		assert.GreaterOrEqual(t, r.MatchScore, 1)
		assert.LessOrEqual(t, r.MatchScore, 100)
	}
}

func TestService_SummarizeReviews_SmallSamples(t *testing.T) {
	service := NewService(NewGroqClient("http://example.invalid", "", ""), &stubCatalog{})

	summary, err := service.SummarizeReviews(context.Background(), "Paris Romance Tour", nil)
	require.NoError(t, err)
	assert.Equal(t, "No reviews yet. Be the first to share your experience!", summary)

	summary, err = service.SummarizeReviews(context.Background(), "Paris Romance Tour", []domain.Review{
		{Rating: 5}, {Rating: 4},
	})
	require.NoError(t, err)
	assert.Contains(t, summary, "2 initial rating(s)")
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "A city of light and romance.",
		cleanDescription("Here is the description:\nA city of light and romance."))
	assert.Equal(t, "Bold claims about Bali.",
		cleanDescription("**Bold** claims about Bali."))
}

func TestService_QuickReplies(t *testing.T) {
	service := NewService(nil, &stubCatalog{})

	assert.Contains(t, service.QuickReplies("I want to see paris"), "Paris packages")
	assert.Contains(t, service.QuickReplies("somewhere tropical"), "Bali packages")
	assert.Contains(t, service.QuickReplies(""), "Popular packages")
}
