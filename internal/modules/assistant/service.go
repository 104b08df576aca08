package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"travelgoals/internal/domain"
	"travelgoals/internal/repository"
)

// Catalog is the read surface the assistant grounds its answers on.
type Catalog interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	ListPackages(ctx context.Context, destinationID int64) ([]domain.Package, error)
	Search(ctx context.Context, f repository.PackageFilter) ([]domain.Package, error)
}

// Service wraps the Groq-backed travel assistant. Every operation degrades
// to a canned response when the model is unreachable; the assistant can
// never block or mutate booking state.
type Service struct {
	client  *GroqClient
	catalog Catalog
}

func NewService(client *GroqClient, catalog Catalog) *Service {
	return &Service{client: client, catalog: catalog}
}

const unavailableMessage = "Chat service is currently unavailable. Please try again later."

// Chat answers a free-text travel question with catalog-aware context.
// The last ten history turns are forwarded for continuity.
func (s *Service) Chat(ctx context.Context, req ChatRequestBody) *ChatResult {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return &ChatResult{Reply: "Please enter a message.", Degraded: true}
	}
	if !s.client.Enabled() {
		return &ChatResult{
			Reply:        unavailableMessage,
			QuickReplies: s.QuickReplies(""),
			Degraded:     true,
		}
	}

	messages := []Message{{Role: "system", Content: s.systemPrompt(ctx)}}

	history := req.History
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	for _, h := range history {
		role := "assistant"
		if h.Role == "user" {
			role = "user"
		}
		messages = append(messages, Message{Role: role, Content: h.Content})
	}
	messages = append(messages, Message{Role: "user", Content: message})

	reply, err := s.client.ChatCompletion(ctx, ChatRequest{
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		log.Printf("assistant: chat completion failed: %v", err)
		return &ChatResult{
			Reply:        fallbackReply(message),
			QuickReplies: s.QuickReplies(message),
			Degraded:     true,
		}
	}

	return &ChatResult{
		Reply:        strings.TrimSpace(reply.Content),
		QuickReplies: s.QuickReplies(message),
	}
}

// systemPrompt grounds the model in what is actually bookable right now.
func (s *Service) systemPrompt(ctx context.Context) string {
	var destNames []string
	if destinations, err := s.catalog.ListDestinations(ctx); err == nil {
		for i, d := range destinations {
			if i == 15 {
				break
			}
			destNames = append(destNames, d.Name)
		}
	}
	destLine := "Various destinations available"
	if len(destNames) > 0 {
		destLine = strings.Join(destNames, ", ")
	}

	var pkgLines []string
	if packages, err := s.catalog.ListPackages(ctx, 0); err == nil {
		for i, p := range packages {
			if i == 10 {
				break
			}
			line := fmt.Sprintf("- %s (from $%s)", p.Name, p.AdultPrice.StringFixed(0))
			if p.Destination != nil {
				line = fmt.Sprintf("- %s (%s, %d days, from $%s)", p.Name, p.Destination.Name, p.DurationDays, p.AdultPrice.StringFixed(0))
			}
			pkgLines = append(pkgLines, line)
		}
	}
	pkgText := "Multiple packages available"
	if len(pkgLines) > 0 {
		pkgText = strings.Join(pkgLines, "\n")
	}

	return fmt.Sprintf(`You are a friendly and helpful travel assistant for "Travel Goals" - a premium travel booking platform.

AVAILABLE DESTINATIONS:
%s

FEATURED PACKAGES:
%s

GUIDELINES:
1. Be friendly, enthusiastic, and concise (max 100 words)
2. Recommend specific destinations and packages from our list
3. When asked about booking, direct users to the booking page
4. Highlight package features: duration, price, inclusions
5. For destinations not in our list, suggest similar available options
6. Cannot process payments or access personal booking history
7. If unsure, ask clarifying questions about preferences (budget, climate, activities)

Provide helpful, personalized travel advice and recommendations!`, destLine, pkgText)
}

// fallbackReply covers the model being down with keyword-routed answers.
func fallbackReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, "book", "booking", "reserve"):
		return "To make a booking, please visit our booking page where you can submit your travel details. Our team will get back to you within 24 hours!"
	case containsAny(lower, "price", "cost", "how much", "cheap", "budget"):
		return "Our packages range from $900 to $2500+ depending on destination and duration. Visit the packages page to see all options with detailed pricing!"
	case containsAny(lower, "destination", "where", "place", "country"):
		return "We offer amazing destinations including Paris, Tokyo, Dubai, Bali, Barcelona, London, and more! Check our destinations page for the full list."
	default:
		return "Sorry, I encountered a temporary issue. Please try again in a moment."
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// QuickReplies suggests follow-up prompts, steered by the last message.
func (s *Service) QuickReplies(context string) []string {
	lower := strings.ToLower(context)
	switch {
	case containsAny(lower, "paris", "europe"):
		return []string{"Paris packages", "Best time to visit", "London trips", "Barcelona tours", "How to book?"}
	case containsAny(lower, "tokyo", "japan", "asia"):
		return []string{"Tokyo packages", "Bali beaches", "Dubai luxury", "Best time to visit", "How to book?"}
	case containsAny(lower, "beach", "tropical"):
		return []string{"Bali packages", "Maldives trips", "Hawaii tours", "Miami beaches", "Budget options"}
	default:
		return []string{"Beach destinations", "Adventure trips", "Budget-friendly options", "How to book?", "Popular packages"}
	}
}

// GenerateDescription writes listing copy for a destination or package.
func (s *Service) GenerateDescription(ctx context.Context, req DescribeRequest) (string, error) {
	if !s.client.Enabled() {
		return "", fmt.Errorf("assistant: AI service is not configured")
	}

	kind := req.Type
	if kind != "package" {
		kind = "destination"
	}

	prompt := fmt.Sprintf(`You are a professional travel copywriter. Write a compelling description for:

Destination: %s, %s
Purpose: %s listing on a travel booking website

Requirements:
- 2-3 engaging sentences (100-150 words)
- Highlight main attractions and unique experiences
- Include emotional appeal (adventure, relaxation, culture)
- Use vivid, sensory language
- Target: travelers seeking authentic experiences
- Tone: Enthusiastic but professional
%s
Write ONLY the description, no preamble or labels.`,
		req.Name, req.Country, strings.ToUpper(kind[:1])+kind[1:], contextLine(req.Context))

	reply, err := s.client.ChatCompletion(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a professional travel copywriter."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.8,
		MaxTokens:   250,
	})
	if err != nil {
		return "", err
	}
	return cleanDescription(reply.Content), nil
}

func contextLine(extra string) string {
	if strings.TrimSpace(extra) == "" {
		return "\n"
	}
	return "\nAdditional Context: " + extra + "\n"
}

// cleanDescription strips chat preambles and markdown emphasis the model
// sometimes adds despite instructions.
func cleanDescription(raw string) string {
	description := strings.TrimSpace(raw)
	for _, preamble := range []string{"here is", "here's", "description:", "sure!", "certainly!"} {
		if strings.HasPrefix(strings.ToLower(description), preamble) {
			if idx := strings.Index(description, "\n"); idx >= 0 {
				description = strings.TrimSpace(description[idx+1:])
			}
			break
		}
	}
	return strings.ReplaceAll(description, "*", "")
}

const extractToolName = "extract_travel_booking_params"

var extractToolParameters = json.RawMessage(`{
	"type": "object",
	"properties": {
		"destination_type": {
			"type": "string",
			"enum": ["Beach", "Mountain", "City", "Desert", "Island", "Cultural", "Adventure", "Any"],
			"description": "Type of destination the user wants to visit"
		},
		"destination_name": {
			"type": "string",
			"description": "Specific destination name if mentioned (e.g., 'Paris', 'Bali')"
		},
		"duration_days": {
			"type": "integer",
			"description": "Number of days for the trip"
		},
		"adults": {
			"type": "integer",
			"description": "Number of adult travelers",
			"minimum": 1
		},
		"children": {
			"type": "integer",
			"description": "Number of child travelers",
			"minimum": 0
		},
		"infants": {
			"type": "integer",
			"description": "Number of infant travelers",
			"minimum": 0
		},
		"max_budget": {
			"type": "number",
			"description": "Maximum budget per person in USD"
		},
		"preferred_month": {
			"type": "string",
			"description": "Preferred travel month (e.g., 'June', 'December')"
		},
		"interests": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Travel interests or activities mentioned"
		}
	},
	"required": ["destination_type", "adults"]
}`)

// ExtractBookingIntent parses a natural-language travel query into
// structured search parameters via function calling.
func (s *Service) ExtractBookingIntent(ctx context.Context, query string) (*BookingIntent, error) {
	if !s.client.Enabled() {
		return nil, fmt.Errorf("assistant: AI service is not configured")
	}

	reply, err := s.client.ChatCompletion(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a travel booking assistant. Extract booking parameters from user queries using the provided tool."},
			{Role: "user", Content: query},
		},
		Temperature: 0.1,
		Tools: []Tool{{
			Type: "function",
			Function: ToolFunction{
				Name:        extractToolName,
				Description: "Extract travel booking parameters from a natural language query",
				Parameters:  extractToolParameters,
			},
		}},
		ToolChoice: map[string]any{
			"type":     "function",
			"function": map[string]string{"name": extractToolName},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(reply.ToolCalls) == 0 {
		return nil, fmt.Errorf("assistant: model returned no tool call")
	}

	intent := &BookingIntent{DestinationType: "Any", Adults: 1}
	if err := json.Unmarshal([]byte(reply.ToolCalls[0].Function.Arguments), intent); err != nil {
		return nil, fmt.Errorf("assistant: decode tool arguments: %w", err)
	}
	if intent.Adults < 1 {
		intent.Adults = 1
	}
	return intent, nil
}

// Filter translates an extracted intent into the catalog query contract.
func (i *BookingIntent) Filter() repository.PackageFilter {
	f := repository.PackageFilter{
		DestinationKeyword: strings.TrimSpace(i.DestinationName),
		MaxTravelers:       i.Adults + i.Children + i.Infants,
	}
	if i.DurationDays != nil && *i.DurationDays > 0 {
		// allow a day of slack either way
		f.MinDuration = *i.DurationDays - 1
		f.MaxDuration = *i.DurationDays + 1
	}
	if i.MaxBudget != nil && *i.MaxBudget > 0 {
		budget := decimal.NewFromFloat(*i.MaxBudget)
		f.MaxPrice = &budget
	}
	return f
}

// Search runs the full booking-assistant flow: extract intent, query the
// catalog, and narrate the results.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	intent, err := s.ExtractBookingIntent(ctx, query)
	if err != nil {
		// fall back to a plain keyword search so the user still gets results
		log.Printf("assistant: intent extraction failed: %v", err)
		packages, serr := s.catalog.Search(ctx, repository.PackageFilter{DestinationKeyword: query})
		if serr != nil {
			return nil, serr
		}
		return &SearchResult{
			Summary:  fmt.Sprintf("I found %d packages matching your request!", len(packages)),
			Packages: packages,
		}, nil
	}

	packages, err := s.catalog.Search(ctx, intent.Filter())
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Summary:  s.searchSummary(ctx, query, intent, len(packages)),
		Intent:   intent,
		Packages: packages,
	}, nil
}

func (s *Service) searchSummary(ctx context.Context, query string, intent *BookingIntent, numResults int) string {
	fallback := fmt.Sprintf("I found %d packages matching your request!", numResults)
	if !s.client.Enabled() {
		return fallback
	}

	duration := "flexible"
	if intent.DurationDays != nil {
		duration = fmt.Sprintf("%d", *intent.DurationDays)
	}
	budget := "flexible"
	if intent.MaxBudget != nil {
		budget = fmt.Sprintf("%.0f", *intent.MaxBudget)
	}

	prompt := fmt.Sprintf(`User asked: "%s"

We extracted these parameters:
- Destination: %s %s
- Duration: %s days
- Travelers: %d adults, %d children
- Budget: $%s per person

We found %d matching packages.

Step 1: Write a professional and helpful response in 2-3 sentences.
Step 2: Acknowledge what was understood.
Step 3: Point them to the results shown below.`,
		query, intent.DestinationType, intent.DestinationName, duration,
		intent.Adults, intent.Children, budget, numResults)

	reply, err := s.client.ChatCompletion(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a professional travel assistant."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		log.Printf("assistant: search summary failed: %v", err)
		return fallback
	}
	return strings.TrimSpace(reply.Content)
}

// SummarizeReviews condenses a package's rating distribution into a short
// sentiment readout. Satisfies the review module's Summarizer contract.
func (s *Service) SummarizeReviews(ctx context.Context, packageName string, reviews []domain.Review) (string, error) {
	if len(reviews) == 0 {
		return "No reviews yet. Be the first to share your experience!", nil
	}

	total := 0
	distribution := [6]int{}
	for _, r := range reviews {
		total += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			distribution[r.Rating]++
		}
	}
	avg := float64(total) / float64(len(reviews))

	if len(reviews) <= 2 {
		return fmt.Sprintf("Based on %d initial rating(s). Not enough data for a deeper analysis.", len(reviews)), nil
	}
	if !s.client.Enabled() {
		return fmt.Sprintf("Based on %d reviews (avg %.1f/5). Check individual reviews for details.", len(reviews), avg), nil
	}

	prompt := fmt.Sprintf(`You are analyzing customer satisfaction for "%s" based on numerical ratings.

REVIEWS DATA:
Total Ratings: %d
Average Score: %.1f/5
Distribution:
- 5 Stars: %d
- 4 Stars: %d
- 3 Stars: %d
- 2 Stars: %d
- 1 Star: %d

TASK:
Provide a concise summary of customer sentiment based strictly on this rating distribution, in 2-3 sentences. Write ONLY the summary.`,
		packageName, len(reviews), avg,
		distribution[5], distribution[4], distribution[3], distribution[2], distribution[1])

	reply, err := s.client.ChatCompletion(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a helpful travel review analyst."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		log.Printf("assistant: review summary failed: %v", err)
		return fmt.Sprintf("Based on %d reviews (avg %.1f/5). Check individual reviews for details.", len(reviews), avg), nil
	}
	return strings.TrimSpace(reply.Content), nil
}

// ErrNoPackages means the catalog has nothing approved to recommend from.
var ErrNoPackages = errors.New("assistant: no packages available")

// recommendContextLimit caps how many packages go into the model prompt.
const recommendContextLimit = 25

// Recommend ranks the live catalog against the traveler's preferences and
// returns up to three picks. JSON mode keeps the model's output parseable;
// when the model is unreachable a heuristic ranking takes over so the
// endpoint stays useful in degraded mode.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	if req.MaxBudget == nil {
		budget := 5000.0
		req.MaxBudget = &budget
	}
	if req.Travelers <= 0 {
		req.Travelers = 1
	}

	packages, err := s.catalog.ListPackages(ctx, 0)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, ErrNoPackages
	}
	if len(packages) > recommendContextLimit {
		packages = packages[:recommendContextLimit]
	}

	if !s.client.Enabled() {
		return heuristicRecommendations(req, packages), nil
	}

	reply, err := s.client.ChatCompletion(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: "You are a travel recommendation expert who exclusively responds in JSON format."},
			{Role: "user", Content: recommendPrompt(req, packages)},
		},
		Temperature:    0.3,
		MaxTokens:      800,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		log.Printf("assistant: recommendations failed: %v", err)
		return heuristicRecommendations(req, packages), nil
	}

	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(reply.Content), &parsed); err != nil {
		log.Printf("assistant: decode recommendations: %v", err)
		return heuristicRecommendations(req, packages), nil
	}
	if len(parsed.Recommendations) > 3 {
		parsed.Recommendations = parsed.Recommendations[:3]
	}
	return parsed.Recommendations, nil
}

func recommendPrompt(req RecommendRequest, packages []domain.Package) string {
	interests := "Any"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}
	month := req.Month
	if month == "" {
		month = "Any"
	}
	duration := "Any"
	if req.Duration != nil {
		duration = fmt.Sprintf("%d days", *req.Duration)
	}

	var catalog strings.Builder
	for _, p := range packages {
		desc := p.Description
		if len(desc) > 100 {
			desc = desc[:100]
		}
		dest := ""
		if p.Destination != nil {
			dest = p.Destination.Name
		}
		fmt.Fprintf(&catalog, "ID: %d | Name: %s | Destination: %s | Price: $%s | Duration: %d days | Description: %s...\n",
			p.ID, p.Name, dest, recommendPrice(p).StringFixed(0), p.DurationDays, desc)
	}

	return fmt.Sprintf(`USER PREFERENCES:
- Budget Range: $%.0f - $%.0f
- Interests: %s
- Travel Month: %s
- Duration: %s
- Travelers: %d person(s)

AVAILABLE PACKAGES:
%s
TASK:
Analyze the user's preferences and recommend the TOP 3 packages that best match. If fewer than 3 packages exist, recommend all of them.

RESPONSE FORMAT (strict JSON):
{"recommendations": [{"package_id": <id>, "match_score": <1-100>, "reasoning": "<2-3 sentences explaining why this package fits>"}]}

Rules:
- match_score reflects how well the package aligns with the budget and interests.
- reasoning must be persuasive and reference the user's stated interests.
- Respond with JSON only, no extra text.`,
		req.MinBudget, *req.MaxBudget, interests, month, duration, req.Travelers, catalog.String())
}

// recommendPrice is the per-adult price the recommender compares budgets
// against. Economy fare when tiered pricing exists, base fare otherwise.
func recommendPrice(p domain.Package) decimal.Decimal {
	if p.EconomyAdultPrice != nil {
		return *p.EconomyAdultPrice
	}
	return p.AdultPrice
}

// heuristicRecommendations is the degraded-mode ranking: score each package
// on budget, duration, and group-size fit, then take the top three.
func heuristicRecommendations(req RecommendRequest, packages []domain.Package) []Recommendation {
	budget := decimal.NewFromFloat(*req.MaxBudget)
	minBudget := decimal.NewFromFloat(req.MinBudget)

	recs := make([]Recommendation, 0, len(packages))
	for _, p := range packages {
		price := recommendPrice(p)
		score := 50
		reasons := []string{fmt.Sprintf("%s runs %d days at $%s per adult", p.Name, p.DurationDays, price.StringFixed(0))}

		if price.LessThanOrEqual(budget) && price.GreaterThanOrEqual(minBudget) {
			score += 30
			reasons = append(reasons, "It fits comfortably within your budget range")
		} else if price.GreaterThan(budget) {
			score -= 25
			reasons = append(reasons, "It sits above your stated budget")
		}
		if req.Duration != nil {
			diff := p.DurationDays - *req.Duration
			if diff < 0 {
				diff = -diff
			}
			if diff <= 1 {
				score += 12
				reasons = append(reasons, "the length matches the trip you asked for")
			}
		}
		if p.MaxTravelers == 0 || p.MaxTravelers >= req.Travelers {
			score += 8
		} else {
			score -= 30
			reasons = append(reasons, "note that the group cap is below your party size")
		}
		if score < 1 {
			score = 1
		}
		if score > 100 {
			score = 100
		}

		recs = append(recs, Recommendation{
			PackageID:  p.ID,
			MatchScore: score,
			Reasoning:  strings.Join(reasons, ". ") + ".",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].MatchScore > recs[j].MatchScore })
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
