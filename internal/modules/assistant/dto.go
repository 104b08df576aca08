package assistant

import "travelgoals/internal/domain"

type ChatRequestBody struct {
	Message string        `json:"message" validate:"required"`
	History []HistoryItem `json:"history"`
}

type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResult struct {
	Reply        string   `json:"reply"`
	QuickReplies []string `json:"quick_replies"`
	Degraded     bool     `json:"degraded,omitempty"`
}

type DescribeRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
	Type    string `json:"type"` // destination | package
	Context string `json:"context"`
}

// BookingIntent is what the model extracts from a free-text travel query.
type BookingIntent struct {
	DestinationType string   `json:"destination_type"`
	DestinationName string   `json:"destination_name"`
	DurationDays    *int     `json:"duration_days,omitempty"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	Infants         int      `json:"infants"`
	MaxBudget       *float64 `json:"max_budget,omitempty"`
	PreferredMonth  string   `json:"preferred_month,omitempty"`
	Interests       []string `json:"interests,omitempty"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// RecommendRequest carries the traveler's stated preferences. Zero values
// mean "no preference"; MaxBudget defaults to 5000 when omitted so the
// model always sees a bounded range.
type RecommendRequest struct {
	MinBudget float64  `json:"min_budget"`
	MaxBudget *float64 `json:"max_budget,omitempty"`
	Interests []string `json:"interests"`
	Month     string   `json:"month"`
	Duration  *int     `json:"duration,omitempty"`
	Travelers int      `json:"travelers"`
}

// Recommendation is one ranked pick out of the live catalog.
type Recommendation struct {
	PackageID  int64  `json:"package_id"`
	MatchScore int    `json:"match_score"`
	Reasoning  string `json:"reasoning"`
}

type SearchResult struct {
	Summary  string           `json:"summary"`
	Intent   *BookingIntent   `json:"intent,omitempty"`
	Packages []domain.Package `json:"packages"`
}
