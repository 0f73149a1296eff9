package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stagedeck/internal/lib/logger/sl"
	"stagedeck/internal/models"
)

var (
	ErrUnconfigured = errors.New("ai service is not configured")

	// ErrGenerationFailed means the remote call failed and the
	// capability has no local fallback.
	ErrGenerationFailed = errors.New("description generation failed")
)

const maxRecommendations = 3

// Generator produces free text for a prompt. Satisfied by GeminiClient.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Sentiment struct {
	Label string  `json:"sentiment"`
	Score float64 `json:"score"`
}

// Adapter wraps the generative service with per-capability fallbacks.
// Remote output is free text and any structure scraped out of it is
// advisory: every capability except description generation degrades to
// a deterministic local heuristic on remote failure.
type Adapter struct {
	gen Generator
	log *slog.Logger
}

func NewAdapter(gen Generator, log *slog.Logger) *Adapter {
	return &Adapter{gen: gen, log: log}
}

// GenerateDescription has no fallback: a remote failure is fatal to the
// one request that needed it.
func (a *Adapter) GenerateDescription(ctx context.Context, keywords []string) (string, error) {
	prompt := fmt.Sprintf(
		"Write an engaging two-paragraph description for a college event based on these keywords: %s. Plain text only.",
		strings.Join(keywords, ", "),
	)

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrUnconfigured) {
			return "", ErrUnconfigured
		}
		a.log.Error("description generation failed", sl.Err(err))
		return "", ErrGenerationFailed
	}

	return strings.TrimSpace(text), nil
}

// AnalyzeSentiment asks the model to score the comment and scrapes the
// first JSON object out of its reply. Remote or parse failure falls
// back to a rating-derived heuristic.
func (a *Adapter) AnalyzeSentiment(ctx context.Context, text string, rating int) Sentiment {
	prompt := fmt.Sprintf(
		`Classify the sentiment of this event feedback (rating %d/5): %q. Reply with a JSON object {"sentiment": "positive"|"neutral"|"negative", "score": number in [-1, 1]}.`,
		rating, text,
	)

	reply, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.Warn("sentiment analysis fell back to heuristic", sl.Err(err))
		return fallbackSentiment(rating)
	}

	obj, ok := extractJSON(reply)
	if !ok {
		a.log.Warn("sentiment reply had no parsable JSON, using heuristic")
		return fallbackSentiment(rating)
	}

	var s Sentiment
	if err := json.Unmarshal([]byte(obj), &s); err != nil || s.Label == "" {
		a.log.Warn("sentiment JSON did not match expected shape, using heuristic")
		return fallbackSentiment(rating)
	}

	return s
}

// RankRecommendations re-ranks candidate events for a user. On remote
// failure it returns the first three candidates in input order.
func (a *Adapter) RankRecommendations(ctx context.Context, interests []string, history []string, candidates []models.Event) []models.Event {
	if len(candidates) == 0 {
		return nil
	}

	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = fmt.Sprintf("%d: %s (%s)", i, c.Title, c.Category)
	}

	prompt := fmt.Sprintf(
		"A student is interested in %s and previously attended %s. Rank these events by relevance and reply with a JSON object {\"order\": [indices]}:\n%s",
		strings.Join(interests, ", "), strings.Join(history, ", "), strings.Join(titles, "\n"),
	)

	reply, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.Warn("recommendation ranking fell back to input order", sl.Err(err))
		return fallbackRecommendations(candidates)
	}

	obj, ok := extractJSON(reply)
	if !ok {
		return fallbackRecommendations(candidates)
	}

	var ranked struct {
		Order []int `json:"order"`
	}
	if err := json.Unmarshal([]byte(obj), &ranked); err != nil {
		return fallbackRecommendations(candidates)
	}

	var result []models.Event
	seen := make(map[int]bool)
	for _, idx := range ranked.Order {
		if idx < 0 || idx >= len(candidates) || seen[idx] {
			continue
		}
		seen[idx] = true
		result = append(result, candidates[idx])
		if len(result) == maxRecommendations {
			break
		}
	}

	if len(result) == 0 {
		return fallbackRecommendations(candidates)
	}

	return result
}

const chatFallbackReply = "Sorry, I can't help with that right now. Please try again in a moment."

// Chat answers a free-form question about events. It never errors:
// remote failure produces a canned reply.
func (a *Adapter) Chat(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(
		"You are the assistant for a college event platform. Answer briefly and helpfully.\nUser: %s",
		message,
	)

	reply, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.Warn("chat fell back to canned reply", sl.Err(err))
		return chatFallbackReply
	}

	return strings.TrimSpace(reply)
}

func fallbackSentiment(rating int) Sentiment {
	label := "negative"
	switch {
	case rating >= 4:
		label = "positive"
	case rating >= 3:
		label = "neutral"
	}

	return Sentiment{
		Label: label,
		Score: float64(rating-3) / 2,
	}
}

func fallbackRecommendations(candidates []models.Event) []models.Event {
	n := len(candidates)
	if n > maxRecommendations {
		n = maxRecommendations
	}

	return candidates[:n]
}

// extractJSON returns the first balanced {...} object in free text.
// Braces inside string literals are honored so prose around the object
// does not break the match.
func extractJSON(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate, true
				}
				return "", false
			}
		}
	}

	return "", false
}
