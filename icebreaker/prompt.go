package icebreaker

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"

	"icebreaker/backend/models"

	"github.com/cespare/xxhash/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CandidateLimit is how many catalog prompts are considered per category.
const CandidateLimit = 10

const (
	defaultPromptTitle = "Ice-breaker prompt"
	defaultPromptText  = "Share something about your interests!"
	storedPromptText   = "Share something about yourself or your interests!"

	noCategoryText = "Something went wrong. Feel free to chat about your interests!"
	noPromptsText  = "No prompt found for this category. Feel free to chat about your interests!"
	loadFailedText = "Failed to load the prompt. Please try refreshing the page."
)

// Prompt is what participants see in the prompt panel.
type Prompt struct {
	ActivityID primitive.ObjectID `json:"activityId,omitempty"`
	Category   string             `json:"category,omitempty"`
	Title      string             `json:"title"`
	Text       string             `json:"prompt"`
	// Tag is the label shown next to the session title.
	Tag string `json:"tag,omitempty"`
	// Fallback marks a generic prompt that was not stored on the session.
	Fallback bool `json:"fallback"`
}

func fallbackPrompt(text, tag string) Prompt {
	return Prompt{Title: defaultPromptTitle, Text: text, Tag: tag, Fallback: true}
}

func storedPrompt(sess *models.Session) Prompt {
	p := Prompt{
		ActivityID: sess.ActivityID,
		Category:   sess.ActivityCategory,
		Title:      sess.ActivityTitle,
		Text:       sess.ActivityPrompt,
		Tag:        sess.FirstTag(),
	}
	if p.Title == "" {
		p.Title = defaultPromptTitle
	}
	if p.Text == "" {
		p.Text = storedPromptText
	}
	return p
}

// CategoryMatch is an interest label that maps to a catalog category.
type CategoryMatch struct {
	Category string
	Label    string
}

var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"gaming", models.CategoryGaming},
	{"tech", models.CategoryTech},
	{"code", models.CategoryTech},
	{"travel", models.CategoryTraveling},
}

// CategoryOf maps a label to a category by keyword, case-insensitively.
func CategoryOf(label string) (string, bool) {
	folded := foldCase(label)
	for _, k := range categoryKeywords {
		if strings.Contains(folded, k.keyword) {
			return k.category, true
		}
	}
	return "", false
}

// MatchInterests returns a match for every category an interest's keywords
// map to, in interest order then keyword order. An interest naming two
// categories yields two matches.
func MatchInterests(interests []string) []CategoryMatch {
	var matches []CategoryMatch
	for _, in := range interests {
		label := strings.TrimSpace(in)
		folded := foldCase(label)
		seen := make(map[string]bool, len(categoryKeywords))
		for _, k := range categoryKeywords {
			if seen[k.category] || !strings.Contains(folded, k.keyword) {
				continue
			}
			seen[k.category] = true
			matches = append(matches, CategoryMatch{Category: k.category, Label: label})
		}
	}
	return matches
}

// CandidateIndex picks the same index for the same (session, category) on
// every call and in every process.
func CandidateIndex(sessionID primitive.ObjectID, category string, n int) int {
	if n <= 0 {
		return 0
	}
	h := xxhash.Sum64String(sessionID.Hex() + ":" + category)
	return int(h % uint64(n))
}

// ChooseCandidate orders candidates by id and returns the one at
// CandidateIndex. It does not modify candidates.
func ChooseCandidate(sessionID primitive.ObjectID, category string, candidates []models.Activity) models.Activity {
	sorted := make([]models.Activity, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.Hex() < sorted[j].ID.Hex()
	})
	return sorted[CandidateIndex(sessionID, category, len(sorted))]
}

// interestSource resolves a member's interests for a channel.
type interestSource interface {
	Interests(ctx context.Context, channelID, userID primitive.ObjectID) ([]string, error)
}

// PromptSelector assigns one shared prompt to a session.
type PromptSelector struct {
	sessions  SessionStore
	notifier  *Sessions
	interests interestSource
	catalog   ActivityCatalog
	log       *zap.Logger
	pick      func(n int) int
}

// PromptOption customizes a PromptSelector.
type PromptOption func(*PromptSelector)

// WithPicker replaces the uniform random choice among matching interests.
func WithPicker(pick func(n int) int) PromptOption {
	return func(p *PromptSelector) { p.pick = pick }
}

func NewPromptSelector(store SessionStore, sessions *Sessions, membership *Membership, catalog ActivityCatalog, logger *zap.Logger, opts ...PromptOption) *PromptSelector {
	p := &PromptSelector{
		sessions:  store,
		notifier:  sessions,
		interests: membership,
		catalog:   catalog,
		log:       logger.Named("prompts"),
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Select returns the session's prompt, choosing and storing one when the
// session has none yet. It never fails: store errors degrade to a generic
// prompt and are logged.
func (p *PromptSelector) Select(ctx context.Context, channelID, sessionID, userID primitive.ObjectID) Prompt {
	log := p.log.With(zap.String("channelId", channelID.Hex()), zap.String("sessionId", sessionID.Hex()))

	sess, err := p.sessions.FindSession(ctx, channelID, sessionID)
	if err != nil {
		log.Warn("load session for prompt", zap.Error(err))
		return fallbackPrompt(loadFailedText, "")
	}
	if sess.HasActivity() {
		return storedPrompt(sess)
	}

	var match CategoryMatch
	if tag := sess.FirstTag(); tag != "" {
		match.Label = tag
		match.Category, _ = CategoryOf(tag)
	} else {
		interests, err := p.interests.Interests(ctx, channelID, userID)
		if err != nil {
			log.Warn("load interests for prompt", zap.Error(err))
			return fallbackPrompt(loadFailedText, "")
		}
		if matches := MatchInterests(interests); len(matches) > 0 {
			match = matches[p.pick(len(matches))]
		}
		if match.Label != "" {
			p.claimTags(ctx, log, sess, match.Label)
		}
	}

	if match.Category == "" {
		log.Info("no matching category")
		return fallbackPrompt(noCategoryText, match.Label)
	}

	candidates, err := p.catalog.FindActivities(ctx, match.Category, CandidateLimit)
	if err != nil {
		log.Warn("load catalog", zap.String("category", match.Category), zap.Error(err))
		return fallbackPrompt(loadFailedText, match.Label)
	}
	if len(candidates) == 0 {
		log.Info("no prompts for category", zap.String("category", match.Category))
		return fallbackPrompt(noPromptsText, match.Label)
	}

	chosen := ChooseCandidate(sessionID, match.Category, candidates)
	assignment := models.ActivityAssignment{
		ActivityID: chosen.ID,
		Category:   match.Category,
		Title:      chosen.Title,
		Prompt:     chosen.Prompt,
	}
	if assignment.Title == "" {
		assignment.Title = defaultPromptTitle
	}
	if assignment.Prompt == "" {
		assignment.Prompt = defaultPromptText
	}

	won, err := p.sessions.ClaimActivity(ctx, channelID, sessionID, assignment)
	if err != nil {
		log.Warn("store prompt", zap.Error(err))
		return fallbackPrompt(loadFailedText, match.Label)
	}
	if !won {
		// Someone else stored a prompt first; show theirs.
		winner, err := p.sessions.FindSession(ctx, channelID, sessionID)
		if err == nil && winner.HasActivity() {
			return storedPrompt(winner)
		}
		if err != nil {
			log.Warn("reload session after lost claim", zap.Error(err))
		}
	} else {
		p.notifier.Touch(ctx, channelID, sessionID)
	}

	return Prompt{
		ActivityID: assignment.ActivityID,
		Category:   assignment.Category,
		Title:      assignment.Title,
		Text:       assignment.Prompt,
		Tag:        match.Label,
	}
}

func (p *PromptSelector) claimTags(ctx context.Context, log *zap.Logger, sess *models.Session, label string) {
	won, err := p.sessions.ClaimTags(ctx, sess.ChannelID, sess.ID, []string{label})
	if err != nil {
		log.Warn("store session tags", zap.Error(err))
		return
	}
	if won {
		p.notifier.Touch(ctx, sess.ChannelID, sess.ID)
	}
}
