package database

import (
	"context"
	"fmt"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DefaultActivities is the starter prompt catalog.
var DefaultActivities = []models.Activity{
	{Category: models.CategoryGaming, Title: "Desert island game", Prompt: "You can only play one game for the rest of your life. Which one, and why?"},
	{Category: models.CategoryGaming, Title: "First console", Prompt: "What was the first game you remember playing, and who did you play it with?"},
	{Category: models.CategoryGaming, Title: "Boss fight", Prompt: "Describe the hardest boss or level you ever beat. How many tries did it take?"},
	{Category: models.CategoryGaming, Title: "Co-op squad", Prompt: "Pick three people from this chat for a co-op run. Which game and what roles?"},
	{Category: models.CategoryTech, Title: "Side project", Prompt: "What is something you built (or want to build) just for fun?"},
	{Category: models.CategoryTech, Title: "Hot take", Prompt: "Share your most controversial tech opinion: tabs or spaces, light or dark mode, anything goes."},
	{Category: models.CategoryTech, Title: "First bug", Prompt: "What is the strangest bug you have ever chased down?"},
	{Category: models.CategoryTech, Title: "Gadget drawer", Prompt: "Which gadget do you use every day, and which one gathers dust?"},
	{Category: models.CategoryTraveling, Title: "Next stamp", Prompt: "If you could fly anywhere tomorrow, where would you go first?"},
	{Category: models.CategoryTraveling, Title: "Street food", Prompt: "What is the best thing you have eaten while travelling?"},
	{Category: models.CategoryTraveling, Title: "Lost in transit", Prompt: "Tell us about a trip where things did not go to plan."},
	{Category: models.CategoryTraveling, Title: "Hidden gem", Prompt: "Recommend one place most people have never heard of."},
}

// FindActivities returns up to limit catalog prompts of a category, ordered by id.
func (s *Store) FindActivities(ctx context.Context, category string, limit int) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(int64(limit))
	cursor, err := s.Collection(ActivitiesCollection).Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, wrap("find activities", err)
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, wrap("decode activities", err)
	}
	return activities, nil
}

// SeedActivities inserts the given prompts for every category that has no
// prompts yet. It returns how many were inserted.
func (s *Store) SeedActivities(ctx context.Context, activities []models.Activity) (int, error) {
	byCategory := make(map[string][]any)
	var order []string
	for _, a := range activities {
		if _, ok := byCategory[a.Category]; !ok {
			order = append(order, a.Category)
		}
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}

	inserted := 0
	for _, category := range order {
		n, err := s.seedCategory(ctx, category, byCategory[category])
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	if inserted > 0 {
		s.log.Info("seeded activity catalog", zap.Int("count", inserted))
	}
	return inserted, nil
}

func (s *Store) seedCategory(ctx context.Context, category string, docs []any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	coll := s.Collection(ActivitiesCollection)
	existing, err := coll.CountDocuments(ctx, bson.M{"category": category}, options.Count().SetLimit(1))
	if err != nil {
		return 0, wrap("count activities", err)
	}
	if existing > 0 {
		return 0, nil
	}
	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, wrap(fmt.Sprintf("seed %s activities", category), err)
	}
	return len(res.InsertedIDs), nil
}
