package database

import (
	"context"
	"strings"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertUser stores a new user. A taken email yields icebreaker.ErrConflict.
func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	user.Email = normalizeEmail(user.Email)
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.Collection(UsersCollection).InsertOne(ctx, user)
	return wrap("insert user", err)
}

func (s *Store) FindUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.findUser(ctx, bson.M{"_id": userID})
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": normalizeEmail(email)})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user models.User
	if err := s.Collection(UsersCollection).FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, wrap("find user", err)
	}
	return &user, nil
}

// SetUserInterests mirrors interests onto the global profile.
func (s *Store) SetUserInterests(ctx context.Context, userID primitive.ObjectID, interests []string) error {
	return s.updateUser(ctx, "set user interests", userID, bson.M{"interests": interests, "updatedAt": nowMillis()})
}

// SetLastSession bookmarks the session the user most recently joined.
func (s *Store) SetLastSession(ctx context.Context, userID primitive.ObjectID, last models.LastSession) error {
	return s.updateUser(ctx, "set last session", userID, bson.M{"lastSession": last})
}

func (s *Store) updateUser(ctx context.Context, op string, userID primitive.ObjectID, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.Collection(UsersCollection).UpdateByID(ctx, userID, bson.M{"$set": set})
	if err != nil {
		return wrap(op, err)
	}
	if res.MatchedCount == 0 {
		return wrap(op, mongo.ErrNoDocuments)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
