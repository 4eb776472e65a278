package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"forcefocus/api/internal/models"
)

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) col() *mongo.Collection {
	return r.db.Collection("users")
}

// GetByID tolerates both historical _id representations via the lenient
// identifier filter; malformed input degrades to a string match instead of
// erroring.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := r.col().FindOne(ctx, ResolveIdentifier(userID).Filter()).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	var user models.User
	err := r.col().FindOne(ctx, bson.M{"google_id": googleID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// EnsureUser resolves an external identity to a user record: created on the
// first successful login for a google subject id, last_login_at bumped on
// every one after that. Called by the auth layer, which sits upstream.
func (r *UserRepository) EnsureUser(ctx context.Context, email string, googleID string) (models.User, error) {
	user, err := r.GetByGoogleID(ctx, googleID)
	if err == nil {
		return r.UpdateLastLogin(ctx, user.IDString())
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	user = newUserDoc(email, googleID, time.Now().UTC())

	if _, err := r.col().InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID string) (models.User, error) {
	return r.applyUpdate(ctx, userID, bson.M{
		"$set": bson.M{"last_login_at": time.Now().UTC()},
	})
}

// UpdateSettings merges the patch into the stored settings map key by key;
// keys absent from the patch are untouched. An empty patch reads back the
// record without writing.
func (r *UserRepository) UpdateSettings(ctx context.Context, userID string, settings map[string]any) (models.User, error) {
	if len(settings) == 0 {
		return r.GetByID(ctx, userID)
	}
	return r.applyUpdate(ctx, userID, bson.M{"$set": settingsSetDoc(settings)})
}

func (r *UserRepository) AddFCMToken(ctx context.Context, userID string, token string) (models.User, error) {
	return r.applyUpdate(ctx, userID, bson.M{
		"$addToSet": bson.M{"fcm_tokens": token},
	})
}

// RemoveFCMToken removes one named token; a nil token clears the whole set.
// The wildcard clear is part of the public contract and kept deliberately.
func (r *UserRepository) RemoveFCMToken(ctx context.Context, userID string, token *string) (models.User, error) {
	return r.applyUpdate(ctx, userID, fcmTokenRemoval(token))
}

func (r *UserRepository) AddBlockedApp(ctx context.Context, userID string, appName string) (models.User, error) {
	return r.applyUpdate(ctx, userID, bson.M{
		"$addToSet": bson.M{"blocked_apps": appName},
	})
}

func (r *UserRepository) RemoveBlockedApp(ctx context.Context, userID string, appName string) (models.User, error) {
	return r.applyUpdate(ctx, userID, bson.M{
		"$pull": bson.M{"blocked_apps": appName},
	})
}

func (r *UserRepository) applyUpdate(ctx context.Context, userID string, update bson.M) (models.User, error) {
	res, err := r.col().UpdateOne(ctx, ResolveIdentifier(userID).Filter(), update)
	if err != nil {
		return models.User{}, err
	}
	if res.MatchedCount == 0 {
		return models.User{}, ErrNotFound
	}
	return r.GetByID(ctx, userID)
}

// settingsSetDoc prefixes each patch key so the update merges into the
// stored map instead of replacing it.
func settingsSetDoc(settings map[string]any) bson.M {
	set := bson.M{}
	for k, v := range settings {
		set["settings."+k] = v
	}
	return set
}

// fcmTokenRemoval distinguishes the named removal ($pull, a no-op when the
// token is absent) from the wildcard clear that empties the set.
func fcmTokenRemoval(token *string) bson.M {
	if token == nil {
		return bson.M{"$set": bson.M{"fcm_tokens": []string{}}}
	}
	return bson.M{"$pull": bson.M{"fcm_tokens": *token}}
}

// newUserDoc is the first-login record. Collections start empty rather than
// nil so the set operators behave from the very first update.
func newUserDoc(email string, googleID string, now time.Time) models.User {
	return models.User{
		ID:          bson.NewObjectID(),
		Email:       email,
		GoogleID:    googleID,
		CreatedAt:   now,
		LastLoginAt: &now,
		Settings:    map[string]any{},
		FCMTokens:   []string{},
		BlockedApps: []string{},
	}
}
