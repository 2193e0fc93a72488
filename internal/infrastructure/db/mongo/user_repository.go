package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/auditsafe/audit-insights/internal/core/domain"
)

const userCollection = "users"

// MongoUserRepository persists user records in the users collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique index on email. Call once at startup;
// the index is the cross-request duplicate-registration invariant.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	FirstName    string             `bson:"first_name,omitempty"`
	LastName     string             `bson:"last_name,omitempty"`
	Profession   string             `bson:"profession,omitempty"`
	PhoneNumber  string             `bson:"phone_number,omitempty"`
	Address      string             `bson:"address,omitempty"`
	City         string             `bson:"city,omitempty"`
	Country      string             `bson:"country,omitempty"`
	Company      string             `bson:"company,omitempty"`
	Position     string             `bson:"position,omitempty"`
	Bio          string             `bson:"bio,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	return r.FindByEmail(ctx, user.Email)
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(&mu), nil
}

// UpdateProfile overwrites the profile fields of the record keyed by email and
// returns the updated document. It never inserts: a missing record is
// ErrUserNotFound.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, email string, p domain.Profile) (*domain.User, error) {
	update := bson.M{"$set": bson.M{
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"profession":   p.Profession,
		"phone_number": p.PhoneNumber,
		"address":      p.Address,
		"city":         p.City,
		"country":      p.Country,
		"company":      p.Company,
		"position":     p.Position,
		"bio":          p.Bio,
		"updated_at":   time.Now().UTC().Unix(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoUser
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return toDomainUser(&mu), nil
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.Profile.FirstName,
		LastName:     u.Profile.LastName,
		Profession:   u.Profile.Profession,
		PhoneNumber:  u.Profile.PhoneNumber,
		Address:      u.Profile.Address,
		City:         u.Profile.City,
		Country:      u.Profile.Country,
		Company:      u.Profile.Company,
		Position:     u.Profile.Position,
		Bio:          u.Profile.Bio,
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func toDomainUser(mu *mongoUser) *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Profile: domain.Profile{
			FirstName:   mu.FirstName,
			LastName:    mu.LastName,
			Profession:  mu.Profession,
			PhoneNumber: mu.PhoneNumber,
			Address:     mu.Address,
			City:        mu.City,
			Country:     mu.Country,
			Company:     mu.Company,
			Position:    mu.Position,
			Bio:         mu.Bio,
		},
		CreatedAt: unixToTime(mu.CreatedAt),
		UpdatedAt: unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
