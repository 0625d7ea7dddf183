package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository on the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	Age          int       `bson:"age"`
	PasswordHash string    `bson:"password_hash"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"email": email.String()}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return n > 0, nil
}

// Save upserts the user by id. The unique email index turns a concurrent
// duplicate into domain.AlreadyExists.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDocument(user)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.AlreadyExists(user.Email())
		}
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}
	return toDomain(doc)
}

func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user, err := toDomain(doc)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureIndexes creates the unique email index that backs the create-time
// uniqueness check.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	return err
}

// toDocument truncates timestamps to the millisecond precision BSON dates keep,
// so a saved user equals the one read back.
func toDocument(u domain.User) userDocument {
	return userDocument{
		ID:           u.ID().String(),
		Email:        u.Email().String(),
		Age:          u.Age().Int(),
		PasswordHash: u.PasswordHash().Value(),
		FirstName:    u.FirstName().String(),
		LastName:     u.LastName().String(),
		CreatedAt:    u.CreatedAt().UTC().Truncate(time.Millisecond),
		UpdatedAt:    u.UpdatedAt().UTC().Truncate(time.Millisecond),
	}
}

// toDomain revalidates a stored document. A document that no longer satisfies
// the value type rules is reported as a storage fault, not as invalid input.
func toDomain(doc userDocument) (domain.User, error) {
	id, err := domain.NewUserID(doc.ID)
	if err != nil {
		return domain.User{}, corrupt(doc.ID, err)
	}
	firstName, err := domain.NewName(doc.FirstName)
	if err != nil {
		return domain.User{}, corrupt(doc.ID, err)
	}
	lastName, err := domain.NewName(doc.LastName)
	if err != nil {
		return domain.User{}, corrupt(doc.ID, err)
	}
	email, err := domain.NewEmail(doc.Email)
	if err != nil {
		return domain.User{}, corrupt(doc.ID, err)
	}
	age, err := domain.NewAge(doc.Age)
	if err != nil {
		return domain.User{}, corrupt(doc.ID, err)
	}
	hash, err := domain.NewPasswordHash(doc.PasswordHash)
	if err != nil {
		return domain.User{}, corrupt(doc.ID, err)
	}

	return domain.RestoreUser(id, firstName, lastName, email, age, hash, doc.CreatedAt.UTC(), doc.UpdatedAt.UTC()), nil
}

func corrupt(id string, err error) error {
	return fmt.Errorf("stored user %q is invalid: %v", id, err)
}

var _ ports.UserRepository = (*UserRepository)(nil)
