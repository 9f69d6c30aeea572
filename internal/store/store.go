package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Foysalhossain/musicy-server/internal/models"
)

// Driver-style results exposed to clients so that zero-effect updates and
// deletes surface their counts instead of failing.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Store is the process-wide handle to the three record collections. It is
// built once at startup and shared by every handler.
type Store struct {
	users       *mongo.Collection
	classes     *mongo.Collection
	enrollments *mongo.Collection
	timeout     time.Duration
}

func New(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		users:       db.Collection("users"),
		classes:     db.Collection("classes"),
		enrollments: db.Collection("userClasses"),
		timeout:     5 * time.Second,
	}
}

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) ListInstructors(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	cursor, err := s.users.Find(ctx, bson.M{"role": models.RoleInstructor})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByEmail returns (nil, nil) when no user has the given email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (*InsertResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (s *Store) SetUserRole(ctx context.Context, id primitive.ObjectID, role models.UserRole, updated time.Time) (*UpdateResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"role":    role,
			"updated": updated,
		},
	}
	result, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// ListClasses returns every class, most-enrolled first. Ties keep the
// store's natural order.
func (s *Store) ListClasses(ctx context.Context) ([]models.Class, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "students", Value: -1}})
	cursor, err := s.classes.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *Store) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (*InsertResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.enrollments.InsertOne(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: result.InsertedID}, nil
}

func (s *Store) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	cursor, err := s.enrollments.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *Store) ListEnrollmentsByEmail(ctx context.Context, email string, paid bool) ([]models.Enrollment, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	cursor, err := s.enrollments.Find(ctx, bson.M{"email": email, "paid": paid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// FindEnrollment returns (nil, nil) when no enrollment has the given id.
func (s *Store) FindEnrollment(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var enrollment models.Enrollment
	err := s.enrollments.FindOne(ctx, bson.M{"_id": id}).Decode(&enrollment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *Store) MarkEnrollmentPaid(ctx context.Context, id primitive.ObjectID, paid bool, transactionID, date string) (*UpdateResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"paid":          paid,
			"transactionId": transactionID,
			"date":          date,
		},
	}
	result, err := s.enrollments.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

func (s *Store) DeleteEnrollment(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.enrollments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: result.DeletedCount}, nil
}
