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

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
	"github.com/naratornb/leave-and-shift-project/internal/core/ports"
)

const shiftCollection = "shifts"

// ShiftRepository persists shifts. Start and end times are stored as the
// HH:mm strings the domain validates; the derived instants are computed on
// the way out, never stored.
type ShiftRepository struct {
	coll *mongo.Collection
}

func NewShiftRepository(db *mongo.Database) *ShiftRepository {
	return &ShiftRepository{coll: db.Collection(shiftCollection)}
}

type shiftDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Date          time.Time          `bson:"date"`
	StartTime     string             `bson:"start_time"`
	EndTime       string             `bson:"end_time"`
	RequiredStaff int                `bson:"required_staff"`
	Location      string             `bson:"location"`
	CreatedBy     string             `bson:"created_by"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toShiftDoc(s *domain.Shift) shiftDoc {
	return shiftDoc{
		Date:          s.Date,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		RequiredStaff: s.RequiredStaff,
		Location:      s.Location,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (d shiftDoc) toDomain() *domain.Shift {
	return &domain.Shift{
		ID:            d.ID.Hex(),
		Date:          d.Date.UTC(),
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		RequiredStaff: d.RequiredStaff,
		Location:      d.Location,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func (r *ShiftRepository) Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toShiftDoc(s))
	if err != nil {
		return nil, fmt.Errorf("insert shift: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*domain.Shift, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrShiftNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc shiftDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ShiftRepository) Update(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrShiftNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toShiftDoc(s))
	if err != nil {
		return nil, fmt.Errorf("update shift: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrShiftNotFound
	}
	return s, nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrShiftNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) List(ctx context.Context, filter ports.ListShiftsFilter) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	dateRange := bson.M{}
	if !filter.DateFrom.IsZero() {
		dateRange["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		dateRange["$lte"] = filter.DateTo
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start_time", Value: 1},
	}))
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer cur.Close(ctx)

	var shifts []*domain.Shift
	for cur.Next(ctx) {
		var doc shiftDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode shift: %w", err)
		}
		shifts = append(shifts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}

// EnsureIndexes creates the query indexes for the shifts collection.
func (r *ShiftRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
