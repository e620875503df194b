package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deenanswers/qa-system/internal/core/domain"
)

const collectionQuestions = "questions"

type QuestionRepository struct {
	col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{col: db.Collection(collectionQuestions)}
}

// questionDoc is the storage representation. Status and source stay
// omitempty so documents written before those fields existed keep
// round-tripping unchanged until a backfill sweep heals them.
type questionDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Question        string             `bson:"question"`
	Answer          string             `bson:"answer"`
	Category        string             `bson:"category"`
	Tags            []string           `bson:"tags"`
	Views           int64              `bson:"views"`
	Helpful         int64              `bson:"helpful"`
	CreatedAt       int64              `bson:"created_at"`
	UserID          string             `bson:"user_id,omitempty"`
	Status          string             `bson:"status,omitempty"`
	Source          string             `bson:"source,omitempty"`
	AnsweredBy      string             `bson:"answered_by,omitempty"`
	AnsweredAt      int64              `bson:"answered_at,omitempty"`
	RejectionReason string             `bson:"rejection_reason,omitempty"`
}

func toQuestionDoc(q *domain.Question) questionDoc {
	doc := questionDoc{
		Question:        q.Question,
		Answer:          q.Answer,
		Category:        q.Category,
		Tags:            q.Tags,
		Views:           q.Views,
		Helpful:         q.Helpful,
		CreatedAt:       q.CreatedAt,
		UserID:          q.UserID,
		Status:          string(q.Status),
		Source:          string(q.Source),
		AnsweredBy:      q.AnsweredBy,
		AnsweredAt:      q.AnsweredAt,
		RejectionReason: q.RejectionReason,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	return doc
}

func (d *questionDoc) toDomain() *domain.Question {
	return &domain.Question{
		ID:              d.ID.Hex(),
		Question:        d.Question,
		Answer:          d.Answer,
		Category:        d.Category,
		Tags:            d.Tags,
		Views:           d.Views,
		Helpful:         d.Helpful,
		CreatedAt:       d.CreatedAt,
		UserID:          d.UserID,
		Status:          domain.QuestionStatus(d.Status),
		Source:          domain.QuestionSource(d.Source),
		AnsweredBy:      d.AnsweredBy,
		AnsweredAt:      d.AnsweredAt,
		RejectionReason: d.RejectionReason,
	}
}

func (r *QuestionRepository) Insert(ctx context.Context, q *domain.Question) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toQuestionDoc(q))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrQuestionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc questionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]*domain.Question, error) {
	return r.find(ctx, bson.M{})
}

func (r *QuestionRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Question, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *QuestionRepository) FindByStatus(ctx context.Context, status domain.QuestionStatus) ([]*domain.Question, error) {
	return r.find(ctx, bson.M{"status": string(status)})
}

func (r *QuestionRepository) find(ctx context.Context, filter bson.M) ([]*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []questionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	questions := make([]*domain.Question, 0, len(docs))
	for i := range docs {
		questions = append(questions, docs[i].toDomain())
	}
	return questions, nil
}

func (r *QuestionRepository) Update(ctx context.Context, q *domain.Question) error {
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toQuestionDoc(q))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrQuestionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) IncrementViews(ctx context.Context, id string) (bool, error) {
	return r.increment(ctx, id, "views")
}

func (r *QuestionRepository) IncrementHelpful(ctx context.Context, id string) (bool, error) {
	return r.increment(ctx, id, "helpful")
}

// increment applies an atomic $inc of one. An unresolvable id matches
// nothing and reports false without error.
func (r *QuestionRepository) increment(ctx context.Context, id, field string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// EnsureIndexes creates the secondary indexes backing the listing and
// triage lookups.
func (r *QuestionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "views", Value: 1}}},
		{Keys: bson.D{{Key: "helpful", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
