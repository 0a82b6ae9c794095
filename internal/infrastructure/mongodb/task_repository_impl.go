package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/repository"
)

type taskDoc struct {
	TaskID      string    `bson:"task_id"`
	UserID      string    `bson:"user_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Completed   bool      `bson:"completed"`
	DueDate     time.Time `bson:"due_date"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d taskDoc) toEntity() entity.Task {
	return entity.Task{
		ID:          d.TaskID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		DueDate:     d.DueDate,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database, coll string) *TaskRepository {
	return &TaskRepository{coll: db.Collection(coll)}
}

// EnsureIndexes creates the compound index used by every per-user query.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "task_id", Value: 1}},
	})
	return err
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	doc := taskDoc{
		TaskID:      t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	var doc taskDoc
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "task_id": taskID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t := doc.toEntity()
	return &t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]entity.Task, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	tasks := make([]entity.Task, 0)
	for cur.Next(ctx) {
		var doc taskDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": t.UserID, "task_id": t.ID},
		bson.M{"$set": bson.M{
			"title":       t.Title,
			"description": t.Description,
			"completed":   t.Completed,
			"due_date":    t.DueDate,
			"updated_at":  t.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "task_id": taskID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
