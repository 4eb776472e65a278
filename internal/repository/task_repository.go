package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"forcefocus/api/internal/models"
)

type TaskRepository struct {
	db *mongo.Database
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) col() *mongo.Collection {
	return r.db.Collection("tasks")
}

type TaskInput struct {
	Name             string
	Description      *string
	DueDate          *time.Time
	LinkedSessionID  *string
	TargetExecutable *string
	TargetArguments  []string
}

func (r *TaskRepository) Create(ctx context.Context, userID string, in TaskInput) (models.Task, error) {
	task := models.Task{
		ID:               bson.NewObjectID(),
		UserID:           userID,
		Name:             in.Name,
		Description:      in.Description,
		CreatedAt:        time.Now().UTC(),
		DueDate:          in.DueDate,
		Status:           models.TaskStatusPending,
		LinkedSessionID:  in.LinkedSessionID,
		TargetExecutable: in.TargetExecutable,
		TargetArguments:  in.TargetArguments,
	}

	if _, err := r.col().InsertOne(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string) ([]models.Task, error) {
	cursor, err := r.col().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, callerID string, taskID string) (models.Task, error) {
	task, _, err := r.fetchOwned(ctx, callerID, taskID)
	return task, err
}

// TaskPatch is a sparse update; only non-nil fields overwrite.
type TaskPatch struct {
	Name             *string
	Description      *string
	DueDate          *time.Time
	Status           *string
	LinkedSessionID  *string
	TargetExecutable *string
	TargetArguments  []string
}

func (r *TaskRepository) Update(ctx context.Context, callerID string, taskID string, patch TaskPatch) (models.Task, error) {
	existing, filter, err := r.fetchOwned(ctx, callerID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	set := buildTaskUpdate(patch)
	if len(set) == 0 {
		return existing, nil
	}

	if _, err := r.col().UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
		return models.Task{}, err
	}

	var updated models.Task
	if err := r.col().FindOne(ctx, filter).Decode(&updated); err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, callerID string, taskID string) error {
	_, filter, err := r.fetchOwned(ctx, callerID, taskID)
	if err != nil {
		return err
	}

	res, err := r.col().DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepository) fetchOwned(ctx context.Context, callerID string, taskID string) (models.Task, bson.M, error) {
	filter, err := ResolveIdentifier(taskID).NativeFilter()
	if err != nil {
		return models.Task{}, nil, err
	}

	var task models.Task
	if err := r.col().FindOne(ctx, filter).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, nil, ErrNotFound
		}
		return models.Task{}, nil, err
	}

	if err := requireOwner(task, callerID); err != nil {
		return models.Task{}, nil, err
	}
	return task, filter, nil
}

func buildTaskUpdate(patch TaskPatch) bson.M {
	set := bson.M{}

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		set["due_date"] = patch.DueDate.UTC()
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.LinkedSessionID != nil {
		set["linked_session_id"] = *patch.LinkedSessionID
	}
	if patch.TargetExecutable != nil {
		set["target_executable"] = *patch.TargetExecutable
	}
	if patch.TargetArguments != nil {
		set["target_arguments"] = patch.TargetArguments
	}

	return set
}
