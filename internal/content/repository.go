package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository[T any] interface {
	Insert(ctx context.Context, item T) error
	FindByID(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, set bson.M) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int64) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

// MongoRepository is the one persistence pattern shared by every entity kind:
// a single collection, a stable default sort, offset pagination and a separate
// full-collection count.
type MongoRepository[T any] struct {
	col  *mongo.Collection
	sort bson.D
}

func NewMongoRepository[T any](col *mongo.Collection, sort bson.D) *MongoRepository[T] {
	return &MongoRepository[T]{col: col, sort: sort}
}

func (r *MongoRepository[T]) Insert(ctx context.Context, item T) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository[T]) FindByID(ctx context.Context, id string) (T, error) {
	var item T
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (r *MongoRepository[T]) Update(ctx context.Context, id string, set bson.M) (T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated T
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r *MongoRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository[T]) List(ctx context.Context, limit, offset int64) ([]T, error) {
	opts := options.Find().
		SetSort(r.sort).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository[T]) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
