package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("not found")

// Resource is the service layer for one entity kind, parameterized by the request
// payload and the stored entity. build maps a validated request to a new document,
// set maps it to the $set document applied on update (full replace of the
// validated fields, last write wins).
type Resource[Req any, Ent any] struct {
	Name  string // plural, used for routes, cache keys and log lines
	Kind  string // singular, used in error messages
	repo  Repository[Ent]
	loc   *time.Location
	build func(id string, req Req, now time.Time) Ent
	set   func(req Req, now time.Time) bson.M
}

func NewResource[Req any, Ent any](
	name, kind string,
	repo Repository[Ent],
	loc *time.Location,
	build func(id string, req Req, now time.Time) Ent,
	set func(req Req, now time.Time) bson.M,
) *Resource[Req, Ent] {
	return &Resource[Req, Ent]{
		Name:  name,
		Kind:  kind,
		repo:  repo,
		loc:   loc,
		build: build,
		set:   set,
	}
}

func (r *Resource[Req, Ent]) Create(ctx context.Context, req Req) (Ent, error) {
	now := time.Now().In(r.loc)
	item := r.build(primitive.NewObjectID().Hex(), req, now)
	if err := r.repo.Insert(ctx, item); err != nil {
		var zero Ent
		return zero, err
	}
	return item, nil
}

func (r *Resource[Req, Ent]) Get(ctx context.Context, id string) (Ent, error) {
	item, err := r.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		var zero Ent
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return item, nil
}

func (r *Resource[Req, Ent]) Update(ctx context.Context, id string, req Req) (Ent, error) {
	set := r.set(req, time.Now().In(r.loc))

	updated, err := r.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		var zero Ent
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return updated, nil
}

func (r *Resource[Req, Ent]) Delete(ctx context.Context, id string) error {
	deleted, err := r.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// List returns one page plus the full-collection count. The count is a separate
// query, so concurrent writes can skew it slightly; accepted at this scale.
func (r *Resource[Req, Ent]) List(ctx context.Context, page, limit int64) ([]Ent, int64, error) {
	items, err := r.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
