package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Services           *mongo.Collection
	CaseStudies        *mongo.Collection
	Partners           *mongo.Collection
	JobPostings        *mongo.Collection
	BlogArticles       *mongo.Collection
	ContactSubmissions *mongo.Collection
	Clients            *mongo.Collection
	Users              *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Services:           db.Collection("services"),
		CaseStudies:        db.Collection("case_studies"),
		Partners:           db.Collection("partners"),
		JobPostings:        db.Collection("job_postings"),
		BlogArticles:       db.Collection("blog_articles"),
		ContactSubmissions: db.Collection("contact_submissions"),
		Clients:            db.Collection("clients"),
		Users:              db.Collection("users"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	for _, col := range []*mongo.Collection{cols.Services, cols.Partners, cols.Clients} {
		_, err = col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "order", Value: 1}},
			},
		})
		if err != nil {
			return err
		}
	}

	_, err = cols.BlogArticles.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "publishedAt", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	for _, col := range []*mongo.Collection{cols.JobPostings, cols.ContactSubmissions} {
		_, err = col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "createdAt", Value: -1}},
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
