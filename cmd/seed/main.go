package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"xcelliti-backend/internal/auth"
	"xcelliti-backend/internal/config"
	"xcelliti-backend/internal/content"
	"xcelliti-backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	withSamples := flag.Bool("samples", false, "also seed sample content records")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	if err := seedAdminUser(ctx, cols.Users, cfg); err != nil {
		log.Fatal(err)
	}

	if *withSamples {
		if err := seedSampleContent(ctx, cols, cfg); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("seed complete")
}

func seedAdminUser(ctx context.Context, users *mongo.Collection, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	count, err := users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin user already exists")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().In(cfg.Timezone)
	user := auth.User{
		ID:           primitive.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		return err
	}
	log.Println("admin user created")
	return nil
}

func seedSampleContent(ctx context.Context, cols *db.Collections, cfg *config.Config) error {
	now := time.Now().In(cfg.Timezone)

	services := []content.Service{
		{Title: "Software Quality Assurance", Description: "Independent testing and QA consultancy for enterprise systems.", Image: "https://placehold.co/600x400", Order: 1},
		{Title: "Custom Software Development", Description: "Product engineering from design through delivery.", Image: "https://placehold.co/600x400", Order: 2},
		{Title: "IT Trainings", Description: "Professional certification and capacity building programs.", Image: "https://placehold.co/600x400", Order: 3},
	}
	for _, svc := range services {
		svc.ID = primitive.NewObjectID().Hex()
		svc.CreatedAt = now
		svc.UpdatedAt = now
		res, err := cols.Services.UpdateOne(ctx,
			bson.M{"title": svc.Title},
			bson.M{"$setOnInsert": svc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
		if res.UpsertedCount > 0 {
			log.Printf("seeded service %q", svc.Title)
		}
	}

	clients := []content.Client{
		{Name: "Telenor", Logo: "https://placehold.co/200x100", Order: 1},
		{Name: "Jazz", Logo: "https://placehold.co/200x100", Order: 2},
	}
	for _, cl := range clients {
		cl.ID = primitive.NewObjectID().Hex()
		cl.CreatedAt = now
		cl.UpdatedAt = now
		res, err := cols.Clients.UpdateOne(ctx,
			bson.M{"name": cl.Name},
			bson.M{"$setOnInsert": cl},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
		if res.UpsertedCount > 0 {
			log.Printf("seeded client %q", cl.Name)
		}
	}

	return nil
}
