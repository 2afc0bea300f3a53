package content

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// One constructor per entity kind, each pairing a collection with its default
// sort and its request-to-document mappings. Display entities sort by the
// explicit order field, articles by publish date, submissions by recency.

func NewServiceResource(col *mongo.Collection, loc *time.Location) *Resource[ServiceRequest, Service] {
	repo := NewMongoRepository[Service](col, bson.D{{Key: "order", Value: 1}})
	return NewResource("services", "service", repo, loc, buildService, serviceSet)
}

func buildService(id string, req ServiceRequest, now time.Time) Service {
	return Service{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Image:       strings.TrimSpace(req.Image),
		Order:       req.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func serviceSet(req ServiceRequest, now time.Time) bson.M {
	return bson.M{
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
		"image":       strings.TrimSpace(req.Image),
		"order":       req.Order,
		"updatedAt":   now,
	}
}

func NewCaseStudyResource(col *mongo.Collection, loc *time.Location) *Resource[CaseStudyRequest, CaseStudy] {
	repo := NewMongoRepository[CaseStudy](col, bson.D{{Key: "createdAt", Value: 1}})
	return NewResource("case-studies", "case study", repo, loc, buildCaseStudy, caseStudySet)
}

func buildCaseStudy(id string, req CaseStudyRequest, now time.Time) CaseStudy {
	return CaseStudy{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func caseStudySet(req CaseStudyRequest, now time.Time) bson.M {
	return bson.M{
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
		"imageUrl":    strings.TrimSpace(req.ImageURL),
		"updatedAt":   now,
	}
}

func NewPartnerResource(col *mongo.Collection, loc *time.Location) *Resource[PartnerRequest, Partner] {
	repo := NewMongoRepository[Partner](col, bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	return NewResource("partners", "partner", repo, loc, buildPartner, partnerSet)
}

func buildPartner(id string, req PartnerRequest, now time.Time) Partner {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return Partner{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Logo:        strings.TrimSpace(req.Logo),
		Order:       req.Order,
		Description: strings.TrimSpace(req.Description),
		Website:     strings.TrimSpace(req.Website),
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func partnerSet(req PartnerRequest, now time.Time) bson.M {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return bson.M{
		"name":        strings.TrimSpace(req.Name),
		"logo":        strings.TrimSpace(req.Logo),
		"order":       req.Order,
		"description": strings.TrimSpace(req.Description),
		"website":     strings.TrimSpace(req.Website),
		"isActive":    isActive,
		"updatedAt":   now,
	}
}

func NewJobPostingResource(col *mongo.Collection, loc *time.Location) *Resource[JobPostingRequest, JobPosting] {
	repo := NewMongoRepository[JobPosting](col, bson.D{{Key: "createdAt", Value: -1}})
	return NewResource("job-postings", "job posting", repo, loc, buildJobPosting, jobPostingSet)
}

func buildJobPosting(id string, req JobPostingRequest, now time.Time) JobPosting {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return JobPosting{
		ID:           id,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Requirements: strings.TrimSpace(req.Requirements),
		Location:     strings.TrimSpace(req.Location),
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func jobPostingSet(req JobPostingRequest, now time.Time) bson.M {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return bson.M{
		"title":        strings.TrimSpace(req.Title),
		"description":  strings.TrimSpace(req.Description),
		"requirements": strings.TrimSpace(req.Requirements),
		"location":     strings.TrimSpace(req.Location),
		"isActive":     isActive,
		"updatedAt":    now,
	}
}

func NewBlogArticleResource(col *mongo.Collection, loc *time.Location) *Resource[BlogArticleRequest, BlogArticle] {
	repo := NewMongoRepository[BlogArticle](col, bson.D{{Key: "publishedAt", Value: -1}})
	return NewResource("blog-articles", "blog article", repo, loc, buildBlogArticle, blogArticleSet)
}

func buildBlogArticle(id string, req BlogArticleRequest, now time.Time) BlogArticle {
	publishedAt := now
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	return BlogArticle{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Author:      strings.TrimSpace(req.Author),
		PublishedAt: publishedAt,
		IsPublished: isPublished,
		Thumbnail:   strings.TrimSpace(req.Thumbnail),
		Excerpt:     strings.TrimSpace(req.Excerpt),
		Category:    strings.TrimSpace(req.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func blogArticleSet(req BlogArticleRequest, now time.Time) bson.M {
	publishedAt := now
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	return bson.M{
		"title":       strings.TrimSpace(req.Title),
		"content":     req.Content,
		"author":      strings.TrimSpace(req.Author),
		"publishedAt": publishedAt,
		"isPublished": isPublished,
		"thumbnail":   strings.TrimSpace(req.Thumbnail),
		"excerpt":     strings.TrimSpace(req.Excerpt),
		"category":    strings.TrimSpace(req.Category),
		"updatedAt":   now,
	}
}

func NewContactSubmissionResource(col *mongo.Collection, loc *time.Location) *Resource[ContactSubmissionRequest, ContactSubmission] {
	repo := NewMongoRepository[ContactSubmission](col, bson.D{{Key: "createdAt", Value: -1}})
	return NewResource("contact-submissions", "contact submission", repo, loc, buildContactSubmission, contactSubmissionSet)
}

func buildContactSubmission(id string, req ContactSubmissionRequest, now time.Time) ContactSubmission {
	return ContactSubmission{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: now,
	}
}

// Submissions are create-only; no admin update route exists, so the set document
// is never applied in practice.
func contactSubmissionSet(req ContactSubmissionRequest, now time.Time) bson.M {
	return bson.M{
		"name":    strings.TrimSpace(req.Name),
		"email":   strings.TrimSpace(req.Email),
		"phone":   strings.TrimSpace(req.Phone),
		"message": strings.TrimSpace(req.Message),
	}
}

func NewClientResource(col *mongo.Collection, loc *time.Location) *Resource[ClientRequest, Client] {
	repo := NewMongoRepository[Client](col, bson.D{{Key: "order", Value: 1}})
	return NewResource("clients", "client", repo, loc, buildClient, clientSet)
}

func buildClient(id string, req ClientRequest, now time.Time) Client {
	return Client{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Logo:        strings.TrimSpace(req.Logo),
		Order:       req.Order,
		Description: strings.TrimSpace(req.Description),
		Website:     strings.TrimSpace(req.Website),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func clientSet(req ClientRequest, now time.Time) bson.M {
	return bson.M{
		"name":        strings.TrimSpace(req.Name),
		"logo":        strings.TrimSpace(req.Logo),
		"order":       req.Order,
		"description": strings.TrimSpace(req.Description),
		"website":     strings.TrimSpace(req.Website),
		"updatedAt":   now,
	}
}
