package content

import "time"

// The seven content entity kinds managed by the admin dashboard. Every record is
// owned by its collection; ids are ObjectID hex strings assigned at creation.

type Service struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image" json:"image"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CaseStudy struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Partner struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Logo        string    `bson:"logo" json:"logo"`
	Order       int       `bson:"order" json:"order"`
	Description string    `bson:"description" json:"description"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type JobPosting struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	Requirements string    `bson:"requirements" json:"requirements"`
	Location     string    `bson:"location" json:"location"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type BlogArticle struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Author      string    `bson:"author" json:"author"`
	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt"`
	IsPublished bool      `bson:"isPublished" json:"isPublished"`
	Thumbnail   string    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Excerpt     string    `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ContactSubmission struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Client struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Logo        string    `bson:"logo" json:"logo"`
	Order       int       `bson:"order" json:"order"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Request payloads. Pointer fields distinguish "omitted" from a zero value so the
// documented defaults can be applied (isActive true, isPublished false).

type ServiceRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=3"`
	Image       string `json:"image" validate:"required,url"`
	Order       int    `json:"order" validate:"required,gt=0"`
}

type CaseStudyRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type PartnerRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Logo        string `json:"logo" validate:"required,url"`
	Order       int    `json:"order" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,min=10"`
	Website     string `json:"website" validate:"omitempty,url"`
	IsActive    *bool  `json:"isActive"`
}

type JobPostingRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Description  string `json:"description" validate:"required,min=10"`
	Requirements string `json:"requirements" validate:"required,min=10"`
	Location     string `json:"location" validate:"required,min=3"`
	IsActive     *bool  `json:"isActive"`
}

type BlogArticleRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Content     string     `json:"content" validate:"required,min=10"`
	Author      string     `json:"author" validate:"required,min=3"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsPublished *bool      `json:"isPublished"`
	Thumbnail   string     `json:"thumbnail" validate:"omitempty,url"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category"`
}

type ContactSubmissionRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Message string `json:"message" validate:"required,min=10"`
}

type ClientRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Logo        string `json:"logo" validate:"required,url"`
	Order       int    `json:"order" validate:"required,gt=0"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
}
