package content

import (
	"testing"

	"xcelliti-backend/internal/httpx"
	"xcelliti-backend/internal/validation"
)

func TestPartnerDescriptionTooShortRejected(t *testing.T) {
	val := validation.New()
	err := val.Struct(PartnerRequest{
		Name:        "Acme Corp",
		Logo:        "https://example.com/logo.png",
		Order:       1,
		Description: "too short",
	})
	if err == nil {
		t.Fatalf("expected validation error for short description")
	}
	details := httpx.ValidationDetails(val.ValidationErrors(err))
	if details["Description"] != "min" {
		t.Fatalf("expected min violation on Description, got %v", details)
	}
}

func TestPartnerValidAccepted(t *testing.T) {
	val := validation.New()
	err := val.Struct(PartnerRequest{
		Name:        "Acme Corp",
		Logo:        "https://example.com/logo.png",
		Order:       1,
		Description: "at least ten characters",
	})
	if err != nil {
		t.Fatalf("expected valid partner, got %v", err)
	}
}

func TestPartnerAllViolationsReported(t *testing.T) {
	val := validation.New()
	err := val.Struct(PartnerRequest{
		Name:        "ab",
		Logo:        "not-a-url",
		Order:       0,
		Description: "short",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	details := httpx.ValidationDetails(val.ValidationErrors(err))
	for _, field := range []string{"Name", "Logo", "Order", "Description"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected violation for %s, got %v", field, details)
		}
	}
}

func TestContactSubmissionMessageLength(t *testing.T) {
	val := validation.New()

	short := ContactSubmissionRequest{Name: "Al", Email: "a@b.com", Message: "short"}
	if err := val.Struct(short); err == nil {
		t.Fatalf("expected rejection for message under 10 characters")
	}

	long := ContactSubmissionRequest{Name: "Al", Email: "a@b.com", Message: "this message is long enough"}
	if err := val.Struct(long); err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestContactSubmissionEmailWellFormed(t *testing.T) {
	val := validation.New()
	err := val.Struct(ContactSubmissionRequest{Name: "Al", Email: "not-an-email", Message: "this message is long enough"})
	if err == nil {
		t.Fatalf("expected rejection for malformed email")
	}
	details := httpx.ValidationDetails(val.ValidationErrors(err))
	if details["Email"] != "email" {
		t.Fatalf("expected email violation, got %v", details)
	}
}

func TestServiceOrderMustBePositive(t *testing.T) {
	val := validation.New()
	err := val.Struct(ServiceRequest{
		Title:       "QA Consultancy",
		Description: "Testing services",
		Image:       "https://example.com/image.png",
		Order:       -1,
	})
	if err == nil {
		t.Fatalf("expected rejection for non-positive order")
	}
}

func TestCaseStudyOnlyTitleRequired(t *testing.T) {
	val := validation.New()
	if err := val.Struct(CaseStudyRequest{Title: "Bank modernization"}); err != nil {
		t.Fatalf("expected title-only case study to be valid, got %v", err)
	}
	if err := val.Struct(CaseStudyRequest{}); err == nil {
		t.Fatalf("expected missing title to be rejected")
	}
}

func TestJobPostingTextLengths(t *testing.T) {
	val := validation.New()
	err := val.Struct(JobPostingRequest{
		Title:        "QA",
		Description:  "short",
		Requirements: "short",
		Location:     "ab",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	details := httpx.ValidationDetails(val.ValidationErrors(err))
	if len(details) != 4 {
		t.Fatalf("expected 4 violations, got %v", details)
	}
}
