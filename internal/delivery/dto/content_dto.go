package dto

import "time"

// Response DTOs

type CarouselImageResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

// LandingBgResponse carries exactly one of the two background shapes,
// selected by Type. Image is the resolved background for callers that do not
// care which shape is active.
type LandingBgResponse struct {
	ID             uint                    `json:"id"`
	Type           string                  `json:"type"`
	Image          string                  `json:"image"`
	StaticImage    string                  `json:"static_image,omitempty"`
	CarouselImages []CarouselImageResponse `json:"carousel_images,omitempty"`
	IsActive       bool                    `json:"is_active"`
}

type SkinConcernResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Treatments  string `json:"treatments"`
	Products    string `json:"products"`
	Results     string `json:"results"`
	Order       int    `json:"order"`
}

type TestimonialResponse struct {
	ID           uint      `json:"id"`
	Screenshot   string    `json:"screenshot"`
	UserImage    string    `json:"user_image"`
	ReviewerName string    `json:"reviewer_name"`
	ReviewText   string    `json:"review_text"`
	Rating       int       `json:"rating"`
	Order        int       `json:"order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type ResultResponse struct {
	ID          uint      `json:"id"`
	Condition   string    `json:"condition"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	ResultImage string    `json:"result_image"`
	IsFeatured  bool      `json:"is_featured"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResultLandingResponse is the reduced shape served to the landing page hero.
// ResultImage is "" rather than null when no active result exists.
type ResultLandingResponse struct {
	ResultImage string `json:"result_image"`
}
