package dto

// Response DTOs
//
// About-Us responses are shaped by page type: a normal-page row projects to
// AboutUsNormalResponse, a landing-page row to AboutUsLandingResponse. The
// two shapes are never mixed.

type TeamMemberResponse struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

type PhilosophyHighlightResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PhilosophyResponse struct {
	Title      string                        `json:"title"`
	Highlights []PhilosophyHighlightResponse `json:"highlights"`
}

type AboutUsNormalResponse struct {
	Desp1      string               `json:"desp1"`
	Desp2      string               `json:"desp2"`
	Team       []TeamMemberResponse `json:"team"`
	Philosophy PhilosophyResponse   `json:"philosophy"`
}

type AboutSectionResponse struct {
	Heading string `json:"heading"`
	Desp1   string `json:"desp1"`
	Desp2   string `json:"desp2"`
	Image   string `json:"image"`
}

type AboutUsLandingResponse struct {
	Title1 AboutSectionResponse `json:"title1"`
	Title2 AboutSectionResponse `json:"title2"`
}
