package converter

import (
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

func TeamMemberToResponse(m *entity.TeamMember, baseURL string) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		Name:  m.Name,
		Role:  m.Role,
		Bio:   m.Bio,
		Image: AbsoluteImageURL(baseURL, m.Image),
	}
}

func AboutUsToNormalResponse(about *entity.AboutUs, team []entity.TeamMember, highlights []entity.PhilosophyHighlight, baseURL string) *dto.AboutUsNormalResponse {
	resp := &dto.AboutUsNormalResponse{
		Desp1: about.Desp1,
		Desp2: about.Desp2,
		Team:  make([]dto.TeamMemberResponse, 0, len(team)),
		Philosophy: dto.PhilosophyResponse{
			Title:      about.PhilosophyTitle,
			Highlights: make([]dto.PhilosophyHighlightResponse, 0, len(highlights)),
		},
	}
	for i := range team {
		resp.Team = append(resp.Team, TeamMemberToResponse(&team[i], baseURL))
	}
	for _, h := range highlights {
		resp.Philosophy.Highlights = append(resp.Philosophy.Highlights, dto.PhilosophyHighlightResponse{
			Title:       h.Title,
			Description: h.Description,
		})
	}
	return resp
}

func AboutUsToLandingResponse(about *entity.AboutUs, baseURL string) *dto.AboutUsLandingResponse {
	return &dto.AboutUsLandingResponse{
		Title1: dto.AboutSectionResponse{
			Heading: about.Title1Heading,
			Desp1:   about.Title1Desp1,
			Desp2:   about.Title1Desp2,
			Image:   AbsoluteImageURL(baseURL, about.Title1Image),
		},
		Title2: dto.AboutSectionResponse{
			Heading: about.Title2Heading,
			Desp1:   about.Title2Desp1,
			Desp2:   about.Title2Desp2,
			Image:   AbsoluteImageURL(baseURL, about.Title2Image),
		},
	}
}
