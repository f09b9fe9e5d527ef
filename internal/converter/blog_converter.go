package converter

import (
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
)

func BlogToListItemResponse(b *entity.Blog, baseURL string) dto.BlogListItemResponse {
	return dto.BlogListItemResponse{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		Excerpt:       b.Excerpt,
		Author:        b.Author,
		FeaturedImage: AbsoluteImageURL(baseURL, b.FeaturedImage),
		IsFeatured:    b.IsFeatured,
		TagsList:      b.TagList(),
		ReadTime:      b.ReadTime,
		ViewsCount:    b.ViewsCount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func BlogsToListItemResponses(blogs []entity.Blog, baseURL string) []dto.BlogListItemResponse {
	responses := make([]dto.BlogListItemResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, BlogToListItemResponse(&blogs[i], baseURL))
	}
	return responses
}

func BlogToDetailResponse(b *entity.Blog, baseURL string) *dto.BlogDetailResponse {
	resp := &dto.BlogDetailResponse{
		ID:              b.ID,
		Title:           b.Title,
		Slug:            b.Slug,
		Content:         b.Content,
		Excerpt:         b.Excerpt,
		Author:          b.Author,
		FeaturedImage:   AbsoluteImageURL(baseURL, b.FeaturedImage),
		IsFeatured:      b.IsFeatured,
		MetaTitle:       b.MetaTitle,
		MetaDescription: b.MetaDescription,
		TagsList:        b.TagList(),
		ReadTime:        b.ReadTime,
		ViewsCount:      b.ViewsCount,
		Images:          make([]dto.BlogImageResponse, 0, len(b.Images)),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	for _, img := range b.Images {
		resp.Images = append(resp.Images, dto.BlogImageResponse{
			ID:      img.ID,
			Image:   AbsoluteImageURL(baseURL, img.Image),
			Caption: img.Caption,
			Order:   img.SortOrder,
		})
	}
	return resp
}
