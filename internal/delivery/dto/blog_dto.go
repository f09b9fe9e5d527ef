package dto

import "time"

// Request DTOs

type CreateBlogRequest struct {
	Title           string `json:"title" validate:"required,max=300"`
	Slug            string `json:"slug" validate:"omitempty,max=350"`
	Content         string `json:"content" validate:"required"`
	Excerpt         string `json:"excerpt" validate:"omitempty,max=500"`
	Author          string `json:"author" validate:"omitempty,max=100"`
	FeaturedImage   string `json:"featured_image"`
	IsPublished     *bool  `json:"is_published"`
	IsFeatured      *bool  `json:"is_featured"`
	MetaTitle       string `json:"meta_title" validate:"omitempty,max=60"`
	MetaDescription string `json:"meta_description" validate:"omitempty,max=160"`
	Tags            string `json:"tags" validate:"omitempty,max=500"`
	ReadTime        int    `json:"read_time" validate:"omitempty,min=1"`
}

type UpdateBlogRequest struct {
	Title           string `json:"title" validate:"omitempty,max=300"`
	Content         string `json:"content"`
	Excerpt         string `json:"excerpt" validate:"omitempty,max=500"`
	Author          string `json:"author" validate:"omitempty,max=100"`
	FeaturedImage   string `json:"featured_image"`
	IsPublished     *bool  `json:"is_published"`
	IsFeatured      *bool  `json:"is_featured"`
	MetaTitle       string `json:"meta_title" validate:"omitempty,max=60"`
	MetaDescription string `json:"meta_description" validate:"omitempty,max=160"`
	Tags            string `json:"tags" validate:"omitempty,max=500"`
	ReadTime        int    `json:"read_time" validate:"omitempty,min=1"`
}

// Response DTOs

type BlogListItemResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author"`
	FeaturedImage string    `json:"featured_image"`
	IsFeatured    bool      `json:"is_featured"`
	TagsList      []string  `json:"tags_list"`
	ReadTime      int       `json:"read_time"`
	ViewsCount    int64     `json:"views_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BlogImageResponse struct {
	ID      uint   `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

type BlogDetailResponse struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Content         string              `json:"content"`
	Excerpt         string              `json:"excerpt"`
	Author          string              `json:"author"`
	FeaturedImage   string              `json:"featured_image"`
	IsFeatured      bool                `json:"is_featured"`
	MetaTitle       string              `json:"meta_title"`
	MetaDescription string              `json:"meta_description"`
	TagsList        []string            `json:"tags_list"`
	ReadTime        int                 `json:"read_time"`
	ViewsCount      int64               `json:"views_count"`
	Images          []BlogImageResponse `json:"images"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type BlogMutationResponse struct {
	Message string `json:"message"`
	BlogID  uint   `json:"blog_id"`
	Slug    string `json:"slug"`
}
