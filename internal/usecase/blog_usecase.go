package usecase

import (
	"context"
	"errors"

	"wellness-cms-backend/internal/converter"
	"wellness-cms-backend/internal/delivery/dto"
	"wellness-cms-backend/internal/domain/entity"
	"wellness-cms-backend/internal/domain/repository"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound = errors.New("blog post not found")
	ErrSlugTaken    = errors.New("a blog post with this slug already exists")
)

const (
	defaultBlogAuthor   = "Monalisa Wellness"
	defaultBlogReadTime = 5
)

type BlogUsecase interface {
	GetBlogs(ctx context.Context, filter repository.BlogFilter) ([]dto.BlogListItemResponse, error)
	GetBlogDetail(ctx context.Context, slug string) (*dto.BlogDetailResponse, error)
	CreateBlog(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogMutationResponse, error)
	UpdateBlog(ctx context.Context, slug string, req *dto.UpdateBlogRequest) (*dto.BlogMutationResponse, error)
}

type blogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	blogRepo     repository.BlogRepository
	mediaBaseURL string
}

func NewBlogUsecase(db *gorm.DB, log *logrus.Logger, blogRepo repository.BlogRepository, mediaBaseURL string) BlogUsecase {
	return &blogUsecase{
		db:           db,
		log:          log,
		blogRepo:     blogRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (u *blogUsecase) GetBlogs(ctx context.Context, filter repository.BlogFilter) ([]dto.BlogListItemResponse, error) {
	blogs, err := u.blogRepo.FindPublished(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find blogs: %+v", err)
		return nil, err
	}
	return converter.BlogsToListItemResponses(blogs, u.mediaBaseURL), nil
}

// GetBlogDetail returns one published post by slug and records the view.
// The returned views_count already includes this read.
func (u *blogUsecase) GetBlogDetail(ctx context.Context, slugValue string) (*dto.BlogDetailResponse, error) {
	db := u.db.WithContext(ctx)

	blog, err := u.blogRepo.FindPublishedBySlug(db, slugValue)
	if err != nil {
		u.log.Warnf("Failed to find blog %q: %+v", slugValue, err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	if err := u.blogRepo.IncrementViews(db, blog.ID); err != nil {
		// A lost view count must not fail the read.
		u.log.Warnf("Failed to increment views for blog %d: %+v", blog.ID, err)
	} else {
		blog.ViewsCount++
	}

	return converter.BlogToDetailResponse(blog, u.mediaBaseURL), nil
}

func (u *blogUsecase) CreateBlog(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogMutationResponse, error) {
	db := u.db.WithContext(ctx)

	slugValue := req.Slug
	if slugValue == "" {
		slugValue = slug.Make(req.Title)
	}
	taken, err := u.blogRepo.SlugExists(db, slugValue, 0)
	if err != nil {
		u.log.Warnf("Failed to check slug %q: %+v", slugValue, err)
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	blog := &entity.Blog{
		Title:           req.Title,
		Slug:            slugValue,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Author:          req.Author,
		FeaturedImage:   req.FeaturedImage,
		IsPublished:     true,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Tags:            req.Tags,
		ReadTime:        req.ReadTime,
	}
	if req.Author == "" {
		blog.Author = defaultBlogAuthor
	}
	if req.ReadTime == 0 {
		blog.ReadTime = defaultBlogReadTime
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		blog.IsFeatured = *req.IsFeatured
	}

	if err := u.blogRepo.Create(db, blog); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent create with the same slug.
			return nil, ErrSlugTaken
		}
		u.log.Warnf("Failed to create blog %q: %+v", slugValue, err)
		return nil, err
	}

	u.log.Infof("Blog created: id=%d, slug=%s", blog.ID, blog.Slug)
	return &dto.BlogMutationResponse{
		Message: "Blog post created successfully",
		BlogID:  blog.ID,
		Slug:    blog.Slug,
	}, nil
}

// UpdateBlog applies the non-zero request fields to the post addressed by
// slug. The slug itself is immutable here.
func (u *blogUsecase) UpdateBlog(ctx context.Context, slugValue string, req *dto.UpdateBlogRequest) (*dto.BlogMutationResponse, error) {
	db := u.db.WithContext(ctx)

	blog, err := u.blogRepo.FindPublishedBySlug(db, slugValue)
	if err != nil {
		u.log.Warnf("Failed to find blog %q: %+v", slugValue, err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Excerpt != "" {
		blog.Excerpt = req.Excerpt
	}
	if req.Author != "" {
		blog.Author = req.Author
	}
	if req.FeaturedImage != "" {
		blog.FeaturedImage = req.FeaturedImage
	}
	if req.MetaTitle != "" {
		blog.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != "" {
		blog.MetaDescription = req.MetaDescription
	}
	if req.Tags != "" {
		blog.Tags = req.Tags
	}
	if req.ReadTime > 0 {
		blog.ReadTime = req.ReadTime
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		blog.IsFeatured = *req.IsFeatured
	}

	if err := u.blogRepo.Save(db, blog); err != nil {
		u.log.Warnf("Failed to update blog %q: %+v", slugValue, err)
		return nil, err
	}

	return &dto.BlogMutationResponse{
		Message: "Blog post updated successfully",
		BlogID:  blog.ID,
		Slug:    blog.Slug,
	}, nil
}
