package usecase

import (
	"context"
	"time"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
	"taruvae/pkg/utils"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
	}
}

type BlogPostInput struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (uc *BlogUseCase) ListPublished(ctx context.Context) []entity.BlogPost {
	posts := uc.blogRepo.LoadAll(ctx)
	published := make([]entity.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Published {
			published = append(published, post)
		}
	}
	return published
}

func (uc *BlogUseCase) ListAll(ctx context.Context) []entity.BlogPost {
	return uc.blogRepo.LoadAll(ctx)
}

// GetBySlug returns a published post and bumps its view counter. The counter
// write is best effort; a degraded save still serves the post.
func (uc *BlogUseCase) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	posts := uc.blogRepo.LoadAll(ctx)
	for i := range posts {
		if posts[i].Slug == slug && posts[i].Published {
			posts[i].Views++
			uc.blogRepo.SaveAll(ctx, posts)
			return &posts[i], nil
		}
	}
	return nil, errors.NotFound("Blog post", nil)
}

// CreatePost derives the slug from the title when none is given and refuses
// a slug another post already owns before touching the store.
func (uc *BlogUseCase) CreatePost(ctx context.Context, input BlogPostInput) (*entity.BlogPost, repository.WriteResult, error) {
	if input.Title == "" {
		return nil, repository.WriteResult{}, errors.BadRequest("Title is required", nil)
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}

	posts := uc.blogRepo.LoadAll(ctx)
	if slugTaken(posts, slug, 0) {
		return nil, repository.WriteResult{}, errors.Conflict("A post with this slug already exists")
	}

	now := time.Now().UnixMilli()
	post := entity.BlogPost{
		ID:        now,
		Slug:      slug,
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
		UpdatedAt: now,
	}
	if post.Published {
		post.PublishedAt = now
	}

	posts = append(posts, post)
	result := uc.blogRepo.SaveAll(ctx, posts)
	return &post, result, nil
}

func (uc *BlogUseCase) UpdatePost(ctx context.Context, id int64, input BlogPostInput) (*entity.BlogPost, repository.WriteResult, error) {
	posts := uc.blogRepo.LoadAll(ctx)

	for i := range posts {
		if posts[i].ID != id {
			continue
		}

		slug := input.Slug
		if slug == "" {
			slug = utils.Slugify(input.Title)
		}
		if slugTaken(posts, slug, id) {
			return nil, repository.WriteResult{}, errors.Conflict("A post with this slug already exists")
		}

		now := time.Now().UnixMilli()
		wasPublished := posts[i].Published

		posts[i].Title = input.Title
		posts[i].Slug = slug
		posts[i].Content = input.Content
		posts[i].Published = input.Published
		posts[i].UpdatedAt = now
		if input.Published && !wasPublished {
			posts[i].PublishedAt = now
		}

		result := uc.blogRepo.SaveAll(ctx, posts)
		return &posts[i], result, nil
	}

	return nil, repository.WriteResult{}, errors.NotFound("Blog post", nil)
}

func (uc *BlogUseCase) DeletePost(ctx context.Context, id int64) (repository.WriteResult, error) {
	posts := uc.blogRepo.LoadAll(ctx)

	remaining := make([]entity.BlogPost, 0, len(posts))
	found := false
	for _, post := range posts {
		if post.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, post)
	}
	if !found {
		return repository.WriteResult{}, errors.NotFound("Blog post", nil)
	}

	return uc.blogRepo.SaveAll(ctx, remaining), nil
}

func (uc *BlogUseCase) Watch(ctx context.Context, fn func([]entity.BlogPost)) func() {
	return uc.blogRepo.Watch(ctx, fn)
}

// slugTaken reports whether another post (excluding exceptID) owns slug.
func slugTaken(posts []entity.BlogPost, slug string, exceptID int64) bool {
	for _, post := range posts {
		if post.Slug == slug && post.ID != exceptID {
			return true
		}
	}
	return false
}
