package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taruvae/internal/domain/entity"
	"taruvae/internal/usecase"
)

func TestCreatePostDerivesSlugFromTitle(t *testing.T) {
	repo := &fakeBlogRepo{}
	uc := usecase.NewBlogUseCase(repo)

	post, _, err := uc.CreatePost(context.Background(), usecase.BlogPostInput{
		Title:     "Benefits of A2 Ghee!",
		Content:   "...",
		Published: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "benefits-of-a2-ghee", post.Slug)
	assert.True(t, post.Published)
	assert.NotZero(t, post.PublishedAt)
}

func TestCreatePostKeepsExplicitSlug(t *testing.T) {
	uc := usecase.NewBlogUseCase(&fakeBlogRepo{})

	post, _, err := uc.CreatePost(context.Background(), usecase.BlogPostInput{
		Title: "Benefits of A2 Ghee",
		Slug:  "ghee-guide",
	})
	require.NoError(t, err)

	assert.Equal(t, "ghee-guide", post.Slug)
	assert.Zero(t, post.PublishedAt, "drafts carry no publish time")
}

func TestCreatePostRejectsDuplicateSlugBeforeSaving(t *testing.T) {
	repo := &fakeBlogRepo{posts: []entity.BlogPost{
		{ID: 1, Slug: "ghee-guide", Title: "Ghee Guide"},
	}}
	uc := usecase.NewBlogUseCase(repo)

	_, _, err := uc.CreatePost(context.Background(), usecase.BlogPostInput{
		Title: "Another Ghee Guide",
		Slug:  "ghee-guide",
	})
	require.Error(t, err)
	assert.Zero(t, repo.saves, "conflicting posts must never reach the store")
}

func TestUpdatePostMayKeepItsOwnSlug(t *testing.T) {
	repo := &fakeBlogRepo{posts: []entity.BlogPost{
		{ID: 1, Slug: "ghee-guide", Title: "Ghee Guide"},
		{ID: 2, Slug: "honey-notes", Title: "Honey Notes"},
	}}
	uc := usecase.NewBlogUseCase(repo)
	ctx := context.Background()

	post, _, err := uc.UpdatePost(ctx, 1, usecase.BlogPostInput{
		Title: "Ghee Guide, Revised",
		Slug:  "ghee-guide",
	})
	require.NoError(t, err)
	assert.Equal(t, "ghee-guide", post.Slug)

	_, _, err = uc.UpdatePost(ctx, 1, usecase.BlogPostInput{
		Title: "Ghee Guide",
		Slug:  "honey-notes",
	})
	assert.Error(t, err, "taking another post's slug must fail")
}

func TestUpdatePostStampsFirstPublish(t *testing.T) {
	repo := &fakeBlogRepo{posts: []entity.BlogPost{
		{ID: 1, Slug: "ghee-guide", Title: "Ghee Guide"},
	}}
	uc := usecase.NewBlogUseCase(repo)

	post, _, err := uc.UpdatePost(context.Background(), 1, usecase.BlogPostInput{
		Title:     "Ghee Guide",
		Slug:      "ghee-guide",
		Published: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, post.PublishedAt)

	stamp := post.PublishedAt
	post, _, err = uc.UpdatePost(context.Background(), 1, usecase.BlogPostInput{
		Title:     "Ghee Guide",
		Slug:      "ghee-guide",
		Published: true,
	})
	require.NoError(t, err)
	assert.Equal(t, stamp, post.PublishedAt, "republishing keeps the original timestamp")
}

func TestGetBySlugServesPublishedOnlyAndCountsViews(t *testing.T) {
	repo := &fakeBlogRepo{posts: []entity.BlogPost{
		{ID: 1, Slug: "ghee-guide", Title: "Ghee Guide", Published: true},
		{ID: 2, Slug: "draft-notes", Title: "Draft Notes"},
	}}
	uc := usecase.NewBlogUseCase(repo)
	ctx := context.Background()

	post, err := uc.GetBySlug(ctx, "ghee-guide")
	require.NoError(t, err)
	assert.Equal(t, 1, post.Views)

	post, err = uc.GetBySlug(ctx, "ghee-guide")
	require.NoError(t, err)
	assert.Equal(t, 2, post.Views)

	_, err = uc.GetBySlug(ctx, "draft-notes")
	assert.Error(t, err, "drafts are invisible on the public surface")
}

func TestListPublishedHidesDrafts(t *testing.T) {
	repo := &fakeBlogRepo{posts: []entity.BlogPost{
		{ID: 1, Slug: "a", Published: true},
		{ID: 2, Slug: "b"},
		{ID: 3, Slug: "c", Published: true},
	}}
	uc := usecase.NewBlogUseCase(repo)
	ctx := context.Background()

	assert.Len(t, uc.ListPublished(ctx), 2)
	assert.Len(t, uc.ListAll(ctx), 3)
}

func TestDeletePost(t *testing.T) {
	repo := &fakeBlogRepo{posts: []entity.BlogPost{
		{ID: 1, Slug: "a"},
		{ID: 2, Slug: "b"},
	}}
	uc := usecase.NewBlogUseCase(repo)

	_, err := uc.DeletePost(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, repo.posts, 1)
	assert.Equal(t, int64(2), repo.posts[0].ID)

	_, err = uc.DeletePost(context.Background(), 99)
	assert.Error(t, err)
}
