package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/models"
)

func newTestFeedService(repo *mockPostRepository) FeedService {
	svc := NewFeedService(repo, &config.Config{Blog: config.Blog{
		BaseURL:     "https://blog.example.com/",
		Title:       "Care Blog",
		Description: "Notes on dementia care",
	}}).(*feedService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestPostURL(t *testing.T) {
	svc := newTestFeedService(new(mockPostRepository))
	assert.Equal(t, "https://blog.example.com/blog/first-steps", svc.PostURL("first-steps"))
}

func TestSitemap(t *testing.T) {
	repo := new(mockPostRepository)
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)

	repo.On("ListPublished", mock.Anything, sitemapLimit, 0).Return([]models.BlogPostSummary{
		{ID: 1, Slug: "updated-post", PublishedAt: &published, UpdatedAt: &updated},
		{ID: 2, Slug: "published-only", PublishedAt: &published},
	}, nil)

	body, err := newTestFeedService(repo).Sitemap(context.Background())
	require.NoError(t, err)

	sitemap := string(body)
	assert.True(t, strings.HasPrefix(sitemap, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, sitemap, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, sitemap, "<loc>https://blog.example.com/blog</loc>")
	assert.Contains(t, sitemap, "<priority>1.0</priority>")
	assert.Contains(t, sitemap, "<loc>https://blog.example.com/blog/updated-post</loc>")
	assert.Contains(t, sitemap, "<lastmod>2024-05-03</lastmod>")
	assert.Contains(t, sitemap, "<lastmod>2024-05-01</lastmod>")
	assert.Equal(t, 2, strings.Count(sitemap, "<changefreq>monthly</changefreq>"))
}

func TestRSS(t *testing.T) {
	repo := new(mockPostRepository)
	published := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	repo.On("ListPublished", mock.Anything, rssItemLimit, 0).Return([]models.BlogPostSummary{
		{ID: 1, Title: "Sleep and Memory", Slug: "sleep-and-memory", Excerpt: stringPtr("Why rest matters"), Author: stringPtr("Team"), PublishedAt: &published},
	}, nil)

	rss, err := newTestFeedService(repo).RSS(context.Background())
	require.NoError(t, err)

	assert.Contains(t, rss, `<rss version="2.0"`)
	assert.Contains(t, rss, "<title>Care Blog</title>")
	assert.Contains(t, rss, "<title>Sleep and Memory</title>")
	assert.Contains(t, rss, "<link>https://blog.example.com/blog/sleep-and-memory</link>")
	assert.Contains(t, rss, "Why rest matters")
}

func TestRSSRepositoryError(t *testing.T) {
	repo := new(mockPostRepository)
	repo.On("ListPublished", mock.Anything, rssItemLimit, 0).Return(nil, errors.New("db down"))

	_, err := newTestFeedService(repo).RSS(context.Background())
	assert.Error(t, err)
}
