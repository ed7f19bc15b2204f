package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/repository"
)

const (
	rssItemLimit = 20
	// sitemaps hold at most 50000 URLs
	sitemapLimit = 50000
	sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

type FeedService interface {
	RSS(ctx context.Context) (string, error)
	Sitemap(ctx context.Context) ([]byte, error)
	PostURL(slug string) string
}

type feedService struct {
	postRepo repository.PostRepository
	blog     config.Blog
	now      func() time.Time
}

func NewFeedService(postRepo repository.PostRepository, cfg *config.Config) FeedService {
	return &feedService{postRepo: postRepo, blog: cfg.Blog, now: time.Now}
}

func (f *feedService) indexURL() string {
	return strings.TrimSuffix(f.blog.BaseURL, "/") + "/blog"
}

func (f *feedService) PostURL(slug string) string {
	return f.indexURL() + "/" + slug
}

func (f *feedService) RSS(ctx context.Context) (string, error) {
	posts, err := f.postRepo.ListPublished(ctx, rssItemLimit, 0)
	if err != nil {
		return "", err
	}

	feed := &feeds.Feed{
		Title:       f.blog.Title,
		Link:        &feeds.Link{Href: f.indexURL()},
		Description: f.blog.Description,
		Created:     f.now(),
	}

	for _, post := range posts {
		item := &feeds.Item{
			Title: post.Title,
			Link:  &feeds.Link{Href: f.PostURL(post.Slug)},
			Id:    f.PostURL(post.Slug),
		}
		if post.Excerpt != nil {
			item.Description = *post.Excerpt
		}
		if post.Author != nil {
			item.Author = &feeds.Author{Name: *post.Author}
		}
		if post.PublishedAt != nil {
			item.Created = *post.PublishedAt
		}
		if post.UpdatedAt != nil {
			item.Updated = *post.UpdatedAt
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("failed to render RSS: %w", err)
	}

	return rss, nil
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap lists the blog index and every published post. lastmod is the
// post's last update, falling back to its publication date.
func (f *feedService) Sitemap(ctx context.Context) ([]byte, error) {
	posts, err := f.postRepo.ListPublished(ctx, sitemapLimit, 0)
	if err != nil {
		return nil, err
	}

	set := urlSet{
		Xmlns: sitemapXMLNS,
		URLs: []sitemapURL{
			{Loc: f.indexURL(), ChangeFreq: "daily", Priority: "1.0"},
		},
	}

	for _, post := range posts {
		entry := sitemapURL{Loc: f.PostURL(post.Slug), ChangeFreq: "monthly", Priority: "0.8"}
		switch {
		case post.UpdatedAt != nil:
			entry.LastMod = post.UpdatedAt.Format(time.DateOnly)
		case post.PublishedAt != nil:
			entry.LastMod = post.PublishedAt.Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
