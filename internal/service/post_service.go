package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
	"loveuadAdmin/internal/storage"
	"loveuadAdmin/internal/textutil"
)

const (
	excerptLength         = 200
	metaDescriptionLength = 160
	maxTitleLength        = 255
	maxAuthorLength       = 100
	maxImageURLLength     = 500
	// leaves room for the collision suffix inside VARCHAR(255)
	maxSlugBaseLength = 200
	maxSlugAttempts       = 50
	// publicListLimit caps the unpaginated JSON list for anonymous readers.
	publicListLimit = 1000
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type PostService interface {
	ListPosts(ctx context.Context, admin bool) ([]models.BlogPostSummary, error)
	ListPublishedPage(ctx context.Context, page, perPage int) ([]models.BlogPostSummary, int, error)
	GetPost(ctx context.Context, postID int64, admin bool) (*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, postID int64) error
	SetFeaturedImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.BlogPost, error)
}

type postService struct {
	postRepo      repository.PostRepository
	storage       storage.Storage
	defaultAuthor string
	now           func() time.Time
}

func NewPostService(postRepo repository.PostRepository, store storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:      postRepo,
		storage:       store,
		defaultAuthor: cfg.Blog.DefaultAuthor,
		now:           time.Now,
	}
}

// Slugify lower-cases title and joins its alphanumeric runs with hyphens.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugBaseLength {
		slug = strings.TrimRight(slug[:maxSlugBaseLength], "-")
	}
	if slug == "" {
		return "post"
	}
	return slug
}

// checkLength rejects values that would not fit their column.
func checkLength(field string, value *string, limit int) error {
	if value != nil && utf8.RuneCountInString(*value) > limit {
		return fmt.Errorf("%s exceeds %d characters: %w", field, limit, ErrValidation)
	}
	return nil
}

// uniqueSlug derives a slug for title that no post other than excludeID
// owns. Collisions get a Unix timestamp suffix, then a counter.
func (p *postService) uniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	base := Slugify(title)

	candidate := base
	stamped := fmt.Sprintf("%s-%d", base, p.now().Unix())
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		switch attempt {
		case 0:
		case 1:
			candidate = stamped
		default:
			candidate = fmt.Sprintf("%s-%d", stamped, attempt)
		}

		exists, err := p.postRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free slug for %q: %w", base, repository.ErrConflict)
}

func (p *postService) ListPosts(ctx context.Context, admin bool) ([]models.BlogPostSummary, error) {
	if admin {
		return p.postRepo.ListAll(ctx)
	}
	return p.postRepo.ListPublished(ctx, publicListLimit, 0)
}

// ListPublishedPage returns one page (1-based) of published posts and the
// total number of published posts.
func (p *postService) ListPublishedPage(ctx context.Context, page, perPage int) ([]models.BlogPostSummary, int, error) {
	if page < 1 {
		page = 1
	}

	total, err := p.postRepo.CountPublished(ctx)
	if err != nil {
		return nil, 0, err
	}

	posts, err := p.postRepo.ListPublished(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64, admin bool) (*models.BlogPost, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.IsPublished() && !admin {
		return nil, fmt.Errorf("post %d is not published: %w", postID, ErrForbidden)
	}

	return post, nil
}

func (p *postService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return p.postRepo.GetPublishedBySlug(ctx, slug)
}

func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("title and content required: %w", ErrValidation)
	}
	if err := errors.Join(
		checkLength("title", &title, maxTitleLength),
		checkLength("meta_description", req.MetaDescription, metaDescriptionLength),
		checkLength("author", req.Author, maxAuthorLength),
		checkLength("featured_image", req.FeaturedImage, maxImageURLLength),
	); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if status != models.StatusDraft && status != models.StatusPublished {
		return nil, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
	}

	slug, err := p.uniqueSlug(ctx, title, 0)
	if err != nil {
		return nil, err
	}

	plain := textutil.PlainText(content)

	post := &models.BlogPost{
		Title:           title,
		Slug:            slug,
		Content:         content,
		Excerpt:         orDefault(req.Excerpt, textutil.Truncate(plain, excerptLength)),
		MetaDescription: orDefault(req.MetaDescription, textutil.Truncate(plain, metaDescriptionLength)),
		Keywords:        req.Keywords,
		Author:          orDefault(req.Author, p.defaultAuthor),
		FeaturedImage:   req.FeaturedImage,
		Status:          status,
	}

	if status == models.StatusPublished {
		publishedAt := p.now()
		post.PublishedAt = &publishedAt
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.BlogPost, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("title cannot be empty: %w", ErrValidation)
		}
		if err := checkLength("title", &title, maxTitleLength); err != nil {
			return nil, err
		}
		if title != post.Title {
			slug, err := p.uniqueSlug(ctx, title, post.ID)
			if err != nil {
				return nil, err
			}
			post.Title = title
			post.Slug = slug
		}
	}

	if err := errors.Join(
		checkLength("meta_description", req.MetaDescription, metaDescriptionLength),
		checkLength("featured_image", req.FeaturedImage, maxImageURLLength),
	); err != nil {
		return nil, err
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, fmt.Errorf("content cannot be empty: %w", ErrValidation)
		}
		post.Content = content
	}
	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.MetaDescription != nil {
		post.MetaDescription = req.MetaDescription
	}
	if req.Keywords != nil {
		post.Keywords = req.Keywords
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = req.FeaturedImage
	}

	if req.Status != nil {
		switch *req.Status {
		case models.StatusDraft:
		case models.StatusPublished:
			// first publication only
			if post.PublishedAt == nil {
				publishedAt := p.now()
				post.PublishedAt = &publishedAt
			}
		default:
			return nil, fmt.Errorf("unknown status %q: %w", *req.Status, ErrValidation)
		}
		post.Status = *req.Status
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) SetFeaturedImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.BlogPost, error) {
	if p.storage == nil {
		return nil, ErrStorageDisabled
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	post.FeaturedImage = &imageURL
	if err := p.postRepo.Update(ctx, post); err != nil {
		if delErr := p.storage.DeleteImage(ctx, objectName); delErr != nil {
			slog.Warn("orphaned featured image", "object", objectName, "err", delErr)
		}
		return nil, err
	}

	return post, nil
}

// orDefault returns value unless it is nil or blank.
func orDefault(value *string, fallback string) *string {
	if value != nil && strings.TrimSpace(*value) != "" {
		return value
	}
	return &fallback
}
