package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/domain/blog"
	"github.com/syedmaroof/portfolio-api/internal/domain/profile"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const rssItemLimit = 20

type RSSUseCase struct {
	postRepo    blog.Repository
	profileRepo profile.Repository
	siteURL     string
	logger      logger.Logger
}

func NewRSSUseCase(pRepo blog.Repository, profileRepo profile.Repository, siteURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		postRepo:    pRepo,
		profileRepo: profileRepo,
		siteURL:     strings.TrimRight(siteURL, "/"),
		logger:      log,
	}
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	owner, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	author := owner.FullName
	if author == "" {
		author = "Portfolio"
	}

	feed := &feeds.Feed{
		Title:       author + " - Blog",
		Link:        &feeds.Link{Href: uc.siteURL + "/blog"},
		Description: owner.Title,
		Author:      &feeds.Author{Name: author},
		Created:     time.Now(),
	}

	posts, err := uc.postRepo.ListPublished(ctx, rssItemLimit)
	if err != nil {
		uc.logger.Error("Failed to list published posts for RSS", err)
		return nil, err
	}

	feedItems := make([]*feeds.Item, 0, len(posts))
	for _, p := range posts {
		postURL := fmt.Sprintf("%s/blog/%s", uc.siteURL, p.Slug)
		item := &feeds.Item{
			Title:   p.Title,
			Link:    &feeds.Link{Href: postURL},
			Id:      postURL,
			Created: p.CreatedAt,
			Updated: p.UpdatedAt,
		}
		if p.Excerpt != nil {
			item.Description = *p.Excerpt
		}
		if p.PublishedAt != nil {
			item.Created = *p.PublishedAt
		}
		feedItems = append(feedItems, item)
	}
	feed.Items = feedItems

	uc.logger.Info("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
