package server

import (
	"marketforge/internal/cache"
	"marketforge/internal/models"
	"marketforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListGeneratedContent handles GET /api/prompts/generated_content/.
// The first page with default pagination is served through the cache;
// explicit limit/offset queries always hit the database.
func (s *Server) ListGeneratedContent(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := parsePagination(c, 50)

	formatted := make([]service.FormattedContent, 0)

	fetch := func() error {
		contents, err := s.contentService.ListContents(ctx, p.Limit, p.Offset)
		if err != nil {
			return err
		}
		for _, content := range contents {
			formatted = append(formatted, service.FormatContent(content))
		}
		return nil
	}

	var err error
	if p.Offset == 0 && p.Limit == 50 {
		err = cache.CacheAside(ctx, cache.ContentListKey, &formatted, cache.ContentListTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(formatted)
}

// GetGeneratedContent handles GET /api/prompts/generated_content/:id.
// Unknown ids are a 404, never a generic failure.
func (s *Server) GetGeneratedContent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var formatted service.FormattedContent
	err = cache.CacheAside(ctx, cache.ContentKey(id), &formatted, cache.ContentTTL, func() error {
		content, fetchErr := s.contentService.GetContent(ctx, id)
		if fetchErr != nil {
			return fetchErr
		}
		formatted = service.FormatContent(content)
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(formatted)
}
