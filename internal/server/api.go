package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
	"github.com/alexisbeaulieu97/iconshelf/internal/render"
	"github.com/alexisbeaulieu97/iconshelf/internal/viewstate"
)

type iconsHandler struct {
	resolver catalog.Resolver
	naming   catalog.Naming
	origin   string
}

type iconJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	URL   string `json:"url,omitempty"`
}

type iconsResponse struct {
	Theme   string     `json:"theme"`
	Query   string     `json:"query"`
	Summary string     `json:"summary"`
	Icons   []iconJSON `json:"icons"`
}

// list handles GET /api/icons?theme=light&q=open.
func (h *iconsHandler) list(c *gin.Context) {
	theme, err := catalog.ParseTheme(c.DefaultQuery("theme", catalog.ThemeLight.String()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.resolver.ResolveTheme(c.Request.Context(), theme)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	query := c.Query("q")
	view := render.New(h.naming).Render(viewstate.Filter(ids, query), theme)

	icons := make([]iconJSON, 0, len(view.Cards))
	origin := strings.TrimRight(h.origin, "/")
	for _, card := range view.Cards {
		item := iconJSON{ID: card.ID.String(), Label: card.Label, Path: card.Path}
		if origin != "" {
			item.URL = origin + card.Path
		}
		icons = append(icons, item)
	}

	c.JSON(http.StatusOK, iconsResponse{
		Theme:   theme.String(),
		Query:   query,
		Summary: view.Summary,
		Icons:   icons,
	})
}
