package library

import (
	"fmt"
	"strings"

	"promptshq/internal/api/v1/common"
	"promptshq/internal/models"
	"promptshq/internal/services"
	"promptshq/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog   *services.CatalogService
	workspace *services.WorkspaceService
}

func NewHandler(catalog *services.CatalogService, workspace *services.WorkspaceService) *Handler {
	return &Handler{catalog: catalog, workspace: workspace}
}

func filterOptions() FilterOptions {
	types := make([]TypeOption, 0, len(models.ContentTypes))
	for _, t := range models.ContentTypes {
		types = append(types, TypeOption{Value: t, Label: t.Label()})
	}
	return FilterOptions{
		Types:      types,
		Categories: models.Categories,
		TechStacks: models.TechStacks,
		Sorts:      []string{string(services.SortNewest), string(services.SortPopular), string(services.SortAZ)},
	}
}

// techParams accepts both ?tech=Go&tech=Rust and ?tech=Go,Rust.
func techParams(c *gin.Context) []string {
	var tags []string
	for _, raw := range c.QueryArray("tech") {
		tags = append(tags, strings.Split(raw, ",")...)
	}
	return tags
}

// ListContent godoc
// @Summary Search the library
// @Tags library
// @Produce json
// @Param search query string false "Case-insensitive text query"
// @Param type query string false "Content type or all"
// @Param category query string false "Category or all"
// @Param tech query []string false "Tech stack tags, any match" collectionFormat(multi)
// @Param sort query string false "Sort order" Enums(newest, popular, a-z)
// @Success 200 {object} utils.Response{data=ListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /library [get]
func (h *Handler) ListContent(c *gin.Context) {
	filter, err := services.NewContentFilter(
		c.Query("search"),
		c.Query("type"),
		c.Query("category"),
		techParams(c),
		c.Query("sort"),
	)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	items, err := h.catalog.Search(c.Request.Context(), filter)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, "Success", ListResponse{Items: items, Total: len(items), Options: filterOptions()})
}

// GetContent godoc
// @Summary Get a library entry
// @Description Return one entry with its rendered body, favorite flag and the user's rating
// @Tags library
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} utils.Response{data=DetailResponse}
// @Failure 404 {object} utils.Response
// @Router /library/{id} [get]
func (h *Handler) GetContent(c *gin.Context) {
	ctx := c.Request.Context()
	item, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	html, err := services.RenderPreview(item.Content)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	fav, err := h.workspace.IsFavorite(ctx, item.ID)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	stars, err := h.workspace.UserRating(ctx, item.ID)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	utils.Success(c, "Success", DetailResponse{Item: item, ContentHTML: html, IsFavorite: fav, UserRating: stars})
}

// CopyContent godoc
// @Summary Copy a library entry
// @Description Return the raw body for the clipboard
// @Tags library
// @Produce plain
// @Param id path string true "Content ID"
// @Success 200 {string} string "Entry body"
// @Failure 404 {object} utils.Response
// @Router /library/{id}/copy [get]
func (h *Handler) CopyContent(c *gin.Context) {
	item, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.PlainText(c, "Content copied to clipboard!", item.Content)
}

// DownloadContent godoc
// @Summary Download a library entry
// @Description Return the body as a markdown file named after the title
// @Tags library
// @Produce plain
// @Param id path string true "Content ID"
// @Success 200 {string} string "Markdown file"
// @Failure 404 {object} utils.Response
// @Router /library/{id}/download [get]
func (h *Handler) DownloadContent(c *gin.Context) {
	item, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	file, err := services.Export(item.Title, item.Content, services.ExportMarkdown)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.Attachment(c, file.Filename, file.ContentType, "Download started!", file.Body)
}

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Tags library
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} utils.Response{data=FavoriteResponse}
// @Failure 404 {object} utils.Response
// @Router /library/{id}/favorite [post]
func (h *Handler) ToggleFavorite(c *gin.Context) {
	fav, err := h.workspace.ToggleFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	message := "Removed from favorites"
	if fav {
		message = "Added to favorites!"
	}
	utils.Success(c, message, FavoriteResponse{IsFavorite: fav})
}

// RateContent godoc
// @Summary Rate a library entry
// @Description Record the user's 1 to 5 star rating. The catalog rating is unchanged
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param request body RatingRequest true "Stars"
// @Success 200 {object} utils.Response{data=RatingResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /library/{id}/rating [post]
func (h *Handler) RateContent(c *gin.Context) {
	var req RatingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	r, err := h.workspace.Rate(c.Request.Context(), c.Param("id"), req.Stars)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	utils.Success(c, fmt.Sprintf("Rated %d stars!", r.Stars), RatingResponse{Stars: r.Stars})
}
