package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"journal/internal/pkg/response"
	"journal/internal/service"
)

type EntryHandler struct {
	entries *service.EntryService
}

func NewEntryHandler(entries *service.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

type entryRequest struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("entryId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid entryId")
		return 0, false
	}
	return id, true
}

func bindEntry(c *gin.Context) (service.EntryInput, bool) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "title, notes and photoUrl are required")
		return service.EntryInput{}, false
	}
	if req.Title == "" || req.Notes == "" || req.PhotoURL == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "title, notes and photoUrl are required")
		return service.EntryInput{}, false
	}
	return service.EntryInput{Title: req.Title, Notes: req.Notes, PhotoURL: req.PhotoURL}, true
}

func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.entries.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

func (h *EntryHandler) Get(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	entry, err := h.entries.Get(c.Request.Context(), getUserID(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

func (h *EntryHandler) Create(c *gin.Context) {
	in, ok := bindEntry(c)
	if !ok {
		return
	}
	entry, err := h.entries.Create(c.Request.Context(), getUserID(c), in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, entry)
}

func (h *EntryHandler) Update(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	in, ok := bindEntry(c)
	if !ok {
		return
	}
	entry, err := h.entries.Update(c.Request.Context(), getUserID(c), id, in)
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	if err := h.entries.Delete(c.Request.Context(), getUserID(c), id); err != nil {
		handleError(c, err)
		return
	}
	response.NoContent(c)
}
