package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/category"
)

type categoryJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func toCategoryJSON(c category.Category) categoryJSON {
	return categoryJSON{ID: c.ID, Name: c.Name, Type: string(c.Type)}
}

type createCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

var deletedResponse = gin.H{"success": true, "message": "Deleted"}

// queryID reads the required ?id= parameter.
func queryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleListCategories(c *gin.Context) {
	cats, err := s.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	res := make([]categoryJSON, 0, len(cats))
	for _, cat := range cats {
		res = append(res, toCategoryJSON(cat))
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid JSON")
		return
	}

	cat, err := s.categories.Create(c.Request.Context(), req.Name, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryJSON(cat))
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deletedResponse)
}
