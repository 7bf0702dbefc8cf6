package delivery

import (
	"net/http"

	"mtasks-backend/internal/apperror"
	authdelivery "mtasks-backend/internal/auth/delivery"
	"mtasks-backend/internal/list/usecase"

	"github.com/gin-gonic/gin"
)

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	listUsecase usecase.ListUsecase
}

func NewListHandler(listUsecase usecase.ListUsecase) *ListHandler {
	return &ListHandler{
		listUsecase: listUsecase,
	}
}

// CreateListRequest represents the request body for creating a list
type CreateListRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// CreateList creates a list owned by the authenticated user
// POST /api/lists
func (h *ListHandler) CreateList(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listUsecase.CreateList(ownerID, req.Title, req.Description)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

// GetLists returns all lists for the authenticated user, newest first
// GET /api/lists
func (h *ListHandler) GetLists(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)

	lists, err := h.listUsecase.GetLists(ownerID)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// GetListByID returns a single list
// GET /api/lists/:listId
func (h *ListHandler) GetListByID(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")

	list, err := h.listUsecase.GetListByID(listID, ownerID)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateList applies a partial update to a list
// PUT /api/lists/:listId
func (h *ListHandler) UpdateList(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")

	var patch usecase.ListPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listUsecase.UpdateList(listID, ownerID, patch)
	if err != nil {
		apperror.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteList removes a list
// DELETE /api/lists/:listId
func (h *ListHandler) DeleteList(c *gin.Context) {
	ownerID := c.GetString(authdelivery.ContextUserID)
	listID := c.Param("listId")

	if err := h.listUsecase.DeleteList(listID, ownerID); err != nil {
		apperror.Write(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
