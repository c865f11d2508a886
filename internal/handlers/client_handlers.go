package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Seolivier/smart-broadband-3-server/internal/services"
	"github.com/Seolivier/smart-broadband-3-server/pkg/utils"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// parseClientID reads the :id path parameter. A non-numeric id is handled the
// same way as an id with no matching record, so the caller should answer 404.
func parseClientID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// GetClients handles the paginated client listing. Page defaults to 1; a
// non-numeric or non-positive page value is treated as page 1, never an error.
func (h *ClientHandler) GetClients(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}

	result, err := h.clientService.GetClients(page)
	if err != nil {
		utils.LogError(err, "GetClients: failed to fetch client page")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch clients")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetClientByID handles fetching a single client by ID.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	clientID, ok := parseClientID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	client, err := h.clientService.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		utils.LogError(err, "GetClientByID: failed to fetch client "+c.Param("id"))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient handles the creation of a new client.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateClient: failed to bind JSON")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	client, err := h.clientService.CreateClient(req)
	if err != nil {
		utils.LogError(err, "CreateClient: failed to insert client")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}

// UpdateClient handles the full replacement of a client's mutable fields.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, ok := parseClientID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	var req services.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateClient: failed to bind JSON for ID "+c.Param("id"))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	client, err := h.clientService.UpdateClient(clientID, req)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		utils.LogError(err, "UpdateClient: failed to update client "+c.Param("id"))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

// DeleteClient handles deleting a client and returns the removed record.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, ok := parseClientID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	client, err := h.clientService.DeleteClient(clientID)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
			return
		}
		utils.LogError(err, "DeleteClient: failed to delete client "+c.Param("id"))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Client deleted successfully",
		"client":  client,
	})
}
