package handlers

import (
	"net/http"

	"github.com/funnelbot/leadintake/internal/domain/buyer"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/funnelbot/leadintake/pkg/response"
	"github.com/gin-gonic/gin"
)

type CreateBuyerDTO struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UpdateBuyerDTO struct {
	Active *bool `json:"active" binding:"required"`
}

type BuyerHandler struct {
	repos *repository.Repos
}

func NewBuyerHandler(repos *repository.Repos) *BuyerHandler {
	return &BuyerHandler{repos: repos}
}

func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	buyers, err := h.repos.Buyer.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, buyers)
}

func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	var input CreateBuyerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	b := &buyer.Buyer{Code: input.Code, Name: input.Name, Active: true}
	if err := h.repos.Buyer.Create(b); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BuyerHandler) UpdateBuyer(c *gin.Context) {
	var input UpdateBuyerDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	code := c.Param("code")
	if err := h.repos.Buyer.SetActive(code, *input.Active); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "buyer updated"})
}
