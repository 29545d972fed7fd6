package http

import (
	"net/http"
	"strconv"

	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

const IDKey = "id"

type userResponse struct {
	ID       int         `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	Deposit  uint32      `json:"deposit"`
}

type productResponse struct {
	ID              int    `json:"id"`
	ProductName     string `json:"productName"`
	Cost            uint32 `json:"cost"`
	AmountAvailable uint32 `json:"amountAvailable"`
	SellerID        int    `json:"sellerId"`
}

type purchaseResponse struct {
	ProductName     string            `json:"productName"`
	AmountPurchased uint32            `json:"amountPurchased"`
	TotalSpent      uint32            `json:"totalSpent"`
	Change          map[uint32]uint32 `json:"change"`
}

type balanceResponse struct {
	Deposit uint32 `json:"deposit"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func newUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Deposit:  user.Deposit,
	}
}

func newProductResponse(product domain.Product) productResponse {
	return productResponse{
		ID:              product.ID,
		ProductName:     product.Name,
		Cost:            product.Cost,
		AmountAvailable: product.AmountAvailable,
		SellerID:        product.SellerID,
	}
}

func newPurchaseResponse(receipt domain.PurchaseReceipt) purchaseResponse {
	return purchaseResponse{
		ProductName:     receipt.ProductName,
		AmountPurchased: receipt.AmountPurchased,
		TotalSpent:      receipt.TotalSpent,
		Change:          receipt.Change,
	}
}

// pathID writes a 400 response and returns false when the id is malformed.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param(IDKey))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid id"})
		return 0, false
	}

	return id, true
}
