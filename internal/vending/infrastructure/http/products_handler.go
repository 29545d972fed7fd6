package http

import (
	"net/http"

	"github.com/MikhailWahib/vending-machine-api/internal/pkg/logging"
	"github.com/MikhailWahib/vending-machine-api/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

type createProductRequestBody struct {
	ProductName     string  `json:"productName" binding:"required,min=2,max=40"`
	Cost            uint32  `json:"cost" binding:"required,min=5,max=2147483647"`
	AmountAvailable *uint32 `json:"amountAvailable" binding:"required,max=2147483647"`
}

type updateProductRequestBody struct {
	ProductName     *string `json:"productName" binding:"omitempty,min=2,max=40"`
	Cost            *uint32 `json:"cost" binding:"omitempty,min=5,max=2147483647"`
	AmountAvailable *uint32 `json:"amountAvailable" binding:"omitempty,max=2147483647"`
}

type buyRequestBody struct {
	Amount uint32 `json:"amount" binding:"required,min=1"`
}

type ProductsHandler struct {
	products  domain.ProductService
	purchases domain.PurchaseService
	logger    logging.Logger
}

func NewProductsHandler(products domain.ProductService, purchases domain.PurchaseService, logger logging.Logger) *ProductsHandler {
	return &ProductsHandler{
		products:  products,
		purchases: purchases,
		logger:    logger,
	}
}

func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "list products", err)
		return
	}

	response := make([]productResponse, 0, len(products))
	for _, product := range products {
		response = append(response, newProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, h.logger, "get product", err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var body createProductRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	draft := domain.ProductDraft{
		Name:            body.ProductName,
		Cost:            body.Cost,
		AmountAvailable: *body.AmountAvailable,
	}

	product, err := h.products.CreateProduct(c.Request.Context(), callerID(c), draft)
	if err != nil {
		writeError(c, h.logger, "create product", err)
		return
	}

	c.JSON(http.StatusCreated, newProductResponse(product))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	var body updateProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	patch := domain.ProductPatch{
		Name:            body.ProductName,
		Cost:            body.Cost,
		AmountAvailable: body.AmountAvailable,
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), callerID(c), productID, patch)
	if err != nil {
		writeError(c, h.logger, "update product", err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	err := h.products.DeleteProduct(c.Request.Context(), callerID(c), productID)
	if err != nil {
		writeError(c, h.logger, "delete product", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Buy(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	var body buyRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "amount must be a positive integer"})
		return
	}

	receipt, err := h.purchases.Buy(c.Request.Context(), callerID(c), productID, body.Amount)
	if err != nil {
		writeError(c, h.logger, "buy", err)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(receipt))
}
