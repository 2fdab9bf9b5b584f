package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"food-ordering/internal/domain"
	"food-ordering/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	catalog   service.CatalogService
	users     service.UserService
	orders    service.OrderService
	staticDir string
}

func NewHandler(catalog service.CatalogService, users service.UserService, orders service.OrderService, staticDir string) *Handler {
	return &Handler{
		catalog:   catalog,
		users:     users,
		orders:    orders,
		staticDir: staticDir,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/foods", h.listFoods)
		api.GET("/foods/:id", h.getFood)
		api.POST("/foods", h.createFood)
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/order", h.placeOrder)
		api.GET("/users/:id/orders", h.listUserOrders)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusAccepted, gin.H{"ok": "ok"})
		})
	}

	if h.staticDir != "" {
		fileServer := http.FileServer(http.Dir(h.staticDir))
		router.NoRoute(func(c *gin.Context) {
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type createFoodRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type orderItemRequest struct {
	FoodID   *string `json:"foodId"`
	Name     string  `json:"name"`
	Price    any     `json:"price"`
	Quantity any     `json:"quantity"`
}

type placeOrderRequest struct {
	UserID string             `json:"userId"`
	Items  []orderItemRequest `json:"items"`
}

func (h *Handler) listFoods(c *gin.Context) {
	foods, err := h.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch foods"})
		return
	}

	resp := make([]FoodResponse, len(foods))
	for i := range foods {
		resp[i] = foodToResponse(foods[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getFood(c *gin.Context) {
	food, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFoodID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		case errors.Is(err, service.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch food"})
		}
		return
	}

	c.JSON(http.StatusOK, foodToResponse(*food))
}

func (h *Handler) createFood(c *gin.Context) {
	var req createFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
		return
	}
	if req.Name == "" || req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
		return
	}

	food, err := h.catalog.Create(c.Request.Context(), req.Name, req.Description, *req.Price, req.Category, req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Food added", "food": foodToResponse(*food)})
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username & password required"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username & password required"})
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registered",
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username & password required"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "username & password required"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"userId":   user.ID,
		"username": user.Username,
	})
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and items required"})
		return
	}

	items := make([]service.OrderItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.OrderItemInput{
			FoodID:   it.FoodID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}

	order, err := h.orders.Place(c.Request.Context(), req.UserID, items)
	if err != nil {
		if errors.Is(err, service.ErrMissingOrderFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and items required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "orderId": order.ID})
}

// listUserOrders keeps the original contract for this route: any
// failure, a malformed user id included, answers 500 with a generic
// body rather than a typed validation error.
func (h *Handler) listUserOrders(c *gin.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}

	orders, err := h.orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i := range orders {
		resp[i] = orderToResponse(orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

type FoodResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"createdAt"`
}

type OrderItemResponse struct {
	FoodID   *string `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      domain.OrderStatus  `json:"status"`
	CreatedAt   string              `json:"createdAt"`
}

func foodToResponse(food domain.Food) FoodResponse {
	return FoodResponse{
		ID:          food.ID,
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		Category:    food.Category,
		Image:       food.Image,
		CreatedAt:   food.CreatedAt.Format(time.RFC3339),
	}
}

func orderToResponse(order domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			FoodID:   item.FoodID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}
}
