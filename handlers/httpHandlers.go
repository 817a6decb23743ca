package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"gorm.io/gorm"

	"megaBolaoApp/services/authService"
	"megaBolaoApp/services/common"
	"megaBolaoApp/services/poolService"
	"megaBolaoApp/services/settleService"
	"megaBolaoApp/services/wagerService"
)

// HTTPHandler holds the dependencies shared by the HTTP handlers.
type HTTPHandler struct {
	db       *gorm.DB
	sessions *authService.SessionStore
}

func NewHTTPHandler(db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		db:       db,
		sessions: authService.NewSessionStore(),
	}
}

// RegisterRoutes registers the public API and the admin API. Admin routes sit
// behind the session-token middleware.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/pool", h.GetActivePool)
	api.GET("/quick-pick", h.QuickPick)
	api.GET("/wagers", h.ListWagers)
	api.POST("/wagers", h.CreateWager)
	api.GET("/pool/result", h.PoolResult)

	admin := api.Group("/")
	admin.Use(h.RequireAdmin())
	admin.POST("/pool", h.CreatePool)
	admin.PUT("/pool/config", h.UpdatePoolConfig)
	admin.POST("/pool/close", h.ClosePool)
	admin.POST("/pool/reopen", h.ReopenPool)
	admin.POST("/pool/result", h.SetResult)
	admin.PUT("/wagers/:id/paid", h.MarkPaid)
	admin.PUT("/wagers/:id/registered", h.MarkRegistered)
	admin.DELETE("/wagers/:id", h.DeleteWager)
}

// RequireAdmin resolves the X-Session-Token header to a logged-in admin.
func (h *HTTPHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		user, ok := h.sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := authService.Authenticate(h.db, req.Username, req.Password)
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	if err != nil {
		h.respondError(c, "login", err)
		return
	}

	token := h.sessions.Create(*user)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *HTTPHandler) Logout(c *gin.Context) {
	h.sessions.Delete(c.GetHeader("X-Session-Token"))
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) GetActivePool(c *gin.Context) {
	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "get pool", err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (h *HTTPHandler) QuickPick(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"numbers": wagerService.QuickPick()})
}

func (h *HTTPHandler) ListWagers(c *gin.Context) {
	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "list wagers", err)
		return
	}

	wagers, err := wagerService.ListWagers(h.db, pool.ID)
	if err != nil {
		h.respondError(c, "list wagers", err)
		return
	}
	c.JSON(http.StatusOK, wagers)
}

func (h *HTTPHandler) CreateWager(c *gin.Context) {
	var req struct {
		BettorName string `json:"bettorName"`
		Game1      []int  `json:"game1"`
		Game2      []int  `json:"game2"`
		Note       string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "create wager", err)
		return
	}

	wager, err := wagerService.CreateWager(h.db, pool.ID, req.BettorName, req.Game1, req.Game2, req.Note)
	if err != nil {
		h.respondError(c, "create wager", err)
		return
	}
	c.JSON(http.StatusCreated, wager)
}

func (h *HTTPHandler) PoolResult(c *gin.Context) {
	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "pool result", err)
		return
	}

	pool, settled, err := settleService.SettlePool(h.db, pool.ID)
	if err != nil {
		h.respondError(c, "pool result", err)
		return
	}

	winners := 0
	for _, s := range settled {
		if s.Won {
			winners++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"pool":    pool,
		"ranking": settled,
		"winners": winners,
	})
}

func (h *HTTPHandler) CreatePool(c *gin.Context) {
	var cfg poolService.PoolConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pool, err := poolService.CreatePool(h.db, cfg)
	if err != nil {
		h.respondError(c, "create pool", err)
		return
	}
	c.JSON(http.StatusCreated, pool)
}

func (h *HTTPHandler) UpdatePoolConfig(c *gin.Context) {
	var cfg poolService.PoolConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "update pool config", err)
		return
	}

	pool, err = poolService.UpdateConfig(h.db, pool.ID, cfg)
	if err != nil {
		h.respondError(c, "update pool config", err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (h *HTTPHandler) ClosePool(c *gin.Context) {
	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "close pool", err)
		return
	}

	pool, err = poolService.ClosePool(h.db, pool.ID)
	if err != nil {
		h.respondError(c, "close pool", err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (h *HTTPHandler) ReopenPool(c *gin.Context) {
	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "reopen pool", err)
		return
	}

	pool, err = poolService.ReopenPool(h.db, pool.ID)
	if err != nil {
		h.respondError(c, "reopen pool", err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (h *HTTPHandler) SetResult(c *gin.Context) {
	var req struct {
		Result string `json:"result"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pool, err := poolService.ActivePool(h.db)
	if err != nil {
		h.respondError(c, "set result", err)
		return
	}

	pool, err = poolService.SetResult(h.db, pool.ID, req.Result)
	if err != nil {
		h.respondError(c, "set result", err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (h *HTTPHandler) MarkPaid(c *gin.Context) {
	wagerID, ok := h.wagerID(c)
	if !ok {
		return
	}
	var req struct {
		Paid bool `json:"paid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	wager, err := wagerService.MarkPaid(h.db, wagerID, req.Paid)
	if err != nil {
		h.respondError(c, "mark paid", err)
		return
	}
	c.JSON(http.StatusOK, wager)
}

func (h *HTTPHandler) MarkRegistered(c *gin.Context) {
	wagerID, ok := h.wagerID(c)
	if !ok {
		return
	}
	var req struct {
		Registered bool `json:"registered"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	wager, err := wagerService.MarkRegistered(h.db, wagerID, req.Registered)
	if err != nil {
		h.respondError(c, "mark registered", err)
		return
	}
	c.JSON(http.StatusOK, wager)
}

func (h *HTTPHandler) DeleteWager(c *gin.Context) {
	wagerID, ok := h.wagerID(c)
	if !ok {
		return
	}

	if err := wagerService.DeleteWager(h.db, wagerID); err != nil {
		h.respondError(c, "delete wager", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) wagerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wager id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP statuses. Unexpected errors are
// logged and recorded before answering 500.
func (h *HTTPHandler) respondError(c *gin.Context, context string, err error) {
	var sizeErr *common.InvalidGameSizeError
	var numbersErr *common.InvalidGameNumbersError
	var unregErr *common.UnregisteredWagersError

	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrEmptyName),
		errors.Is(err, common.ErrInvalidResultFormat),
		errors.As(err, &sizeErr),
		errors.As(err, &numbersErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrPoolClosed),
		errors.Is(err, common.ErrPoolOpen),
		errors.Is(err, common.ErrNotPaid),
		errors.Is(err, common.ErrWagerAlreadyPaid),
		errors.Is(err, common.ErrNoResult):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &unregErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "count": unregErr.Count})
	default:
		common.LogError(h.db, context, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	logger.Infof("%s: %v", context, err)
}
