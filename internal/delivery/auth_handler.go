package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
	"github.com/k-abishek/online-shopping/internal/usecase"
)

// AuthHandler runs the login form and the staged logout. Logging out clears
// the persisted session and discards the in-memory cart and admin state.
type AuthHandler struct {
	auth  usecase.AuthUseCase
	cart  usecase.CartUseCase
	admin usecase.AdminUseCase
	log   *logrus.Logger
}

func NewAuthHandler(auth usecase.AuthUseCase, cart usecase.CartUseCase, admin usecase.AdminUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		cart:  cart,
		admin: admin,
		log:   logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/login", h.LoginView)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.POST("/logout/confirm", h.ConfirmLogout)
}

// Root sends visitors to the login view.
func (h *AuthHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) LoginView(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Login with your credentials", nil)
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login validates the form and routes by resolved role: admins land on the
// dashboard, shoppers on the shop. A missing field is a validation error with
// no navigation and no session write.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warnf("Failed to bind login form: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	role, err := h.auth.Login(domain.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		msg := "Failed to login. Please try again."
		if errors.Is(err, domain.ErrMissingCredentials) {
			msg = "Please enter both username and password"
		}
		ErrorResponse(c, mapErrorToStatus(err), msg)
		return
	}

	if role == domain.RoleAdmin {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/shop")
}

// Logout is the trigger step: it asks for confirmation and changes nothing.
func (h *AuthHandler) Logout(c *gin.Context) {
	SuccessResponse(c, http.StatusOK,
		"Are you sure you want to logout? Your cart will be cleared.",
		gin.H{"confirmPath": "/logout/confirm"})
}

// ConfirmLogout clears the persisted flags, drops all in-memory state and
// sends the visitor back to login.
func (h *AuthHandler) ConfirmLogout(c *gin.Context) {
	if err := h.auth.Logout(); err != nil {
		h.log.Errorf("Failed to clear session: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}
	h.cart.Clear()
	h.admin.Reset()
	c.Redirect(http.StatusFound, "/login")
}
