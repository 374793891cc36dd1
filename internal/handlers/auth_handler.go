package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/velvetrow/salon-booking/internal/infra/repository"
	"github.com/velvetrow/salon-booking/internal/middleware"
	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/session"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	accounts *repository.AccountSupabaseRepository
	log      *zap.Logger
}

func NewAuthHandler(accounts *repository.AccountSupabaseRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SignupRequest struct {
	Username        string `form:"username" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	PhoneNumber     string `form:"phone_number" binding:"required"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// ======================================================
// LOGIN / LOGOUT
// ======================================================

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.User() != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": sess.PopFlashes(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please enter a username and password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.accounts.FindUserByUsername(c.Request.Context(), req.Username)
	if err != nil || user == nil {
		h.log.Info("login failed", zap.String("username", req.Username))
		sess.Flash("error", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.log.Info("login failed", zap.String("username", req.Username))
		sess.Flash("error", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess.SetUser(&session.User{
		ID:          user.ID.Int64(),
		Username:    user.Username,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	})
	sess.Flash("success", "Welcome back, "+user.Username+"!")

	if user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.ClearUser()
	sess.Flash("success", "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

// ======================================================
// SIGNUP
// ======================================================

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess.User() != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Flashes": sess.PopFlashes(),
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		sess.Flash("error", "Please fill in all fields correctly. Password must be at least 8 characters.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	if req.Password != req.ConfirmPassword {
		sess.Flash("error", "Passwords do not match.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	if !phonePattern.MatchString(req.PhoneNumber) {
		sess.Flash("error", "Enter a valid phone number (10 to 15 digits).")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	existing, err := h.accounts.FindUserByUsername(c.Request.Context(), req.Username)
	if err == nil && existing != nil {
		sess.Flash("error", "That username is already taken.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		sess.Flash("error", "Could not create your account. Please try again.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	if err := h.accounts.CreateUser(c.Request.Context(), repository.UserInput{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Role:         "customer",
	}); err != nil {
		h.log.Error("create user", zap.Error(err))
		sess.Flash("error", "Could not create your account. Please try again.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	sess.Flash("success", "Account created. You can log in now.")
	c.Redirect(http.StatusFound, "/login")
}
