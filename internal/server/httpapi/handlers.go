package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpetrashin/tokengate/internal/common"
	"github.com/mpetrashin/tokengate/internal/logging"
	"github.com/mpetrashin/tokengate/internal/server/services"
)

// msgInternal is the only thing a caller ever sees of an unexpected failure.
// Detail goes to the log, never across the boundary.
const msgInternal = "Internal server error"

const msgDuplicateEmail = "User with this email already exists"
const msgInvalidCredentials = "Invalid credentials"

// Handler wires the auth endpoints to the user service.
type Handler struct {
	users  *services.UserService
	logger logging.Logger
}

func NewHandler(users *services.UserService, logger logging.Logger) *Handler {
	return &Handler{users: users, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles POST /signup.
//
// 201 {id, email} on success; 400 with the exact validation message;
// 409 on duplicate email; 500 otherwise. The password hash is never
// included in any response.
func (h *Handler) SignUp(c *gin.Context) {
	var in credentialsRequest
	// A body that does not parse is treated as absent fields.
	_ = c.ShouldBindJSON(&in)

	user, err := h.users.SignUp(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		var verr *common.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": msgDuplicateEmail})
		default:
			h.logger.Error(c.Request.Context(), "signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		}
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// Login handles POST /login.
//
// 200 {token} on success; 400 on missing fields or bad email format;
// 401 with one shared message for unknown email and wrong password;
// 500 otherwise.
func (h *Handler) Login(c *gin.Context) {
	var in credentialsRequest
	_ = c.ShouldBindJSON(&in)

	token, err := h.users.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		var verr *common.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
		default:
			h.logger.Error(c.Request.Context(), "login failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
