package handlers

import (
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

func validatePasswordStrength(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}
	return hasUpper && hasLower && hasNumber
}

type SignupInput struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account. Accounts default to the viewer role; an
// artist account is requested at signup time.
func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.ValidateUsername(input.Username) {
		respondError(c, http.StatusBadRequest, "Username must be 3-30 characters of letters, numbers, underscores, or hyphens")
		return
	}
	if !validatePasswordStrength(input.Password) {
		respondError(c, http.StatusBadRequest, "Password must be at least 8 characters and contain uppercase, lowercase, and a number")
		return
	}

	role := models.RoleViewer
	if input.Role == string(models.RoleArtist) {
		role = models.RoleArtist
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		respondServerError(c)
		return
	}

	user := models.User{
		Username:    input.Username,
		Email:       input.Email,
		Password:    string(hashed),
		DisplayName: input.DisplayName,
		Role:        role,
	}

	if result := database.DB.Create(&user); result.Error != nil {
		var existing models.User
		if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			respondError(c, http.StatusConflict, "An account with this email already exists")
			return
		}
		if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			respondError(c, http.StatusConflict, "This username is already taken")
			return
		}
		logger.Warn().Err(result.Error).Str("email", input.Email).Msg("Signup failed")
		respondError(c, http.StatusConflict, "User with this email or username already exists")
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		respondServerError(c)
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User registered")
	respondOK(c, http.StatusCreated, "Account created", gin.H{"token": token, "user": user})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if result := database.DB.Where("email = ?", input.Email).First(&user); result.Error != nil {
		logger.Warn().Str("email", input.Email).Msg("Login failed: user not found")
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logger.Warn().Str("email", input.Email).Msg("Login failed: invalid password")
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.IsActive {
		respondError(c, http.StatusForbidden, "Account is banned")
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{"token": token, "user": user})
}

// GetProfile returns the full record of the authenticated user.
func GetProfile(c *gin.Context) {
	userID, _ := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{"user": user})
}

// RefreshToken re-signs a token for the current user. The auth
// middleware already rejected banned accounts, so reaching here means
// the user is still active.
func RefreshToken(c *gin.Context) {
	userID, _ := currentUserID(c)

	var user models.User
	if err := database.DB.Select("id", "role").First(&user, "id = ?", userID).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "User not found")
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to refresh token")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{"token": token})
}
