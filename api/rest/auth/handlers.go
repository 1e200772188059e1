package auth

import (
	"net/http"
	"os"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth/gothic"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
)

var (
	sessionStore = sessions.NewCookieStore([]byte(os.Getenv("SESSION_SECRET")))
)

func init() {
	// configure session options
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600, // 1 hour
		HttpOnly: true,
		Secure:   os.Getenv("ENVIRONMENT") == "production",
		SameSite: http.SameSiteLaxMode,
	}
}

// begins the OAuth flow with the requested provider
func BeginAuthHandler(_ *people.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !isValidProvider(provider) {
			errors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// completes the OAuth flow, upserts the person and issues a JWT
func CallbackHandler(personRepo *people.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		person, err := personRepo.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
			gothUser.Name,
			gothUser.AvatarURL,
		)

		if err != nil {
			errors.InternalError(c, "failed to create person", err)
			return
		}

		token, err := auth.GenerateJWT(person.ID, person.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Person: person,
			Token:  token,
		})
	}
}

// returns the authenticated person's profile including subscription tier
func GetCurrentPersonHandler(personRepo *people.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		person, err := personRepo.FindByID(c.Request.Context(), personID)
		if err != nil {
			errors.NotFound(c, "person")
			return
		}

		c.JSON(http.StatusOK, PersonResponse{Person: person})
	}
}

// updates the authenticated person's name and avatar
func UpdateProfileHandler(personRepo *people.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req people.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		person, err := personRepo.UpdateProfile(c.Request.Context(), personID, req.Name, req.AvatarURL)
		if err != nil {
			errors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, PersonResponse{Person: person})
	}
}

// clears the gothic session cookie
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			// cookie may already be gone; logout is best effort
			c.JSON(http.StatusOK, gin.H{"message": "logged out"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

func isValidProvider(provider string) bool {
	return slices.Contains([]string{"google", "github"}, provider)
}
