package api

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardcomposer/internal/cards"
	imagepkg "github.com/youruser/cardcomposer/internal/image"
)

// Composer renders a card beneath a base64 encoded image.
type Composer interface {
	Compose(imageBase64 string, card cards.Card) ([]byte, error)
}

// Handler serves the card composition endpoints.
type Handler struct {
	composer Composer
	apiKey   string
}

// NewHandler returns a Handler. An empty apiKey disables authentication.
func NewHandler(c Composer, apiKey string) *Handler {
	return &Handler{composer: c, apiKey: apiKey}
}

type composeRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	cards.Card
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MaxRequestBytes caps the size of a compose request body.
const MaxRequestBytes = 16 << 20

// compose returns the PNG card, or {"composed_image": <base64>} with ?format=json
func (h *Handler) compose(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBytes)
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	b, err := h.composer.Compose(req.ImageBase64, req.Card)
	if err != nil {
		log.Println("failed to compose image:", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"composed_image": b})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// RequireAPIKey rejects requests whose x-api-key header does not match.
func (h *Handler) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.apiKey == "" {
			c.Next()
			return
		}
		got := c.GetHeader("x-api-key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}

func statusFor(err error) int {
	if errors.Is(err, imagepkg.ErrDecode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
