package chat_controller

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Desertfoxking25/szakdoga-viragweb/models"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

var chatClient = &http.Client{Timeout: 60 * time.Second}

// ChatCompletion godoc
// @Summary Proxy a chat completion request
// @Description Forwards the conversation to the upstream completions API with the server-side API key and returns the upstream response body verbatim.
// @Tags Storefront - Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Model and message history"
// @Success 200 {object} map[string]interface{} "Upstream completion response"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} map[string]interface{} "Upstream or server error"
// @Router /chat [post]
func ChatCompletion(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		log.Printf("[chat] OPENROUTER_API_KEY not set")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Hiba történt a kérés feldolgozásakor",
			"details": "missing upstream api key",
		})
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Hiba történt a kérés feldolgozásakor",
			"details": err.Error(),
		})
		return
	}

	upstream, err := http.NewRequestWithContext(c.Request.Context(), "POST", openRouterURL, bytes.NewBuffer(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Hiba történt a kérés feldolgozásakor",
			"details": err.Error(),
		})
		return
	}
	upstream.Header.Set("Authorization", "Bearer "+apiKey)
	upstream.Header.Set("Content-Type", "application/json")

	resp, err := chatClient.Do(upstream)
	if err != nil {
		log.Printf("[chat] upstream request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Hiba történt a kérés feldolgozásakor",
			"details": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[chat] failed to read upstream response: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Hiba történt a kérés feldolgozásakor",
			"details": err.Error(),
		})
		return
	}

	// Upstream body and status pass through untouched
	c.Data(resp.StatusCode, "application/json", body)
}
