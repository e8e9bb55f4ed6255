package bot

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"strive/internal/controller"
)

// devSessionUserID keys the shared session used when authentication is
// skipped in polling mode
const devSessionUserID int64 = 0

// HTTPServer exposes the session's read collections as a JSON API for the
// Mini App
type HTTPServer struct {
	bot         *Bot
	webhookMode bool // If false (polling mode), skip authentication for easier local dev
}

// NewHTTPServer creates a new HTTP server for the Mini App
func NewHTTPServer(bot *Bot, webhookMode bool) *HTTPServer {
	hs := &HTTPServer{
		bot:         bot,
		webhookMode: webhookMode,
	}
	bot.httpServer = hs
	return hs
}

// RegisterRoutes registers Mini App routes on the provided mux
func (hs *HTTPServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/schedule", hs.handleSchedule)
	mux.HandleFunc("/api/staff", hs.handleStaff)
	mux.HandleFunc("/api/calendar", hs.handleCalendar)
}

// validateTelegramInitData validates the Telegram Mini App initData
func (hs *HTTPServer) validateTelegramInitData(initData string) (int64, error) {
	if initData == "" {
		return 0, fmt.Errorf("missing initData")
	}

	// Parse the initData
	values, err := url.ParseQuery(initData)
	if err != nil {
		return 0, fmt.Errorf("invalid initData format: %w", err)
	}

	// Extract hash
	hash := values.Get("hash")
	if hash == "" {
		return 0, fmt.Errorf("missing hash in initData")
	}

	// Remove hash from values
	values.Del("hash")

	// Create data-check-string
	var keys []string
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dataCheckString strings.Builder
	for i, k := range keys {
		if i > 0 {
			dataCheckString.WriteByte('\n')
		}
		dataCheckString.WriteString(k)
		dataCheckString.WriteByte('=')
		dataCheckString.WriteString(values.Get(k))
	}

	// Create secret key
	secretKey := hmac.New(sha256.New, []byte("WebAppData"))
	secretKey.Write([]byte(hs.bot.api.Token))
	secret := secretKey.Sum(nil)

	// Calculate hash
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(dataCheckString.String()))
	calculatedHash := hex.EncodeToString(h.Sum(nil))

	// Verify hash
	if calculatedHash != hash {
		return 0, fmt.Errorf("invalid hash")
	}

	// Check auth_date (data should be recent, within 24 hours)
	authDateStr := values.Get("auth_date")
	if authDateStr == "" {
		return 0, fmt.Errorf("missing auth_date")
	}

	var authDate int64
	fmt.Sscanf(authDateStr, "%d", &authDate)
	if time.Now().Unix()-authDate > 86400 {
		return 0, fmt.Errorf("initData is too old")
	}

	// Extract user ID
	userStr := values.Get("user")
	if userStr == "" {
		return 0, fmt.Errorf("missing user data")
	}

	var userData struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(userStr), &userData); err != nil {
		return 0, fmt.Errorf("invalid user data: %w", err)
	}

	// Check if user is allowed
	if !hs.bot.allowedUsers[userData.ID] {
		return 0, fmt.Errorf("user not allowed")
	}

	return userData.ID, nil
}

// withSession authenticates the request and hands the user's session to the
// handler. In polling mode (webhookMode=false), authentication is skipped
// and a shared dev session is used instead.
func (hs *HTTPServer) withSession(next func(w http.ResponseWriter, r *http.Request, c *controller.Controller)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := devSessionUserID

		if hs.webhookMode {
			// Extract authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "tma ") {
				hs.bot.logger.Warn("Missing or invalid authorization header")
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}

			initData := strings.TrimPrefix(authHeader, "tma ")

			id, err := hs.validateTelegramInitData(initData)
			if err != nil {
				hs.bot.logger.Warn("Failed to validate initData",
					zap.Error(err),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			userID = id
		} else {
			hs.bot.logger.Debug("Skipping authentication (polling mode)",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
			)
		}

		c, err := hs.bot.session(r.Context(), userID)
		if err != nil {
			http.Error(w, `{"error":"Failed to open session"}`, http.StatusInternalServerError)
			return
		}

		// The session only supports one command at a time, so requests take
		// the same per-user lock as the bot's update dispatch
		mu := hs.bot.userLock(userID)
		mu.Lock()
		defer mu.Unlock()
		next(w, r, c)
	}
}

// handleSchedule returns the session's lesson schedule
func (hs *HTTPServer) handleSchedule(w http.ResponseWriter, r *http.Request) {
	hs.withSession(func(w http.ResponseWriter, r *http.Request, c *controller.Controller) {
		if r.Method != http.MethodGet {
			http.Error(w, `{"error":"Method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c.Lessons())
	})(w, r)
}

// handleStaff returns the staff directory
func (hs *HTTPServer) handleStaff(w http.ResponseWriter, r *http.Request) {
	hs.withSession(func(w http.ResponseWriter, r *http.Request, c *controller.Controller) {
		if r.Method != http.MethodGet {
			http.Error(w, `{"error":"Method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c.Staff())
	})(w, r)
}

// handleCalendar returns the school calendar
func (hs *HTTPServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	hs.withSession(func(w http.ResponseWriter, r *http.Request, c *controller.Controller) {
		if r.Method != http.MethodGet {
			http.Error(w, `{"error":"Method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(c.Calendar())
	})(w, r)
}
