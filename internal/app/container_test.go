package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/config"
	"github.com/abuelosolos/Fara/internal/db"
)

// setupContainer builds the full application against TEST_DB_DSN with
// reservations and overrides wiped.
func setupContainer(t *testing.T) *Container {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = db.Migrate(ctx, pool)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE public.reservations, public.day_overrides`)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTAccessTokenTTL:  30 * time.Minute,
		BcryptCost:         4,
		AdminPassword:      "salon-admin",
		BusinessLocation:   time.UTC,
		RateLimitPerMinute: 1000,
	}
	c, err := NewContainer(cfg, pool, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReservationFlow(t *testing.T) {
	c := setupContainer(t)
	r := c.Router
	date := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")

	// Admin login
	w := do(t, r, http.MethodPost, "/v1/admin/login", "", map[string]string{"password": "salon-admin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.AccessToken

	// Short day: 10:00 AM to 2:00 PM
	w = do(t, r, http.MethodPut, "/v1/admin/overrides/"+date, token, map[string]any{
		"hours": []string{"10:00 AM", "1:00 PM"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	create := func(service, start, email string) string {
		w := do(t, r, http.MethodPost, "/v1/reservations", "", map[string]any{
			"date":           date,
			"start_time":     start,
			"service":        service,
			"customer_name":  "Ada",
			"customer_email": email,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var res struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		return res.ID
	}

	first := create("Wig Installation", "10:00 AM", "ada@example.com")
	w = do(t, r, http.MethodPatch, "/v1/admin/reservations/"+first+"/status", token, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 11:00 AM overlaps the confirmed 10:00 to 11:30 booking.
	second := create("Hair Grooming", "11:00 AM", "bola@example.com")
	w = do(t, r, http.MethodPatch, "/v1/admin/reservations/"+second+"/status", token, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/v1/availability", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var days []struct {
		Date          string `json:"date"`
		IntervalSlots map[string][]struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"intervalSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))

	found := false
	for _, d := range days {
		if d.Date != date {
			continue
		}
		found = true
		wig := d.IntervalSlots["Wig Installation"]
		require.Len(t, wig, 1)
		assert.Equal(t, "11:30 AM", wig[0].Start)
		assert.Equal(t, "1:00 PM", wig[0].End)
	}
	assert.True(t, found, "override day should be listed")
}

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	c := setupContainer(t)

	w := do(t, c.Router, http.MethodGet, "/v1/admin/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, c.Router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
