package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/auth"
	"passenger-service/internal/database"
	"passenger-service/pkg/config"
	"passenger-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-signing-key"

// stubServices provides just enough of the Services interface for the
// bearer guard
type stubServices struct {
	codec *auth.Codec
	log   *logger.Logger
}

func (s *stubServices) GetLogger() *logger.Logger                      { return s.log }
func (s *stubServices) GetConfig() *config.Config                      { return nil }
func (s *stubServices) TokenCodec() *auth.Codec                        { return s.codec }
func (s *stubServices) LoginVerifier() *auth.Verifier                  { return nil }
func (s *stubServices) OwnershipGuard() *auth.Guard                    { return nil }
func (s *stubServices) PassengerStore() interfaces.PassengerStore      { return nil }
func (s *stubServices) ReservationStore() interfaces.ReservationStore  { return nil }
func (s *stubServices) IsHealthy() bool                                { return true }

func setupAuthRouter(codec *auth.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)

	services := &stubServices{
		codec: codec,
		log:   logger.NewLogger("error", ""),
	}

	router := gin.New()
	router.GET("/protected", AuthRequired(services), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmail)})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func issueToken(t *testing.T, codec *auth.Codec) string {
	t.Helper()
	token, err := codec.Encode(&database.Passenger{
		ID:    1,
		Name:  "John",
		Age:   25,
		Email: "john@example.com",
	})
	require.NoError(t, err)
	return token
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	router := setupAuthRouter(auth.NewCodec(testSecret, time.Hour))

	w := request(router, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequiredWrongScheme(t *testing.T) {
	codec := auth.NewCodec(testSecret, time.Hour)
	router := setupAuthRouter(codec)

	token := issueToken(t, codec)
	w := request(router, "Token "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequiredGarbageToken(t *testing.T) {
	router := setupAuthRouter(auth.NewCodec(testSecret, time.Hour))

	w := request(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	expiredCodec := auth.NewCodec(testSecret, -time.Minute)
	router := setupAuthRouter(auth.NewCodec(testSecret, time.Hour))

	w := request(router, "Bearer "+issueToken(t, expiredCodec))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequiredForgedToken(t *testing.T) {
	otherCodec := auth.NewCodec("some-other-key", time.Hour)
	router := setupAuthRouter(auth.NewCodec(testSecret, time.Hour))

	w := request(router, "Bearer "+issueToken(t, otherCodec))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	codec := auth.NewCodec(testSecret, time.Hour)
	router := setupAuthRouter(codec)

	w := request(router, "Bearer "+issueToken(t, codec))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "john@example.com")
}
