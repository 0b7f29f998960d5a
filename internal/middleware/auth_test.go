package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/internal/domain"
	jwtsvc "frontdesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuth_ValidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", 1*time.Hour)
	validToken, _ := jwtService.GenerateToken(42, "receptionist")

	router := gin.New()
	router.Use(Auth(jwtService))

	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"role":    role,
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "receptionist")
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtService := jwtsvc.New("wrong-secret", 1*time.Hour)

	router := gin.New()
	router.Use(Auth(jwtService))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_NoToken(t *testing.T) {
	jwtService := jwtsvc.New("secret", 1*time.Hour)

	router := gin.New()
	router.Use(Auth(jwtService))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongFormat(t *testing.T) {
	jwtService := jwtsvc.New("secret", 1*time.Hour)

	router := gin.New()
	router.Use(Auth(jwtService))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", 1*time.Hour)
	managerToken, _ := jwtService.GenerateToken(1, string(domain.RoleManager))
	receptionToken, _ := jwtService.GenerateToken(2, string(domain.RoleReceptionist))

	router := gin.New()
	router.Use(Auth(jwtService))
	router.GET("/managers", ManagerOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/managers", nil)
	req.Header.Set("Authorization", "Bearer "+managerToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/managers", nil)
	req.Header.Set("Authorization", "Bearer "+receptionToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
