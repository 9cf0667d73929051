package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job_board/internal/apperr"
	"job_board/internal/model"
	"job_board/internal/utils"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(Recovery(logger), ErrorHandler(logger))
	return r
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accountId": AuthUserID(c), "role": AuthRole(c)})
}

func perform(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func tokenFor(t *testing.T, accountID, role string) string {
	t.Helper()
	token, err := utils.NewJWTUtil(testSecret, time.Hour).GenerateToken(accountID, role)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, time.Hour)
	r := newTestRouter()
	r.GET("/me", JWTAuthMiddleware(jwtUtil), ok)

	t.Run("valid token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/me", tokenFor(t, "acc-1", model.RoleUser), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"accountId":"acc-1","role":"User"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, apperr.KindUnauthenticated, body.Kind)
		assert.Equal(t, "authorization header required", body.Error)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid authorization header format", decodeError(t, w).Error)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := utils.NewJWTUtil("other", time.Hour).GenerateToken("acc-1", model.RoleUser)
		require.NoError(t, err)
		w := perform(r, http.MethodGet, "/me", other, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperr.KindUnauthenticated, decodeError(t, w).Kind)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &utils.JWTClaims{
			AccountID: "acc-1",
			Role:      model.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		w := perform(r, http.MethodGet, "/me", expired, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "token has expired", decodeError(t, w).Error)
	})
}

func TestAuthenticate_WrapsVerifierKind(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, time.Hour)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer not-a-jwt")

	err := Authenticate(jwtUtil).Apply(c)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.ErrorIs(t, err, apperr.ErrMalformed)
}

func TestRequireRoles(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, time.Hour)
	r := newTestRouter()
	r.GET("/hr", JWTAuthMiddleware(jwtUtil), HRMiddleware(), ok)
	r.GET("/any", JWTAuthMiddleware(jwtUtil), AnyRoleMiddleware(), ok)

	w := perform(r, http.MethodGet, "/hr", tokenFor(t, "acc-1", model.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperr.KindForbidden, decodeError(t, w).Kind)

	w = perform(r, http.MethodGet, "/hr", tokenFor(t, "hr-1", model.RoleCompanyHR), "")
	assert.Equal(t, http.StatusOK, w.Code)

	for _, role := range []string{model.RoleUser, model.RoleCompanyHR} {
		w = perform(r, http.MethodGet, "/any", tokenFor(t, "acc-1", role), "")
		assert.Equal(t, http.StatusOK, w.Code, role)
	}
}

func TestRequireRoles_WithoutAuthentication(t *testing.T) {
	r := newTestRouter()
	r.GET("/hr", HRMiddleware(), ok)

	w := perform(r, http.MethodGet, "/hr", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOwnership(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, time.Hour)
	owners := map[string]string{"job-1": "hr-a"}
	lookup := func(_ context.Context, id string) (string, error) {
		if id == "broken" {
			return "", errors.New("connection refused")
		}
		owner, found := owners[id]
		if !found {
			return "", apperr.NotFound("job not found")
		}
		return owner, nil
	}

	r := newTestRouter()
	r.DELETE("/jobs/:jobId", JWTAuthMiddleware(jwtUtil), HRMiddleware(), OwnershipMiddleware("jobId", lookup), ok)

	w := perform(r, http.MethodDelete, "/jobs/job-1", tokenFor(t, "hr-a", model.RoleCompanyHR), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodDelete, "/jobs/job-1", tokenFor(t, "hr-b", model.RoleCompanyHR), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperr.KindForbidden, decodeError(t, w).Kind)

	w = perform(r, http.MethodDelete, "/jobs/job-404", tokenFor(t, "hr-a", model.RoleCompanyHR), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "job not found", decodeError(t, w).Error)

	w = perform(r, http.MethodDelete, "/jobs/broken", tokenFor(t, "hr-a", model.RoleCompanyHR), "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, apperr.KindInternal, body.Kind)
	assert.Equal(t, "internal server error", body.Error)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestValidate(t *testing.T) {
	v := validation.New()
	r := newTestRouter()
	r.POST("/signin", ValidateMiddleware[model.SignInRequest](v), func(c *gin.Context) {
		req := Payload[model.SignInRequest](c)
		c.JSON(http.StatusOK, gin.H{"emailOrMobile": req.EmailOrMobile})
	})

	w := perform(r, http.MethodPost, "/signin", "", `{"emailOrMobile":"0123456789","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"emailOrMobile":"0123456789"}`, w.Body.String())

	w = perform(r, http.MethodPost, "/signin", "", `{"emailOrMobile":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, apperr.KindValidationFailed, body.Kind)
	assert.Len(t, body.Details, 2)

	w = perform(r, http.MethodPost, "/signin", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayload_MissingReturnsNil(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, Payload[model.SignInRequest](c))

	c.Set(PayloadKey, &model.SignUpRequest{})
	assert.Nil(t, Payload[model.SignInRequest](c))
}

func TestChain_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	step := func(name string, err error) Gate {
		return GateFunc(func(*gin.Context) error {
			ran = append(ran, name)
			return err
		})
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	err := Chain(step("a", nil), step("b", apperr.Forbidden("no")), step("c", nil)).Apply(c)

	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestErrorHandler_MapsHandlerErrors(t *testing.T) {
	r := newTestRouter()
	r.GET("/conflict", func(c *gin.Context) {
		AbortWithError(c, apperr.Conflict("email already in use"))
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("pool closed"))
	})

	w := perform(r, http.MethodGet, "/conflict", "", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email already in use", decodeError(t, w).Error)

	w = perform(r, http.MethodGet, "/internal", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}

func TestRecovery(t *testing.T) {
	r := newTestRouter()
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := perform(r, http.MethodGet, "/panic", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperr.KindInternal, decodeError(t, w).Kind)
}

func TestNotFoundHandler(t *testing.T) {
	r := newTestRouter()
	r.NoRoute(NotFoundHandler())

	w := perform(r, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperr.KindNotFound, decodeError(t, w).Kind)
}

func TestCORS(t *testing.T) {
	r := newTestRouter()
	r.Use(CORS())
	r.GET("/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodOptions, "/jobs", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(r, http.MethodGet, "/jobs", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
