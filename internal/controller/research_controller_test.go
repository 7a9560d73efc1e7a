package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubResearchService struct {
	lastRequest *dto.KeywordResearchRequest
}

func (s *stubResearchService) PerformResearch(ctx context.Context, userId uuid.UUID, req *dto.KeywordResearchRequest) (*entity.ResearchResults, error) {
	s.lastRequest = req
	return &entity.ResearchResults{
		Amazon:   []entity.KeywordResult{},
		Flipkart: []entity.KeywordResult{},
	}, nil
}

func (s *stubResearchService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ResearchHistoryResponse, error) {
	return []*dto.ResearchHistoryResponse{}, nil
}

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "seller@example.com",
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func newResearchTestApp(svc *stubResearchService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewResearchController(svc).RegisterRoutes(api)
	return app
}

func postResearch(t *testing.T, app *fiber.App, token string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/keyword-research", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestResearchEndpoint_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newResearchTestApp(&stubResearchService{})

	resp := postResearch(t, app, "", `{"seedKeyword":"headphones","platforms":["amazon"]}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestResearchEndpoint_RejectsMissingSeed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newResearchTestApp(&stubResearchService{})
	token := signTestToken(t, "test-secret")

	resp := postResearch(t, app, token, `{"platforms":["amazon"]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResearchEndpoint_RejectsMissingPlatforms(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &stubResearchService{}
	app := newResearchTestApp(svc)
	token := signTestToken(t, "test-secret")

	resp := postResearch(t, app, token, `{"seedKeyword":"headphones"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.lastRequest)
}

func TestResearchEndpoint_AcceptsEmptyPlatforms(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &stubResearchService{}
	app := newResearchTestApp(svc)
	token := signTestToken(t, "test-secret")

	resp := postResearch(t, app, token, `{"seedKeyword":"headphones","platforms":[]}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, svc.lastRequest)
	assert.NotNil(t, svc.lastRequest.Platforms)
	assert.Empty(t, svc.lastRequest.Platforms)

	var body struct {
		Data entity.ResearchResults `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Data.Amazon)
	assert.Empty(t, body.Data.Flipkart)
}
