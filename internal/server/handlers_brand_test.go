package server

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/synth"
	"github.com/jonathan/brandcraft/internal/types"
)

func TestGeneration_RequiresAuth(t *testing.T) {
	s, _ := newTestServer(t, nil)

	for _, path := range []string{
		"/api/brand-names", "/api/logo-generate", "/api/brand-identity",
		"/api/content-generate", "/api/sentiment-analyze", "/api/chat",
	} {
		w := doJSON(t, s, http.MethodPost, path, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestBrandNames(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/brand-names", token, types.BrandNameRequest{
		Industry: "tech", Keywords: "cloud, data", TargetAudience: "developers", Tone: "bold",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[types.BrandNameResponse](t, w)
	assert.Len(t, resp.BrandNames, 10)
	assert.Equal(t, "tech", resp.Industry)
	assert.Equal(t, "bold", resp.Tone)

	w = doJSON(t, s, http.MethodPost, "/api/brand-names", token, map[string]string{
		"keywords": "cloud", "target_audience": "developers", "tone": "bold",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "industry - required")

	w = doJSON(t, s, http.MethodPost, "/api/brand-names", token, types.BrandNameRequest{Tone: "bold"})
	require.Equal(t, http.StatusOK, w.Code, "empty strings are valid input")
	assert.Len(t, decodeBody[types.BrandNameResponse](t, w).BrandNames, 10)
}

func TestLogoGenerate(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/logo-generate", token, types.LogoRequest{
		BrandName: "Acme Co", Style: "tech", PrimaryColor: "#000000", SecondaryColor: "#ffffff",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[types.LogoResponse](t, w)
	require.Len(t, resp.Logos, 4)
	assert.Equal(t, "Acme Co", resp.BrandName)
	for _, logo := range resp.Logos {
		assert.NotContains(t, logo.URL, "#")
	}
}

func TestBrandIdentity(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/brand-identity", token, types.IdentityRequest{
		BrandName: "Acme", Industry: "bakery", TargetAudience: "home bakers",
	})
	require.Equal(t, http.StatusOK, w.Code)

	identity := decodeBody[synth.Identity](t, w)
	assert.Equal(t, s.engine.Identity("Acme", "bakery", "home bakers"), identity)
}

func TestContentGenerate_Persists(t *testing.T) {
	s, database := newTestServer(t, nil)
	token, user := registerAndLogin(t, s, "jane")
	ctx := context.Background()

	w := doJSON(t, s, http.MethodPost, "/api/content-generate", token, types.ContentRequest{
		BrandName: "Acme", ContentType: "blog", Tone: "bold", Keywords: "eco, vegan",
	})
	require.Equal(t, http.StatusOK, w.Code)
	piece := decodeBody[synth.ContentPiece](t, w)
	assert.Equal(t, s.engine.Content("Acme", "blog", "bold", "eco, vegan", "medium"), piece)

	saved, err := database.ListGeneratedContent(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "blog", saved[0].ContentType)
	assert.Equal(t, piece.Content, saved[0].ContentText)
	assert.Equal(t, "bold", saved[0].Tone)
	assert.False(t, saved[0].ProjectID.Valid)

	w = doJSON(t, s, http.MethodGet, "/api/content-history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeBody[[]db.GeneratedContent](t, w)
	assert.Len(t, history, 1)
}

func TestContentGenerate_ProjectOwnership(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ownerToken, _ := registerAndLogin(t, s, "owner")
	otherToken, _ := registerAndLogin(t, s, "other")

	w := doJSON(t, s, http.MethodPost, "/api/projects", ownerToken, types.ProjectRequest{Name: "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	project := decodeBody[db.Project](t, w)

	req := types.ContentRequest{BrandName: "Acme", ContentType: "email", ProjectID: &project.ID}
	w = doJSON(t, s, http.MethodPost, "/api/content-generate", otherToken, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/content-generate", ownerToken, req)
	assert.Equal(t, http.StatusOK, w.Code)

	missing := uuid.New()
	req.ProjectID = &missing
	w = doJSON(t, s, http.MethodPost, "/api/content-generate", ownerToken, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSentimentAnalyze_Persists(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/sentiment-analyze", token, types.SentimentRequest{
		Text: "great product, love the amazing service",
	})
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[synth.SentimentResult](t, w)
	assert.InDelta(t, 100, result.Positive+result.Neutral+result.Negative, 0.2)

	w = doJSON(t, s, http.MethodGet, "/api/sentiment-reports", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reports := decodeBody[[]db.SentimentReport](t, w)
	require.Len(t, reports, 1)
	assert.Equal(t, strings.Join(result.Suggestions, "; "), reports[0].Suggestions)
	assert.InDelta(t, result.BrandPerceptionScore, reports[0].BrandPerceptionScore, 1e-9)
	assert.Equal(t, "great product, love the amazing service", reports[0].InputText)
}

func TestSentimentAnalyze_EmptyText(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/sentiment-analyze", token, map[string]string{"text": ""})
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[synth.SentimentResult](t, w)
	assert.GreaterOrEqual(t, result.Positive, 30.0)
	assert.LessOrEqual(t, result.Positive, 45.0)
	assert.GreaterOrEqual(t, result.Negative, 20.0)
	assert.LessOrEqual(t, result.Negative, 35.0)

	w = doJSON(t, s, http.MethodPost, "/api/sentiment-analyze", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "text - required")
}

func TestSentimentReports_FilterByProject(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/projects", token, types.ProjectRequest{Name: "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	project := decodeBody[db.Project](t, w)

	doJSON(t, s, http.MethodPost, "/api/sentiment-analyze", token, types.SentimentRequest{Text: "fine"})
	w = doJSON(t, s, http.MethodPost, "/api/sentiment-analyze", token, types.SentimentRequest{Text: "bad", ProjectID: &project.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/sentiment-reports?project_id="+project.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reports := decodeBody[[]db.SentimentReport](t, w)
	require.Len(t, reports, 1)
	assert.Equal(t, "bad", reports[0].InputText)

	w = doJSON(t, s, http.MethodGet, "/api/sentiment-reports?project_id=nope", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_PersistsHistory(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")
	otherToken, _ := registerAndLogin(t, s, "other")

	w := doJSON(t, s, http.MethodPost, "/api/chat", token, types.ChatRequest{Message: "Help me with a SWOT analysis"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decodeBody[synth.ChatReply](t, w)
	assert.Equal(t, s.engine.Chat("Help me with a SWOT analysis", ""), reply)

	doJSON(t, s, http.MethodPost, "/api/chat", token, types.ChatRequest{Message: "hello"})

	w = doJSON(t, s, http.MethodGet, "/api/chat/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeBody[[]db.ChatMessage](t, w)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Message, "newest first")
	assert.Equal(t, reply.Response, history[1].Response)

	w = doJSON(t, s, http.MethodGet, "/api/chat/history", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]db.ChatMessage](t, w))
}

func TestChat_EmptyMessage(t *testing.T) {
	s, _ := newTestServer(t, nil)
	token, _ := registerAndLogin(t, s, "jane")

	w := doJSON(t, s, http.MethodPost, "/api/chat", token, map[string]string{"message": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.engine.Chat("", ""), decodeBody[synth.ChatReply](t, w))

	w = doJSON(t, s, http.MethodPost, "/api/chat", token, map[string]string{"context": "earlier"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message - required")
}
