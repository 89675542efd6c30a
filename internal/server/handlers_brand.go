package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/types"
)

// ---------------------------------------------------------------------
// Generation Handlers
// ---------------------------------------------------------------------

func (s *Server) handleBrandNames(w http.ResponseWriter, r *http.Request) {
	var req types.BrandNameRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BrandNameResponse{
		BrandNames: s.engine.BrandNames(req.Industry, req.Keywords, req.TargetAudience, req.Tone),
		Industry:   req.Industry,
		Tone:       req.Tone,
	})
}

func (s *Server) handleLogoGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.LogoRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LogoResponse{
		Logos:     s.engine.Logos(req.BrandName, req.Style, req.PrimaryColor, req.SecondaryColor),
		BrandName: req.BrandName,
		Style:     req.Style,
	})
}

func (s *Server) handleBrandIdentity(w http.ResponseWriter, r *http.Request) {
	var req types.IdentityRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Identity(req.BrandName, req.Industry, req.TargetAudience))
}

// ownedProject resolves an optional project reference, requiring the caller to own it.
func (s *Server) ownedProject(r *http.Request, projectID *uuid.UUID) (uuid.NullUUID, error) {
	if projectID == nil {
		return uuid.NullUUID{}, nil
	}
	if _, err := s.db.GetProject(r.Context(), currentUser(r).ID, *projectID); err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: *projectID, Valid: true}, nil
}

func (s *Server) handleContentGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.ContentRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	req.Normalize()

	projectID, err := s.ownedProject(r, req.ProjectID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	piece := s.engine.Content(req.BrandName, req.ContentType, req.Tone, req.Keywords, req.Length)
	err = s.db.SaveGeneratedContent(r.Context(), &db.GeneratedContent{
		ProjectID:   projectID,
		UserID:      currentUser(r).ID,
		ContentType: req.ContentType,
		ContentText: piece.Content,
		Tone:        req.Tone,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, piece)
}

func (s *Server) handleContentHistory(w http.ResponseWriter, r *http.Request) {
	items, err := s.db.ListGeneratedContent(r.Context(), currentUser(r).ID, db.DefaultHistoryLimit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, items)
}

func (s *Server) handleSentimentAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.SentimentRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	projectID, err := s.ownedProject(r, req.ProjectID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	result := s.engine.Sentiment(req.Text)
	err = s.db.SaveSentimentReport(r.Context(), &db.SentimentReport{
		ProjectID:            projectID,
		UserID:               currentUser(r).ID,
		InputText:            req.Text,
		PositivePct:          result.Positive,
		NeutralPct:           result.Neutral,
		NegativePct:          result.Negative,
		BrandPerceptionScore: result.BrandPerceptionScore,
		Suggestions:          strings.Join(result.Suggestions, "; "),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleSentimentReports(w http.ResponseWriter, r *http.Request) {
	var projectID uuid.NullUUID
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.fail(w, r, &ErrValidation{Field: "project_id", Message: "invalid UUID"})
			return
		}
		projectID = uuid.NullUUID{UUID: id, Valid: true}
	}

	reports, err := s.db.ListSentimentReports(r.Context(), currentUser(r).ID, projectID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, reports)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	reply := s.engine.Chat(req.Message, req.Context)
	err := s.db.SaveChatMessage(r.Context(), &db.ChatMessage{
		UserID:   currentUser(r).ID,
		Message:  req.Message,
		Response: reply.Response,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, reply)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := s.db.ListChatHistory(r.Context(), currentUser(r).ID, db.DefaultHistoryLimit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, messages)
}
