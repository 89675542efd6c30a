package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/server/middleware"
	"github.com/jonathan/brandcraft/internal/types"
)

type currentUserKey struct{}

// requireUser authenticates the bearer token and loads the account it names.
// The stored role replaces the role in the token so promotions apply immediately.
func (s *Server) requireUser(next http.Handler) http.Handler {
	load := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := s.db.GetUser(r.Context(), userID)
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusUnauthorized, "user no longer exists")
			return
		}
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if !user.IsActive {
			s.fail(w, r, &ErrAccountSuspended{})
			return
		}

		ctx := middleware.WithRole(r.Context(), user.Role)
		ctx = context.WithValue(ctx, currentUserKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(load)
}

// currentUser returns the account loaded by requireUser.
func currentUser(r *http.Request) *db.User {
	user, _ := r.Context().Value(currentUserKey{}).(*db.User)
	return user
}

// decodeRequest reads a JSON body into req, checks that every field tagged
// presence:"required" was sent, and runs its validation tags.
func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &ErrValidation{Field: "body", Message: "request body is empty"}
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	missing, err := types.MissingField(raw, req)
	if err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if missing != "" {
		return &ErrValidation{Field: missing, Message: "required"}
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError converts validator errors into an ErrValidation for the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: name, Message: fmt.Sprintf("invalid UUID %q", r.PathValue(name))}
	}
	return id, nil
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	user, err := s.userService.Register(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, user)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	user, err := s.userService.Login(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// handleMe returns the authenticated account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, currentUser(r))
}
