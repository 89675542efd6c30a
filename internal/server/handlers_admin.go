package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/types"
)

// ---------------------------------------------------------------------
// Admin Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.db.ListUsers(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, users)
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.collectStats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// collectStats counts every table concurrently.
func (s *Server) collectStats(ctx context.Context) (*types.AdminStats, error) {
	stats := &types.AdminStats{}
	targets := []struct {
		table string
		dst   *int64
	}{
		{db.TableUsers, &stats.TotalUsers},
		{db.TableProjects, &stats.TotalProjects},
		{db.TableGeneratedContent, &stats.TotalContent},
		{db.TableSentimentReports, &stats.TotalReports},
		{db.TableChatHistory, &stats.TotalChats},
		{db.TableBrandAssets, &stats.TotalBrandAssets},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			n, err := s.db.Count(gctx, t.table)
			if err != nil {
				return err
			}
			*t.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}

	stats.ComputeAPICalls()
	return stats, nil
}

func (s *Server) handleAdminLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.db.ListAdminLogs(r.Context(), db.DefaultHistoryLimit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, logs)
}

// adminTarget loads the user named by the {id} path parameter.
func (s *Server) adminTarget(r *http.Request) (*db.User, error) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	user, err := s.db.GetUser(r.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, &ErrNotFound{Resource: "user"}
	}
	return user, err
}

func (s *Server) handleAdminToggleUser(w http.ResponseWriter, r *http.Request) {
	target, err := s.adminTarget(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	active := !target.IsActive
	if err := s.db.SetUserActive(r.Context(), target.ID, active); err != nil {
		s.fail(w, r, err)
		return
	}

	details := fmt.Sprintf("User %s active=%t", target.Username, active)
	adminID := uuid.NullUUID{UUID: currentUser(r).ID, Valid: true}
	if _, err := s.db.AddAdminLog(r.Context(), db.ActionUserToggled, details, adminID); err != nil {
		s.fail(w, r, err)
		return
	}

	message := "User suspended"
	if active {
		message = "User activated"
	}
	s.jsonResponse(w, http.StatusOK, types.SuspendResponse{Message: message, IsActive: active})
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	target, err := s.adminTarget(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if target.IsAdmin() {
		s.fail(w, r, &ErrValidation{Field: "id", Message: "cannot delete admin user"})
		return
	}

	entry := db.AuditEntry{
		Action:  db.ActionUserDeleted,
		Details: fmt.Sprintf("User %s deleted", target.Username),
		AdminID: uuid.NullUUID{UUID: currentUser(r).ID, Valid: true},
	}
	err = s.db.DeleteUserAudited(r.Context(), target.ID, entry)
	if errors.Is(err, db.ErrNotFound) {
		err = &ErrNotFound{Resource: "user"}
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.MessageResponse{Message: "User deleted"})
}
