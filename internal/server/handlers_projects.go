package server

import (
	"net/http"

	"github.com/jonathan/brandcraft/internal/types"
)

// ---------------------------------------------------------------------
// Project Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	project, err := s.db.CreateProject(r.Context(), currentUser(r).ID, req.Name, req.Description, s.engine.BrandStrengthScore())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, project)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.db.ListProjects(r.Context(), currentUser(r).ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	project, err := s.db.GetProject(r.Context(), currentUser(r).ID, projectID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var req types.ProjectRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	project, err := s.db.UpdateProject(r.Context(), currentUser(r).ID, projectID, req.Name, req.Description)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "id")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.db.DeleteProject(r.Context(), currentUser(r).ID, projectID); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.MessageResponse{Message: "Project deleted"})
}

// ---------------------------------------------------------------------
// Brand Kit Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateBrandAsset(w http.ResponseWriter, r *http.Request) {
	var req types.BrandAssetRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	if _, err := s.db.GetProject(r.Context(), currentUser(r).ID, req.ProjectID); err != nil {
		s.fail(w, r, err)
		return
	}

	asset, err := s.db.CreateBrandAsset(r.Context(), req.ProjectID, req.AssetType, req.AssetValue)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, asset)
}

func (s *Server) handleListBrandAssets(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if _, err := s.db.GetProject(r.Context(), currentUser(r).ID, projectID); err != nil {
		s.fail(w, r, err)
		return
	}

	assets, err := s.db.ListBrandAssets(r.Context(), projectID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, assets)
}

func (s *Server) handleDeleteBrandAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := pathUUID(r, "asset_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.db.DeleteBrandAsset(r.Context(), currentUser(r).ID, assetID); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.MessageResponse{Message: "Asset deleted"})
}
