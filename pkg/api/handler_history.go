package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/loomhq/loom/pkg/models"
)

// listBranchesHandler handles GET /api/v1/sessions/:id/branches.
func (s *Server) listBranchesHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	branches, err := s.snapshotService.BranchFamily(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, branches)
}

// listSnapshotsHandler handles GET /api/v1/sessions/:id/branches/:branch/snapshots.
// Tombstoned snapshots are excluded unless include_inactive=true.
func (s *Server) listSnapshotsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	branchName := c.Param("branch")
	if sessionID == "" || branchName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id and branch name are required")
	}

	includeInactive := c.QueryParam("include_inactive") == "true"
	snaps, err := s.snapshotService.ListSnapshots(c.Request().Context(), sessionID, branchName, includeInactive)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snaps)
}

// branchFamilyHandler handles GET /api/v1/sessions/:id/messages/:messageId/branches.
// For one user message it returns every branch holding a snapshot that
// answers it, so the client can cycle among the alternatives.
func (s *Server) branchFamilyHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	messageID := c.Param("messageId")
	if sessionID == "" || messageID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id and message id are required")
	}

	snaps, err := s.snapshotService.SnapshotsForMessage(c.Request().Context(), sessionID, messageID)
	if err != nil {
		return mapServiceError(err)
	}

	refs := make([]models.BranchRef, 0, len(snaps))
	for _, snap := range snaps {
		refs = append(refs, models.BranchRef{
			BranchName:    snap.BranchName,
			SnapshotID:    snap.ID,
			SnapshotIndex: snap.SnapshotIndex,
			IsActive:      snap.IsActive,
		})
	}
	return c.JSON(http.StatusOK, refs)
}

// getSnapshotHandler handles GET /api/v1/snapshots/:id.
func (s *Server) getSnapshotHandler(c *echo.Context) error {
	snapshotID := c.Param("id")
	if snapshotID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "snapshot id is required")
	}

	snap, err := s.snapshotService.GetSnapshot(c.Request().Context(), snapshotID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}
