package prune

import (
	"errors"
	"strconv"

	"seedbox-mover/core/logger"
	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const msgNegativeDays = "days must not be negative"

// CandidatesResponse is returned by GET /candidates.
type CandidatesResponse struct {
	Days       int                   `json:"days"`
	Mode       reconcile.Mode        `json:"mode"`
	Invert     bool                  `json:"invert"`
	Candidates []reconcile.Candidate `json:"candidates"`
	Summary    reconcile.Summary     `json:"summary"`
}

// PruneRequest is the body of POST /prune.
type PruneRequest struct {
	Days   *int   `json:"days"`
	Mode   string `json:"mode"`
	Invert *bool  `json:"invert"`
	DryRun *bool  `json:"dry_run"`
}

// Handler handles HTTP requests for pruning.
type Handler struct {
	service *Service
	limits  server.Config
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, limits server.Config, logger *zap.Logger) *Handler {
	return &Handler{service: service, limits: limits, logger: logger}
}

// RegisterRoutes registers the prune routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/candidates", h.HandleCandidates)
	app.Post("/prune", h.HandlePrune)
}

// HandleCandidates lists deletion candidates without removing anything.
// @Summary List Candidates
// @Description Reconcile the download client with Radarr and list deletable media.
// @Tags prune
// @Produce json
// @Param days query int false "Retention threshold in days"
// @Param mode query string false "torrent, media or combined"
// @Param invert query bool false "Select torrents younger than days"
// @Success 200 {object} CandidatesResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Source Unavailable"
// @Router /candidates [get]
func (h *Handler) HandleCandidates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	req, err := h.service.Defaults()
	if err != nil {
		return h.fail(c, l, err)
	}
	if v := c.Query("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be an integer"})
		}
		req.Days = days
	}
	if v := c.Query("mode"); v != "" {
		if req.Mode, err = reconcile.ParseMode(v); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	req.Invert = c.QueryBool("invert", req.Invert)
	if req.Days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgNegativeDays})
	}
	req.Days = h.limits.ClampDays(req.Days)

	candidates, summary, err := h.service.Candidates(c.UserContext(), req)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(CandidatesResponse{
		Days:       req.Days,
		Mode:       req.Mode,
		Invert:     req.Invert,
		Candidates: candidates,
		Summary:    summary,
	})
}

// HandlePrune runs a prune. Runs are dry unless dry_run is explicitly false.
// @Summary Prune
// @Description Remove aged-out torrents from the download client.
// @Tags prune
// @Accept json
// @Produce json
// @Param request body PruneRequest false "Run options"
// @Success 200 {object} reconcile.RunReport
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Source Unavailable"
// @Router /prune [post]
func (h *Handler) HandlePrune(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	req, err := h.service.Defaults()
	if err != nil {
		return h.fail(c, l, err)
	}

	var body PruneRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if body.Days != nil {
		req.Days = *body.Days
	}
	if body.Mode != "" {
		if req.Mode, err = reconcile.ParseMode(body.Mode); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if body.Invert != nil {
		req.Invert = *body.Invert
	}
	if body.DryRun != nil {
		req.DryRun = *body.DryRun
	}
	if req.Days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgNegativeDays})
	}
	req.Days = h.limits.ClampDays(req.Days)

	rep, err := h.service.Run(c.UserContext(), req)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(rep)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, reconcile.ErrSourceUnavailable) {
		status = fiber.StatusBadGateway
	}
	l.Error("Prune request failed", zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
