package http

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/generator"
	"portfolio-builder/pkg/renderer"
)

// PortfolioStore is what the handlers need from persistence.
type PortfolioStore interface {
	Create(ctx context.Context, userID uuid.UUID, t model.Template) (*domain.Portfolio, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Portfolio, error)
	UpdateContent(ctx context.Context, id uuid.UUID, m model.ContentModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Portfolio, error)
}

// Snapshotter renders a finished HTML page to a PNG thumbnail.
type Snapshotter interface {
	RenderHTMLToPNG(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	store       PortfolioStore
	exporter    *usecase.Exporter
	deployer    *usecase.Deployer
	snapshotter Snapshotter
	log         *logrus.Entry
}

func NewHandler(store PortfolioStore, exporter *usecase.Exporter, deployer *usecase.Deployer, snapshotter Snapshotter) *Handler {
	return &Handler{
		store:       store,
		exporter:    exporter,
		deployer:    deployer,
		snapshotter: snapshotter,
		log:         logrus.WithField("component", "http"),
	}
}

// Register wires all routes onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)
	app.Get("/templates", h.ListTemplates)

	app.Post("/portfolios", h.CreatePortfolio)
	app.Get("/portfolios/:id", h.GetPortfolio)
	app.Put("/portfolios/:id", h.UpdatePortfolio)
	app.Delete("/portfolios/:id", h.DeletePortfolio)
	app.Get("/users/:id/portfolios", h.ListPortfolios)

	app.Post("/portfolios/:id/edits", h.ApplyEdits)
	app.Get("/portfolios/:id/preview", h.Preview)
	app.Post("/preview", h.PreviewContent)

	app.Post("/portfolios/:id/export", h.Export)
	app.Post("/portfolios/:id/deploy", h.Deploy)
	app.Post("/portfolios/:id/snapshot", h.Snapshot)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ListTemplates returns the template catalog for the picker screen.
func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": model.Templates()})
}

type createReq struct {
	UserID   string `json:"userId"`
	Template string `json:"template"`
}

type portfolioResp struct {
	ID      uuid.UUID          `json:"id"`
	UserID  uuid.UUID          `json:"userId"`
	Content model.ContentModel `json:"content"`
}

func toResp(p *domain.Portfolio) portfolioResp {
	return portfolioResp{ID: p.ID, UserID: p.UserID, Content: p.Content}
}

func (h *Handler) CreatePortfolio(c *fiber.Ctx) error {
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	t := model.Template(req.Template)
	if !t.Known() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown template", "templates": model.Templates()})
	}

	p, err := h.store.Create(c.Context(), uid, t)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toResp(p))
}

func (h *Handler) GetPortfolio(c *fiber.Ctx) error {
	p, ok := h.load(c)
	if !ok {
		return nil
	}
	return c.JSON(toResp(p))
}

// UpdatePortfolio replaces the whole content model. The replacement is
// validated against the content schema first, and the template is pinned:
// switching templates means starting a new portfolio.
func (h *Handler) UpdatePortfolio(c *fiber.Ctx) error {
	p, ok := h.load(c)
	if !ok {
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateMap(raw); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var m model.ContentModel
	if err := json.Unmarshal(c.Body(), &m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if m.Template != p.Content.Template {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "template cannot be changed"})
	}

	// deployment metadata is server-owned, never client-writable
	m.VercelProjectID = p.Content.VercelProjectID
	m.VercelDomain = p.Content.VercelDomain
	m = model.Normalize(m)

	if err := h.store.UpdateContent(c.Context(), p.ID, m); err != nil {
		return h.storeError(c, err)
	}
	p.Content = m
	return c.JSON(toResp(p))
}

func (h *Handler) DeletePortfolio(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.store.Delete(c.Context(), id); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ListPortfolios(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	list, err := h.store.ListByUser(c.Context(), uid)
	if err != nil {
		return h.storeError(c, err)
	}

	out := make([]portfolioResp, 0, len(list))
	for _, p := range list {
		out = append(out, toResp(p))
	}
	return c.JSON(fiber.Map{"portfolios": out})
}

type editsReq struct {
	Edits []model.Edit `json:"edits"`
}

// ApplyEdits applies a batch of editor operations and persists the
// result. Out-of-range or unknown operations are ignored, matching the
// in-browser editor.
func (h *Handler) ApplyEdits(c *fiber.Ctx) error {
	p, ok := h.load(c)
	if !ok {
		return nil
	}

	var req editsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(req.Edits) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no edits"})
	}

	m := model.ApplyEdits(p.Content, req.Edits)
	if err := h.store.UpdateContent(c.Context(), p.ID, m); err != nil {
		return h.storeError(c, err)
	}
	p.Content = m
	return c.JSON(toResp(p))
}

// Preview renders the stored portfolio as a full HTML page. With
// ?editable=true the page carries the editor decorations.
func (h *Handler) Preview(c *fiber.Ctx) error {
	p, ok := h.load(c)
	if !ok {
		return nil
	}

	page, err := renderer.Page(p.Content, renderer.Options{Editable: c.QueryBool("editable")})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// PreviewContent renders an unsaved content model, for live preview while
// editing.
func (h *Handler) PreviewContent(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateMap(raw); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var m model.ContentModel
	if err := json.Unmarshal(c.Body(), &m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	page, err := renderer.Page(m, renderer.Options{Editable: c.QueryBool("editable")})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// Export packages the generated site as a zip download.
func (h *Handler) Export(c *fiber.Ctx) error {
	p, ok := h.load(c)
	if !ok {
		return nil
	}

	res, err := h.exporter.Export(c.Context(), p.Content)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownTemplate) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.Archive)
}

// Deploy ships the generated site to the hosting provider. Partial
// failures report which step failed so the client can offer a targeted
// retry.
func (h *Handler) Deploy(c *fiber.Ctx) error {
	if h.deployer == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "deployment is not configured"})
	}

	p, ok := h.load(c)
	if !ok {
		return nil
	}

	res, err := h.deployer.Deploy(c.Context(), p)
	if err != nil {
		var step *usecase.DeployStepError
		if errors.As(err, &step) {
			if step.Step == usecase.StepPersist {
				// the site is live, only the metadata write failed
				return c.JSON(fiber.Map{
					"url":       res.URL,
					"projectId": res.ProjectID,
					"warning":   "deployment metadata was not persisted",
				})
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": step.Err.Error(), "step": step.Step})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": res.URL, "projectId": res.ProjectID})
}

// Snapshot renders the published page to a PNG thumbnail.
func (h *Handler) Snapshot(c *fiber.Ctx) error {
	if h.snapshotter == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "snapshots are not configured"})
	}

	p, ok := h.load(c)
	if !ok {
		return nil
	}

	page, err := renderer.Page(p.Content, renderer.Options{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// headless Chrome startup is flaky under load, retry with backoff
	var png []byte
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
		png, err = h.snapshotter.RenderHTMLToPNG(c.Context(), page)
		if err == nil {
			break
		}
		h.log.WithError(err).WithField("attempt", attempt+1).Warn("snapshot attempt failed")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "snapshot failed"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// load parses :id and fetches the portfolio, writing the error response
// itself when that fails.
func (h *Handler) load(c *fiber.Ctx) (*domain.Portfolio, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
		return nil, false
	}

	p, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		_ = h.storeError(c, err)
		return nil, false
	}
	return p, true
}

func (h *Handler) storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "portfolio not found"})
	case errors.Is(err, repository.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "storage unavailable"})
	default:
		h.log.WithError(err).Error("storage error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
