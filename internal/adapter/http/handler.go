package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render/preview"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	docs    *usecase.Documents
	exports *usecase.Exporter
	skills  *usecase.Skills
	log     *slog.Logger
}

func NewHandler(docs *usecase.Documents, exports *usecase.Exporter, skills *usecase.Skills, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{docs: docs, exports: exports, skills: skills, log: log}
}

// Register mounts the document routes behind auth.
func (h *Handler) Register(r fiber.Router, auth fiber.Handler) {
	d := r.Group("/documents", auth)
	d.Get("/", h.ListDocuments)
	d.Post("/", h.CreateDocument)
	d.Get("/:id", h.GetDocument)
	d.Put("/:id", h.ReplaceDocument)
	d.Delete("/:id", h.DeleteDocument)
	d.Put("/:id/sections/:slug", h.SetSection)
	d.Get("/:id/preview", h.Preview)
	d.Get("/:id/export", h.ExportServer)
	d.Get("/:id/export/client", h.ExportClient)
	d.Post("/:id/skills/extract", h.ExtractSkills)
}

func (h *Handler) ListDocuments(c *fiber.Ctx) error {
	list, err := h.docs.List(c.UserContext(), ownerFrom(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

func (h *Handler) CreateDocument(c *fiber.Ctx) error {
	in, err := decodeInput(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	d, err := h.docs.Create(c.UserContext(), ownerFrom(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	d, err := h.docs.Get(c.UserContext(), ownerFrom(c), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func (h *Handler) ReplaceDocument(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	in, err := decodeInput(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	d, err := h.docs.Replace(c.UserContext(), ownerFrom(c), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func (h *Handler) DeleteDocument(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.docs.Delete(c.UserContext(), ownerFrom(c), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetSection replaces one section value. The body is the bare value in the
// kind's JSON shape.
func (h *Handler) SetSection(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	kind, ok := model.KindFromSlug(c.Params("slug"))
	if !ok {
		return h.fail(c, domain.Invalid("unknown section %q", c.Params("slug")))
	}
	body := c.Body()
	if err := model.ValidateSection(kind, body); err != nil {
		return h.fail(c, &domain.ValidationError{Message: err.Error()})
	}
	value, err := model.DecodeValue(kind, body)
	if err != nil {
		return h.fail(c, &domain.ValidationError{Message: err.Error()})
	}
	d, err := h.docs.SetSection(c.UserContext(), ownerFrom(c), id, kind, value)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

// Preview serves the editor page. ?edit=<slug> highlights a section and
// ?editable=false hides edit controls.
func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	opts := preview.Options{Editable: c.QueryBool("editable", true)}
	if k, ok := model.KindFromSlug(c.Query("edit")); ok {
		opts.Active = k
	}
	page, err := h.exports.Preview(c.UserContext(), ownerFrom(c), id, opts)
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(page)
}

func (h *Handler) ExportServer(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	out, err := h.exports.Server(c.UserContext(), ownerFrom(c), id)
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, out)
}

func (h *Handler) ExportClient(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	out, err := h.exports.Client(c.UserContext(), ownerFrom(c), id)
	if err != nil {
		return h.fail(c, err)
	}
	return sendPDF(c, out)
}

type extractReq struct {
	Text string `json:"text"`
}

func (h *Handler) ExtractSkills(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req extractReq
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.fail(c, domain.Invalid("invalid payload"))
	}
	d, err := h.skills.Extract(c.UserContext(), ownerFrom(c), id, req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(d)
}

func sendPDF(c *fiber.Ctx, out *usecase.Export) error {
	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.SendStream(bytes.NewReader(out.PDF), len(out.PDF))
}

func decodeInput(body []byte) (domain.DocumentInput, error) {
	var in domain.DocumentInput
	if err := model.ValidatePayload(body); err != nil {
		return in, &domain.ValidationError{Message: err.Error()}
	}
	if err := json.Unmarshal(body, &in); err != nil {
		return in, &domain.ValidationError{Message: err.Error()}
	}
	return in, nil
}

func documentID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// a malformed id cannot name an owned document
		return uuid.Nil, domain.DocumentNotFound()
	}
	return id, nil
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var he domain.HTTPError
	if !errors.As(err, &he) || he.StatusCode() >= fiber.StatusInternalServerError {
		h.log.Error("request failed", "method", c.Method(), "path", c.Path(), "owner_id", ownerFrom(c), "error", err)
	}
	return writeError(c, err)
}

func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var he domain.HTTPError
	if errors.As(err, &he) {
		status = he.StatusCode()
	}
	return c.Status(status).JSON(fiber.Map{"error": domain.PublicMessage(err)})
}

// Health is the unauthenticated liveness check.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
