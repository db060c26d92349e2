// Package api exposes conversion and stored automata over HTTP with fiber.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"
	"github.com/meikuraledutech/automata"
	"github.com/meikuraledutech/automata/graph"
)

// Handler serves the HTTP API on top of a Store.
type Handler struct {
	store automata.Store
	opts  []automata.Option
}

// New creates a Handler. opts are passed to every conversion.
func New(store automata.Store, opts ...automata.Option) *Handler {
	return &Handler{store: store, opts: opts}
}

type createRequest struct {
	Name string       `json:"name"`
	NFA  automata.NFA `json:"nfa"`
}

type runRequest struct {
	Input []string `json:"input"`
}

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	// ── Stateless conversion ──────────────────────────────────────────
	r.Post("/convert", h.convert)
	r.Post("/convert/form", h.convertForm)

	// ── Schema ────────────────────────────────────────────────────────
	r.Post("/schema", func(c fiber.Ctx) error {
		if err := h.store.CreateSchema(c.Context()); err != nil {
			return internal(c, err)
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})
	r.Delete("/schema", func(c fiber.Ctx) error {
		if err := h.store.DropSchema(c.Context()); err != nil {
			return internal(c, err)
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Conversions ───────────────────────────────────────────────────
	r.Post("/conversions", h.createConversion)
	r.Get("/conversions", h.listConversions)
	r.Get("/conversions/:id", h.getConversion)
	r.Delete("/conversions/:id", func(c fiber.Ctx) error {
		if err := h.store.DeleteConversion(c.Context(), c.Params("id")); err != nil {
			return internal(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	r.Get("/conversions/:id/states", h.listStates)
	r.Get("/conversions/:id/transitions", h.listTransitions)
	r.Get("/conversions/:id/dot", h.render(graph.DOT, "text/vnd.graphviz; charset=utf-8"))
	r.Get("/conversions/:id/mermaid", h.render(graph.Mermaid, "text/plain; charset=utf-8"))
	r.Post("/conversions/:id/run", h.run)
}

func (h *Handler) convert(c fiber.Ctx) error {
	var nfa automata.NFA
	if err := c.Bind().JSON(&nfa); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	dfa, err := automata.Convert(&nfa, h.opts...)
	if err != nil {
		return conversionFailed(c, err)
	}
	return c.JSON(dfa)
}

func (h *Handler) convertForm(c fiber.Ctx) error {
	var in automata.FormInput
	if err := c.Bind().Form(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form"})
	}
	nfa, err := automata.ParseNFA(in)
	if err != nil {
		return conversionFailed(c, err)
	}
	dfa, err := automata.Convert(nfa, h.opts...)
	if err != nil {
		return conversionFailed(c, err)
	}
	return c.JSON(fiber.Map{"nfa": nfa, "dfa": dfa})
}

func (h *Handler) createConversion(c fiber.Ctx) error {
	var req createRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	dfa, err := automata.Convert(&req.NFA, h.opts...)
	if err != nil {
		return conversionFailed(c, err)
	}
	conv := &automata.Conversion{Name: req.Name, NFA: req.NFA, DFA: *dfa}
	if _, err := h.store.SaveConversion(c.Context(), conv); err != nil {
		return internal(c, err)
	}
	log.Infof("saved conversion %s: %d NFA states -> %d DFA states", conv.ID, len(req.NFA.States), len(dfa.States))
	return c.Status(fiber.StatusCreated).JSON(conv)
}

func (h *Handler) listConversions(c fiber.Ctx) error {
	convs, err := h.store.ListConversions(c.Context())
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(convs)
}

func (h *Handler) getConversion(c fiber.Ctx) error {
	conv, err := h.lookup(c)
	if err != nil {
		return err
	}
	if conv == nil {
		return nil
	}
	return c.JSON(conv)
}

func (h *Handler) listStates(c fiber.Ctx) error {
	states, err := h.store.ListStates(c.Context(), c.Params("id"))
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(states)
}

func (h *Handler) listTransitions(c fiber.Ctx) error {
	edges, err := h.store.ListTransitions(c.Context(), c.Params("id"))
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(edges)
}

// render serves a diagram of the stored DFA, or of the NFA with ?source=nfa.
func (h *Handler) render(format func(*graph.Graph) string, contentType string) fiber.Handler {
	return func(c fiber.Ctx) error {
		conv, err := h.lookup(c)
		if err != nil || conv == nil {
			return err
		}
		var g *graph.Graph
		switch c.Query("source", "dfa") {
		case "dfa":
			g = graph.FromDFA(&conv.DFA)
		case "nfa":
			g = graph.FromNFA(&conv.NFA)
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source must be dfa or nfa"})
		}
		c.Set(fiber.HeaderContentType, contentType)
		return c.SendString(format(g))
	}
}

func (h *Handler) run(c fiber.Ctx) error {
	var req runRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	conv, err := h.lookup(c)
	if err != nil || conv == nil {
		return err
	}
	path, accepted := conv.DFA.Trace(req.Input)
	return c.JSON(fiber.Map{"accepted": accepted, "path": path})
}

// lookup loads the conversion named by :id. When it returns a nil
// conversion the response has already been written.
func (h *Handler) lookup(c fiber.Ctx) (*automata.Conversion, error) {
	conv, err := h.store.GetConversion(c.Context(), c.Params("id"))
	if err != nil {
		return nil, internal(c, err)
	}
	if conv == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": automata.ErrConversionNotFound.Error()})
	}
	return conv, nil
}

func conversionFailed(c fiber.Ctx, err error) error {
	var pe *automata.ParseError
	switch {
	case errors.As(err, &pe):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "field": pe.Field, "line": pe.Line})
	case errors.Is(err, automata.ErrTooManyStates), automata.IsMalformed(err):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		return internal(c, err)
	}
}

func internal(c fiber.Ctx, err error) error {
	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
