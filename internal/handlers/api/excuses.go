package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"excuses/internal/cache"
	"excuses/internal/engine"
	"excuses/internal/models"
	"excuses/internal/provider"
	"excuses/internal/validation"
)

// ExcuseHandler serves excuse generation and cache management.
type ExcuseHandler struct {
	provider *provider.Provider
	cache    *cache.LRU
}

// NewExcuseHandler creates a new excuse handler. c may be nil.
func NewExcuseHandler(p *provider.Provider, c *cache.LRU) *ExcuseHandler {
	return &ExcuseHandler{provider: p, cache: c}
}

// Generate produces an excuse for the posted situation.
func (h *ExcuseHandler) Generate(c fiber.Ctx) error {
	return h.produce(c, false)
}

// Another produces a fresh excuse, skipping the cache lookup.
func (h *ExcuseHandler) Another(c fiber.Ctx) error {
	return h.produce(c, true)
}

func (h *ExcuseHandler) produce(c fiber.Ctx, forceBypass bool) error {
	var body models.ExcuseRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateSituation(body.Situation); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	res := h.provider.Produce(c.Context(), body.Situation, provider.Request{
		BypassCache: body.BypassCache || forceBypass,
	})

	resp := models.ExcuseResponse{
		ID:        uuid.New(),
		Situation: body.Situation,
		Excuse:    res.Text,
		Source:    res.Source,
	}
	if res.Classification.Kind != "" {
		resp.Classification = res.Classification.String()
	}

	return jsonSuccess(c, resp)
}

// ClearCache empties the response cache.
func (h *ExcuseHandler) ClearCache(c fiber.Ctx) error {
	if h.cache == nil {
		return jsonSuccess(c, models.CacheClearResponse{})
	}
	n := h.cache.Len()
	h.cache.Clear()
	return jsonSuccess(c, models.CacheClearResponse{Cleared: n})
}

// Corpus lists the categories and phrases used on the fallback path.
func (h *ExcuseHandler) Corpus(c fiber.Ctx) error {
	cp := h.provider.Corpus()

	resp := models.CorpusResponse{
		Categories: make([]models.CategoryResponse, 0, len(cp.Categories)),
		Phrases:    make([]string, 0, len(cp.Specific)),
		Generic:    len(cp.Generic),
	}
	for _, cat := range cp.Categories {
		resp.Categories = append(resp.Categories, models.CategoryResponse{
			Name:     cat.Name,
			Keywords: cat.Keywords,
			Excuses:  len(cat.Excuses),
		})
	}
	for _, p := range cp.Specific {
		resp.Phrases = append(resp.Phrases, p.Key)
	}

	return jsonSuccess(c, resp)
}

// Classify reports how a situation would be classified without producing an excuse.
func (h *ExcuseHandler) Classify(c fiber.Ctx) error {
	situation := c.Query("situation")
	if valid, msg := validation.ValidateSituation(situation); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	return jsonSuccess(c, engine.Classify(h.provider.Corpus(), situation))
}
