package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vuxmai/product-updated-sink/internal/event"
	"github.com/vuxmai/product-updated-sink/internal/http/apierr"
)

const productUpdatedPath = "/integration/events/product-updated"

type eventHandler struct {
	logger *slog.Logger
}

func newEventHandler(logger *slog.Logger) *eventHandler {
	return &eventHandler{logger: logger}
}

type ackResponse struct {
	Message string `json:"message"`
}

// ProductUpdated receives a product-updated event, validates it and
// acknowledges receipt. The service is a terminal sink: accepted events are
// logged and discarded.
func (h *eventHandler) ProductUpdated(w http.ResponseWriter, r *http.Request) {
	var body any
	// UseNumber keeps pricePence exact so the integer check can tell 3 from 3.5.
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		h.logger.WarnContext(r.Context(), "invalid json body", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, apierr.InvalidJSONBody())
		return
	}

	ev, violations := event.ValidateProductUpdated(body)
	if len(violations) > 0 {
		h.logger.WarnContext(r.Context(), "product updated event rejected",
			slog.Any("details", violations))
		writeJSON(w, http.StatusBadRequest, apierr.Validation(violations))
		return
	}

	h.logger.InfoContext(r.Context(), "product updated event accepted",
		slog.String("product_id", ev.ID),
		slog.String("name", ev.Name),
		slog.Int64("price_pence", ev.PricePence),
		slog.String("updated_at", ev.UpdatedAt),
	)
	writeJSON(w, http.StatusAccepted, ackResponse{Message: "accepted"})
}
