package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"golang.org/x/text/message"

	"svw.info/bingo/internal/board"
	"svw.info/bingo/internal/domain"
	"svw.info/bingo/internal/i18n"
	"svw.info/bingo/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// Lang is the server default, used when the request states no preference.
	Lang string
}

func New(uc *usecase.Service, lang string) *Handler { return &Handler{UC: uc, Lang: lang} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/card", h.handleCard)
	mux.HandleFunc("/api/mark", h.handleMark)
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/hint", h.handleHint)
}

func (h *Handler) printer(r *http.Request) *message.Printer {
	return i18n.Printer(i18n.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.Lang))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNoCard):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResp{Error: msg})
}

// ---- Card ----

type cardResp struct {
	State      *usecase.Snapshot `json:"state,omitempty"`
	FreeLabel  string            `json:"freeLabel,omitempty"`
	Attempts   int               `json:"attempts,omitempty"`
	DurationMs int64             `json:"durationMs,omitempty"`
}

func (h *Handler) handleCard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	snap, st, err := h.UC.NewCard(r.Context())
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(cardResp{
		State:      &snap,
		FreeLabel:  h.printer(r).Sprintf(i18n.KeyFree),
		Attempts:   st.Attempts,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Mark ----

type markReq struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type eventResp struct {
	domain.LineEvent
	Message string `json:"message"`
}

type markResp struct {
	Events []eventResp       `json:"events"`
	State  *usecase.Snapshot `json:"state,omitempty"`
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req markReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeErr(w, http.StatusBadRequest, "missing body")
			return
		}
		writeErr(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Row == nil || req.Col == nil {
		writeErr(w, http.StatusBadRequest, "row and col are required")
		return
	}
	events, snap, err := h.UC.Mark(r.Context(), *req.Row, *req.Col)
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	p := h.printer(r)
	out := markResp{Events: make([]eventResp, 0, len(events)), State: &snap}
	for _, ev := range events {
		key := i18n.KeyReach
		if ev.Kind == domain.EventBingo {
			key = i18n.KeyBingo
		}
		out.Events = append(out.Events, eventResp{LineEvent: ev, Message: p.Sprintf(key)})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// ---- State ----

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	snap, err := h.UC.Snapshot(r.Context())
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(cardResp{State: &snap, FreeLabel: h.printer(r).Sprintf(i18n.KeyFree)})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	hh, ok, err := h.UC.Hint(r.Context())
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	if ok {
		hh.Message = h.printer(r).Sprintf(i18n.KeyHint, len(hh.Cells))
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}
