package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/ghosthex/pkg/codec"
	"github.com/ssargent/ghosthex/pkg/storage"
	"go.uber.org/zap"
)

const maxListLimit = 100

// Server holds the API server state
type Server struct {
	codec   *codec.Codec
	store   storage.DropStore
	config  ServerConfig
	metrics *Metrics
	logger  *zap.Logger
}

// NewServer creates a new API server. store may be nil, which disables the drop routes.
func NewServer(store storage.DropStore, config ServerConfig, metrics *Metrics, logger *zap.Logger) *Server {
	var opts []codec.Option
	if config.AllowEmptyCarrier {
		opts = append(opts, codec.WithAllowEmptyCarrier())
	}
	if config.Strict {
		opts = append(opts, codec.WithStrict())
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		codec:   codec.NewCodec(opts...),
		store:   store,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode godoc
//
//	@Summary		Hide a payload
//	@Description	Append the payload, encoded as variation selectors, to the carrier text
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EncodeRequest	true	"Carrier and payload"
//	@Param			stylize	query		bool			false	"Render the status message with styled glyphs"
//	@Success		200		{object}	EncodeResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/encode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if !s.decodeBody(w, r, &req) {
		s.metrics.RecordCodecOperation("encode", false, 0)
		return
	}

	resp, ok := s.hide(w, r, req)
	if !ok {
		return
	}
	sendSuccess(w, resp)
}

// handleDecode godoc
//
//	@Summary		Reveal a payload
//	@Description	Split text into its visible carrier and the payload held in trailing variation selectors
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DecodeRequest	true	"Text to decode"
//	@Param			stylize	query		bool			false	"Render the status message with styled glyphs"
//	@Success		200		{object}	DecodeResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if !s.decodeBody(w, r, &req) {
		s.metrics.RecordCodecOperation("decode", false, 0)
		return
	}

	sendSuccess(w, s.reveal(r, req.Text))
}

// handleCreateDrop godoc
//
//	@Summary		Store a drop
//	@Description	Hide the payload in the carrier and store the resulting text under a new id
//	@Tags			drops
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EncodeRequest	true	"Carrier and payload"
//	@Success		201		{object}	DropResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/drops [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateDrop(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var req EncodeRequest
	if !s.decodeBody(w, r, &req) {
		s.metrics.RecordDropOperation("create", false)
		return
	}

	encoded, ok := s.hide(w, r, req)
	if !ok {
		s.metrics.RecordDropOperation("create", false)
		return
	}

	drop, err := s.store.Create(encoded.Text)
	if err != nil {
		s.metrics.RecordDropOperation("create", false)
		s.logger.Error("failed to store drop", zap.Error(err))
		sendError(w, fmt.Sprintf("Failed to store drop: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordDropOperation("create", true)
	sendCreated(w, DropResponse{
		ID:        drop.ID,
		Text:      drop.Text,
		CreatedAt: drop.CreatedAt,
		Encoded:   encoded,
	})
}

// handleGetDrop godoc
//
//	@Summary		Read a drop
//	@Description	Return a stored drop together with its decoded carrier and payload
//	@Tags			drops
//	@Produce		json
//	@Param			id	path		string	true	"Drop id (KSUID)"
//	@Success		200	{object}	DropResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/drops/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetDrop(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id, ok := parseDropID(w, r)
	if !ok {
		s.metrics.RecordDropOperation("get", false)
		return
	}

	drop, err := s.store.Read(id)
	if err != nil {
		s.metrics.RecordDropOperation("get", false)
		s.sendStoreError(w, err)
		return
	}

	s.metrics.RecordDropOperation("get", true)
	sendSuccess(w, DropResponse{
		ID:        drop.ID,
		Text:      drop.Text,
		CreatedAt: drop.CreatedAt,
		Decoded:   s.reveal(r, drop.Text),
	})
}

// handleDeleteDrop godoc
//
//	@Summary		Delete a drop
//	@Tags			drops
//	@Produce		json
//	@Param			id	path		string	true	"Drop id (KSUID)"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/drops/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteDrop(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id, ok := parseDropID(w, r)
	if !ok {
		s.metrics.RecordDropOperation("delete", false)
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.metrics.RecordDropOperation("delete", false)
		s.sendStoreError(w, err)
		return
	}

	s.metrics.RecordDropOperation("delete", true)
	sendSuccess(w, map[string]string{"message": "Drop deleted successfully"})
}

// handleListDrops godoc
//
//	@Summary		List drops
//	@Description	List stored drops, newest first
//	@Tags			drops
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of drops (default 100)"
//	@Success		200		{array}		DropResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/drops [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListDrops(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	limit := maxListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > maxListLimit {
			s.metrics.RecordDropOperation("list", false)
			sendError(w, fmt.Sprintf("limit must be between 1 and %d", maxListLimit), http.StatusBadRequest)
			return
		}
		limit = n
	}

	drops, err := s.store.List(limit)
	if err != nil {
		s.metrics.RecordDropOperation("list", false)
		s.sendStoreError(w, err)
		return
	}

	out := make([]DropResponse, 0, len(drops))
	for _, d := range drops {
		out = append(out, DropResponse{ID: d.ID, Text: d.Text, CreatedAt: d.CreatedAt})
	}

	s.metrics.RecordDropOperation("list", true)
	sendSuccess(w, out)
}

// hide runs the codec for req, writing the error response itself on failure
func (s *Server) hide(w http.ResponseWriter, r *http.Request, req EncodeRequest) (*EncodeResponse, bool) {
	text, res, err := s.codec.Hide(req.Carrier, req.Payload)
	if err != nil {
		s.metrics.RecordCodecOperation("encode", false, 0)
		if errors.Is(err, codec.ErrCarrierRequired) || errors.Is(err, codec.ErrNonASCII) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		sendError(w, fmt.Sprintf("Failed to encode: %v", err), http.StatusInternalServerError)
		return nil, false
	}

	s.metrics.RecordCodecOperation("encode", true, res.Count)
	s.metrics.RecordSkipped(len(res.Skipped))
	if len(res.Skipped) > 0 {
		s.logger.Debug("non-ASCII payload characters skipped",
			zap.Strings("skipped", res.Skipped),
			zap.Int("encoded", res.Count),
		)
	}

	return &EncodeResponse{
		Text:         text,
		EncodedCount: res.Count,
		Skipped:      res.Skipped,
		Status:       styleStatus(r, codec.Describe(res)),
	}, true
}

func (s *Server) reveal(r *http.Request, text string) *DecodeResponse {
	res := s.codec.Reveal(text)
	s.metrics.RecordCodecOperation("decode", true, res.Count)

	return &DecodeResponse{
		Carrier:        res.Carrier,
		Payload:        res.Payload,
		RecoveredCount: res.Count,
		Status:         styleStatus(r, codec.DescribeDecode(res)),
	}
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			sendError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		sendError(w, "Drop storage is disabled", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) sendStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		sendError(w, "Drop not found", http.StatusNotFound)
		return
	}
	s.logger.Error("drop store failure", zap.Error(err))
	sendError(w, fmt.Sprintf("Drop store failure: %v", err), http.StatusInternalServerError)
}

func parseDropID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid drop id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

// styleStatus renders the status message with styled glyphs when ?stylize=true
func styleStatus(r *http.Request, st codec.Status) codec.Status {
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("stylize")); ok {
		st.Message = codec.Stylize(st.Message)
	}
	return st
}
