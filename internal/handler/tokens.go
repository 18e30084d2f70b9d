// internal/handler/tokens.go
package handler

import (
	"net/http"

	"github.com/leolimasa/leolang/internal/serializer"
	"github.com/leolimasa/leolang/internal/service"
	"github.com/leolimasa/leolang/lang/lexer"
)

type TokenHandler struct {
	service *service.LexService
}

func NewTokenHandler(service *service.LexService) *TokenHandler {
	return &TokenHandler{
		service: service,
	}
}

// SourceRequest represents the request body of the lexing endpoints
type SourceRequest struct {
	Source string `json:"source"`
	Wrap   bool   `json:"wrap"`
}

type TokensResponse struct {
	BaseResponse
	Mode     service.Mode             `json:"mode"`
	Digest   string                   `json:"digest"`
	Rendered string                   `json:"rendered"`
	Tokens   []serializer.TokenRecord `json:"tokens"`
	Errors   []serializer.ErrorRecord `json:"errors"`
}

type ParseResponse struct {
	BaseResponse
	Digest string   `json:"digest"`
	Forms  []string `json:"forms"`
}

// Tokens lexes the source without the layout pass
func (h *TokenHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	var req SourceRequest
	if !decodeJSON(w, r, &req, bodyLimit(h.service.MaxSourceBytes())) {
		return
	}

	result, err := h.service.Tokenize(r.Context(), service.SourceInput{Source: req.Source})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tokensResponse(result))
}

// Layout lexes the source and converts indentation into delimiters
func (h *TokenHandler) Layout(w http.ResponseWriter, r *http.Request) {
	var req SourceRequest
	if !decodeJSON(w, r, &req, bodyLimit(h.service.MaxSourceBytes())) {
		return
	}

	result, err := h.service.Layout(r.Context(), service.SourceInput{Source: req.Source, Wrap: req.Wrap})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tokensResponse(result))
}

// Parse reads the source into s-expressions
func (h *TokenHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req SourceRequest
	if !decodeJSON(w, r, &req, bodyLimit(h.service.MaxSourceBytes())) {
		return
	}

	out, err := h.service.Parse(r.Context(), service.SourceInput{Source: req.Source, Wrap: req.Wrap})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ParseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Digest:       out.Digest,
		Forms:        out.Forms,
	})
}

func tokensResponse(result *service.Result) TokensResponse {
	return TokensResponse{
		BaseResponse: BaseResponse{Ok: len(result.Errors) == 0},
		Mode:         result.Mode,
		Digest:       result.Digest,
		Rendered:     lexer.Render(result.Tokens),
		Tokens:       serializer.ToRecords(result.Tokens),
		Errors:       serializer.ErrorRecords(result.Errors),
	}
}
