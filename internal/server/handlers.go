package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

const writeWait = 10 * time.Second

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Contract string `json:"contract"`
}

type errorResponse struct {
	Error  string                   `json:"error"`
	Status *domain.DeploymentStatus `json:"status,omitempty"`
}

type selectionResponse struct {
	Components []*domain.ComponentDefinition `json:"components"`
	Source     string                        `json:"source"`
	Changed    bool                          `json:"changed"`
}

type appendRequest struct {
	ID string `json:"id"`
}

type removeRequest struct {
	Index *int `json:"index"`
}

type moveRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type deployRequest struct {
	Network    string `json:"network"`
	VerifyCode bool   `json:"verifyCode"`
}

type deployResponse struct {
	Deployment *domain.Deployment      `json:"deployment"`
	Status     domain.DeploymentStatus `json:"status"`
}

type networkResponse struct {
	Name    string                    `json:"name"`
	Testnet bool                      `json:"testnet"`
	Default bool                      `json:"default"`
	Network *domain.NetworkDescriptor `json:"network"`
	Error   string                    `json:"error,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	// An unreadable body is treated the same as a missing prompt
	_ = decodeJSON(w, r, &req)

	result, err := s.app.GenerateContract.Run(r.Context(), usecase.GenerateContractParams{Prompt: req.Prompt})
	switch {
	case errors.Is(err, domain.ErrEmptyPrompt):
		writeError(w, http.StatusBadRequest, "Prompt is required")
	case err != nil:
		logger(r).Error("contract generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate contract")
	default:
		writeJSON(w, http.StatusOK, generateResponse{Contract: result.Contract})
	}
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	result, err := s.app.ListComponents.Run(r.Context(), usecase.ListComponentsParams{
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result.Components)
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	s.respondSelection(w, r, usecase.ManageSelectionParams{Operation: usecase.SelectionShow})
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req appendRequest
	if err := decodeJSON(w, r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Component id is required")
		return
	}
	s.respondSelection(w, r, usecase.ManageSelectionParams{
		Operation: usecase.SelectionAppend,
		IDs:       []string{req.ID},
	})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Index == nil {
		writeError(w, http.StatusBadRequest, "Index is required")
		return
	}
	s.respondSelection(w, r, usecase.ManageSelectionParams{
		Operation: usecase.SelectionRemove,
		Index:     *req.Index,
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil || req.From == nil || req.To == nil {
		writeError(w, http.StatusBadRequest, "From and to are required")
		return
	}
	s.respondSelection(w, r, usecase.ManageSelectionParams{
		Operation: usecase.SelectionMove,
		From:      *req.From,
		To:        *req.To,
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.respondSelection(w, r, usecase.ManageSelectionParams{Operation: usecase.SelectionClear})
}

func (s *Server) respondSelection(w http.ResponseWriter, r *http.Request, params usecase.ManageSelectionParams) {
	result, err := s.editSelection(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		logger(r).Error("selection operation failed", "operation", params.Operation, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	components := result.Components
	if components == nil {
		components = []*domain.ComponentDefinition{}
	}
	writeJSON(w, http.StatusOK, selectionResponse{
		Components: components,
		Source:     result.Source,
		Changed:    result.Changed,
	})
}

func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	result, err := s.app.AssembleSource.Run(r.Context(), usecase.AssembleSourceParams{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Source))
}

func (s *Server) handleDeploy(w http.ResponseWriter, r *http.Request) {
	var req deployRequest
	_ = decodeJSON(w, r, &req)

	if !s.deploying.TryLock() {
		writeError(w, http.StatusConflict, "A deployment is already in progress")
		return
	}
	defer s.deploying.Unlock()

	result, err := s.app.DeployContract.Run(r.Context(), usecase.DeployParams{
		Network:    req.Network,
		VerifyCode: req.VerifyCode,
	})
	if err != nil {
		status := domain.StatusFromError(err)
		if errors.Is(err, domain.ErrWalletMissing) || errors.Is(err, domain.ErrEmptySelection) {
			status.Message = err.Error()
		}
		s.hub.PublishStatus("", status)
		writeJSON(w, deployStatusCode(err), errorResponse{Error: status.Message, Status: &status})
		return
	}

	s.hub.PublishStatus("", result.Status)
	writeJSON(w, http.StatusOK, deployResponse{Deployment: result.Deployment, Status: result.Status})
}

// deployStatusCode maps a deployment failure to an HTTP status
func deployStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrWalletMissing), errors.Is(err, domain.ErrEmptySelection):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrNetworkNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserRejected):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	result, err := s.app.ListNetworks.Run(r.Context(), usecase.ListNetworksParams{
		Check: r.URL.Query().Get("check") == "true",
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]networkResponse, 0, len(result.Networks))
	for _, n := range result.Networks {
		item := networkResponse{
			Name:    n.Network.Name,
			Testnet: n.Network.Testnet,
			Default: n.Network.Name == result.Default,
			Network: n.Network,
		}
		if n.Error != nil {
			item.Error = n.Error.Error()
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePreviewSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.app.Config.Server.AllowedOrigins,
	})
	if err != nil {
		logger(r).Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.CloseNow()

	// Clients only listen, CloseRead handles control frames and reports the
	// peer going away through ctx
	ctx := conn.CloseRead(r.Context())

	c := s.hub.subscribe()
	if c == nil {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer s.hub.unsubscribe(c)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := writeMessage(ctx, conn, msg); err != nil {
				return
			}
		}
	}
}

func writeMessage(ctx context.Context, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
