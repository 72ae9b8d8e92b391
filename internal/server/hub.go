package server

import (
	"bytes"
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

const clientBuffer = 16

// Message types pushed to preview clients
const (
	MessagePreview = "preview"
	MessageStatus  = "status"
)

// PreviewMessage carries the selection and its assembled source
type PreviewMessage struct {
	Type       string   `json:"type"`
	Source     string   `json:"source"`
	Components []string `json:"components"`
}

// StatusMessage carries a progress or deployment status line
type StatusMessage struct {
	Type    string            `json:"type"`
	Stage   string            `json:"stage,omitempty"`
	Kind    domain.StatusKind `json:"kind"`
	Message string            `json:"message"`
}

type client struct {
	send chan []byte
}

type outbound struct {
	data    []byte
	preview bool
}

// Hub fans messages out to connected preview clients. New clients receive
// the latest preview immediately and a preview identical to the previous
// one is not sent again. A client that cannot keep up is dropped.
//
// Hub also implements usecase.ProgressSink so progress of work started by
// the server is pushed to the clients as status messages.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan outbound
	done       chan struct{}

	clients     map[*client]struct{}
	lastPreview []byte
	count       atomic.Int32
}

var _ usecase.ProgressSink = (*Hub)(nil)

// NewHub creates a hub. It delivers nothing until Run is called.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan outbound, 32),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
	}
}

// Run delivers messages until ctx is cancelled. On return every client's
// send channel is closed.
func (h *Hub) Run(ctx context.Context) error {
	defer func() {
		for c := range h.clients {
			close(c.send)
			delete(h.clients, c)
		}
		h.count.Store(0)
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int32(len(h.clients)))
			if h.lastPreview != nil {
				c.send <- h.lastPreview
			}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.count.Store(int32(len(h.clients)))
			}
		case msg := <-h.broadcast:
			if msg.preview {
				if bytes.Equal(msg.data, h.lastPreview) {
					continue
				}
				h.lastPreview = msg.data
			}
			for c := range h.clients {
				select {
				case c.send <- msg.data:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.count.Store(int32(len(h.clients)))
		}
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// subscribe registers a new client. It returns nil once the hub has stopped.
func (h *Hub) subscribe() *client {
	c := &client{send: make(chan []byte, clientBuffer)}
	select {
	case h.register <- c:
		return c
	case <-h.done:
		return nil
	}
}

func (h *Hub) unsubscribe(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// PublishPreview pushes a selection preview to every client
func (h *Hub) PublishPreview(source string, components []string) {
	if components == nil {
		components = []string{}
	}
	h.send(PreviewMessage{Type: MessagePreview, Source: source, Components: components}, true)
}

// PublishStatus pushes a status line to every client
func (h *Hub) PublishStatus(stage string, status domain.DeploymentStatus) {
	h.send(StatusMessage{Type: MessageStatus, Stage: stage, Kind: status.Kind, Message: status.Message}, false)
}

func (h *Hub) send(v any, preview bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- outbound{data: data, preview: preview}:
	case <-h.done:
	}
}

// OnProgress implements usecase.ProgressSink
func (h *Hub) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Message == "" {
		return
	}
	h.PublishStatus(event.Stage, domain.InfoStatus(event.Message))
}

// Info implements usecase.ProgressSink
func (h *Hub) Info(message string) {
	h.PublishStatus("", domain.InfoStatus(message))
}

// Error implements usecase.ProgressSink
func (h *Hub) Error(message string) {
	h.PublishStatus("", domain.DeploymentStatus{Kind: domain.StatusError, Message: message})
}
