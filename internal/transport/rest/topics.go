package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/topiclog/internal/domain"
	"github.com/heartmarshall/topiclog/internal/service/topic"
	"github.com/heartmarshall/topiclog/pkg/ctxutil"
)

type topicService interface {
	AddTopic(ctx context.Context, input topic.AddTopicInput) (*topic.AddTopicResult, error)
	ListTopics(ctx context.Context, userID int64) ([]domain.TopicRecord, error)
	RenameTopic(ctx context.Context, id int64, title string) error
	RemoveTopic(ctx context.Context, id int64) error
	ClearTopics(ctx context.Context, userID int64) error
}

// TopicHandler serves the topic log endpoints. Every route requires an
// authenticated user.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topics")}
}

type addTopicRequest struct {
	Query string `json:"query"`
	Title string `json:"title"`
}

type renameTopicRequest struct {
	Title string `json:"title"`
}

type topicResponse struct {
	ID         int64   `json:"id"`
	Query      string  `json:"query"`
	Title      string  `json:"title"`
	Definition *string `json:"definition"`
	Thumbnail  *string `json:"thumbnail,omitempty"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	Timestamp  int64   `json:"timestamp"`
}

type addTopicResponse struct {
	Topic    topicResponse `json:"topic"`
	Degraded bool          `json:"degraded"`
	Message  string        `json:"message"`
}

type listTopicsResponse struct {
	Topics []topicResponse `json:"topics"`
}

// List handles GET /topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	records, err := h.svc.ListTopics(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := listTopicsResponse{Topics: make([]topicResponse, 0, len(records))}
	for i := range records {
		resp.Topics = append(resp.Topics, toTopicResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /topics.
func (h *TopicHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req addTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.AddTopic(r.Context(), topic.AddTopicInput{
		UserID: userID,
		Query:  req.Query,
		Title:  req.Title,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, addTopicResponse{
		Topic:    toTopicResponse(&result.Record),
		Degraded: result.Degraded,
		Message:  result.Message,
	})
}

// Rename handles PATCH /topics/{id}.
func (h *TopicHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedTopicID(w, r)
	if !ok {
		return
	}

	var req renameTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RenameTopic(r.Context(), id, req.Title); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /topics/{id}.
func (h *TopicHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedTopicID(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveTopic(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /topics.
func (h *TopicHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	if err := h.svc.ClearTopics(r.Context(), userID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedTopicID parses the {id} path value and checks that the record belongs
// to the caller. Records of other users answer 404 like missing ones.
func (h *TopicHandler) ownedTopicID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return 0, false
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	records, err := h.svc.ListTopics(r.Context(), userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return 0, false
	}
	for _, rec := range records {
		if rec.ID == id {
			return id, true
		}
	}

	writeError(w, http.StatusNotFound, "not found")
	return 0, false
}

func toTopicResponse(rec *domain.TopicRecord) topicResponse {
	return topicResponse{
		ID:         rec.ID,
		Query:      rec.Query,
		Title:      rec.Title,
		Definition: rec.Definition,
		Thumbnail:  rec.Thumbnail,
		ImageURL:   rec.ImageURL,
		Timestamp:  rec.Timestamp,
	}
}
