package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	unreadOnly := r.URL.Query().Get("unread") == "true"

	feed, err := s.uc.Notification.Feed(r.Context(), sess.UserID, unreadOnly)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, feed)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	err := s.uc.Notification.MarkRead(r.Context(), model.NotificationID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondMessage(r.Context(), w, http.StatusOK, "notification marked read")
}

func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())

	count, err := s.uc.Notification.MarkAllRead(r.Context(), sess.UserID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, map[string]int{"updated": count})
}
