package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	// the time endpoint must resolve IANA zones even in containers that
	// ship without a zoneinfo directory
	_ "time/tzdata"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/server/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleAdviceByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	text, err := s.advice.Random(r.Context(), category)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "no advice for this category")
			return
		}
		s.log.Error(r.Context(), "advice lookup failed", "category", category, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"advice": text})
}

func (s *Server) handleAdviceList(w http.ResponseWriter, r *http.Request) {
	list, err := s.advice.List(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "advice list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}
	if list == nil {
		list = []*models.Advice{}
	}
	writeJSON(w, http.StatusOK, list)
}

type adviceRequest struct {
	Category string `json:"category"`
	Advice   string `json:"advice"`
}

func (s *Server) handleAdviceCreate(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	created, err := s.advice.Create(r.Context(), req.Category, req.Advice)
	if err != nil {
		if errors.Is(err, common.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, "invalid_request", "category and advice are required")
			return
		}
		s.log.Error(r.Context(), "advice create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAdviceUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "id must be an integer")
		return
	}

	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	if err := s.advice.Update(r.Context(), id, req.Category, req.Advice); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "no advice with this id")
		case errors.Is(err, common.ErrMissingFields):
			writeError(w, http.StatusBadRequest, "invalid_request", "category and advice are required")
		default:
			s.log.Error(r.Context(), "advice update failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleAdviceDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "id must be an integer")
		return
	}

	if err := s.advice.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "no advice with this id")
			return
		}
		s.log.Error(r.Context(), "advice delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	token, err := s.admin.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "wrong username or password")
			return
		}
		s.log.Error(r.Context(), "admin login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := s.questions.List(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "questions list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}
	if qs == nil {
		qs = []*models.Question{}
	}
	writeJSON(w, http.StatusOK, qs)
}

func (s *Server) handleCurrentTime(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("timeZone")
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown time zone")
		return
	}

	now := time.Now().In(loc)
	writeJSON(w, http.StatusOK, map[string]int{
		"hour":    now.Hour(),
		"minute":  now.Minute(),
		"seconds": now.Second(),
	})
}

func (s *Server) handleImageUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.images.PresignedPutURL(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "presign put failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

func (s *Server) handleImageGetURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "key is required")
		return
	}

	url, err := s.images.PresignedGetURL(r.Context(), key)
	if err != nil {
		s.log.Error(r.Context(), "presign get failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
