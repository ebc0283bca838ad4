// Package httpapi exposes the Super Dentinho backend over HTTP: public
// advice/quiz/time endpoints, the token-protected advice admin CRUD and
// the presigned image endpoints.
package httpapi

import (
	"context"
	"net/http"

	"github.com/dentinhoapp/dentinho/internal/logging"
	"github.com/dentinhoapp/dentinho/internal/server/repositories/questions"
	"github.com/dentinhoapp/dentinho/internal/server/services"
)

// ImagePresigner is the slice of the image service the handlers need.
type ImagePresigner interface {
	PresignedPutURL(ctx context.Context) (key string, url string, err error)
	PresignedGetURL(ctx context.Context, key string) (string, error)
}

type Server struct {
	advice    *services.AdviceService
	admin     *services.AdminService
	images    ImagePresigner
	questions questions.Repository
	log       logging.Logger
}

func NewServer(advice *services.AdviceService, admin *services.AdminService, images ImagePresigner, questions questions.Repository, log logging.Logger) *Server {
	return &Server{
		advice:    advice,
		admin:     admin,
		images:    images,
		questions: questions,
		log:       log,
	}
}

// Handler builds the route table and wraps it in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /advice/{category}", s.handleAdviceByCategory)
	mux.HandleFunc("GET /advice", s.handleAdviceList)
	mux.HandleFunc("POST /advice", s.requireAdmin(s.handleAdviceCreate))
	mux.HandleFunc("PUT /advice/{id}", s.requireAdmin(s.handleAdviceUpdate))
	mux.HandleFunc("DELETE /advice/{id}", s.requireAdmin(s.handleAdviceDelete))

	mux.HandleFunc("POST /admin/login", s.handleAdminLogin)

	mux.HandleFunc("GET /questions", s.handleQuestions)

	mux.HandleFunc("GET /Time/current/zone", s.handleCurrentTime)

	mux.HandleFunc("POST /images/upload-url", s.handleImageUploadURL)
	mux.HandleFunc("GET /images/url", s.handleImageGetURL)

	var h http.Handler = mux
	h = s.recoverMiddleware(h)
	h = s.loggingMiddleware(h)
	h = s.requestIDMiddleware(h)
	return h
}
