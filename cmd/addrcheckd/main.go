// Command addrcheckd serves the validation engine as a small JSON API:
//
//	GET /v1/check?email=user@example.com
//
// responds with the merged error list and, when the domain looks like a
// typo of a well-known provider, a spelling suggestion.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/julienschmidt/httprouter"

	"github.com/optimode/addrcheck"
	"github.com/optimode/addrcheck/types"
)

type checkResponse struct {
	Email      string        `json:"email"`
	Valid      bool          `json:"valid"`
	Errors     []types.Error `json:"errors"`
	DidYouMean string        `json:"didyoumean,omitempty"`
}

type server struct {
	validator *addrcheck.Validator
	log       *slog.Logger
}

func newServer(v *addrcheck.Validator, log *slog.Logger) http.Handler {
	s := &server{validator: v, log: log}
	router := httprouter.New()
	router.GET("/v1/check", s.handleCheck)
	return router
}

func (s *server) handleCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, `missing "email" query parameter`, http.StatusBadRequest)
		return
	}

	errs := s.validator.Validate(r.Context(), email)
	resp := checkResponse{Email: email, Valid: len(errs) == 0, Errors: errs}
	if suggestion, ok := s.validator.DidYouMean(email); ok {
		resp.DidYouMean = suggestion
	}

	s.log.Info("checked address", "email", email, "errors", len(errs))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	handler := newServer(addrcheck.New().WithConcurrency(), log)

	log.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
