package api

import "net/http"

type healthResponse struct {
	Status     string `json:"status"`
	Activities int    `json:"activities"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Activities: s.engine.Stats().Activities,
	})
}
