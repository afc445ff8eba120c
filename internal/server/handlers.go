package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/yaswanthreddy/portfolio/internal/contact"
	"github.com/yaswanthreddy/portfolio/internal/page"
	"github.com/yaswanthreddy/portfolio/internal/server/middleware"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

const (
	contactThanks = "Thanks for reaching out! I'll get back to you soon."
	contactFailed = "Sorry, there was an error sending your message. Please try again later."
	contactFix    = "Please fix the following and try again."
)

// handlePage serves a prerendered view
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view, err := page.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		s.errorResponse(w, r, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(s.pages[view]); err != nil {
		s.logger.WarnContext(r.Context(), "failed to write page", "view", view, "error", err)
	}
}

// handlePortfolio returns the loaded portfolio content
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, s.portfolio)
}

type cardsResponse struct {
	Kind  types.Kind `json:"kind"`
	Cards []string   `json:"cards"`
}

// handleCards renders every record of one kind as HTML fragments, in content order
func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "kind")
	kind, ok := types.ParseKind(name)
	if !ok {
		err := &ErrNotFound{Resource: "card kind", Name: name}
		s.errorResponse(w, r, HTTPStatus(err), err.Error())
		return
	}

	fragments, err := s.cards.RenderKind(s.portfolio, kind)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to render cards", "kind", kind, "error", err)
		s.errorResponse(w, r, HTTPStatus(err), "failed to render cards")
		return
	}

	cards := make([]string, len(fragments))
	for i, f := range fragments {
		cards[i] = string(f)
	}
	s.jsonResponse(w, r, http.StatusOK, cardsResponse{Kind: kind, Cards: cards})
}

// handleSkillChart returns the skills radar as Plotly JSON
func (s *Server) handleSkillChart(w http.ResponseWriter, r *http.Request) {
	fig, err := s.charts.SkillRadar(s.portfolio.Skills)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to build skills chart", "error", err)
		s.errorResponse(w, r, HTTPStatus(err), "failed to build chart")
		return
	}
	s.jsonResponse(w, r, http.StatusOK, fig)
}

// handleTimelineChart returns the experience timeline as Plotly JSON
func (s *Server) handleTimelineChart(w http.ResponseWriter, r *http.Request) {
	fig, err := s.charts.Timeline(s.portfolio.Timeline)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to build timeline chart", "error", err)
		s.errorResponse(w, r, HTTPStatus(err), "failed to build chart")
		return
	}
	s.jsonResponse(w, r, http.StatusOK, fig)
}

type contactResponse struct {
	Accepted bool     `json:"accepted"`
	Message  string   `json:"message,omitempty"`
	Problems []string `json:"problems,omitempty"`
}

// handleContact accepts a form or JSON submission. JSON requests get a
// contactResponse; everything else gets an HTML fragment for htmx to swap in.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	wantsJSON := isJSONRequest(r)

	sub, err := decodeSubmission(r)
	if err != nil {
		s.contactResponse(w, r, wantsJSON, http.StatusBadRequest, page.ContactResult{
			Message:  contactFix,
			Problems: []string{"The submission could not be read."},
		})
		return
	}

	if err := sub.Validate(); err != nil {
		s.contactResponse(w, r, wantsJSON, http.StatusBadRequest, page.ContactResult{
			Message:  contactFix,
			Problems: contactProblems(err),
		})
		return
	}

	ctx := contact.WithClientIP(r.Context(), middleware.ClientIP(r))
	accepted, err := s.contact.Accept(ctx, sub)
	if err != nil || !accepted {
		status := http.StatusInternalServerError
		if err != nil {
			s.logger.ErrorContext(r.Context(), "contact submission failed", "error", err)
			status = HTTPStatus(err)
		}
		if !wantsJSON && status >= http.StatusInternalServerError {
			// htmx only swaps the fragment in for 2xx and 400 responses
			status = http.StatusOK
		}
		s.contactResponse(w, r, wantsJSON, status, page.ContactResult{Message: contactFailed})
		return
	}

	s.contactResponse(w, r, wantsJSON, http.StatusOK, page.ContactResult{Accepted: true, Message: contactThanks})
}

func (s *Server) contactResponse(w http.ResponseWriter, r *http.Request, wantsJSON bool, status int, res page.ContactResult) {
	if wantsJSON {
		s.jsonResponse(w, r, status, contactResponse{Accepted: res.Accepted, Message: res.Message, Problems: res.Problems})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.renderer.ExecuteContactResult(w, res); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to render contact result", "error", err)
	}
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/json" || strings.Contains(r.Header.Get("Accept"), "application/json")
}

func decodeSubmission(r *http.Request) (types.ContactSubmission, error) {
	var sub types.ContactSubmission

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, fmt.Errorf("invalid JSON body: %w", err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return sub, fmt.Errorf("invalid form body: %w", err)
		}
		sub = submissionFromForm(r)
	default:
		if err := r.ParseForm(); err != nil {
			return sub, fmt.Errorf("invalid form body: %w", err)
		}
		sub = submissionFromForm(r)
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)
	return sub, nil
}

func submissionFromForm(r *http.Request) types.ContactSubmission {
	return types.ContactSubmission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
}

// contactProblems turns validator errors into messages for the form.
func contactProblems(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fe.Field()+" is required")
		case "email":
			problems = append(problems, "Please enter a valid email address")
		case "max":
			problems = append(problems, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			problems = append(problems, fe.Field()+" is invalid")
		}
	}
	return problems
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.jsonResponse(w, r, status, map[string]string{"error": message})
}
