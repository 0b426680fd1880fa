// Package ui serves a small web frontend for the equation simplifier.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Diego-Ivan/proyecto-sel/equation"
	"github.com/Diego-Ivan/proyecto-sel/format"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/tliron/commonlog"
)

//go:embed templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("ui")

type Server struct {
	indexTemplate  *template.Template
	resultTemplate *template.Template
	mux            *http.ServeMux
}

func NewServer() (*Server, error) {
	trustedFS := template.TrustedFSFromEmbed(embeddedFS)

	indexTemplate, err := template.New("index.html").ParseFS(trustedFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	resultTemplate, err := template.New("result.html").ParseFS(trustedFS, "templates/result.html")
	if err != nil {
		return nil, fmt.Errorf("parse result template: %w", err)
	}

	s := &Server{
		indexTemplate:  indexTemplate,
		resultTemplate: resultTemplate,
		mux:            http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /simplify", s.handleSimplify)
	s.mux.HandleFunc("GET /api/simplify", s.handleAPISimplify)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Infof("%s %s", r.Method, r.URL)
	s.mux.ServeHTTP(w, r)
}

type indexViewData struct {
	Examples []exampleView
}

type exampleView struct {
	Input string
	URL   safehtml.URL
}

var exampleInputs = []string{
	"2x + 5y = -12 + 3x -9(y - 5)",
	"(24x + 12y + 6)/3 = 0",
	`\sqrt(16)x = 8`,
	"2^10 = x",
}

func exampleLinks() []exampleView {
	views := make([]exampleView, len(exampleInputs))
	for i, input := range exampleInputs {
		views[i] = exampleView{
			Input: input,
			URL:   safehtml.URLSanitized("/simplify?q=" + url.QueryEscape(input)),
		}
	}
	return views
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexViewData{Examples: exampleLinks()}
	if err := s.indexTemplate.Execute(w, data); err != nil {
		log.Errorf("render index: %s", err.Error())
	}
}

type resultViewData struct {
	Input    string
	Display  string
	LaTeX    string
	Terms    []termView
	Constant float64
	Err      string
}

type termView struct {
	Variable    string
	Coefficient float64
}

func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("q")
	if input == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := resultViewData{Input: input}
	form, err := equation.SimplifyExpression(input)
	if err != nil {
		data.Err = err.Error()
	} else {
		var latex bytes.Buffer
		if err := format.NewLaTeXEncoder(&latex).Encode(form); err == nil {
			data.LaTeX = latex.String()
		}
		data.Display = form.String()
		for _, name := range form.Variables() {
			data.Terms = append(data.Terms, termView{
				Variable:    name,
				Coefficient: form.Terms[name],
			})
		}
		data.Constant = form.Constant
	}

	if err := s.resultTemplate.Execute(w, data); err != nil {
		log.Errorf("render result: %s", err.Error())
	}
}

func (s *Server) handleAPISimplify(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("q")
	if input == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}

	form, err := equation.SimplifyExpression(input)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := format.NewJSONEncoder(w).Encode(form); err != nil {
		log.Errorf("encode form: %s", err.Error())
	}
}
