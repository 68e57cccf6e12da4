package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/cellref"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
)

type pageData struct {
	Date   string
	Error  string
	Count  int
	Groups []models.FieldGroup
	Values store.Values
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{Date: r.URL.Query().Get("date")}
	if data.Date == "" {
		data.Date = s.today()
	}
	s.renderPage(w, r, data, http.StatusOK)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData, status int) {
	if err := store.ValidateDate(data.Date); err != nil {
		data.Error = dagrooster.UserMessage(err)
		data.Date = s.today()
	}

	fc, err := s.fields(r.Context())
	if err != nil && data.Error == "" {
		data.Error = dagrooster.UserMessage(err)
	}
	if fc != nil {
		data.Count = len(fc.Fields)
		data.Groups = fc.Groups()
	}

	data.Values, err = s.Values.Load(r.Context(), data.Date)
	if err != nil {
		utils.Log.Errorf("loading values for %s: %v", data.Date, err)
		if data.Error == "" {
			data.Error = dagrooster.UserMessage(err)
		}
		data.Values = store.Values{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, data); err != nil {
		utils.Log.Errorf("rendering page: %v", err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.today()
	}

	res, err := s.export(r, date)
	if err != nil {
		utils.Log.Errorf("export %s: %v", date, err)
		s.renderPage(w, r, pageData{Date: date, Error: dagrooster.UserMessage(err)}, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", dagrooster.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(res.Data)))
	w.Write(res.Data)
}

func (s *Server) export(r *http.Request, date string) (*dagrooster.ExportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.Values.Load(r.Context(), date)
	if err != nil {
		return nil, &dagrooster.ExportError{Date: date, Err: err}
	}
	return dagrooster.Export(r.Context(), s.Loader, date, values, s.Options)
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	fc, err := s.fields(r.Context())
	if err != nil {
		writeError(w, err, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, fc)
}

func (s *Server) handleGetValues(w http.ResponseWriter, r *http.Request) {
	values, err := s.Values.Load(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err, statusFor(err))
		return
	}
	writeJSON(w, values)
}

// SetValueRequest is the body of POST /api/values.
type SetValueRequest struct {
	Date    string `json:"date"`
	Address string `json:"address"`
	Value   string `json:"value"`
}

func (s *Server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	var req SetValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !cellref.IsAddress(req.Address) {
		http.Error(w, "invalid cell address", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	values, err := s.Values.Set(r.Context(), req.Date, req.Address, req.Value)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err, statusFor(err))
		return
	}
	writeJSON(w, values)
}

// ClearRequest is the body of POST /api/clear.
type ClearRequest struct {
	Date string `json:"date"`
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.Values.Clear(r.Context(), req.Date)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err, statusFor(err))
		return
	}
	utils.Log.Infof("cleared values for %s", req.Date)
	w.WriteHeader(http.StatusOK)
}

// statusFor maps bad input to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, store.ErrInvalidDate) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": dagrooster.UserMessage(err)})
}
