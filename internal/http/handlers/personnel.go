package handlers

import (
	"fmt"
	"net/http"

	apierrors "github.com/pribylovaa/personnel-oauth/internal/errors"
)

// ListPersonnel — GET /personnel?page=&per_page= (открытый).
func (h *Handlers) ListPersonnel(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, p, err := h.svc.Employees(r.Context(), page, perPage)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := personnelPageResponse{
		Personnel: make([]employeeResponse, 0, len(items)),
		PerPage:   p.PerPage,
		Page:      p.Page,
		PageCount: p.PageCount,
	}
	for _, e := range items {
		resp.Personnel = append(resp.Personnel, employeeFromModel(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetEmployee — GET /personnel/{id}.
func (h *Handlers) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Employee(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employeeFromModel(*e))
}

// CreateEmployee — POST /personnel/{id}.
func (h *Handlers) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in employeeRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	e, err := in.toModel(id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.CreateEmployee(r.Context(), e); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/personnel/%d", id))
	writeJSON(w, http.StatusCreated, employeeFromModel(*e))
}

// UpdateEmployee — PUT /personnel/{id}.
func (h *Handlers) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in employeeRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	e, err := in.toModel(id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.UpdateEmployee(r.Context(), e); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employeeFromModel(*e))
}

// DeleteEmployee — DELETE /personnel/{id}.
func (h *Handlers) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
