package handlers

import (
	"fmt"
	"net/http"

	apierrors "github.com/pribylovaa/personnel-oauth/internal/errors"
)

// ListDepartments — GET /departments?page=&per_page= (открытый).
func (h *Handlers) ListDepartments(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, p, err := h.svc.Departments(r.Context(), page, perPage)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := departmentsPageResponse{
		Departments: make([]departmentResponse, 0, len(items)),
		PerPage:     p.PerPage,
		Page:        p.Page,
		PageCount:   p.PageCount,
	}
	for _, d := range items {
		resp.Departments = append(resp.Departments, departmentFromModel(d))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDepartment — GET /departments/{id}: отдел вместе с сотрудниками.
func (h *Handlers) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, personnel, err := h.svc.Department(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := departmentDetailResponse{
		departmentResponse: departmentFromModel(*d),
		Personnel:          make([]memberResponse, 0, len(personnel)),
	}
	for _, e := range personnel {
		resp.Personnel = append(resp.Personnel, memberResponse{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			HireDate:  e.HireDate.Format(dateLayout),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateDepartment — POST /departments/{id}.
func (h *Handlers) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in departmentRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := in.toModel(id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.CreateDepartment(r.Context(), d); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/departments/%d", id))
	writeJSON(w, http.StatusCreated, departmentFromModel(*d))
}

// UpdateDepartment — PUT /departments/{id}.
func (h *Handlers) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in departmentRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := in.toModel(id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.UpdateDepartment(r.Context(), d); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, departmentFromModel(*d))
}

// DeleteDepartment — DELETE /departments/{id}; 405, если в отделе есть сотрудники.
func (h *Handlers) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteDepartment(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
