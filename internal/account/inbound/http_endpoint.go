package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/goident/internal/account/usecase"
	"github.com/shandysiswandi/goident/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account registration,
// authentication, and profile reads.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new account and returns its public identity.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		UserName:  req.UserName,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		PublicID:  resp.PublicID,
		Randomart: resp.Randomart,
	}, nil
}

// Auth verifies a user name and password pair and opens a session.
func (h *HTTPEndpoint) Auth(r *router.Request) (any, error) {
	var req AuthRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Auth(r.Context(), usecase.AuthInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return AuthResponse{
		PublicID:  resp.PublicID,
		SessionID: resp.SessionID,
		Randomart: resp.Randomart,
	}, nil
}

// Profile returns the account identified by the path id.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{ID: id})
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		PublicID:  resp.PublicID,
		UserName:  resp.UserName,
		FirstName: lo.FromPtr(resp.FirstName),
		LastName:  lo.FromPtr(resp.LastName),
		Email:     lo.FromPtr(resp.Email),
		Phone:     lo.FromPtr(resp.Phone),
		BirthDate: lo.FromPtr(resp.BirthDate),
		Age:       resp.Age,
		Randomart: resp.Randomart,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}, nil
}
