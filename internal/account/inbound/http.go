package inbound

import (
	"context"

	"github.com/shandysiswandi/goident/internal/account/usecase"
	"github.com/shandysiswandi/goident/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Auth(ctx context.Context, in usecase.AuthInput) (*usecase.AuthOutput, error)
	Profile(ctx context.Context, in usecase.ProfileInput) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration & Authentication
	r.POST("/api/v1/account/register", end.Register)
	r.POST("/api/v1/account/auth", end.Auth)

	// Profile
	r.GET("/api/v1/account/:id/profile", end.Profile)
}
