package controllers

import (
	"net/http"
	"strings"

	"github.com/jcastellanos/habitframe-backend/api/responses"
	"github.com/jcastellanos/habitframe-backend/api/validators"
	"github.com/jcastellanos/habitframe-backend/internal/users"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

type upsertUserPayload struct {
	FarcasterID    string  `json:"farcaster_id" validate:"required"`
	DisplayName    *string `json:"display_name"`
	ProfilePicture *string `json:"profile_picture"`
}

// UpsertUser registers or refreshes a user keyed by Farcaster identity.
func UpsertUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var payload upsertUserPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := svc.Upsert(ctx, users.UpsertInput{
			FarcasterID:    payload.FarcasterID,
			DisplayName:    payload.DisplayName,
			ProfilePicture: payload.ProfilePicture,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// GetUser returns a user with their computed habit and badge views.
func GetUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		fid := strings.TrimSpace(r.URL.Query().Get("farcasterId"))
		if fid == "" {
			// Frame clients send the short form.
			fid = strings.TrimSpace(r.URL.Query().Get("fid"))
		}
		if fid == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "farcasterId query parameter is required"))
			return
		}

		user, err := svc.GetByFarcasterID(ctx, fid)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}
