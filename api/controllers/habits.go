package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jcastellanos/habitframe-backend/api/responses"
	"github.com/jcastellanos/habitframe-backend/api/validators"
	"github.com/jcastellanos/habitframe-backend/internal/habits"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

type createHabitPayload struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"max=500"`
	Goal        string `json:"goal" validate:"max=255"`
	Category    string `json:"category" validate:"required,oneof=health productivity learning social creative"`
	Icon        string `json:"icon" validate:"max=16"`
}

type updateHabitPayload struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Goal        *string `json:"goal" validate:"omitempty,max=255"`
	Category    *string `json:"category" validate:"omitempty,oneof=health productivity learning social creative"`
	Icon        *string `json:"icon" validate:"omitempty,max=16"`
}

// CreateHabit inserts a habit and reports any milestone badges it unlocked.
func CreateHabit(svc habits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "habits service unavailable"))
			return
		}

		var payload createHabitPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		userID, err := uuid.Parse(payload.UserID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		out, err := svc.Create(ctx, habits.CreateInput{
			UserID:      userID,
			Name:        payload.Name,
			Description: payload.Description,
			Goal:        payload.Goal,
			Category:    payload.Category,
			Icon:        payload.Icon,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// UpdateHabit applies a partial edit to a habit.
func UpdateHabit(svc habits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "habits service unavailable"))
			return
		}

		habitID, err := uuid.Parse(chi.URLParam(r, "habitId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid habit id"))
			return
		}

		var payload updateHabitPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		habit, err := svc.Update(ctx, habitID, habits.UpdateInput{
			Name:        payload.Name,
			Description: payload.Description,
			Goal:        payload.Goal,
			Category:    payload.Category,
			Icon:        payload.Icon,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, habit)
	}
}

// DeleteHabit soft-deletes a habit; its logs stay queryable.
func DeleteHabit(svc habits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "habits service unavailable"))
			return
		}

		habitID, err := uuid.Parse(chi.URLParam(r, "habitId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid habit id"))
			return
		}

		if err := svc.Deactivate(ctx, habitID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"deactivated": true})
	}
}

// ListHabits returns a user's active habits, optionally with recent logs.
func ListHabits(svc habits.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "habits service unavailable"))
			return
		}

		userID, err := validators.QueryUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		includeLogs, err := validators.QueryBool(r, "includeLogs")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		listed, err := svc.List(ctx, userID, includeLogs)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, listed)
	}
}
