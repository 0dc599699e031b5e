package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jcastellanos/habitframe-backend/api/responses"
	"github.com/jcastellanos/habitframe-backend/api/validators"
	"github.com/jcastellanos/habitframe-backend/internal/streaks"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

type logStreakPayload struct {
	HabitID    string  `json:"habit_id" validate:"required,uuid"`
	LogDate    string  `json:"log_date" validate:"required,datetime=2006-01-02"`
	IsAdherent *bool   `json:"is_adherent" validate:"required"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}

// LogStreak records one day of adherence and returns the new streak plus any
// badges it unlocked.
func LogStreak(svc streaks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaks service unavailable"))
			return
		}

		var payload logStreakPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		habitID, err := uuid.Parse(payload.HabitID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid habit id"))
			return
		}

		out, err := svc.Log(ctx, streaks.LogInput{
			HabitID:    habitID,
			LogDate:    payload.LogDate,
			IsAdherent: *payload.IsAdherent,
			Notes:      payload.Notes,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

// GetStreakLogs returns a habit's ledger newest-first.
func GetStreakLogs(svc streaks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaks service unavailable"))
			return
		}

		habitID, err := validators.QueryUUID(r, "habitId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		limit, err := validators.QueryInt(r, "limit", 0)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		logs, err := svc.ListLogs(ctx, habitID, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, logs)
	}
}
