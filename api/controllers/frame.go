package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jcastellanos/habitframe-backend/api/responses"
	"github.com/jcastellanos/habitframe-backend/internal/frame"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

type frameActionPayload struct {
	UntrustedData *struct {
		FID         int64  `json:"fid"`
		ButtonIndex int    `json:"buttonIndex"`
		InputText   string `json:"inputText"`
	} `json:"untrustedData"`
}

// FrameAction dispatches a frame button press. The response is the raw frame
// envelope rather than the API success wrapper; frame clients parse it
// directly.
func FrameAction(svc frame.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "frame service unavailable"))
			return
		}

		var payload frameActionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid frame data"))
			return
		}
		if payload.UntrustedData == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid frame data"))
			return
		}

		resp, err := svc.HandleAction(ctx, frame.ActionInput{
			FID:         payload.UntrustedData.FID,
			ButtonIndex: payload.UntrustedData.ButtonIndex,
			InputText:   payload.UntrustedData.InputText,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil && logg != nil {
			logg.Error(ctx, "encode frame response", err)
		}
	}
}

// FrameImage renders the SVG card for a frame, keyed by the type query
// parameter.
func FrameImage(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		streak, _ := strconv.Atoi(q.Get("streak"))
		habitCount, _ := strconv.Atoi(q.Get("habitCount"))
		totalStreak, _ := strconv.Atoi(q.Get("totalStreak"))

		var names []string
		if raw := q.Get("habitNames"); raw != "" {
			names = strings.Split(raw, ",")
		}

		svg, err := frame.RenderImage(frame.ImageRequest{
			Type:        q.Get("type"),
			Habit:       q.Get("habit"),
			Streak:      streak,
			HabitCount:  habitCount,
			TotalStreak: totalStreak,
			HabitNames:  names,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render frame image"))
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=300")
		_, _ = w.Write([]byte(svg))
	}
}
