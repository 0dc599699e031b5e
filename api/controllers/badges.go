package controllers

import (
	"net/http"

	"github.com/jcastellanos/habitframe-backend/api/responses"
	"github.com/jcastellanos/habitframe-backend/internal/badges"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

// ListBadges returns the full badge catalog.
func ListBadges(svc badges.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "badges service unavailable"))
			return
		}

		catalog, err := svc.Catalog(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, badges.ToDTOs(catalog))
	}
}
