package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/repository"
	"github.com/m-mizutani/gitminer/pkg/utils/errutil"
	"github.com/m-mizutani/gitminer/pkg/utils/logging"
)

type errorsResponse struct {
	Errors []string `json:"errors"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

var notFoundErrors = []error{
	types.ErrProjectNotFound,
	types.ErrCommitNotFound,
	types.ErrIssueNotFound,
	types.ErrCommentNotFound,
}

// writeError maps an error to its status code. Errors no client can cause
// are reported and answered with 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: verr.Violations})
		return
	}

	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: nf.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, repository.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, messageResponse{Message: "The entity already exists."})

	case errors.Is(err, types.ErrInvalidParameter), errors.Is(err, repository.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: []string{err.Error()}})

	default:
		errutil.HandleError(r.Context(), "fail to handle request", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
}
