package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/lmedina-dev/tastebite-backend/pkg/errors"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
	"github.com/lmedina-dev/tastebite-backend/pkg/types"
)

// Writer renders the API's response shapes. It is constructed once and passed
// down; internal error detail is only exposed outside production.
type Writer struct {
	logg           *logger.Logger
	exposeInternal bool
}

// NewWriter builds a response writer.
func NewWriter(logg *logger.Logger, exposeInternal bool) *Writer {
	return &Writer{logg: logg, exposeInternal: exposeInternal}
}

// JSON writes an arbitrary payload, used for the bare-array listing contract.
func (wr *Writer) JSON(w http.ResponseWriter, status int, payload any) {
	writeJSON(w, status, payload)
}

// Success writes the mutation envelope.
func (wr *Writer) Success(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, types.SuccessEnvelope{Success: true, Data: data})
}

// Message writes a bare message payload.
func (wr *Writer) Message(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.MessageEnvelope{Message: msg})
}

// Failure writes the failed-mutation envelope.
func (wr *Writer) Failure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.FailureEnvelope{Success: false, Message: msg})
}

// NoContent writes an empty 204 response.
func (wr *Writer) NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps a taxonomy error onto the wire. Validation failures carry the
// accumulated field errors; not-found carries its message; everything else is
// reported generically, with the underlying detail included only when the
// writer is configured to expose it.
func (wr *Writer) Error(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	wr.logError(ctx, err, typed)

	switch typed.Code() {
	case pkgerrors.CodeValidation:
		fieldErrs, _ := typed.Details().([]types.FieldError)
		writeJSON(w, meta.HTTPStatus, types.ValidationEnvelope{Success: false, Errors: fieldErrs})
	case pkgerrors.CodeNotFound:
		msg := typed.Message()
		if msg == "" {
			msg = meta.PublicMessage
		}
		writeJSON(w, meta.HTTPStatus, types.MessageEnvelope{Message: msg})
	default:
		payload := types.FailureEnvelope{Success: false, Message: "Server error"}
		if wr.exposeInternal {
			payload.Error = err.Error()
		}
		writeJSON(w, meta.HTTPStatus, payload)
	}
}

func (wr *Writer) logError(ctx context.Context, err error, typed *pkgerrors.Error) {
	if wr.logg == nil {
		return
	}
	dump := pkgerrors.Dump(err)

	ctx = wr.logg.WithFields(ctx, map[string]any{
		"error":       dump.TopMessage,
		"error_code":  dump.Code,
		"error_chain": dump.Chain,
	})
	if typed.Code() == pkgerrors.CodeValidation || typed.Code() == pkgerrors.CodeNotFound {
		wr.logg.Warn(ctx, "request.rejected")
		return
	}
	wr.logg.Error(ctx, "request.error", err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
