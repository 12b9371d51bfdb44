package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/fundkit/pkg/validate"
)

// NewRouter mounts the signup endpoint. Middlewares (rate limiting on
// the public surface) apply to every route in the module.
func NewRouter(svc *Service, log *slog.Logger, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Post("/signup", handleSignup(svc, log))
	r.Get("/{account_id}", handleGetAccount(svc, log))
	return r
}

type signupResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	State string    `json:"state"`
}

func handleSignup(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params SignupParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		acct, err := svc.Signup(r.Context(), params)
		if err != nil {
			var fieldErrs validate.FieldErrors
			switch {
			case errors.As(err, &fieldErrs):
				// Validator messages are surfaced verbatim; a generic
				// message would mask the actual failure.
				respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
					"errors": fieldErrs.Messages(),
				})
			case errors.Is(err, ErrDuplicateAccount):
				respondError(w, http.StatusConflict, ErrDuplicateAccount.Error())
			default:
				log.ErrorContext(r.Context(), "signup failed", "error", err)
				respondError(w, http.StatusInternalServerError, "something went wrong, please retry")
			}
			return
		}

		respondJSON(w, http.StatusCreated, signupResponse{
			ID:    acct.ID,
			Email: acct.Email,
			Phone: acct.Phone,
			State: acct.State,
		})
	}
}

type accountResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	State   string    `json:"state"`
	Balance string    `json:"balance"`
}

func handleGetAccount(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "account_id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid account id")
			return
		}

		acct, err := svc.GetAccount(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrAccountNotFound) {
				respondError(w, http.StatusNotFound, ErrAccountNotFound.Error())
				return
			}
			log.ErrorContext(r.Context(), "account lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "something went wrong, please retry")
			return
		}

		respondJSON(w, http.StatusOK, accountResponse{
			ID:      acct.ID,
			Email:   acct.Email,
			Phone:   acct.Phone,
			State:   acct.State,
			Balance: validate.FormatCents(acct.BalanceCents),
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
