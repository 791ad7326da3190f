package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"eventregister/internal/delivery/http/helpers"
	"eventregister/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterRequest is the request body for POST /registrations.
// Participant attributes are validated inside the workflow, after the event
// and its registration window have been checked, so only event_id is
// validated here.
type RegisterRequest struct {
	EventID     string                  `json:"event_id"`
	Participant domain.ParticipantInput `json:"participant"`
}

// Validate implements helpers.Validator.
func (r *RegisterRequest) Validate() []string {
	if r.EventID == "" {
		return []string{"event_id is required"}
	}
	if uuid.Validate(r.EventID) != nil {
		return []string{"event_id must be a valid UUID"}
	}
	return nil
}

// RegisterSuccessResponse is the success response envelope for POST /registrations (201).
type RegisterSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Register godoc
// @Summary Register a participant for an event
// @Description Runs the registration workflow: the event must exist and start in the future, the participant attributes must be valid, and the (event, participant) pair must not already be registered. A participant is created on first use of an email and reused afterwards.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body controllers.RegisterRequest true "Event id and participant attributes"
// @Success 201 {object} controllers.RegisterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_failed, registration_closed, or already_registered"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg, err := c.Service.Register(r.Context(), req.EventID, req.Participant)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event does not exist")
		case errors.Is(err, domain.ErrRegistrationClosed):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeRegistrationClosed, "event date or time has passed, registration is closed")
		case errors.As(err, &verr):
			helpers.WriteJSONFieldErrors(w, http.StatusBadRequest, helpers.ErrCodeValidationFailed, "participant is invalid", verr.Fields)
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeAlreadyRegistered, "participant is already registered for this event")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "registration is invalid")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}
