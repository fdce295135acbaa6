package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"aquaflow/pkg/middleware"
	"aquaflow/pkg/models"
	"aquaflow/pkg/services"
	"aquaflow/pkg/site"
)

const (
	msgCallbackInitiated = "Callback initiated successfully!"
	msgPhoneRequired     = "Phone number is required"
	msgConfigError       = "Server configuration error"
	msgInternalError     = "An internal server error occurred"
)

var registerValidators sync.Once

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	relayService services.CallbackRelayService
	page         *site.Page
}

// NewHandlers creates a new Handlers instance
func NewHandlers(relayService services.CallbackRelayService, page *site.Page) *Handlers {
	registerValidators.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("truthy", truthyPhone); err != nil {
			log.Fatalf("Error registering truthy validator: %v", err)
		}
	})

	return &Handlers{
		relayService: relayService,
		page:         page,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleLandingPage renders the marketing page with the callback form
func (h *Handlers) HandleLandingPage(c *gin.Context) {
	c.HTML(http.StatusOK, site.TemplateName, h.page)
}

// HandleCallback relays a phone number from the landing page form to the
// automation webhook
func (h *Handlers) HandleCallback(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[%s] Error reading request body: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, models.CallbackResponse{Message: msgInternalError})
		return
	}

	var req models.CallbackRequest
	if err := bindCallbackRequest(body, &req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, models.CallbackResponse{Message: msgPhoneRequired})
			return
		}

		// Malformed JSON is reported as a server error, not a 400
		log.Printf("[%s] Error processing callback: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, models.CallbackResponse{Message: msgInternalError})
		return
	}

	err = h.relayService.RelayCallback(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.CallbackResponse{Message: msgCallbackInitiated})
	case errors.Is(err, services.ErrPhoneRequired):
		c.JSON(http.StatusBadRequest, models.CallbackResponse{Message: msgPhoneRequired})
	case errors.Is(err, services.ErrWebhookNotConfigured):
		log.Printf("[%s] Error processing callback: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, models.CallbackResponse{Message: msgConfigError})
	default:
		log.Printf("[%s] Error processing callback: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, models.CallbackResponse{Message: msgInternalError})
	}
}

var errBodyNotObject = errors.New("request body is not a JSON object")

// bindCallbackRequest decodes and validates the body. Anything other than a
// JSON object, including a bare null, is a decode error.
func bindCallbackRequest(body []byte, req *models.CallbackRequest) error {
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return errBodyNotObject
	}
	return binding.JSON.BindBody(body, req)
}

func truthyPhone(fl validator.FieldLevel) bool {
	phone, ok := fl.Field().Interface().(models.Phone)
	return ok && phone.Truthy()
}
