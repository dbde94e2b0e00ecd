package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/upb/biztime/middleware"
	"github.com/upb/biztime/utils"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; every payload here is a handful of fields
const maxBodyBytes = 1 << 20

// decodeRequest reads a JSON body into dst and validates it. On failure it
// writes a 400 and returns false. Fields of the wrong JSON type fail decoding.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}, logger *zap.Logger) bool {
	requestID := middleware.GetRequestIDFromContext(r.Context())

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return false
	}

	if err := utils.ValidateStruct(dst); err != nil {
		logger.Debug("request validation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		HandleValidationError(w, err, logger)
		return false
	}

	return true
}

// deletedResponse confirms a delete
type deletedResponse struct {
	Status string `json:"status"`
}

var deleted = deletedResponse{Status: "deleted"}
