package http

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/founder-directory/internal/utils"
	"github.com/MKhiriev/founder-directory/models"
)

// Request parameter names shared with the sync client.
const (
	paramID        = "i"
	paramVersion   = "v"
	paramUpperMax  = "x"
	paramPhotoRole = "t"
	paramPhotoFile = "file"
)

// rejectedBody is the whole response body of a failed directory request.
const rejectedBody = "0"

func writeRejected(w http.ResponseWriter, statusCode int) {
	utils.WriteText(w, rejectedBody, statusCode)
}

func requiredParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(r.FormValue(name))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}
	return value, nil
}

// int64Param parses an integer parameter. An absent parameter yields def.
func int64Param(r *http.Request, name string, def int64) (int64, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParameter, name, raw)
	}
	return n, nil
}

func photoKeyParam(r *http.Request) (models.PhotoKey, error) {
	id, err := requiredParam(r, paramID)
	if err != nil {
		return models.PhotoKey{}, err
	}
	key := models.PhotoKey{Role: models.PhotoRole(r.FormValue(paramPhotoRole)), ID: id}
	if !key.Valid() {
		return models.PhotoKey{}, fmt.Errorf("%w: %s=%q", ErrInvalidParameter, paramPhotoRole, key.Role)
	}
	return key, nil
}

// formFields reads the positional f1..fn content fields present in the form.
// Null markers are stored as empty values.
func formFields(r *http.Request) map[string]string {
	fields := make(map[string]string, len(models.FounderFields))
	for i, name := range models.FounderFields {
		if values, ok := r.Form[models.PositionalKey(i)]; ok && len(values) > 0 {
			fields[name] = models.NormalizeValue(values[0])
		}
	}
	return fields
}

// founderRecord renders a record keyed by column names, the shape pulled
// snapshots and acknowledgements share. Tombstones carry no content.
func founderRecord(f models.Founder) map[string]string {
	record := map[string]string{
		models.FieldID:      f.ID,
		models.FieldVersion: strconv.FormatInt(f.Version, 10),
		models.FieldDeleted: "0",
	}
	if f.Deleted {
		record[models.FieldDeleted] = models.DeletedSentinel
		return record
	}
	for _, name := range models.FounderFields {
		record[name] = f.Field(name)
	}
	return record
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
