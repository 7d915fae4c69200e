package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/founder-directory/models"
)

// Request parameter names of the directory endpoints.
const (
	paramToken     = "k"
	paramID        = "i"
	paramVersion   = "v"
	paramUpperMax  = "x"
	paramPhotoRole = "t"
	paramPhotoFile = "file"
)

// encodeFounderForm builds the positional f1..fn form of the content fields
// of f. Null markers travel as empty strings.
func encodeFounderForm(f models.Founder) map[string]string {
	form := make(map[string]string, len(models.FounderFields)+3)
	for i, value := range f.Values() {
		form[models.PositionalKey(i)] = value
	}
	return form
}

// decodeFounder reads one record object keyed by column names. The server
// echoes numbers as JSON numbers or strings, so both are accepted.
func decodeFounder(obj gjson.Result) (models.Delta, error) {
	if !obj.IsObject() {
		return models.Delta{}, fmt.Errorf("%w: record is not an object", ErrMalformedResponse)
	}

	id := strings.TrimSpace(scalarString(obj.Get(models.FieldID)))
	if id == "" {
		return models.Delta{}, fmt.Errorf("%w: record without id", ErrMalformedResponse)
	}

	delta := models.Delta{
		Deleted: scalarString(obj.Get(models.FieldDeleted)) == models.DeletedSentinel,
	}

	version, err := parseVersion(obj.Get(models.FieldVersion))
	if err != nil && !delta.Deleted {
		return models.Delta{}, fmt.Errorf("record %s: %w", id, err)
	}

	delta.Founder = models.Founder{
		ID:      id,
		Version: version,
		Fields:  make(map[string]string, len(models.FounderFields)),
	}
	for _, name := range models.FounderFields {
		delta.Founder.Fields[name] = models.NormalizeValue(scalarString(obj.Get(name)))
	}

	return delta, nil
}

// parseVersion accepts 5, "5" and " 5 ".
func parseVersion(v gjson.Result) (int64, error) {
	switch v.Type {
	case gjson.Number:
		return v.Int(), nil
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: version %q", ErrMalformedResponse, v.Str)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: missing version", ErrMalformedResponse)
	}
}

// scalarString renders a JSON scalar as text; null and absent values become
// the empty string.
func scalarString(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

// decodeAcknowledgement decodes a create or update response.
func decodeAcknowledgement(body string) (models.Founder, error) {
	body = strings.TrimSpace(body)
	if isRejected(body) {
		return models.Founder{}, ErrRejected
	}
	if !gjson.Valid(body) {
		return models.Founder{}, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	delta, err := decodeFounder(gjson.Parse(body))
	if err != nil {
		return models.Founder{}, err
	}
	// an acknowledgement always carries a version
	if _, err := parseVersion(gjson.Get(body, models.FieldVersion)); err != nil {
		return models.Founder{}, err
	}

	return delta.Founder, nil
}

// decodeMaxVersion decodes a delete response: "0" or the new server max.
func decodeMaxVersion(body string) (int64, error) {
	body = strings.TrimSpace(body)
	if isRejected(body) {
		return 0, ErrRejected
	}

	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: version %q", ErrMalformedResponse, body)
	}
	return n, nil
}
