package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/interfaces/http/response"
	"team-showcase.backend/pkg/utils"
)

var errBodyTooLarge = domainerrors.NewAppError(http.StatusRequestEntityTooLarge, "request body too large", domainerrors.ErrInvalidInput)

// parseID reads the :id path parameter. It writes the 400 itself and reports false
// when the id is malformed.
func parseID(c *gin.Context, kind string) (uuid.UUID, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+kind+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindBody decodes a JSON object into dst after rewriting storage-named keys
// (is_active, review_notes, ...) into their wire names. An empty body decodes as {}.
func bindBody(c *gin.Context, mapper *fieldmap.Mapper, dst interface{}) error {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return domainerrors.BadRequest("failed to read request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domainerrors.BadRequest("invalid JSON body")
	}
	if mapper != nil {
		fields = mapper.NormalizeWire(fields)
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return domainerrors.BadRequest("invalid JSON body")
	}
	if err := json.Unmarshal(normalized, dst); err != nil {
		return domainerrors.BadRequest("invalid field type").WithDetails(err.Error())
	}
	return nil
}

// flexibleInt accepts a JSON number or a numeric string, since HTML forms post
// every input as text.
type flexibleInt int

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}
	if text == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		if fl, ferr := strconv.ParseFloat(text, 64); ferr == nil && fl == float64(int(fl)) {
			*f = flexibleInt(int(fl))
			return nil
		}
		return errors.New("expected an integer")
	}
	*f = flexibleInt(n)
	return nil
}

func (f *flexibleInt) intPtr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// flexibleString accepts a JSON string or number. A number keeps its literal
// text, so {"founded": 2021} reads as "2021".
type flexibleString string

func (f *flexibleString) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("expected a string or number")
	}
	*f = flexibleString(n.String())
	return nil
}

func (f *flexibleString) stringPtr() *string {
	if f == nil {
		return nil
	}
	v := string(*f)
	return &v
}
