package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps prediction request bodies.
const MaxBodyBytes = 1 << 20

// bindForm reads a JSON object, urlencoded or multipart body into a
// FormInput. An empty body is an empty form. Repeated form keys keep their
// first value.
func bindForm(c *gin.Context) (models.FormInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	mediaType := ""
	if ct := c.GetHeader("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, &apperrors.ValidationError{Message: fmt.Sprintf("invalid content type %q", ct)}
		}
		mediaType = parsed
	}

	switch mediaType {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return bindURLForm(c, mediaType)
	case gin.MIMEJSON, "":
		return bindJSON(c.Request.Body)
	default:
		return nil, &apperrors.ValidationError{Message: fmt.Sprintf("unsupported content type %q", mediaType)}
	}
}

func bindURLForm(c *gin.Context, mediaType string) (models.FormInput, error) {
	var err error
	if mediaType == gin.MIMEMultipartPOSTForm {
		err = c.Request.ParseMultipartForm(MaxBodyBytes)
	} else {
		err = c.Request.ParseForm()
	}
	if err != nil {
		return nil, &apperrors.ValidationError{Message: fmt.Sprintf("malformed form body: %v", err)}
	}

	form := models.FormInput{}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}
	return form, nil
}

func bindJSON(body io.Reader) (models.FormInput, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &apperrors.ValidationError{Message: fmt.Sprintf("failed to read body: %v", err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.FormInput{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var form models.FormInput
	if err := dec.Decode(&form); err != nil {
		return nil, &apperrors.ValidationError{Message: fmt.Sprintf("body must be a JSON object: %v", err)}
	}
	if form == nil {
		return models.FormInput{}, nil
	}
	if dec.More() {
		return nil, &apperrors.ValidationError{Message: "body must hold a single JSON object"}
	}
	return form, nil
}
