package logcollector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("log data is not valid UTF-8")

// readText reads the whole body and closes it
func readText(body io.ReadCloser) (string, error) {
	defer body.Close()

	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(body)
	if err != nil {
		return "", fmt.Errorf("could not read response from log data: %w", err)
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", ErrInvalidUTF8
	}

	return buf.String(), nil
}
