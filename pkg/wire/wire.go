// Package wire converts rendered HTML into its transport representations:
// a JSON envelope, or a zlib-compressed base64 envelope sized for clients
// that inflate in the browser (DecompressionStream("deflate") consumes the
// RFC 1950 stream this package produces).
package wire

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

type jsonEnvelope struct {
	HTML string `json:"html"`
}

type compressedEnvelope struct {
	HTMLCompressed string `json:"html_compressed"`
}

// ToJSON wraps markup as {"html": <string>}.
func ToJSON(markup string) (string, error) {
	data, err := json.Marshal(jsonEnvelope{HTML: markup})
	if err != nil {
		return "", fmt.Errorf("wire: marshal envelope: %w", err)
	}
	return string(data), nil
}

// ToCompressedJSON zlib-compresses markup, base64-encodes the result, and
// wraps it as {"html_compressed": <string>}. Compression failures propagate;
// there is no silent fallback to the uncompressed form, so the consumer never
// has to guess the format.
func ToCompressedJSON(markup string) (string, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write([]byte(markup)); err != nil {
		return "", fmt.Errorf("wire: compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("wire: flush compressed stream: %w", err)
	}

	data, err := json.Marshal(compressedEnvelope{
		HTMLCompressed: base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	if err != nil {
		return "", fmt.Errorf("wire: marshal compressed envelope: %w", err)
	}
	return string(data), nil
}

// FromCompressedJSON is the inverse of ToCompressedJSON: it unwraps the
// envelope, base64-decodes, and inflates back to the original markup.
func FromCompressedJSON(payload string) (string, error) {
	var envelope compressedEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return "", fmt.Errorf("wire: unmarshal compressed envelope: %w", err)
	}

	compressed, err := base64.StdEncoding.DecodeString(envelope.HTMLCompressed)
	if err != nil {
		return "", fmt.Errorf("wire: decode base64: %w", err)
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("wire: open compressed stream: %w", err)
	}
	defer r.Close()

	markup, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("wire: inflate: %w", err)
	}
	return string(markup), nil
}
