package server

import (
	"bytes"
	"encoding/json"
	"github.com/bokysan/base128/internal/base128"
	"github.com/bokysan/base128/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"net/http"
)

const (
	// DefaultMaxBodySize limits the size of request bodies if nothing else is configured
	DefaultMaxBodySize = 32 << 20

	contentTypeText   = "text/plain; charset=utf-8"
	contentTypeLatin1 = "text/plain; charset=iso-8859-1"
	contentTypeBinary = "application/octet-stream"
	contentTypeJSON   = "application/json"
)

// Transcoder serves the base128 encoder and decoder over HTTP
type Transcoder struct {
	// Compact makes the encoder write compact padding markers unless the request says otherwise
	Compact bool
	// MaxBodySize is the maximum accepted request size in bytes
	MaxBodySize int64
	// EnableCompression negotiates per message compression on websocket connections
	EnableCompression bool
}

// ErrorResponse is returned as JSON on failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// AlphabetResponse describes the symbol table in use
type AlphabetResponse struct {
	Alphabet        string   `json:"alphabet"`
	Padding         string   `json:"padding"`
	CompactPadding  []string `json:"compactPadding"`
	BlockSize       int      `json:"blockSize"`
	SymbolsPerBlock int      `json:"symbolsPerBlock"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &ErrorResponse{Error: err.Error()})
}

// encoding returns the encoding requested by the `compact` query parameter, falling back to the configured one
func (t *Transcoder) encoding(r *http.Request) *base128.Encoding {
	compact := t.Compact
	switch r.URL.Query().Get("compact") {
	case "1", "true", "yes":
		compact = true
	case "0", "false", "no":
		compact = false
	}
	if compact {
		return base128.CompactEncoding
	}
	return base128.StdEncoding
}

func (t *Transcoder) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := t.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	return body, errors.WithStack(err)
}

// Encode returns the base128 encoding of the request body. With `charset=latin1` the symbols are returned
// as ISO-8859-1 bytes.
func (t *Transcoder) Encode(w http.ResponseWriter, r *http.Request) {
	body, err := t.readBody(w, r)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	charset, err := streams.NormalizeCharset(r.URL.Query().Get("charset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cw, err := streams.NewCharsetWriter(w, charset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if charset == streams.CharsetLatin1 {
		w.Header().Set("Content-Type", contentTypeLatin1)
	} else {
		w.Header().Set("Content-Type", contentTypeText)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := cw.Write([]byte(t.encoding(r).EncodeToString(body))); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
	if err := cw.Close(); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

// Decode returns the data represented by the base128 text in the request body. Whitespace is ignored.
// Text which cannot be decoded yields 422 Unprocessable Entity.
func (t *Transcoder) Decode(w http.ResponseWriter, r *http.Request) {
	body, err := t.readBody(w, r)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	cr, err := streams.NewCharsetReader(bytes.NewReader(body), r.URL.Query().Get("charset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	text, err := ioutil.ReadAll(cr)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.WithStack(err))
		return
	}

	data, err := base128.Decode(base128.Strip(string(text)))
	if err != nil {
		log.WithError(err).Debugf("Could not decode request: %v", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeBinary)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

// Alphabet describes the symbol table and padding markers
func (t *Transcoder) Alphabet(w http.ResponseWriter, r *http.Request) {
	markers := make([]string, 0)
	for n := 0; n < base128.SymbolsPerBlock; n++ {
		if m, ok := base128.CompactMarker(n); ok {
			markers = append(markers, string(m))
		}
	}

	writeJSON(w, http.StatusOK, &AlphabetResponse{
		Alphabet:        base128.StdAlphabet.String(),
		Padding:         string(base128.PadChar),
		CompactPadding:  markers,
		BlockSize:       base128.BlockSize,
		SymbolsPerBlock: base128.SymbolsPerBlock,
	})
}
