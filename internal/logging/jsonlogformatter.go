package logging

import (
	"fmt"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// JSONLogFormatter formats the HTTP access log for Logrus JSON output
type JSONLogFormatter struct {
	ServerAddress *net.TCPAddr
}

// JSONLogEntry prepares the Logrus context
type JSONLogEntry struct {
	request       *http.Request
	serverAddress *net.TCPAddr
}

// NewLogEntry creates a new entry for the Logrus log
func (j *JSONLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &JSONLogEntry{
		request:       r,
		serverAddress: j.ServerAddress,
	}
}

func getHeader(headers http.Header, name string) string {
	if name == "" {
		return ""
	}
	return headers.Get(name)
}

// fields returns the request fields common to access and panic entries
func (j *JSONLogEntry) fields() logrus.Fields {
	r := j.request

	remoteUser, _, basicAuthOk := r.BasicAuth()
	if !basicAuthOk {
		remoteUser = ""
	}

	port := 0
	if j.serverAddress != nil {
		port = j.serverAddress.Port
	}

	return logrus.Fields{
		"hostname":                r.Host,
		"remote_addr":             r.RemoteAddr,
		"remote_user":             remoteUser,
		"x-forwarded-for":         getHeader(r.Header, "X-Forwarded-For"),
		"request":                 fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
		"request_length":          r.ContentLength,
		"request_id":              middleware.GetReqID(r.Context()),
		"request_method":          r.Method,
		"request_uri":             r.RequestURI,
		"query_string":            r.URL.RawQuery,
		"server_protocol":         r.Proto,
		"server_port":             port,
		"received_content_length": r.ContentLength,
		"received_content_type":   getHeader(r.Header, "Content-Type"),
		"protocol":                "HTTP",
		"app":                     "base128",
		"type":                    "access",
		"user_agent":              r.UserAgent(),
	}
}

// Write outputs the log entry into the log
func (j *JSONLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	f := j.fields()
	f["request_time"] = elapsed.Seconds()
	f["request_completion"] = "OK"
	f["status"] = status
	f["sent_bytes"] = bytes
	f["sent_content_type"] = getHeader(header, "Content-Type")
	f["extra"] = extra

	logrus.WithFields(f).Debug()
}

// Panic outputs the log entry into the log
func (j *JSONLogEntry) Panic(v interface{}, stack []byte) {
	f := j.fields()
	f["request_completion"] = ""
	f["error"] = v
	f["stack"] = string(stack)

	logrus.WithFields(f).Errorf("%+v", v)
}
