package corpusserver

import (
	"encoding/json"
	"net/http"

	"github.com/dekarrin/rabench/internal/rlog"
)

// result is a minimal version of tunaq's server/result.Result: an HTTP
// status plus a JSON-able body, with the response write and the log line
// bundled into one value so a handler can return one thing.
type result struct {
	status int
	body   any
	logMsg string
}

func jsonOK(body any, logMsg string) result {
	return result{status: http.StatusOK, body: body, logMsg: logMsg}
}

func jsonCreated(body any, logMsg string) result {
	return result{status: http.StatusCreated, body: body, logMsg: logMsg}
}

func jsonErr(status int, userMsg, logMsg string) result {
	return result{status: status, body: map[string]string{"error": userMsg}, logMsg: logMsg}
}

func jsonUnauthorized(logMsg string) result {
	return jsonErr(http.StatusUnauthorized, "authentication required", logMsg)
}

func jsonNotFound(logMsg string) result {
	return jsonErr(http.StatusNotFound, "not found", logMsg)
}

func (r result) writeResponse(w http.ResponseWriter, req *http.Request) {
	if r.status >= 400 {
		rlog.Warn("corpusserver", "%s %s: HTTP-%d %s", req.Method, req.URL.Path, r.status, r.logMsg)
	} else {
		rlog.Info("corpusserver", "%s %s: HTTP-%d %s", req.Method, req.URL.Path, r.status, r.logMsg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.status)
	if r.body != nil {
		json.NewEncoder(w).Encode(r.body)
	}
}
