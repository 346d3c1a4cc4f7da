// Package corpusserver is a read-only HTTP introspection service over an
// already-generated corpus directory (the <outputDir> tree spec section 6
// describes). It does not generate, equivalence-check, simulate, or learn
// RAs; it only lists and summarizes files a batch run already wrote,
// analogous to cmd/tqserver being a thin HTTP shell in front of the
// tunaq game engine rather than a second copy of its logic.
package corpusserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/rabench/internal/convert"
	"github.com/dekarrin/rabench/internal/report"
	"github.com/dekarrin/rabench/internal/xmlio"
)

// Server serves a read-only view of a generated corpus directory.
type Server struct {
	Root         string
	Secret       []byte
	PasswordHash []byte // bcrypt hash of the single operator credential
	UnauthDelay  time.Duration
	TokenTTL     time.Duration
	router       chi.Router
}

// New builds a Server rooted at corpusDir. passwordHash is a bcrypt hash
// (server/tunas.Login's verification style) of the one operator password
// used to mint tokens via POST /auth/token; secret signs the JWTs
// themselves.
func New(corpusDir string, passwordHash, secret []byte) *Server {
	s := &Server{
		Root:         corpusDir,
		Secret:       secret,
		PasswordHash: passwordHash,
		UnauthDelay:  time.Second,
		TokenTTL:     time.Hour,
	}
	s.router = s.routes()
	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(dontPanic, requestID)

	r.Post("/auth/token", s.handleAuthToken)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(s.Secret, s.UnauthDelay))
		r.Get("/corpora", s.handleListCorpora)
		r.Get("/corpora/*", s.handleGetCorpusFile)
	})

	return r
}

type tokenRequest struct {
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleAuthToken(w http.ResponseWriter, req *http.Request) {
	var body tokenRequest
	if err := decodeJSON(req, &body); err != nil {
		jsonErr(http.StatusBadRequest, "malformed request body", err.Error()).writeResponse(w, req)
		return
	}

	if err := bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(body.Password)); err != nil {
		time.Sleep(s.UnauthDelay)
		jsonUnauthorized("incorrect password").writeResponse(w, req)
		return
	}

	tok, err := generateToken(s.Secret, s.TokenTTL)
	if err != nil {
		jsonErr(http.StatusInternalServerError, "could not mint token", err.Error()).writeResponse(w, req)
		return
	}

	jsonCreated(tokenResponse{Token: tok}, "operator token minted").writeResponse(w, req)
}

type corpusEntry struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// handleListCorpora walks s.Root and lists every *.xml file by its path
// relative to the root, the param.../seed.xml layout spec section 6
// specifies for batch output.
func (s *Server) handleListCorpora(w http.ResponseWriter, req *http.Request) {
	var entries []corpusEntry
	err := filepath.Walk(s.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".xml") {
			return nil
		}
		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		entries = append(entries, corpusEntry{Path: filepath.ToSlash(rel), Size: info.Size()})
		return nil
	})
	if err != nil {
		jsonErr(http.StatusInternalServerError, "could not list corpus directory", err.Error()).writeResponse(w, req)
		return
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	jsonOK(entries, "listed corpus directory").writeResponse(w, req)
}

// handleGetCorpusFile either streams a corpus XML file or, if the path
// ends in "/summary", decodes it and reports a report.Summary instead.
func (s *Server) handleGetCorpusFile(w http.ResponseWriter, req *http.Request) {
	rest := chi.URLParam(req, "*")

	wantSummary := strings.HasSuffix(rest, "/summary")
	if wantSummary {
		rest = strings.TrimSuffix(rest, "/summary")
	}

	path, err := resolveCorpusPath(s.Root, rest)
	if err != nil {
		jsonErr(http.StatusBadRequest, "invalid path", err.Error()).writeResponse(w, req)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		jsonNotFound(err.Error()).writeResponse(w, req)
		return
	}

	if !wantSummary {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	wikiRA, err := xmlio.Decode(data)
	if err != nil {
		jsonErr(http.StatusUnprocessableEntity, "could not decode corpus file", err.Error()).writeResponse(w, req)
		return
	}
	model, err := convert.FromWiki(*wikiRA)
	if err != nil {
		jsonErr(http.StatusUnprocessableEntity, "could not convert corpus file", err.Error()).writeResponse(w, req)
		return
	}

	summary := report.Automaton(rest, model)
	jsonOK(map[string]any{
		"path":    rest,
		"summary": summary.String(),
	}, "summarized corpus file").writeResponse(w, req)
}

// resolveCorpusPath joins root and rel, cleaning rel as if it were rooted
// at root so that ".." segments cannot climb above root; any result that
// still falls outside root is rejected.
func resolveCorpusPath(root, rel string) (string, error) {
	clean := filepath.Clean("/" + rel)
	full := filepath.Join(root, clean)
	if !strings.HasPrefix(full, filepath.Clean(root)+string(os.PathSeparator)) && full != filepath.Clean(root) {
		return "", fmt.Errorf("path %q escapes corpus root", rel)
	}
	return full, nil
}

// decodeJSON decodes req's JSON body into v.
func decodeJSON(req *http.Request, v any) error {
	defer req.Body.Close()
	return json.NewDecoder(req.Body).Decode(v)
}
