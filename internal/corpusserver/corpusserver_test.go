package corpusserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dekarrin/rabench/internal/corpusserver"
	"github.com/dekarrin/rabench/internal/wiki"
	"github.com/dekarrin/rabench/internal/xmlio"
)

const testPassword = "hunter2"

func newTestServer(t *testing.T) (*corpusserver.Server, string) {
	t.Helper()
	dir := t.TempDir()

	w := &wiki.WikiRA{
		Locations: []wiki.WikiLocation{{Name: "q0", Initial: true}},
	}
	data, err := xmlio.Encode(w)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "5", "2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "5", "2", "5_2_0.xml"), data, 0o644))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	s := corpusserver.New(dir, hash, []byte("test-secret-test-secret-test-secret"))
	s.UnauthDelay = 0
	return s, dir
}

func mintToken(t *testing.T, s *corpusserver.Server, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestHandleAuthToken_RejectsWrongPassword(t *testing.T) {
	s, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleListCorpora_RequiresAuth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/corpora", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleListCorpora_ListsWrittenFixture(t *testing.T) {
	s, _ := newTestServer(t)
	tok := mintToken(t, s, testPassword)

	req := httptest.NewRequest(http.MethodGet, "/corpora", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "5/2/5_2_0.xml")
}

func TestHandleGetCorpusFile_StreamsXML(t *testing.T) {
	s, _ := newTestServer(t)
	tok := mintToken(t, s, testPassword)

	req := httptest.NewRequest(http.MethodGet, "/corpora/5/2/5_2_0.xml", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "register-automaton")
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
}

func TestHandleGetCorpusFile_SummaryVariantReportsLocationCount(t *testing.T) {
	s, _ := newTestServer(t)
	tok := mintToken(t, s, testPassword)

	req := httptest.NewRequest(http.MethodGet, "/corpora/5/2/5_2_0.xml/summary", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Summary, "locations")
}

func TestHandleGetCorpusFile_RejectsPathEscape(t *testing.T) {
	s, _ := newTestServer(t)
	tok := mintToken(t, s, testPassword)

	req := httptest.NewRequest(http.MethodGet, "/corpora/../../etc/passwd", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}
