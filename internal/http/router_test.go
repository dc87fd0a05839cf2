package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/cache"
	"github.com/dropDatabas3/taskjohn/internal/config"
	httpx "github.com/dropDatabas3/taskjohn/internal/http"
	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
	"github.com/dropDatabas3/taskjohn/internal/security/password"
	"github.com/dropDatabas3/taskjohn/internal/store/memory"
	"github.com/dropDatabas3/taskjohn/internal/tasks"
)

// newTestServer levanta el stack completo sobre el store en memoria.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.JWT.Issuer = "taskjohn-test"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.AccessTTL = "1h"
	cfg.Cache.Kind = "memory"
	cfg.Cache.TTL = "2m"

	repo := memory.New()
	cc, err := cache.New(cache.Config{Kind: "memory", DefaultTTL: 2 * time.Minute})
	require.NoError(t, err)

	iss := jwtx.NewIssuer(cfg.JWT.Issuer, []byte(cfg.JWT.Secret))
	iss.AccessTTL = time.Hour

	hashParams := password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}
	c := &app.Container{
		Cfg:      cfg,
		Repo:     repo,
		Issuer:   iss,
		Auth:     auth.NewService(auth.Deps{Repo: repo, Issuer: iss, HashParams: hashParams}),
		Tasks:    tasks.NewService(tasks.Deps{Repo: repo}),
		Identity: auth.NewResolver(repo, cc, 2*time.Minute),
	}

	srv := httptest.NewServer(httpx.NewRouter(c))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func signupSignin(t *testing.T, srv *httptest.Server, username, pass string) string {
	t.Helper()
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "",
		map[string]string{"username": username, "password": pass})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "",
		map[string]string{"username": username, "password": pass})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignupSigninFlow(t *testing.T) {
	srv := newTestServer(t)

	// Signup feliz.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "",
		map[string]string{"username": "alice", "password": "Sup3rSecret"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "alice", body["username"])
	require.NotEmpty(t, body["id"])
	_, hasHash := body["password_hash"]
	require.False(t, hasHash)

	// Username repetido: 409.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "",
		map[string]string{"username": "alice", "password": "OtherPass1"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "username_taken", body["error"])

	// Password débil: 400 antes de llegar al storage.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "",
		map[string]string{"username": "charlie", "password": "alllowercase"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid_password", body["error"])

	// Username corto: 400.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "",
		map[string]string{"username": "ab", "password": "Sup3rSecret"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid_username", body["error"])

	// Signin con usuario inexistente y con password malo: respuestas idénticas.
	respGhost, bodyGhost := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "",
		map[string]string{"username": "ghost", "password": "Sup3rSecret"})
	respWrong, bodyWrong := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "",
		map[string]string{"username": "alice", "password": "WrongPass1"})
	require.Equal(t, http.StatusUnauthorized, respGhost.StatusCode)
	require.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	require.Equal(t, bodyGhost["error"], bodyWrong["error"])

	// Signin feliz entrega un token que sirve para /v1/me.
	token := signupSignin(t, srv, "dave", "Sup3rSecret")
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "dave", body["username"])
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	// Sin token, token con formato raro y token firmado con otro secreto:
	// todos el mismo 401 genérico.
	cases := []string{"", "not-a-jwt", signedElsewhere(t)}
	for _, tok := range cases {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/tasks", tok, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "unauthorized", body["error"])
	}

	// Token válido criptográficamente pero de un usuario que no existe acá.
	ownIss := jwtx.NewIssuer("taskjohn-test", []byte("0123456789abcdef0123456789abcdef"))
	ownIss.AccessTTL = time.Hour
	tok, _, err := ownIss.Issue("nobody")
	require.NoError(t, err)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/tasks", tok, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "unauthorized", body["error"])
}

func signedElsewhere(t *testing.T) string {
	t.Helper()
	other := jwtx.NewIssuer("taskjohn-test", []byte("ffffffffffffffffffffffffffffffff"))
	other.AccessTTL = time.Hour
	tok, _, err := other.Issue("alice")
	require.NoError(t, err)
	return tok
}

func TestTasksFlow(t *testing.T) {
	srv := newTestServer(t)
	token := signupSignin(t, srv, "alice", "Sup3rSecret")

	// Crear.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/tasks", token,
		map[string]string{"title": "Buy milk", "description": "two liters"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "OPEN", body["status"])
	taskID, _ := body["id"].(string)
	require.NotEmpty(t, taskID)

	// Sin title: 400.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/tasks", token,
		map[string]string{"description": "no title"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "missing_title", body["error"])

	// Listar y filtrar.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/tasks", token,
		map[string]string{"title": "Write report"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp, err := authedGet(srv.URL+"/v1/tasks", token)
	require.NoError(t, err)
	require.Len(t, listResp, 2)

	listResp, err = authedGet(srv.URL+"/v1/tasks?search=milk", token)
	require.NoError(t, err)
	require.Len(t, listResp, 1)

	listResp, err = authedGet(srv.URL+"/v1/tasks?status=OPEN", token)
	require.NoError(t, err)
	require.Len(t, listResp, 2)

	// Status inválido en el filtro: 400.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/tasks?status=BOGUS", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid_status", body["error"])

	// Update de status.
	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/v1/tasks/"+taskID+"/status", token,
		map[string]string{"status": "IN_PROGRESS"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "IN_PROGRESS", body["status"])

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/v1/tasks/"+taskID+"/status", token,
		map[string]string{"status": "ARCHIVED"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid_status", body["error"])

	// Delete y verificación de ausencia.
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/tasks/"+taskID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/tasks/"+taskID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "not_found", body["error"])
}

func TestTasksOwnershipOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	aliceTok := signupSignin(t, srv, "alice", "Sup3rSecret")
	bobTok := signupSignin(t, srv, "bobby", "Sup3rSecret")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/tasks", aliceTok,
		map[string]string{"title": "Private"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	taskID, _ := body["id"].(string)

	// Con el token de bob: get, delete y patch sobre la task de alice se ven
	// exactamente como un id inexistente. Ídem un id malformado.
	paths := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, srv.URL + "/v1/tasks/" + taskID, nil},
		{http.MethodDelete, srv.URL + "/v1/tasks/" + taskID, nil},
		{http.MethodPatch, srv.URL + "/v1/tasks/" + taskID + "/status", map[string]string{"status": "DONE"}},
		{http.MethodGet, srv.URL + "/v1/tasks/definitely-not-a-uuid", nil},
	}
	for _, p := range paths {
		resp, body := doJSON(t, p.method, p.url, bobTok, p.body)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", p.method, p.url)
		require.Equal(t, "not_found", body["error"])
	}

	// La task de alice sigue viva e intacta.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/tasks/"+taskID, aliceTok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "OPEN", body["status"])

	// Y el listado de bob no la incluye.
	list, err := authedGet(srv.URL+"/v1/tasks", bobTok)
	require.NoError(t, err)
	require.Empty(t, list)
}

func authedGet(url, token string) ([]map[string]any, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	var out []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
