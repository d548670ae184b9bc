package http

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/JMURv/apk-gate/internal/auth"
	"github.com/JMURv/apk-gate/internal/config"
	"github.com/JMURv/apk-gate/internal/dto"
	md "github.com/JMURv/apk-gate/internal/models"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminJWT(t *testing.T, conf config.Config) string {
	claims := &auth.Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    conf.Auth.JWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(conf.Auth.JWT.Secret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, method, target, token string, payload any) *http.Response {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData[T any](t *testing.T, resp *http.Response) T {
	var res struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.NoError(t, resp.Body.Close())
	return res.Data
}

func resolveTarget(base, device, token, pkg, version string) string {
	q := url.Values{}
	q.Set("device", device)
	q.Set("token", token)
	q.Set("package", pkg)
	q.Set("version", version)
	return base + "/entitlement?" + q.Encode()
}

func TestEntitlementRoutes(t *testing.T) {
	ts, conf, cleanup := setupTestServer()
	defer cleanup(t)

	admin := adminJWT(t, conf)

	var tokenValue string

	t.Run("Health endpoint", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Admin routes reject anonymous callers", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/customers", "",
			map[string]any{"key": "ck-1", "name": "Acme Fleet"},
		)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Admin routes reject non-admin credentials", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/customers", "who-knows",
			map[string]any{"key": "ck-1", "name": "Acme Fleet"},
		)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Create customer", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/customers", admin,
			map[string]any{"key": "ck-1", "name": "Acme Fleet"},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		res := decodeData[dto.CreateCustomerResponse](t, resp)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("Duplicate customer key conflicts", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/customers", admin,
			map[string]any{"key": "ck-1", "name": "Someone Else"},
		)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Register device", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/devices", admin,
			map[string]any{"code": "dev-42", "model": "Pixel 8"},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		res := decodeData[dto.RegisterDeviceResponse](t, resp)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("Issue token", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/tokens", admin,
			map[string]any{"customerKey": "ck-1"},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		res := decodeData[dto.IssueTokenResponse](t, resp)
		require.NotEmpty(t, res.TokenValue)
		assert.Nil(t, res.Expiry)

		tokenValue = res.TokenValue
	})

	t.Run("Issue token for unknown customer", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/tokens", admin,
			map[string]any{"customerKey": "nope"},
		)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Resolve before binding is forbidden", func(t *testing.T) {
		resp, err := http.Get(resolveTarget(ts.URL, "dev-42", tokenValue, "MainApp", "1.2.0"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Bind device to customer", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/bindings", admin,
			map[string]any{"customerKey": "ck-1", "deviceCode": "dev-42"},
		)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Rebinding conflicts", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/bindings", admin,
			map[string]any{"customerKey": "ck-1", "deviceCode": "dev-42"},
		)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Resolve succeeds and is repeatable", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := http.Get(resolveTarget(ts.URL, "dev-42", tokenValue, "MainApp", "1.2.0"))
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			res := decodeData[dto.EntitlementResponse](t, resp)
			assert.Equal(t, "MainApp", res.APKName)
			assert.Equal(t, "1.2.0", res.APKVersion)
			assert.Equal(
				t,
				conf.APK.ArtifactRoot+"/MainApp/1.2.0/MainApp-1.2.0.apk",
				res.APKPath,
			)
		}
	})

	t.Run("Repeat resolves keep a single entitlement row", func(t *testing.T) {
		resp := doRequest(t, http.MethodGet, ts.URL+"/devices/dev-42/entitlements", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := decodeData[[]md.APKInfo](t, resp)
		assert.Len(t, res, 1)
	})

	t.Run("Concurrent resolves converge on one row", func(t *testing.T) {
		const workers = 8

		var wg sync.WaitGroup
		codes := make(chan int, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				resp, err := http.Get(resolveTarget(ts.URL, "dev-42", tokenValue, "MainApp", "2.0.0"))
				if err != nil {
					codes <- 0
					return
				}
				codes <- resp.StatusCode
				resp.Body.Close()
			}()
		}
		wg.Wait()
		close(codes)

		for code := range codes {
			assert.Equal(t, http.StatusOK, code)
		}

		resp := doRequest(t, http.MethodGet, ts.URL+"/devices/dev-42/entitlements", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		res := decodeData[[]md.APKInfo](t, resp)
		assert.Len(t, res, 2)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/tokens", admin,
			map[string]any{"customerKey": "ck-1", "ttlSeconds": 1},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		res := decodeData[dto.IssueTokenResponse](t, resp)
		require.NotNil(t, res.Expiry)

		time.Sleep(2 * time.Second)

		expResp, err := http.Get(resolveTarget(ts.URL, "dev-42", res.TokenValue, "MainApp", "1.2.0"))
		require.NoError(t, err)
		defer expResp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, expResp.StatusCode)
	})

	t.Run("Unknown device and token", func(t *testing.T) {
		resp, err := http.Get(resolveTarget(ts.URL, "ghost", tokenValue, "MainApp", "1.2.0"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = http.Get(resolveTarget(ts.URL, "dev-42", "no-such-token", "MainApp", "1.2.0"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Revoking a token removes its entitlements", func(t *testing.T) {
		resp := doRequest(t, http.MethodDelete, ts.URL+"/tokens/"+tokenValue, admin, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		gone, err := http.Get(resolveTarget(ts.URL, "dev-42", tokenValue, "MainApp", "1.2.0"))
		require.NoError(t, err)
		gone.Body.Close()
		assert.Equal(t, http.StatusNotFound, gone.StatusCode)

		list := doRequest(t, http.MethodGet, ts.URL+"/devices/dev-42/entitlements", admin, nil)
		require.Equal(t, http.StatusOK, list.StatusCode)

		res := decodeData[[]md.APKInfo](t, list)
		assert.Empty(t, res)
	})

	t.Run("Unbind device", func(t *testing.T) {
		resp := doRequest(
			t, http.MethodDelete, ts.URL+"/bindings", admin,
			map[string]any{"customerKey": "ck-1", "deviceCode": "dev-42"},
		)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		again := doRequest(
			t, http.MethodDelete, ts.URL+"/bindings", admin,
			map[string]any{"customerKey": "ck-1", "deviceCode": "dev-42"},
		)
		again.Body.Close()
		assert.Equal(t, http.StatusNotFound, again.StatusCode)
	})
}

func TestCascadeRoutes(t *testing.T) {
	ts, conf, cleanup := setupTestServer()
	defer cleanup(t)

	admin := adminJWT(t, conf)

	seed := func(t *testing.T, customerKey, deviceCode string) (custID, devID, token string) {
		resp := doRequest(
			t, http.MethodPost, ts.URL+"/customers", admin,
			map[string]any{"key": customerKey, "name": "Cascade Co"},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		custID = decodeData[dto.CreateCustomerResponse](t, resp).ID.String()

		resp = doRequest(
			t, http.MethodPost, ts.URL+"/devices", admin,
			map[string]any{"code": deviceCode, "model": "Tab A9"},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		devID = decodeData[dto.RegisterDeviceResponse](t, resp).ID.String()

		resp = doRequest(
			t, http.MethodPost, ts.URL+"/bindings", admin,
			map[string]any{"customerKey": customerKey, "deviceCode": deviceCode},
		)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doRequest(
			t, http.MethodPost, ts.URL+"/tokens", admin,
			map[string]any{"customerKey": customerKey},
		)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		token = decodeData[dto.IssueTokenResponse](t, resp).TokenValue

		rs, err := http.Get(resolveTarget(ts.URL, deviceCode, token, "MainApp", "1.2.0"))
		require.NoError(t, err)
		rs.Body.Close()
		require.Equal(t, http.StatusOK, rs.StatusCode)

		return custID, devID, token
	}

	t.Run("Deleting a customer removes tokens bindings and entitlements", func(t *testing.T) {
		custID, _, token := seed(t, "ck-cas-1", "dev-cas-1")

		resp := doRequest(t, http.MethodDelete, ts.URL+"/customers/"+custID, admin, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		gone := doRequest(t, http.MethodGet, ts.URL+"/customers/ck-cas-1", admin, nil)
		gone.Body.Close()
		assert.Equal(t, http.StatusNotFound, gone.StatusCode)

		rs, err := http.Get(resolveTarget(ts.URL, "dev-cas-1", token, "MainApp", "1.2.0"))
		require.NoError(t, err)
		rs.Body.Close()
		assert.Equal(t, http.StatusNotFound, rs.StatusCode)

		list := doRequest(t, http.MethodGet, ts.URL+"/devices/dev-cas-1/entitlements", admin, nil)
		require.Equal(t, http.StatusOK, list.StatusCode)
		assert.Empty(t, decodeData[[]md.APKInfo](t, list))

		custs := doRequest(t, http.MethodGet, ts.URL+"/devices/dev-cas-1/customers", admin, nil)
		require.Equal(t, http.StatusOK, custs.StatusCode)
		assert.Empty(t, decodeData[[]md.Customer](t, custs))
	})

	t.Run("Deleting a device removes bindings and entitlements", func(t *testing.T) {
		_, devID, token := seed(t, "ck-cas-2", "dev-cas-2")

		resp := doRequest(t, http.MethodDelete, ts.URL+"/devices/"+devID, admin, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		gone := doRequest(t, http.MethodGet, ts.URL+"/devices/dev-cas-2", admin, nil)
		gone.Body.Close()
		assert.Equal(t, http.StatusNotFound, gone.StatusCode)

		rs, err := http.Get(resolveTarget(ts.URL, "dev-cas-2", token, "MainApp", "1.2.0"))
		require.NoError(t, err)
		rs.Body.Close()
		assert.Equal(t, http.StatusNotFound, rs.StatusCode)

		devs := doRequest(t, http.MethodGet, ts.URL+"/customers/ck-cas-2/devices", admin, nil)
		require.Equal(t, http.StatusOK, devs.StatusCode)
		assert.Empty(t, decodeData[[]md.Device](t, devs))

		toks := doRequest(t, http.MethodGet, ts.URL+"/customers/ck-cas-2/tokens", admin, nil)
		require.Equal(t, http.StatusOK, toks.StatusCode)
		assert.Len(t, decodeData[[]md.Token](t, toks), 1)
	})
}
