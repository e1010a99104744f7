package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// Get executes a GET request against the test router
func (suite *HTTPTestSuite) Get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// PostForm executes a POST request with a url-encoded form body, the only
// mutation body type the API accepts.
func (suite *HTTPTestSuite) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// ParseJSONResponse parses a JSON response into target
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

// AssertEnvelopeSuccess asserts the HTTP-200 success envelope and returns
// the decoded payload.
func AssertEnvelopeSuccess(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	assert.Equal(t, http.StatusOK, recorder.Code)
	var payload map[string]interface{}
	ParseJSONResponse(t, recorder, &payload)
	assert.Equal(t, "success", payload["status"])
	return payload
}

// AssertEnvelopeError asserts the HTTP-200 error envelope and checks the
// message when one is given.
func AssertEnvelopeError(t *testing.T, recorder *httptest.ResponseRecorder, messageContains string) {
	t.Helper()
	assert.Equal(t, http.StatusOK, recorder.Code)
	var payload map[string]interface{}
	ParseJSONResponse(t, recorder, &payload)
	assert.Equal(t, "error", payload["status"])
	if messageContains != "" {
		assert.Contains(t, payload["message"], messageContains)
	}
}
