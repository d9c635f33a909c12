//go:build integration_test || all_tests

package e2e

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *E2ETestSuite) TestLoginLogout() {
	t := s.T()

	status, resp := s.call(t, "POST", "/a/login", "", map[string]string{
		"email":    s.coachEmail,
		"password": "bad-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "wrong credentials", resp.Error)

	status, _ = s.call(t, "POST", "/a/login", "", map[string]string{
		"email":    "nobody@trainerhub.io",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	token := s.login(t, s.coachEmail)

	status, _ = s.call(t, "GET", "/api/programs", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = s.call(t, "GET", "/a/logout", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)

	// session is gone
	status, resp = s.call(t, "GET", "/api/programs", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthenticated", resp.Error)

	status, _ = s.call(t, "GET", "/a/logout", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
