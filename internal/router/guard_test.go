package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	dashboard, ok := RouteByPath(PathDashboard)
	require.True(t, ok)
	login, ok := RouteByPath(PathLogin)
	require.True(t, ok)
	register, ok := RouteByPath(PathRegister)
	require.True(t, ok)

	tests := []struct {
		name     string
		target   Route
		want     Decision
		loggedIn bool
	}{
		{
			name:     "protected route while logged out redirects to login",
			target:   dashboard,
			loggedIn: false,
			want:     Decision{Action: Redirect, Target: PathLogin},
		},
		{
			name:     "protected route while logged in is allowed",
			target:   dashboard,
			loggedIn: true,
			want:     Decision{Action: Allow},
		},
		{
			name:     "login page while logged in redirects to dashboard",
			target:   login,
			loggedIn: true,
			want:     Decision{Action: Redirect, Target: PathDashboard},
		},
		{
			name:     "register page while logged in redirects to dashboard",
			target:   register,
			loggedIn: true,
			want:     Decision{Action: Redirect, Target: PathDashboard},
		},
		{
			name:     "login page while logged out is allowed",
			target:   login,
			loggedIn: false,
			want:     Decision{Action: Allow},
		},
		{
			name:     "public route while logged out is allowed",
			target:   Route{Name: "Landing", Path: "/", RequiresAuth: false},
			loggedIn: false,
			want:     Decision{Action: Allow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.target, tt.loggedIn))
		})
	}
}

func TestEveryClassificationRouteRequiresAuth(t *testing.T) {
	for _, path := range []string{PathClassification, PathTextRecognition, PathVoiceRecognition, PathImageRecognition, PathDashboard} {
		route, ok := RouteByPath(path)
		require.True(t, ok, path)
		assert.True(t, route.RequiresAuth, path)

		decision := Evaluate(route, false)
		assert.Equal(t, Redirect, decision.Action, path)
		assert.Equal(t, PathLogin, decision.Target, path)
	}
}

func TestDocumentTitle(t *testing.T) {
	login, ok := RouteByName("Login")
	require.True(t, ok)
	assert.Equal(t, "登录 - 垃圾分类管理系统", DocumentTitle(login))

	assert.Equal(t, "垃圾分类管理系统", DocumentTitle(Route{}))
}

func TestRouteLookups(t *testing.T) {
	byName, ok := RouteByName("TextRecognition")
	require.True(t, ok)
	assert.Equal(t, PathTextRecognition, byName.Path)

	_, ok = RouteByPath("/nope")
	assert.False(t, ok)

	_, ok = RouteByName("Nope")
	assert.False(t, ok)
}

func TestIsAuthPage(t *testing.T) {
	login, _ := RouteByPath(PathLogin)
	register, _ := RouteByPath(PathRegister)
	dashboard, _ := RouteByPath(PathDashboard)

	assert.True(t, login.IsAuthPage())
	assert.True(t, register.IsAuthPage())
	assert.False(t, dashboard.IsAuthPage())
}
