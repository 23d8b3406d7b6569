package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/u-share/sortflow/internal/api"
	"github.com/u-share/sortflow/internal/assistant"
	"github.com/u-share/sortflow/internal/auth"
	"github.com/u-share/sortflow/internal/cli"
	"github.com/u-share/sortflow/internal/guide"
	"github.com/u-share/sortflow/internal/recognize"
	"github.com/u-share/sortflow/internal/router"
	"github.com/u-share/sortflow/internal/session"
)

// app wires the session and the domain clients over one shared adapter.
type app struct {
	session   *session.Store
	recognize *recognize.Client
	assistant *assistant.Client
	guide     *guide.Client
}

func newApp() (*app, error) {
	tokens, err := session.NewFileTokenStore(viper.GetString("session.token_file"))
	if err != nil {
		return nil, fmt.Errorf("failed to set up token storage: %w", err)
	}

	a := &app{}
	apiClient := api.New(viper.GetString("api.base_url"),
		api.WithAuthToken(func() string { return a.session.Token() }))

	a.session = session.NewStore(auth.NewClient(apiClient), tokens)
	a.recognize = recognize.NewClient(apiClient)
	a.assistant = assistant.NewClient(apiClient)
	a.guide = guide.NewClient(apiClient)
	return a, nil
}

// guardRoute evaluates the route guard for the route backing a command and
// translates a redirect decision into a user-facing error.
func (a *app) guardRoute(path string) error {
	target, ok := router.RouteByPath(path)
	if !ok {
		return fmt.Errorf("unknown route: %s", path)
	}

	decision := router.Evaluate(target, a.session.IsLoggedIn())
	if decision.Action == router.Allow {
		// Mirror of the web client's page-title side effect.
		fmt.Println(cli.SubtleStyle.Render(router.DocumentTitle(target)))
		return nil
	}

	switch decision.Target {
	case router.PathLogin:
		return fmt.Errorf("please log in first: sortflow login")
	case router.PathDashboard:
		return fmt.Errorf("already logged in; run sortflow logout to switch accounts")
	default:
		return fmt.Errorf("navigation redirected to %s", decision.Target)
	}
}
