// Package router defines the client's navigation surface and the guard that
// enforces authentication-based access to it.
package router

// Route is one named destination with its access metadata.
type Route struct {
	Name         string
	Path         string
	Title        string
	RequiresAuth bool
}

// IsAuthPage reports whether the route is the login or registration page.
func (r Route) IsAuthPage() bool {
	return r.Path == PathLogin || r.Path == PathRegister
}

// Route paths.
const (
	PathLogin            = "/login"
	PathRegister         = "/register"
	PathDashboard        = "/dashboard"
	PathClassification   = "/classification"
	PathTextRecognition  = "/classification/text"
	PathVoiceRecognition = "/classification/voice"
	PathImageRecognition = "/classification/image"
)

// Routes is the full navigation table.
var Routes = []Route{
	{Name: "Login", Path: PathLogin, Title: "登录"},
	{Name: "Register", Path: PathRegister, Title: "注册"},
	{Name: "Dashboard", Path: PathDashboard, Title: "垃圾分类管理", RequiresAuth: true},
	{Name: "GarbageClassification", Path: PathClassification, Title: "垃圾分类识别", RequiresAuth: true},
	{Name: "TextRecognition", Path: PathTextRecognition, Title: "文字识别", RequiresAuth: true},
	{Name: "VoiceRecognition", Path: PathVoiceRecognition, Title: "语音识别", RequiresAuth: true},
	{Name: "ImageRecognition", Path: PathImageRecognition, Title: "图像识别", RequiresAuth: true},
}

// RouteByPath looks up a route. The second result is false for unknown paths.
func RouteByPath(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// RouteByName looks up a route by its name.
func RouteByName(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Action is the guard's verdict on a navigation attempt.
type Action int

const (
	// Allow lets the navigation proceed.
	Allow Action = iota
	// Redirect sends the user to Decision.Target instead.
	Redirect
)

// Decision is the outcome of evaluating one navigation attempt.
type Decision struct {
	Target string
	Action Action
}

// Evaluate applies the access rules to a navigation attempt. It never errors:
// unauthorized access is a redirect, not a failure.
func Evaluate(target Route, loggedIn bool) Decision {
	if target.RequiresAuth && !loggedIn {
		return Decision{Action: Redirect, Target: PathLogin}
	}
	if target.IsAuthPage() && loggedIn {
		return Decision{Action: Redirect, Target: PathDashboard}
	}
	return Decision{Action: Allow}
}

// DocumentTitle derives the display title for a route.
func DocumentTitle(r Route) string {
	if r.Title == "" {
		return "垃圾分类管理系统"
	}
	return r.Title + " - 垃圾分类管理系统"
}
