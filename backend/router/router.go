package router

import (
	"net/http"

	"beacon-guard/backend/app/controllers"
	"beacon-guard/backend/app/middleware"
)

// NewRouter wires the operator surface. Everything except /login sits
// behind bearer auth, matching the dashboard contract.
func NewRouter(authCtrl *controllers.AuthController, webCtrl *controllers.WebController, agentCtrl *controllers.AgentController, moduleCtrl *controllers.ModuleController, pushCtrl *controllers.PushController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /login", authCtrl.Login)

	// dashboard assets
	mux.Handle("GET /{$}", mw.RequireAuth(http.HandlerFunc(webCtrl.Index)))
	mux.Handle("GET /sw.js", mw.RequireAuth(http.HandlerFunc(webCtrl.ServiceWorker)))

	// agents
	mux.Handle("GET /agents", mw.RequireAuth(http.HandlerFunc(agentCtrl.List)))
	mux.Handle("GET /agent/{id}", mw.RequireAuth(http.HandlerFunc(agentCtrl.Get)))
	mux.Handle("DELETE /agent/{id}", mw.RequireAuth(http.HandlerFunc(agentCtrl.Delete)))

	// module queue and auto-execution
	mux.Handle("GET /modules", mw.RequireAuth(http.HandlerFunc(moduleCtrl.List)))
	mux.Handle("POST /module/{name}/{agentID}", mw.RequireAuth(http.HandlerFunc(moduleCtrl.Create)))
	mux.Handle("DELETE /module/{name}/{agentID}", mw.RequireAuth(http.HandlerFunc(moduleCtrl.Remove)))
	mux.Handle("POST /automodule/{name}", mw.RequireAuth(http.HandlerFunc(moduleCtrl.EnableAuto)))
	mux.Handle("DELETE /automodule/{name}", mw.RequireAuth(http.HandlerFunc(moduleCtrl.DisableAuto)))

	// DOM command log
	mux.Handle("POST /dom/{agentID}", mw.RequireAuth(http.HandlerFunc(moduleCtrl.SendDom)))

	// push notifications
	mux.Handle("POST /push/{agentID}", mw.RequireAuth(http.HandlerFunc(pushCtrl.Notify)))
	mux.Handle("POST /registration", mw.RequireAuth(http.HandlerFunc(pushCtrl.Register)))

	return mux
}
