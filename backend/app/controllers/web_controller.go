package controllers

import (
	"net/http"

	"beacon-guard/backend/web"
)

// WebController serves the embedded dashboard page and its service
// worker. The worker script carries the VAPID public key so the browser
// can subscribe for pushes.
type WebController struct{ VAPIDPublicKey string }

func NewWebController(vapidPublicKey string) *WebController {
	return &WebController{VAPIDPublicKey: vapidPublicKey}
}

func (c *WebController) Index(w http.ResponseWriter, r *http.Request) {
	body, err := web.Index()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (c *WebController) ServiceWorker(w http.ResponseWriter, r *http.Request) {
	body, err := web.ServiceWorker(web.SWParams{VAPIDPublicKey: c.VAPIDPublicKey})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = w.Write(body)
}
