// Package web embeds the static operator dashboard assets. The
// service-worker script is a template: it needs the VAPID public key the
// panel was started with.
package web

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed static
var assets embed.FS

var swTmpl = template.Must(template.ParseFS(assets, "static/sw.js.tmpl"))

func Index() ([]byte, error) {
	return assets.ReadFile("static/index.html")
}

type SWParams struct {
	VAPIDPublicKey string
}

func ServiceWorker(p SWParams) ([]byte, error) {
	var buf bytes.Buffer
	if err := swTmpl.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
