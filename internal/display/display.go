// Copyright 2026 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display shows a rendered chart in a web browser and waits
// for the viewer to dismiss it.
package display

import (
	"context"
	"html/template"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A Viewer serves one chart at a time on a loopback HTTP server.
type Viewer struct {
	// Addr is the address to listen on. The default picks a free
	// port on localhost.
	Addr string

	// NoBrowser disables launching a browser; the URL is only
	// logged.
	NoBrowser bool

	// Launch opens url for the viewer. If nil, the system
	// browser is used.
	Launch func(url string) error

	Logger *zap.Logger
}

const shutdownTimeout = 5 * time.Second

// Show displays the PNG image img under title and blocks until the
// viewer presses Close on the page or ctx is done. It returns ctx.Err()
// in the latter case. Nothing is written to disk.
func (v *Viewer) Show(ctx context.Context, title string, img []byte) error {
	log := v.Logger
	if log == nil {
		log = zap.NewNop()
	}
	addr := v.Addr
	if addr == "" {
		addr = "localhost:0"
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "display %q", title)
	}

	dismissed := make(chan struct{})
	var once sync.Once
	srv := &http.Server{Handler: newHandler(title, img, func() {
		once.Do(func() { close(dismissed) })
	})}
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/"
	log.Info("chart ready", zap.String("title", title), zap.String("url", url))
	if !v.NoBrowser {
		launch := v.Launch
		if launch == nil {
			launch = openBrowser
		}
		if err := launch(url); err != nil {
			log.Warn("cannot open browser; open the URL by hand", zap.String("url", url), zap.Error(err))
		}
	}

	var result error
	select {
	case <-dismissed:
		log.Debug("chart dismissed", zap.String("title", title))
	case <-ctx.Done():
		result = ctx.Err()
	case err := <-served:
		return errors.Wrapf(err, "display %q", title)
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil && result == nil {
		result = errors.Wrap(err, "shutting down display server")
	}
	return result
}

var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1em; }
img { max-width: 100%; }
</style>
</head>
<body>
<img src="/chart.png?v={{.Version}}" alt="{{.Title}}">
<form method="post" action="/close"><button type="submit">Close</button></form>
</body>
</html>
`))

var closedPage = []byte(`<!DOCTYPE html>
<html><body><p>Chart closed. You can close this tab.</p></body></html>
`)

func newHandler(title string, img []byte, dismiss func()) http.Handler {
	version := strconv.FormatInt(time.Now().UnixNano(), 36)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct{ Title, Version string }{title, version}
		if err := pageTemplate.Execute(w, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	mux.HandleFunc("/chart.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(img)
	})
	mux.HandleFunc("/close", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(closedPage)
		dismiss()
	})
	return mux
}

// openBrowser starts the platform's URL handler. It does not wait for
// the browser to exit.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
