// internal/server/server.go
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDuration = 300 * time.Millisecond

// BuildFunc rebuilds the site into the served directory.
type BuildFunc func() error

// Run builds the site, serves dst on port and rebuilds whenever something
// under src changes. Connected browsers reload after every successful
// rebuild. It returns when ctx is cancelled or the listener fails.
func Run(ctx context.Context, port int, src, dst string, build BuildFunc, logger *zap.SugaredLogger) error {
	if err := build(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	hub := newHub(logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	w := &sourceWatcher{
		watcher: watcher,
		src:     src,
		dst:     dst,
		watched: make(map[string]bool),
		logger:  logger,
	}
	if err := w.addTree(src); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", src, err)
	}
	go w.loop(ctx, func() {
		if err := build(); err != nil {
			logger.Errorw("error rebuilding site", "error", err)
			return
		}
		logger.Infow("site rebuilt, triggering reload", "clients", hub.broadcastMessage([]byte("reload")))
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})
	mux.Handle("/", liveReloadWrapper(http.FileServer(http.Dir(dst))))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Infow("serving site", "url", fmt.Sprintf("http://localhost:%d", port), "root", dst)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// sourceWatcher tracks every directory of the source tree, except the
// output directory and hidden directories.
type sourceWatcher struct {
	watcher *fsnotify.Watcher
	src     string
	dst     string
	watched map[string]bool
	logger  *zap.SugaredLogger
}

// addTree watches root and all its subdirectories.
func (w *sourceWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		w.add(path)
		return nil
	})
}

func (w *sourceWatcher) add(dir string) {
	dir = filepath.Clean(dir)
	if w.watched[dir] {
		return
	}
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Warnw("error adding watch", "dir", dir, "error", err)
		return
	}
	w.logger.Debugw("watching directory", "dir", dir)
	w.watched[dir] = true
}

// ignored reports whether changes under path must not trigger a rebuild:
// the output directory, which every build rewrites, and hidden entries
// such as .git or editor swap files.
func (w *sourceWatcher) ignored(path string) bool {
	if isUnder(path, w.dst) {
		return true
	}
	rel, err := filepath.Rel(w.src, path)
	if err != nil || rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") && part != ".env" {
			return true
		}
	}
	return false
}

// loop rebuilds once changes have been quiet for the debounce delay. Every
// relevant event restarts the delay, so a change made during a rebuild
// triggers another one.
func (w *sourceWatcher) loop(ctx context.Context, rebuild func()) {
	timer := time.NewTimer(debounceDuration)
	if !timer.Stop() {
		<-timer.C
	}
	pending := ""
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) || w.ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warnw("error watching new directory", "dir", event.Name, "error", err)
					}
				}
			}
			if pending != "" && !timer.Stop() {
				<-timer.C
			}
			pending = event.Name
			timer.Reset(debounceDuration)
		case <-timer.C:
			w.logger.Infow("change detected, rebuilding", "path", pending)
			pending = ""
			rebuild()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("watcher error", "error", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// isUnder reports whether path is dir or lies below it.
func isUnder(path, dir string) bool {
	if dir == "" {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// liveReloadWrapper disables caching and injects the reload script into
// successful HTML responses.
func liveReloadWrapper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		isHTML := strings.HasSuffix(r.URL.Path, ".html") || strings.HasSuffix(r.URL.Path, "/")
		if !isHTML {
			next.ServeHTTP(w, r)
			return
		}

		iw := newInterceptingWriter(w)
		next.ServeHTTP(iw, r)

		for key, values := range iw.Header() {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}

		body := iw.body.Bytes()
		contentType := iw.Header().Get("Content-Type")
		if iw.statusCode != http.StatusOK || !strings.HasPrefix(contentType, "text/html") {
			w.WriteHeader(iw.statusCode)
			w.Write(body)
			return
		}

		injected := injectScript(body)
		w.Header().Set("Content-Length", fmt.Sprint(len(injected)))
		w.WriteHeader(iw.statusCode)
		w.Write(injected)
	})
}

// injectScript places the reload script before </body>, or at the end of
// documents that have none.
func injectScript(body []byte) []byte {
	if bytes.Contains(body, []byte("</body>")) {
		return bytes.Replace(body, []byte("</body>"), []byte(liveReloadScript+"</body>"), 1)
	}
	return append(body, liveReloadScript...)
}

type interceptingWriter struct {
	http.ResponseWriter
	body       *bytes.Buffer
	statusCode int
	header     http.Header
}

func newInterceptingWriter(w http.ResponseWriter) *interceptingWriter {
	return &interceptingWriter{
		ResponseWriter: w,
		body:           new(bytes.Buffer),
		header:         make(http.Header),
		statusCode:     http.StatusOK,
	}
}

func (iw *interceptingWriter) Header() http.Header {
	return iw.header
}

func (iw *interceptingWriter) Write(b []byte) (int, error) {
	return iw.body.Write(b)
}

func (iw *interceptingWriter) WriteHeader(statusCode int) {
	iw.statusCode = statusCode
}

const liveReloadScript = `
<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
    socket.onerror = function() {
      console.error("Live reload connection error. Please restart 'wwwgen serve'.");
    };
  })();
</script>
`
