package server

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	s.getOnly(s.serveIndex)(w, r)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	s.serveBytes(w, r, representation{
		contentType: "text/html; charset=utf-8",
		body:        s.bundle.HTML,
		brotli:      s.bundle.Brotli,
		etag:        s.bundle.ETag,
	})
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	s.serveBytes(w, r, representation{
		contentType: "text/markdown; charset=utf-8",
		body:        s.bundle.Markdown,
		etag:        s.bundle.MarkdownETag,
	})
}

type representation struct {
	contentType string
	body        []byte
	brotli      []byte
	etag        string
}

func (s *Server) serveBytes(w http.ResponseWriter, r *http.Request, rep representation) {
	h := w.Header()
	body, etag := rep.body, rep.etag

	if rep.brotli != nil {
		h.Add("Vary", "Accept-Encoding")
		if acceptsBrotli(r.Header.Get("Accept-Encoding")) {
			body = rep.brotli
			etag = strings.TrimSuffix(etag, `"`) + `-br"`
			h.Set("Content-Encoding", "br")
		}
	}

	h.Set("Cache-Control", "no-cache")
	h.Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", rep.contentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("writing response", zap.Error(err))
	}
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/assets/")
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(s.assetsDir, name)
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	ctype := mime.TypeByExtension(filepath.Ext(name))
	if ctype == "" {
		mt, err := mimetype.DetectReader(f)
		if err != nil {
			s.logger.Warn("detecting asset type", zap.String("asset", name), zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		ctype = mt.String()
		if _, err := f.Seek(0, 0); err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}
	w.Header().Set("Content-Type", ctype)
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// acceptsBrotli reports whether an Accept-Encoding value allows br.
func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.TrimSpace(name)
		if !strings.EqualFold(name, "br") && name != "*" {
			continue
		}
		q := 1.0
		for _, p := range strings.Split(params, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if ok && strings.EqualFold(k, "q") {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					q = f
				}
			}
		}
		return q > 0
	}
	return false
}

// etagMatches implements the weak comparison used by If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
