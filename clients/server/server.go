// Package server exposes image generation over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/xob0t/pixelrows/pkg/generator"
	"github.com/xob0t/pixelrows/pkg/rowgen"
)

// Limits for a single render request.
const (
	maxDimension = 4096
	maxInspect   = 1 << 20
)

// ── Server ──

// NewHandler returns the API routes.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/render", handleRender)
	mux.HandleFunc("POST /api/inspect", handleInspect)
	return mux
}

// RunServe starts the API server on addr.
func RunServe(addr string) error {
	log.Printf("pixelrows API → http://localhost%s/api/render", addr)
	return http.ListenAndServe(addr, NewHandler())
}

// ── Render ──

type renderRequest struct {
	width  int
	height int
	ext    string
	cfg    generator.Config
}

func parseRender(r *http.Request) (renderRequest, error) {
	q := r.URL.Query()
	req := renderRequest{width: 32, height: 32}

	dim := func(name string, dst *int) error {
		v := q.Get(name)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", name, v)
		}
		if n <= 0 || n > maxDimension {
			return fmt.Errorf("%s must be in 1..%d", name, maxDimension)
		}
		*dst = n
		return nil
	}
	if err := dim("width", &req.width); err != nil {
		return req, err
	}
	if err := dim("height", &req.height); err != nil {
		return req, err
	}

	ext, err := generator.FormatExt(q.Get("format"))
	if err != nil {
		return req, err
	}
	req.ext = ext

	req.cfg = generator.Config{Width: req.width, Height: req.height}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seed %q", s)
		}
		req.cfg.Source = rowgen.NewSeeded(seed)
	}
	return req, nil
}

func handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRender(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := generator.GenerateToWriter(&buf, req.ext, req.cfg); err != nil {
		log.Printf("render %dx%d%s: %v", req.width, req.height, req.ext, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", generator.ContentType(req.ext))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("render %dx%d%s: write response: %v", req.width, req.height, req.ext, err)
	}
}

// ── Inspect ──

func handleInspect(w http.ResponseWriter, r *http.Request) {
	hdr, err := generator.ReadHeader(io.LimitReader(r.Body, maxInspect))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(hdr); err != nil {
		log.Printf("inspect: write response: %v", err)
	}
}
