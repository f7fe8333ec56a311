package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mazegen/pkg/buildinfo"
	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
	"github.com/matzehuels/mazegen/pkg/store"
)

// maxBodyBytes bounds POST bodies; a mask is the only large field.
const maxBodyBytes = mzerr.MaxMaskBytes + 64*1024

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

type algorithmInfo struct {
	Name    maze.Algorithm `json:"name"`
	Uniform bool           `json:"uniform"`
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	algos := maze.Algorithms()
	out := make([]algorithmInfo, len(algos))
	for i, a := range algos {
		out[i] = algorithmInfo{Name: a, Uniform: a.Uniform()}
	}
	writeJSON(w, http.StatusOK, out)
}

type tileInfo struct {
	Code  uint8  `json:"code"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Walls string `json:"walls"`
}

func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	tiles := maze.Tiles()
	out := make([]tileInfo, len(tiles))
	for i, t := range tiles {
		out[i] = tileInfo{Code: uint8(t), Name: t.String(), Kind: t.Kind().String(), Walls: t.Walls().String()}
	}
	writeJSON(w, http.StatusOK, out)
}

// createRequest is the POST /v1/mazes body.
type createRequest struct {
	Columns   int         `json:"columns"`
	Rows      int         `json:"rows"`
	Mask      string      `json:"mask"`
	Algorithm string      `json:"algorithm"`
	Seed      uint64      `json:"seed"`
	Root      *maze.Coord `json:"root"`
}

type mazeResponse struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Cached    bool               `json:"cached,omitempty"`
	Document  mazeio.Document    `json:"document"`
	Analysis  *pipeline.Analysis `json:"analysis,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, mzerr.Wrap(mzerr.ErrCodeInvalidInput, err, "invalid request body: %v", err))
		return
	}

	opts := s.defaults
	opts.Formats = nil
	if req.Mask != "" {
		opts.Mask = req.Mask
		opts.Columns, opts.Rows = 0, 0
	}
	if req.Columns != 0 || req.Rows != 0 {
		opts.Columns, opts.Rows = req.Columns, req.Rows
	}
	if req.Algorithm != "" {
		opts.Algorithm = req.Algorithm
	}
	if req.Seed != 0 {
		opts.Seed = req.Seed
	} else if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	opts.Root = req.Root

	ctx := r.Context()
	g, meta, hit, err := s.runner.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	analysis, err := s.runner.Analyze(ctx, g, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rec := store.NewRecord(mazeio.Encode(g, meta))
	if err := s.store.Save(ctx, rec); err != nil {
		writeError(w, r, mzerr.Wrap(mzerr.ErrCodeStorage, err, "archive maze"))
		return
	}

	w.Header().Set("Location", "/v1/mazes/"+rec.ID)
	writeJSON(w, http.StatusCreated, mazeResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Cached:    hit,
		Document:  rec.Document,
		Analysis:  analysis,
	})
}

type listItem struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Algorithm string    `json:"algorithm"`
	Seed      uint64    `json:"seed"`
	Columns   int       `json:"columns"`
	Rows      int       `json:"rows"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, mzerr.New(mzerr.ErrCodeInvalidInput, "limit must be between 1 and 500"))
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, mzerr.Wrap(mzerr.ErrCodeStorage, err, "list mazes"))
		return
	}
	out := make([]listItem, len(recs))
	for i, rec := range recs {
		out[i] = listItem{
			ID:        rec.ID,
			CreatedAt: rec.CreatedAt,
			Algorithm: rec.Algorithm,
			Seed:      rec.Seed,
			Columns:   rec.Columns,
			Rows:      rec.Rows,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, g, ok := s.load(w, r)
	if !ok {
		return
	}
	analysis, err := pipeline.Analyze(g, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mazeResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Document:  rec.Document,
		Analysis:  analysis,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := mzerr.ValidateID(id); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRender accepts the query parameters heatmap, path (booleans),
// cell_size (pixels) and root ("col,row").
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	rec, g, ok := s.load(w, r)
	if !ok {
		return
	}

	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, mzerr.Wrap(mzerr.ErrCodeInvalidFormat, err, "%v", err))
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Formats: []string{string(format)},
		Heatmap: queryBool(q.Get("heatmap")),
		Path:    queryBool(q.Get("path")),
	}
	if v := q.Get("cell_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, mzerr.New(mzerr.ErrCodeInvalidInput, "cell_size must be an integer"))
			return
		}
		opts.CellSize = n
	}
	if v := q.Get("root"); v != "" {
		c, err := parseCoord(v)
		if err != nil {
			writeError(w, r, err)
			return
		}
		opts.Root = &c
	}

	ctx := r.Context()
	analysis, err := s.runner.Analyze(ctx, g, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	meta := mazeio.Meta{Algorithm: maze.Algorithm(rec.Algorithm), Seed: rec.Seed}
	artifacts, _, err := s.runner.RenderWithCacheInfo(ctx, g, meta, analysis, "", opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[string(format)])
}

// load fetches the record named by the id URL parameter and decodes its grid.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (store.Record, *maze.Grid, bool) {
	id := chi.URLParam(r, "id")
	if err := mzerr.ValidateID(id); err != nil {
		writeError(w, r, err)
		return store.Record{}, nil, false
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return store.Record{}, nil, false
	}
	g, _, err := mazeio.Decode(rec.Document)
	if err != nil {
		writeError(w, r, mzerr.Wrap(mzerr.ErrCodeStorage, err, "archived maze %s is corrupt", id))
		return store.Record{}, nil, false
	}
	return rec, g, true
}

func queryBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func parseCoord(s string) (maze.Coord, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	col, errC := strconv.Atoi(strings.TrimSpace(colStr))
	row, errR := strconv.Atoi(strings.TrimSpace(rowStr))
	if !ok || errC != nil || errR != nil {
		return maze.Coord{}, mzerr.New(mzerr.ErrCodeInvalidInput, "root must be \"col,row\", got %q", s)
	}
	return maze.Coord{Col: col, Row: row}, nil
}
