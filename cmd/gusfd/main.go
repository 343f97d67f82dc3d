// Command gusfd is a read-only HTTP query server, the gin-backed
// counterpart to cmd/edict.go: every route except /corpus/load is
// mirrored as both GET (query-string parameters) and POST (form
// parameters), so a client can use either nquire-style plain GET
// requests or form posts; /corpus/load is GET only.
package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafalcode/gusf/internal/ahocorasick"
	"github.com/rafalcode/gusf/internal/bmset"
	"github.com/rafalcode/gusf/internal/boyermoore"
	"github.com/rafalcode/gusf/internal/corpus"
	"github.com/rafalcode/gusf/internal/kmp"
	"github.com/rafalcode/gusf/internal/naive"
	"github.com/rafalcode/gusf/internal/repeats/primitives"
	"github.com/rafalcode/gusf/internal/repeats/supermax"
	"github.com/rafalcode/gusf/internal/sufftree"
	"github.com/rafalcode/gusf/internal/wordindex"
)

const helpText = `gusfd: read-only string-matching query server

GET/POST /help
GET/POST /version
GET/POST /search?text=...&pattern=...&algorithm=naive|kmp|boyermoore|ahocorasick|bmset[&stem=1]
GET/POST /repeats?text=...
`

const versionString = "gusf 1.0"

type matchResult struct {
	Pos    int `json:"pos"`
	Length int `json:"length"`
}

func main() {
	host := getenv("GUSFD_HOST", "localhost")
	port := getenv("GUSFD_PORT", "8080")

	r := gin.Default()

	r.GET("/help", func(c *gin.Context) { c.String(http.StatusOK, helpText) })
	r.POST("/help", func(c *gin.Context) { c.String(http.StatusOK, helpText) })

	r.GET("/version", func(c *gin.Context) { c.String(http.StatusOK, versionString) })
	r.POST("/version", func(c *gin.Context) { c.String(http.StatusOK, versionString) })

	search := func(c *gin.Context, text, pattern, algorithm string, stem bool) {
		if text == "" || pattern == "" || algorithm == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text, pattern, and algorithm are required"})
			return
		}
		if stem {
			pattern = wordindex.Stem(pattern)
		}
		matches, err := runSearch(algorithm, []byte(text), []byte(pattern))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"matches": matches})
	}

	r.GET("/search", func(c *gin.Context) {
		stem, _ := strconv.ParseBool(c.Query("stem"))
		search(c, c.Query("text"), c.Query("pattern"), c.Query("algorithm"), stem)
	})
	r.POST("/search", func(c *gin.Context) {
		stem, _ := strconv.ParseBool(c.PostForm("stem"))
		search(c, c.PostForm("text"), c.PostForm("pattern"), c.PostForm("algorithm"), stem)
	})

	repeatsHandler := func(c *gin.Context, text string) {
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}
		prims, err := primitives.Find([]byte(text))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tr, err := sufftree.Build([]byte(text))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		super, err := supermax.Find(tr, 1, 100)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"primitives": prims, "supermaximal": super})
	}
	r.GET("/repeats", func(c *gin.Context) { repeatsHandler(c, c.Query("text")) })
	r.POST("/repeats", func(c *gin.Context) { repeatsHandler(c, c.PostForm("text")) })

	r.GET("/corpus/load", func(c *gin.Context) {
		path := c.Query("path")
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
			return
		}
		s, err := corpus.Load(path)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"length": s.Len()})
	})

	r.Run(host + ":" + port)
}

func runSearch(algorithm string, text, pattern []byte) ([]matchResult, error) {
	switch algorithm {
	case "naive":
		hits, err := naive.Search(pattern, text, false)
		if err != nil {
			return nil, err
		}
		return toResults(hits, len(pattern)), nil
	case "kmp":
		f, err := kmp.Build(pattern, kmp.SPViaZ)
		if err != nil {
			return nil, err
		}
		hits := kmp.Search(f, pattern, text, false)
		return toResults(hits, len(pattern)), nil
	case "boyermoore":
		t, err := boyermoore.Build(pattern)
		if err != nil {
			return nil, err
		}
		hits := boyermoore.OptimizedSearch(t, text, false)
		return toResults(hits, len(pattern)), nil
	case "ahocorasick":
		m, err := ahocorasick.Build([][]byte{pattern})
		if err != nil {
			return nil, err
		}
		matches := m.Scan(text)
		out := make([]matchResult, len(matches))
		for i, mt := range matches {
			out[i] = matchResult{Pos: mt.Pos, Length: mt.Length}
		}
		return out, nil
	case "bmset":
		matches, err := bmset.Scan([][]byte{pattern}, text)
		if err != nil {
			return nil, err
		}
		out := make([]matchResult, len(matches))
		for i, mt := range matches {
			out[i] = matchResult{Pos: mt.Pos, Length: mt.Length}
		}
		return out, nil
	default:
		return nil, errUnknownAlgorithm(algorithm)
	}
}

func toResults(positions []int, length int) []matchResult {
	out := make([]matchResult, len(positions))
	for i, pos := range positions {
		out[i] = matchResult{Pos: pos, Length: length}
	}
	return out
}

type errUnknownAlgorithm string

func (e errUnknownAlgorithm) Error() string {
	return "unknown algorithm: " + string(e)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
