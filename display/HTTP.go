package display

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPSink keeps the latest Frame of each name and serves it over HTTP:
//
//	GET /frames        names and epochs of the latest frames
//	GET /frames/:name  the latest frame of name as a PNG
type HTTPSink struct {
	lock   sync.Mutex
	frames map[string]Frame
	scale  int
	router *gin.Engine
}

// NewHTTPSink returns a new HTTPSink serving PNGs with each pixel
// scaled to a scale x scale square
func NewHTTPSink(scale int) *HTTPSink {
	h := &HTTPSink{frames: make(map[string]Frame), scale: scale}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/frames", h.handleList)
	r.GET("/frames/:name", h.handleFrame)
	h.router = r

	return h
}

// Show implements the Sink interface
func (h *HTTPSink) Show(f Frame) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.frames[f.Name] = f
	return nil
}

// Handler returns the HTTP handler of the sink
func (h *HTTPSink) Handler() http.Handler {
	return h.router
}

// Serve serves the sink on addr until ctx is cancelled
func (h *HTTPSink) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: h.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %v", err)
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(),
			5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown); err != nil {
			return fmt.Errorf("serve: %v", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	}
}

func (h *HTTPSink) handleList(c *gin.Context) {
	h.lock.Lock()
	frames := make([]gin.H, 0, len(h.frames))
	for name, f := range h.frames {
		frames = append(frames, gin.H{"name": name, "epoch": f.Epoch})
	}
	h.lock.Unlock()

	sort.Slice(frames, func(i, j int) bool {
		return frames[i]["name"].(string) < frames[j]["name"].(string)
	})
	c.JSON(http.StatusOK, gin.H{"frames": frames})
}

func (h *HTTPSink) handleFrame(c *gin.Context) {
	h.lock.Lock()
	f, ok := h.frames[c.Param("name")]
	h.lock.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such frame"})
		return
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, f.Image, h.scale); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
