package server

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/nikogura/brand-weaver/pkg/deploy"
	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/nikogura/brand-weaver/pkg/export"
	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/nikogura/brand-weaver/pkg/linkedin"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/nikogura/brand-weaver/pkg/site"
	"github.com/pkg/errors"
)

const (
	// SessionHeader carries the session id on extract responses.
	SessionHeader = "X-Session-ID"

	samplePreviewUsername = "john-doe"
	siteArchiveName       = "website.zip"
	exportArchiveName     = "brand-weaver-export.zip"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

type extractRequest struct {
	Username    string `json:"username"`
	LinkedInURL string `json:"linkedinUrl"`
}

type generateRequest struct {
	SessionID string         `json:"sessionId"`
	Data      *profile.Data  `json:"data"`
	Config    *design.Config `json:"config"`
}

type generateResponse struct {
	SessionID  string   `json:"sessionId"`
	PreviewURL string   `json:"previewUrl"`
	Files      []string `json:"files"`
}

type presetsResponse struct {
	ColorSchemes    []design.ColorScheme `json:"colorSchemes"`
	Typography      []design.Typography  `json:"typography"`
	AestheticLevels []design.LevelInfo   `json:"aestheticLevels"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		s.badRequest(c, errors.Wrap(err, "invalid request body"))
		return
	}

	identifier := fallback.FirstString(strings.TrimSpace(req.LinkedInURL), strings.TrimSpace(req.Username))
	if identifier == "" {
		s.extractError(c, errors.New("a LinkedIn URL or username is required"), linkedin.KindInvalidInput)
		return
	}

	data, err := s.extractor.Extract(c.Request.Context(), identifier)
	if err != nil {
		s.extractError(c, err, linkedin.KindOf(err))
		return
	}

	id := s.store.CreateSession()
	s.store.SaveProfile(id, data)

	c.Header(SessionHeader, id)
	c.JSON(http.StatusOK, data)
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		s.badRequest(c, errors.Wrap(err, "invalid request body"))
		return
	}

	id := req.SessionID
	stored, known := s.store.GetProfile(id)
	if !known {
		id = ""
	}

	var data profile.Data
	switch {
	case req.Data != nil:
		data = *req.Data
	case known:
		data = stored
	default:
		var ok bool
		data, ok = s.store.LatestProfile()
		if !ok {
			s.badRequest(c, errors.New("no profile data: extract a profile first"))
			return
		}
	}

	data.Normalize()
	err = data.Validate()
	if err != nil {
		s.badRequest(c, errors.Wrap(err, "invalid profile data"))
		return
	}

	cfg := design.Default()
	if req.Config != nil {
		cfg = *req.Config
	}
	cfg.ApplyDefaults()
	err = cfg.Validate()
	if err != nil {
		s.badRequest(c, errors.Wrap(err, "invalid design config"))
		return
	}

	start := time.Now()
	bundle, err := s.generator.Generate(data, cfg)
	if err != nil {
		s.internalError(c, errors.Wrap(err, "failed to generate website"))
		return
	}
	s.recorder.ObserveGeneration(string(cfg.Language), string(cfg.AestheticLevel), time.Since(start))

	if id == "" {
		id = s.store.CreateSession()
	}
	s.store.SaveProfile(id, data)
	s.store.SaveDesign(id, cfg)
	s.store.SaveBundle(id, bundle)

	s.logger.Info("website generated",
		logging.String("session", id),
		logging.String("language", string(cfg.Language)),
		logging.String("level", string(cfg.AestheticLevel)),
		logging.Int("bytes", bundle.Size()),
	)

	c.JSON(http.StatusOK, generateResponse{
		SessionID:  id,
		PreviewURL: "/api/preview?session=" + id,
		Files:      bundle.Names(),
	})
}

func (s *Server) handlePreview(c *gin.Context) {
	bundle, found := s.sessionBundle(c)
	if !found {
		if c.Query("session") != "" {
			s.notFound(c, "no generated website for this session")
			return
		}

		var err error
		bundle, err = s.generator.Generate(profile.Sample(samplePreviewUsername, s.clock()), design.Default())
		if err != nil {
			s.internalError(c, errors.Wrap(err, "failed to generate sample preview"))
			return
		}
	}

	page := []byte(bundle[site.IndexFile])
	c.Header("Vary", "Accept-Encoding")

	if !acceptsBrotli(c.GetHeader("Accept-Encoding")) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	_, err := bw.Write(page)
	if err == nil {
		err = bw.Close()
	}
	if err != nil {
		s.internalError(c, errors.Wrap(err, "failed to compress preview"))
		return
	}

	c.Header("Content-Encoding", "br")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleDeploy(c *gin.Context) {
	var opts deploy.Options
	err := c.ShouldBindJSON(&opts)
	if err != nil {
		s.badRequest(c, errors.Wrap(err, "invalid request body"))
		return
	}

	result, err := deploy.Deploy(opts)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	s.logger.Info("simulated deployment",
		logging.String("platform", string(result.Platform)),
		logging.String("url", result.URL),
	)

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDNSGuidance(c *gin.Context) {
	domain := strings.TrimSpace(c.Query("domain"))
	if domain == "" {
		s.badRequest(c, errors.New("domain is required"))
		return
	}

	guidance, err := deploy.DNSGuidance(deploy.ParsePlatform(c.Query("platform")), domain, c.Query("siteName"))
	if err != nil {
		s.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, guidance)
}

func (s *Server) handleDownloadSite(c *gin.Context) {
	bundle, ok := s.sessionBundle(c)
	if !ok {
		s.notFound(c, "no generated website found: generate a website first")
		return
	}

	var buf bytes.Buffer
	err := export.WriteZip(&buf, bundle)
	if err != nil {
		s.internalError(c, err)
		return
	}

	attachment(c, siteArchiveName, "application/zip", buf.Bytes())
}

func (s *Server) handleDownloadData(c *gin.Context) {
	data, ok := s.sessionProfile(c)
	if !ok {
		s.notFound(c, "no profile data found: extract a profile first")
		return
	}

	payload, err := export.MarshalData(data, s.clock())
	if err != nil {
		s.internalError(c, err)
		return
	}

	attachment(c, export.DataFile, "application/json", payload)
}

func (s *Server) handleDownloadZip(c *gin.Context) {
	data, ok := s.sessionProfile(c)
	if !ok {
		s.notFound(c, "no profile data found: extract a profile first")
		return
	}

	bundle, _ := s.sessionBundle(c)

	var buf bytes.Buffer
	err := export.WriteDataZip(&buf, data, bundle, s.clock())
	if err != nil {
		s.internalError(c, err)
		return
	}

	attachment(c, exportArchiveName, "application/zip", buf.Bytes())
}

func (s *Server) handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, presetsResponse{
		ColorSchemes:    design.ColorSchemes(),
		Typography:      design.Typographies(),
		AestheticLevels: design.AestheticLevels(),
	})
}

// sessionID returns the session query parameter, or the latest session.
func (s *Server) sessionID(c *gin.Context) (id string, ok bool) {
	id = c.Query("session")
	if id != "" {
		ok = true
		return id, ok
	}
	id, ok = s.store.LatestSession()
	return id, ok
}

func (s *Server) sessionBundle(c *gin.Context) (bundle site.Bundle, ok bool) {
	id, ok := s.sessionID(c)
	if !ok {
		return bundle, ok
	}
	bundle, ok = s.store.GetBundle(id)
	return bundle, ok
}

func (s *Server) sessionProfile(c *gin.Context) (data profile.Data, ok bool) {
	id, ok := s.sessionID(c)
	if !ok {
		return data, ok
	}
	data, ok = s.store.GetProfile(id)
	return data, ok
}

func attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

// acceptsBrotli reports whether an Accept-Encoding value lists br with a
// non-zero quality.
func acceptsBrotli(header string) (ok bool) {
	for _, part := range strings.Split(header, ",") {
		token, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(token), "br") {
			continue
		}
		if v, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
			q, err := strconv.ParseFloat(v, 64)
			if err == nil && q == 0 {
				return ok
			}
		}
		ok = true
		return ok
	}
	return ok
}
