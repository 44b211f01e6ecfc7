package main

import (
	"context"
	"net/http"
	"time"

	"Pathfinder/astar"
	"Pathfinder/constants"
	"Pathfinder/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Server exposes one-shot searches and stepped search sessions over HTTP and
// websocket.
type Server struct {
	conf     constants.SearchConf
	sessions *models.SessionManager
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewServer(conf constants.SearchConf, logger *zap.Logger) *Server {
	return &Server{
		conf:     conf,
		sessions: models.NewSessionManager(conf.MaxSessions, logger),
		logger:   logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(ginZap(s.logger), gin.Recovery())

	r.POST("/search", s.search)
	r.POST("/sessions", s.createSession)
	r.GET("/sessions/:id", s.getSession)
	r.POST("/sessions/:id/step", s.step)
	r.GET("/sessions/:id/ws", s.stream)
	r.DELETE("/sessions/:id", s.deleteSession)
	return r
}

func ginZap(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func (s *Server) buildGrid(c *gin.Context) (*astar.Grid, bool) {
	var req models.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errors.Wrap(astar.ErrInvalidConfiguration, err.Error()))
		return nil, false
	}
	if req.Dimension == 0 && len(req.Layout) == 0 {
		req.Dimension = s.conf.DefaultDimension
	}
	grid, err := req.Build(s.conf.MaxDimension)
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return grid, true
}

func (s *Server) search(c *gin.Context) {
	grid, ok := s.buildGrid(c)
	if !ok {
		return
	}
	engine, err := astar.NewEngine(grid, grid.Start(), grid.End(), astar.WithLogger(s.logger))
	if err != nil {
		s.fail(c, err)
		return
	}
	if _, err := engine.Run(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewSearchResponse(grid, engine))
}

func (s *Server) createSession(c *gin.Context) {
	grid, ok := s.buildGrid(c)
	if !ok {
		return
	}
	session, err := s.sessions.Create(grid)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.SessionResponse{
		ID:        session.ID,
		Dimension: grid.Dimension(),
		Grid:      grid.Rows(),
	})
}

func (s *Server) session(c *gin.Context) (*models.Session, bool) {
	session, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return session, true
}

func (s *Server) getSession(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Snapshot().JSON())
}

func (s *Server) step(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}
	frames, _ := session.Advance()
	resp := make([]models.FrameResponse, 0, len(frames))
	for _, f := range frames {
		resp = append(resp, f.JSON())
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.Release(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ret": constants.RET_OK})
}

// stream runs the session to completion, writing every frame as a binary
// protobuf message, then closes the connection normally.
func (s *Server) stream(c *gin.Context) {
	session, ok := s.session(c)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	logger := s.logger.With(zap.String("session", session.ID))
	interval := s.conf.FrameInterval()
	for {
		frames, status := session.Advance()
		for _, f := range frames {
			b, err := f.Marshal()
			if err != nil {
				logger.Error("marshal frame", zap.Error(err))
				return
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				logger.Info("stream closed by peer", zap.Error(err))
				return
			}
			if interval > 0 {
				time.Sleep(interval)
			}
		}
		if status != astar.Running {
			logger.Info("stream done", zap.Stringer("status", status))
			if err := s.sessions.Release(session.ID); err != nil {
				logger.Debug("release", zap.Error(err))
			}
			break
		}
	}
	err = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		logger.Info("write close", zap.Error(err))
	}
}

// statusClientClosedRequest is nginx's code for a request the client gave up on.
const statusClientClosedRequest = 499

func (s *Server) fail(c *gin.Context, err error) {
	status, ret := http.StatusInternalServerError, constants.RET_INTERNAL_ERROR
	switch errors.Cause(err) {
	case astar.ErrInvalidConfiguration, astar.ErrPrecondition, astar.ErrOutOfBounds,
		astar.ErrOccupied, astar.ErrBadLayout:
		status, ret = http.StatusBadRequest, constants.RET_BAD_REQUEST
	case models.ErrSessionNotFound:
		status, ret = http.StatusNotFound, constants.RET_NOT_FOUND
	case models.ErrTooManySessions:
		status, ret = http.StatusTooManyRequests, constants.RET_TOO_MANY
	case context.Canceled:
		status, ret = statusClientClosedRequest, constants.RET_CANCELLED
	case context.DeadlineExceeded:
		status, ret = http.StatusGatewayTimeout, constants.RET_CANCELLED
	}
	switch status {
	case http.StatusInternalServerError:
		s.logger.Error("request failed", zap.Error(err))
	case statusClientClosedRequest, http.StatusGatewayTimeout:
		s.logger.Info("request abandoned", zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"ret": ret, "err": err.Error()})
}
